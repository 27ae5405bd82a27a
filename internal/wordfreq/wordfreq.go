package wordfreq

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// A field is only eligible if it is made of ASCII letters and digits.
	eligibleField = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	letterRun     = regexp.MustCompile(`[A-Za-z]+`)

	lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
)

// Entry is a single word and its occurrence count
type Entry struct {
	Word  string
	Count int
}

// Table is an immutable word-count table ordered by word
type Table struct {
	entries []Entry
	index   map[string]int
}

// NormalizeLineBreaks replaces CRLF, lone CR and lone LF with a single space
func NormalizeLineBreaks(text string) string {
	return lineBreaks.Replace(text)
}

// Tokenize splits text into word tokens.
// Fields holding punctuation, symbols or non-ASCII runes are dropped whole;
// digits inside a field separate words.
func Tokenize(text string) []string {
	var words []string
	for _, field := range strings.Fields(NormalizeLineBreaks(text)) {
		if !eligibleField.MatchString(field) {
			continue
		}
		words = append(words, letterRun.FindAllString(field, -1)...)
	}
	return words
}

// Count tokenizes text and returns its frequency table
func Count(text string) Table {
	counts := make(map[string]int)
	for _, word := range Tokenize(text) {
		counts[word]++
	}
	return FromCounts(counts)
}

// FromCounts builds a Table from an unordered count map
func FromCounts(counts map[string]int) Table {
	entries := make([]Entry, 0, len(counts))
	for word, n := range counts {
		entries = append(entries, Entry{Word: word, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Word] = i
	}
	return Table{entries: entries, index: index}
}

// Len returns the number of distinct words
func (t Table) Len() int {
	return len(t.entries)
}

// Get returns the count for word, 0 if absent
func (t Table) Get(word string) int {
	if i, ok := t.index[word]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Total returns the number of tokens counted
func (t Table) Total() int {
	total := 0
	for _, e := range t.entries {
		total += e.Count
	}
	return total
}

// Entries returns a copy of the entries in increasing word order
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Words returns the words in increasing order
func (t Table) Words() []string {
	words := make([]string, len(t.entries))
	for i, e := range t.entries {
		words[i] = e.Word
	}
	return words
}

// ByCount returns the entries ordered by descending count, ties by word
func (t Table) ByCount() []Entry {
	out := t.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// String renders the table as a map literal, e.g. {DATA:1, Data:1, data:1}
func (t Table) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Word)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.Count))
	}
	b.WriteByte('}')
	return b.String()
}
