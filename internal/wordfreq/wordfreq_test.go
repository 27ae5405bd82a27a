package wordfreq

import (
	"reflect"
	"sort"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"plain words", "hello world", []string{"hello", "world"}},
		{"crlf", "hello\r\nworld", []string{"hello", "world"}},
		{"lone cr", "hello\rworld", []string{"hello", "world"}},
		{"lone lf", "hello\nworld", []string{"hello", "world"}},
		{"digits separate", "foo123 a1b", []string{"foo", "a", "b"}},
		{"digits only", "123 2024", nil},
		{"punctuation drops field", "bar-baz end.", nil},
		{"non-ascii drops field", "naïve café plain", []string{"plain"}},
		{"tabs and runs of spaces", "\tone   two\t", []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountCaseSensitive(t *testing.T) {
	table := Count("Data data DATA")

	want := []Entry{{"DATA", 1}, {"Data", 1}, {"data", 1}}
	if got := table.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
	if s := table.String(); s != "{DATA:1, Data:1, data:1}" {
		t.Errorf("String() = %q", s)
	}
}

func TestCountLineBreakNormalization(t *testing.T) {
	a := Count("hello\r\nworld")
	b := Count("hello world")

	if !reflect.DeepEqual(a.Entries(), b.Entries()) {
		t.Fatalf("tables differ: %v vs %v", a, b)
	}
	if a.String() != "{hello:1, world:1}" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestCountNonLetterExclusion(t *testing.T) {
	table := Count("foo123 bar-baz foo")

	if table.String() != "{foo:2}" {
		t.Errorf("Count() = %s, want {foo:2}", table)
	}
	if table.Get("bar") != 0 || table.Get("baz") != 0 {
		t.Error("hyphenated fragments should not be counted")
	}
}

func TestCountIdempotent(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog The end"

	first := Count(text)
	for i := 0; i < 3; i++ {
		again := Count(text)
		if !reflect.DeepEqual(first.Entries(), again.Entries()) {
			t.Fatalf("run %d: %v != %v", i, again, first)
		}
	}
	if first.Get("the") != 2 || first.Get("The") != 1 {
		t.Errorf("unexpected counts: %s", first)
	}
	if first.Total() != 11 {
		t.Errorf("Total() = %d, want 11", first.Total())
	}
}

func TestTableOrdering(t *testing.T) {
	table := Count("zeta Alpha beta alpha Zeta beta gamma B a")

	words := table.Words()
	if !sort.StringsAreSorted(words) {
		t.Fatalf("words not sorted: %v", words)
	}
	for i := 1; i < len(words); i++ {
		if words[i-1] >= words[i] {
			t.Fatalf("words not strictly increasing at %d: %q >= %q", i, words[i-1], words[i])
		}
	}
}

func TestTableByCount(t *testing.T) {
	table := Count("b a b c b a")

	want := []Entry{{"b", 3}, {"a", 2}, {"c", 1}}
	if got := table.ByCount(); !reflect.DeepEqual(got, want) {
		t.Errorf("ByCount() = %v, want %v", got, want)
	}
	// key order is untouched
	if got := table.Words(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Words() = %v", got)
	}
}

func TestTableEntriesIsCopy(t *testing.T) {
	table := Count("one two")

	entries := table.Entries()
	entries[0].Count = 99
	if table.Get("one") != 1 {
		t.Error("mutating Entries() result changed the table")
	}
}

func TestEmptyTable(t *testing.T) {
	var table Table
	if table.Len() != 0 || table.Get("x") != 0 || table.String() != "{}" {
		t.Errorf("zero Table misbehaves: len=%d str=%q", table.Len(), table.String())
	}
}
