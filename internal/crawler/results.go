package crawler

import "github.com/alvmarrod/webcloud/internal/wordfreq"

// Result pairs a page URL with its word-frequency table
type Result struct {
	URL   string
	Table wordfreq.Table
}

// ResultSet maps page URLs to their tables, iterating in insertion order
type ResultSet struct {
	order  []string
	tables map[string]wordfreq.Table
}

// NewResultSet creates an empty result set
func NewResultSet() *ResultSet {
	return &ResultSet{tables: make(map[string]wordfreq.Table)}
}

// Put stores the table for url. A repeated url keeps its original position.
func (rs *ResultSet) Put(url string, table wordfreq.Table) {
	if _, ok := rs.tables[url]; !ok {
		rs.order = append(rs.order, url)
	}
	rs.tables[url] = table
}

// Get returns the table stored for url
func (rs *ResultSet) Get(url string) (wordfreq.Table, bool) {
	table, ok := rs.tables[url]
	return table, ok
}

// Len returns the number of pages in the set
func (rs *ResultSet) Len() int {
	return len(rs.order)
}

// URLs returns the page URLs in insertion order
func (rs *ResultSet) URLs() []string {
	out := make([]string, len(rs.order))
	copy(out, rs.order)
	return out
}

// Results returns all entries in insertion order
func (rs *ResultSet) Results() []Result {
	out := make([]Result, 0, len(rs.order))
	for _, url := range rs.order {
		out = append(out, Result{URL: url, Table: rs.tables[url]})
	}
	return out
}
