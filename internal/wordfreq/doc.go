// Package wordfreq turns page text into word-count tables.
//
// The tokenizer is deliberately narrow: only whitespace-delimited fields made
// of ASCII letters and digits contribute words, and a word is a maximal run of
// ASCII letters inside such a field. Counting is case-sensitive and tables
// always iterate in increasing byte order of their words.
package wordfreq
