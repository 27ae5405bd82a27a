package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/alvmarrod/webcloud/internal/crawler"
	"github.com/alvmarrod/webcloud/internal/wordfreq"
)

func TestPrintResults(t *testing.T) {
	rs := crawler.NewResultSet()
	rs.Put("https://example.com/b", wordfreq.Count("Data data DATA"))
	rs.Put("https://example.com/a", wordfreq.Count("hello\r\nworld"))

	var buf bytes.Buffer
	PrintResults(&buf, rs, 61500*time.Millisecond)

	want := "https://example.com/b: {DATA:1, Data:1, data:1}\n" +
		"https://example.com/a: {hello:1, world:1}\n" +
		"Crawled 2 urls in 61.500 seconds\n"
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrintResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintResults(&buf, crawler.NewResultSet(), 250*time.Millisecond)

	if got := buf.String(); got != "Crawled 0 urls in 0.250 seconds\n" {
		t.Errorf("output = %q", got)
	}
}
