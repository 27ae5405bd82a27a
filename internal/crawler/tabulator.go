package crawler

import (
	"context"
	"net/http"

	"github.com/alvmarrod/webcloud/internal/fetch"
	"github.com/alvmarrod/webcloud/internal/wordfreq"
)

// Tabulator fetches a page and counts the words of its visible text
type Tabulator struct {
	fetcher fetch.Fetcher
	headers http.Header
}

// NewTabulator creates a tabulator sending headers with every fetch
func NewTabulator(fetcher fetch.Fetcher, headers http.Header) *Tabulator {
	return &Tabulator{fetcher: fetcher, headers: headers}
}

// Tabulate returns the frequency table of the page at url.
// Fetch failures are returned unchanged; use fetch.IsPageUnavailable to
// tell status and mime failures apart from transport faults.
func (t *Tabulator) Tabulate(ctx context.Context, url string) (wordfreq.Table, error) {
	doc, err := t.fetcher.Fetch(ctx, url, t.headers)
	if err != nil {
		return wordfreq.Table{}, err
	}
	return wordfreq.Count(doc.Text), nil
}
