package fetch

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/sirupsen/logrus"
)

// Document is a fetched and parsed HTML page
type Document struct {
	URL         string
	StatusCode  int
	ContentType string
	// Links holds absolute anchor URLs in document order
	Links []string
	// Text is the visible text of the body
	Text string
}

// Fetcher retrieves and parses a single page
type Fetcher interface {
	Fetch(ctx context.Context, url string, headers http.Header) (*Document, error)
}

// Options controls the colly collector
type Options struct {
	UserAgent string
	Timeout   time.Duration
}

// CollyFetcher fetches pages synchronously through a colly collector
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a fetcher backed by colly
func NewCollyFetcher(opts Options) *CollyFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	options := []colly.CollectorOption{
		colly.AllowURLRevisit(), // Dedup is owned by the crawl frontier
	}
	if opts.UserAgent != "" {
		options = append(options, colly.UserAgent(opts.UserAgent))
	}

	c := colly.NewCollector(options...)
	c.SetRequestTimeout(opts.Timeout)

	return &CollyFetcher{collector: c}
}

// Fetch issues a GET for url with the given headers and parses the response.
// Failures are returned as *Error.
func (f *CollyFetcher) Fetch(ctx context.Context, url string, headers http.Header) (*Document, error) {
	// Callbacks are bound per call, so each fetch gets a fresh clone
	c := f.collector.Clone()
	c.Context = ctx

	doc := &Document{URL: url}
	var (
		statusCode int
		mimeErr    *Error
	)

	c.OnResponse(func(r *colly.Response) {
		doc.URL = r.Request.URL.String()
		doc.StatusCode = r.StatusCode
		doc.ContentType = r.Headers.Get("Content-Type")

		if !isHTML(doc.ContentType) {
			mimeErr = &Error{
				Kind:        KindMimeMismatch,
				URL:         url,
				StatusCode:  r.StatusCode,
				ContentType: doc.ContentType,
			}
		}
	})

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		link := e.Request.AbsoluteURL(e.Attr("href"))
		if link == "" {
			return
		}
		doc.Links = append(doc.Links, link)
	})

	c.OnHTML("body", func(e *colly.HTMLElement) {
		doc.Text = visibleText(e.DOM)
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			statusCode = r.StatusCode
		}
	})

	err := c.Request(http.MethodGet, url, nil, nil, headers.Clone())
	if err != nil {
		if statusCode != 0 {
			logrus.Debugf("Fetch %s failed with status %d", url, statusCode)
			return nil, &Error{Kind: KindHTTPStatus, URL: url, StatusCode: statusCode, Err: err}
		}
		logrus.Debugf("Fetch %s failed: %v", url, err)
		return nil, &Error{Kind: KindTransport, URL: url, Err: err}
	}

	if mimeErr != nil {
		logrus.Debugf("Fetch %s returned %q, not HTML", url, mimeErr.ContentType)
		return nil, mimeErr
	}

	return doc, nil
}

// isHTML matches the content types colly hands to its HTML callbacks
func isHTML(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "html")
}
