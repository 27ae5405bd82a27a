// Package crawler visits the links of a seed page within a wall-clock budget
// and collects a word-frequency table for every page it could tabulate.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alvmarrod/webcloud/internal/config"
	"github.com/alvmarrod/webcloud/internal/fetch"
	"github.com/alvmarrod/webcloud/internal/metrics"
	"github.com/alvmarrod/webcloud/internal/wordfreq"
	"github.com/sirupsen/logrus"
)

// ErrSeedUnavailable is returned by Run when the seed page cannot be fetched
var ErrSeedUnavailable = errors.New("seed page unavailable")

type pageTabulator interface {
	Tabulate(ctx context.Context, url string) (wordfreq.Table, error)
}

// Crawler orchestrates the crawl of one seed page
type Crawler struct {
	cfg       *config.Config
	fetcher   fetch.Fetcher
	tabulator pageTabulator
	headers   http.Header
	tracker   *metrics.Tracker
	now       func() time.Time
}

// NewCrawler creates a new crawler instance. tracker may be nil.
func NewCrawler(cfg *config.Config, fetcher fetch.Fetcher, tracker *metrics.Tracker) *Crawler {
	headers := cfg.RequestHeaders()

	return &Crawler{
		cfg:       cfg,
		fetcher:   fetcher,
		tabulator: NewTabulator(fetcher, headers),
		headers:   headers,
		tracker:   tracker,
		now:       time.Now,
	}
}

// Run fetches the seed page and tabulates its links in document order until
// the budget is spent or the links run out. The budget is checked before each
// link, so a tabulation already in progress is never interrupted.
//
// The returned ResultSet is never nil. The error is non-nil only when the seed
// page could not be fetched, in which case the set is empty.
func (c *Crawler) Run(ctx context.Context) (*ResultSet, error) {
	results := NewResultSet()

	seed, err := c.fetcher.Fetch(ctx, c.cfg.SeedURL, c.headers)
	if err != nil {
		c.finish(metrics.ReasonSeedUnavailable)
		return results, fmt.Errorf("%w: %w", ErrSeedUnavailable, err)
	}

	frontier := FilterLinks(seed.Links)
	logrus.Infof("Found %d urls to crawl on %s", frontier.Size(), c.cfg.SeedURL)
	if c.tracker != nil {
		c.tracker.AddLinksDiscovered(frontier.Size())
	}

	reason := metrics.ReasonLinksExhausted
	start := c.now()
	for {
		if ctx.Err() != nil {
			reason = metrics.ReasonCancelled
			break
		}
		if elapsed := c.now().Sub(start); elapsed >= c.cfg.Budget {
			logrus.Infof("Budget of %v spent after %v, %d links left unvisited", c.cfg.Budget, elapsed, frontier.Size())
			reason = metrics.ReasonBudgetExhausted
			break
		}

		link, ok := frontier.Pop()
		if !ok {
			break
		}

		c.visit(ctx, link, results)
	}

	c.finish(reason)
	return results, nil
}

// visit tabulates one link and stores it on success
func (c *Crawler) visit(ctx context.Context, link string, results *ResultSet) {
	if c.tracker != nil {
		c.tracker.IncrementLinksVisited()
	}

	fetchStart := time.Now()
	table, err := c.tabulator.Tabulate(ctx, link)
	if c.tracker != nil {
		c.tracker.RecordFetchTime(time.Since(fetchStart))
	}

	if err != nil {
		kind, _ := fetch.KindOf(err)
		logrus.Debugf("Skipping %s (%v): %v", link, kind, err)
		if c.tracker != nil {
			c.tracker.IncrementPagesSkipped()
		}
		return
	}

	results.Put(link, table)
	if c.tracker != nil {
		c.tracker.RecordTabulated(table.Total())
	}
	logrus.Debugf("Tabulated %s: %d distinct words", link, table.Len())
}

func (c *Crawler) finish(reason string) {
	if c.tracker != nil {
		c.tracker.Finish(reason)
	}
}
