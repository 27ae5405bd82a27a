package metrics

import (
	"fmt"
	"sync"
	"time"
)

// Termination reasons
const (
	ReasonBudgetExhausted = "budget_exhausted"
	ReasonLinksExhausted  = "links_exhausted"
	ReasonSeedUnavailable = "seed_unavailable"
	ReasonCancelled       = "cancelled"
)

// Metrics tracks crawl statistics
type Metrics struct {
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	LinksDiscovered   int       `json:"links_discovered"`
	LinksVisited      int       `json:"links_visited"`
	PagesTabulated    int       `json:"pages_tabulated"`
	PagesSkipped      int       `json:"pages_skipped"`
	WordsCounted      int       `json:"words_counted"`
	TotalFetchTimeMs  int64     `json:"total_fetch_time_ms"`
	AvgFetchTimeMs    int64     `json:"avg_fetch_time_ms"`
	TerminationReason string    `json:"termination_reason"`
}

// Tracker holds and manages crawl metrics
type Tracker struct {
	mu               sync.Mutex
	data             Metrics
	totalFetchTimeMs int64
	fetchCount       int
}

// NewTracker creates a new metrics tracker
func NewTracker() *Tracker {
	return &Tracker{
		data: Metrics{
			StartTime: time.Now(),
		},
	}
}

// AddLinksDiscovered adds n links to the discovered counter
func (t *Tracker) AddLinksDiscovered(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.LinksDiscovered += n
}

// IncrementLinksVisited increments the visited links counter
func (t *Tracker) IncrementLinksVisited() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.LinksVisited++
}

// RecordTabulated counts a tabulated page and its words
func (t *Tracker) RecordTabulated(words int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.PagesTabulated++
	t.data.WordsCounted += words
}

// IncrementPagesSkipped increments the skipped page counter
func (t *Tracker) IncrementPagesSkipped() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.PagesSkipped++
}

// RecordFetchTime records a page fetch duration
func (t *Tracker) RecordFetchTime(duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalFetchTimeMs += duration.Milliseconds()
	t.fetchCount++
}

// Finish stamps the end time and termination reason
func (t *Tracker) Finish(reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.EndTime = time.Now()
	t.data.TerminationReason = reason
}

// GetSnapshot returns a copy of current metrics
func (t *Tracker) GetSnapshot() Metrics {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := t.data
	snapshot.TotalFetchTimeMs = t.totalFetchTimeMs

	// Calculate average fetch time
	if t.fetchCount > 0 {
		snapshot.AvgFetchTimeMs = t.totalFetchTimeMs / int64(t.fetchCount)
	}

	return snapshot
}

// LogProgress formats current metrics for periodic log lines
func (t *Tracker) LogProgress() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return fmt.Sprintf("Links: %d discovered, %d visited | Pages: %d tabulated, %d skipped | Words: %d",
		t.data.LinksDiscovered,
		t.data.LinksVisited,
		t.data.PagesTabulated,
		t.data.PagesSkipped,
		t.data.WordsCounted,
	)
}
