package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alvmarrod/webcloud/internal/config"
	"github.com/alvmarrod/webcloud/internal/crawler"
	"github.com/alvmarrod/webcloud/internal/fetch"
	"github.com/alvmarrod/webcloud/internal/metrics"
	"github.com/alvmarrod/webcloud/internal/report"
	"github.com/alvmarrod/webcloud/internal/version"
	"github.com/sirupsen/logrus"
)

func main() {
	start := time.Now()

	// Configure logging
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	logrus.Infof("Webcloud v%s starting...", version.Version)

	cfg := config.Default()
	if err := config.Normalize(cfg); err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logrus.Infof("Configuration loaded: seed=%s, budget=%v", cfg.SeedURL, cfg.Budget)

	tracker := metrics.NewTracker()
	fetcher := fetch.NewCollyFetcher(fetch.Options{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.FetchTimeout,
	})
	c := crawler.NewCrawler(cfg, fetcher, tracker)

	// Interrupt stops the crawl at the next link boundary
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start progress logger
	var wg sync.WaitGroup
	stopProgress := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(cfg.ProgressInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				logrus.Info(tracker.LogProgress())
			case <-stopProgress:
				return
			}
		}
	}()

	results, err := c.Run(ctx)
	if errors.Is(err, crawler.ErrSeedUnavailable) {
		logrus.Debugf("Crawl aborted: %v", err)
	}

	close(stopProgress)
	wg.Wait()

	snapshot := tracker.GetSnapshot()
	logrus.Infof("Final stats: %s (%s)", tracker.LogProgress(), snapshot.TerminationReason)

	report.PrintResults(os.Stdout, results, time.Since(start))
}
