package olx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"olx-scraper/config"
	"olx-scraper/models"
	"olx-scraper/services"
	"olx-scraper/storage"
	"olx-scraper/urlbuilder"
	"olx-scraper/utils"
)

// Scraper runs the whole harvest: page enumeration, listing crawl, dedup
// filtering, detail extraction and persistence.
type Scraper struct {
	cfg       *config.Config
	logger    *utils.Logger
	browser   *Browser
	store     storage.AdStore
	listing   *ListingCrawler
	extractor *Extractor
	cleaner   *services.RecordCleaner
	tracker   *utils.URLTracker
	limiter   *utils.RateLimiter

	mu      sync.Mutex
	records []*models.AdRecord
}

// NewScraper wires the crawl components around a running browser and an
// open gateway.
func NewScraper(cfg *config.Config, logger *utils.Logger, browser *Browser, store storage.AdStore) *Scraper {
	return &Scraper{
		cfg:       cfg,
		logger:    logger,
		browser:   browser,
		store:     store,
		listing:   NewListingCrawler(browser, cfg, logger),
		extractor: NewExtractor(browser, cfg, logger),
		cleaner:   services.NewRecordCleaner(logger),
		tracker:   utils.NewURLTracker(),
		limiter:   utils.NewRateLimiter(cfg.RateLimitDelay),
	}
}

// Run crawls the page range for one query and returns the run statistics
// along with every record that was extracted.
func (s *Scraper) Run(ctx context.Context, query models.UrlQuery, startPage, endPage int) (*services.RunStats, []*models.AdRecord, error) {
	builder, err := urlbuilder.ForQuery(s.cfg.BaseURL, query)
	if err != nil {
		return nil, nil, err
	}
	if startPage < 1 {
		startPage = 1
	}
	if endPage < startPage {
		endPage = startPage
	}

	stats := &services.RunStats{}
	jobs := make(chan *models.CrawlTask)

	var wg sync.WaitGroup
	workers := s.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-jobs:
					if !ok {
						return
					}
					s.processTask(ctx, task, stats)
				}
			}
		}()
	}

	for page := startPage; page <= endPage; page++ {
		if ctx.Err() != nil {
			break
		}
		if err := s.limiter.Wait(ctx); err != nil {
			break
		}

		pageURL := builder.Build(page)
		var summaries []models.ListingSummary
		crawlErr := utils.RetryWithBackoff(ctx, s.cfg.MaxRetries, func() error {
			var err error
			summaries, err = s.listing.Crawl(ctx, pageURL)
			return err
		}, s.logger)
		if crawlErr != nil {
			s.logger.Error("Listing page %d failed: %v", page, crawlErr)
			continue
		}

		emitted, skipped := s.emitTasks(ctx, summaries, jobs)
		stats.AddPage(emitted+skipped, skipped)
	}

	close(jobs)
	wg.Wait()

	s.mu.Lock()
	records := s.records
	s.mu.Unlock()
	return stats, records, ctx.Err()
}

// emitTasks filters the page's candidates through the in-run tracker and
// the gateway's existence check, then queues detail tasks for the unknown
// ones. The pre-check is an optimization; the insert conflict stays the
// duplicate guard.
func (s *Scraper) emitTasks(ctx context.Context, summaries []models.ListingSummary, jobs chan<- *models.CrawlTask) (emitted, skipped int) {
	for _, summary := range summaries {
		if !s.tracker.Add(summary.URL) {
			skipped++
			continue
		}

		adID := ExtractAdID(summary.URL)
		if adID != "" {
			known, err := s.store.Exists(ctx, adID)
			if err != nil {
				s.logger.Error("Existence check failed for ad %s: %v", adID, err)
			} else if known {
				s.logger.Debug("Skipping known ad %s", adID)
				skipped++
				continue
			}
		}

		task := &models.CrawlTask{
			AdID:    adID,
			URL:     summary.URL,
			Summary: summary,
			Outcome: models.OutcomePending,
		}
		select {
		case <-ctx.Done():
			return emitted, skipped
		case jobs <- task:
			emitted++
		}
	}
	return emitted, skipped
}

// processTask runs one detail task end to end: extract, clean, persist.
// Failures terminate the task only; the crawl moves on.
func (s *Scraper) processTask(ctx context.Context, task *models.CrawlTask, stats *services.RunStats) {
	if err := s.limiter.Wait(ctx); err != nil {
		return
	}

	rec, err := s.extractor.Extract(ctx, task)
	if err != nil {
		switch {
		case errors.Is(err, ErrBlocked):
			stats.AddBlocked()
		default:
			stats.AddFailed()
		}
		s.logger.Error("Task %s: %v", task.URL, err)
		return
	}

	s.cleaner.Clean(rec)
	if rec.AdID == "" {
		stats.AddFailed()
		s.logger.Error("Task %s produced no ad id, record dropped", task.URL)
		return
	}

	result, err := s.store.Insert(ctx, rec)
	if err != nil {
		stats.AddFailed()
		s.logger.Error("Failed to store ad %s (%s): %v", rec.AdID, task.URL, err)
		return
	}

	switch result {
	case storage.ResultAlreadyPresent:
		stats.AddAlreadyPresent()
	default:
		stats.AddStored()
	}

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()
}

// String summarizes the scraper configuration for startup logging.
func (s *Scraper) String() string {
	return fmt.Sprintf("olx scraper: %d workers, %dms rate delay, %d retries",
		s.cfg.Workers, s.cfg.RateLimitDelay, s.cfg.MaxRetries)
}
