package olx

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"olx-scraper/config"
	"olx-scraper/models"
	"olx-scraper/utils"
)

// listingCard mirrors the JS extraction result for one ad card.
type listingCard struct {
	Title string `json:"title"`
	Price string `json:"price"`
	Href  string `json:"href"`
}

// ListingCrawler fetches search results pages and extracts candidate ad
// summaries.
type ListingCrawler struct {
	browser *Browser
	cfg     *config.Config
	logger  *utils.Logger
}

// NewListingCrawler creates a ListingCrawler bound to a running browser.
func NewListingCrawler(browser *Browser, cfg *config.Config, logger *utils.Logger) *ListingCrawler {
	return &ListingCrawler{browser: browser, cfg: cfg, logger: logger}
}

// Crawl fetches one listing page and returns its ad summaries. Blocks
// without a link were already dropped in the extraction snippet; a page
// yielding no ad blocks returns an empty slice with a warning.
func (c *ListingCrawler) Crawl(ctx context.Context, pageURL string) ([]models.ListingSummary, error) {
	tabCtx, cancel := c.browser.NewTab()
	defer cancel()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()

	navCtx, cancelNav := context.WithTimeout(tabCtx, c.cfg.NavigationTimeout)
	defer cancelNav()
	err := chromedp.Run(navCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing page %s: %w", pageURL, err)
	}

	// Give the card grid a bounded chance to render before extracting.
	waitCtx, cancelWait := context.WithTimeout(tabCtx, 10*time.Second)
	if waitErr := chromedp.Run(waitCtx, chromedp.WaitVisible(adsBlockSelector, chromedp.ByQuery)); waitErr != nil {
		c.logger.Warn("No ad blocks appeared on %s", pageURL)
	}
	cancelWait()

	var cards []listingCard
	evalCtx, cancelEval := context.WithTimeout(tabCtx, 5*time.Second)
	defer cancelEval()
	if err := chromedp.Run(evalCtx, chromedp.Evaluate(listingCardsJS, &cards)); err != nil {
		return nil, fmt.Errorf("card extraction failed on %s: %w", pageURL, err)
	}

	if len(cards) == 0 {
		c.logger.Warn("No ads found on the page: %s", pageURL)
		return nil, nil
	}

	summaries := make([]models.ListingSummary, 0, len(cards))
	for _, card := range cards {
		summaries = append(summaries, models.ListingSummary{
			Title: card.Title,
			Price: card.Price,
			URL:   NormalizeAdURL(c.cfg.BaseURL, card.Href),
		})
	}

	c.logger.Info("Listing page %s: %d candidate ads", pageURL, len(summaries))
	return summaries, nil
}
