package olx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"olx-scraper/config"
	"olx-scraper/models"
	"olx-scraper/utils"
)

const (
	viewCounterSentinel = "N/A"
	phoneSentinel       = "N/A"
	noPhotosSentinel    = "no photos"
	noTagsSentinel      = "no tags"
)

// Extractor drives one browser tab per task through navigation, block
// check, readiness wait, field extraction and the phone reveal, releasing
// the tab on every exit path.
type Extractor struct {
	browser *Browser
	cfg     *config.Config
	logger  *utils.Logger
	now     func() time.Time
}

// NewExtractor creates an Extractor bound to a running browser.
func NewExtractor(browser *Browser, cfg *config.Config, logger *utils.Logger) *Extractor {
	return &Extractor{browser: browser, cfg: cfg, logger: logger, now: time.Now}
}

// Extract runs the task to completion and returns the assembled record.
// The task's outcome is always set before returning; the tab and its
// resources are released unconditionally, including on host cancellation.
func (e *Extractor) Extract(ctx context.Context, task *models.CrawlTask) (rec *models.AdRecord, err error) {
	tabCtx, cancel := e.browser.NewTab()
	defer cancel()

	// Mirror the host's cancellation onto the tab so an aborted crawl
	// tears the page down the same way a normal exit does.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			task.Outcome = models.OutcomeFailed
			err = fmt.Errorf("panic extracting %s: %v", task.URL, r)
		}
	}()

	start := e.now()

	if err := e.navigate(tabCtx, task.URL); err != nil {
		task.Outcome = models.OutcomeFailed
		return nil, err
	}

	if e.isBlocked(tabCtx) {
		e.logger.Warn("Blocked by anti-bot protection, cooling down %v: %s", e.cfg.BlockCooldown, task.URL)
		e.cooldown(ctx)
		task.Outcome = models.OutcomeBlocked
		return nil, fmt.Errorf("%w: %s", ErrBlocked, task.URL)
	}

	if err := e.waitReadiness(tabCtx, task.URL); err != nil {
		task.Outcome = models.OutcomeFailed
		return nil, err
	}

	rec = e.extractFields(tabCtx, task)
	rec.PhoneNumber = e.revealPhone(tabCtx)

	task.Outcome = models.OutcomeSuccess
	e.logger.Info("Extracted ad %s in %.2fs: %s", rec.AdID, e.now().Sub(start).Seconds(), task.URL)
	return rec, nil
}

// navigate opens the ad URL and waits for minimal DOM readiness.
func (e *Extractor) navigate(tabCtx context.Context, url string) error {
	navCtx, cancel := context.WithTimeout(tabCtx, e.cfg.NavigationTimeout)
	defer cancel()

	err := chromedp.Run(navCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s", ErrNavigationTimeout, url)
		}
		return fmt.Errorf("navigation failed for %s: %w", url, err)
	}
	return nil
}

// isBlocked probes for the anti-bot interstitial heading.
func (e *Extractor) isBlocked(tabCtx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(tabCtx, 2*time.Second)
	defer cancel()

	var blocked bool
	if err := chromedp.Run(probeCtx, chromedp.Evaluate(blockCheckJS, &blocked)); err != nil {
		return false
	}
	return blocked
}

// cooldown sleeps off the block backoff, respecting host cancellation.
func (e *Extractor) cooldown(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(e.cfg.BlockCooldown):
	}
}

// waitReadiness scrolls to the footer region and waits for the
// dynamically rendered sections to attach. A missing footer is fatal for
// the task; missing user-name/description regions are logged and
// extraction proceeds with their sentinels. The view counter gets its own
// short wait and degrades silently.
func (e *Extractor) waitReadiness(tabCtx context.Context, url string) error {
	footerCtx, cancelFooter := context.WithTimeout(tabCtx, e.cfg.FooterWaitTimeout)
	err := chromedp.Run(footerCtx,
		chromedp.WaitReady(footerBarSelector, chromedp.ByQuery),
		chromedp.ScrollIntoView(footerBarSelector, chromedp.ByQuery),
	)
	cancelFooter()
	if err != nil {
		return fmt.Errorf("%w: footer bar missing on %s: %v", ErrPageNotReady, url, err)
	}

	sectionCtx, cancelSection := context.WithTimeout(tabCtx, 5*time.Second)
	err = chromedp.Run(sectionCtx,
		chromedp.WaitReady(userNameSelector, chromedp.ByQuery),
		chromedp.WaitReady(descriptionPartsSelector, chromedp.ByQuery),
	)
	cancelSection()
	if err != nil {
		e.logger.Warn("User name or description region missing on %s: %v", url, err)
	}

	counterCtx, cancelCounter := context.WithTimeout(tabCtx, e.cfg.ViewCounterTimeout)
	err = chromedp.Run(counterCtx, chromedp.WaitVisible(adViewCounterSelector, chromedp.ByQuery))
	cancelCounter()
	if err != nil {
		e.logger.Warn("View counter not displayed on %s", url)
	}

	return nil
}

// extractFields reads every schema field, degrading each absent element to
// its sentinel, and assembles the record. Date-like fields pass through
// the normalizer.
func (e *Extractor) extractFields(tabCtx context.Context, task *models.CrawlTask) *models.AdRecord {
	values := make(map[string]string, len(detailFields))
	for _, probe := range detailFields {
		values[probe.name] = strings.TrimSpace(textOr(tabCtx, probe.selector, probe.timeout, probe.sentinel))
	}

	rec := &models.AdRecord{
		Title:            task.Summary.Title,
		Price:            task.Summary.Price,
		URL:              task.URL,
		UserName:         values["user_name"],
		UserScore:        values["user_score"],
		UserRegistration: values["user_registration"],
		AdPubDate:        e.normalizeDate(values["ad_pub_date"], task.URL),
		AdViewCounter:    strings.TrimSpace(textOr(tabCtx, adViewCounterSelector, e.cfg.ViewCounterTimeout, viewCounterSentinel)),
		Location:         strings.TrimSpace(evalString(tabCtx, locationJS, e.cfg.FieldProbeTimeout, "")),
		Description:      strings.TrimSpace(evalString(tabCtx, descriptionJS, e.cfg.FieldProbeTimeout, "")),
		AdTags:           evalStrings(tabCtx, adTagsJS, e.cfg.FieldProbeTimeout, noTagsSentinel),
		ImgSrcList:       evalStrings(tabCtx, imgSrcJS, e.cfg.FieldProbeTimeout, noPhotosSentinel),
	}

	// A seller with no last-seen badge was online on this visit.
	if values["user_last_seen"] == "" {
		values["user_last_seen"] = todayPrefixToken()
	}
	rec.UserLastSeen = e.normalizeDate(values["user_last_seen"], task.URL)

	// The slug-derived id is the key the dedup pre-check used; the footer
	// text backs it up when the slug carried none.
	rec.AdID = task.AdID
	if rec.AdID == "" {
		rec.AdID = parseAdIDText(values["ad_id"])
	}

	return rec
}

// normalizeDate runs a scraped date token through the locale normalizer;
// an unparseable token is logged and left empty for the cleaner's
// sentinel pass.
func (e *Extractor) normalizeDate(token, url string) string {
	if token == "" {
		return ""
	}
	normalized, err := utils.ParseAdDate(token, e.now())
	if err != nil {
		e.logger.Warn("Unparseable date token %q on %s", token, url)
		return ""
	}
	return normalized
}

// revealPhone clicks the show-phone control and reads the revealed number.
// A control that never appears skips the step; a reveal that never
// completes degrades to the sentinel. Neither raises.
func (e *Extractor) revealPhone(tabCtx context.Context) string {
	probeCtx, cancelProbe := context.WithTimeout(tabCtx, e.cfg.FieldProbeTimeout)
	err := chromedp.Run(probeCtx, chromedp.WaitVisible(btnShowPhoneSelector, chromedp.ByQuery))
	cancelProbe()
	if err != nil {
		e.logger.Debug("Show-phone button not displayed, using sentinel")
		return phoneSentinel
	}

	clickCtx, cancelClick := context.WithTimeout(tabCtx, e.cfg.PhoneRevealTimeout)
	err = chromedp.Run(clickCtx,
		chromedp.ScrollIntoView(btnShowPhoneSelector, chromedp.ByQuery),
		chromedp.Click(btnShowPhoneSelector, chromedp.ByQuery),
	)
	cancelClick()
	if err != nil {
		e.logger.Warn("Failed to click show-phone button: %v", err)
		return phoneSentinel
	}

	phone := textOr(tabCtx, contactPhoneSelector, e.cfg.PhoneRevealTimeout, phoneSentinel)
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return phoneSentinel
	}
	return phone
}

// parseAdIDText strips the "ID: " prefix from the footer bar text.
func parseAdIDText(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "ID:")
	return strings.TrimSpace(raw)
}

// todayPrefixToken returns the token the normalizer resolves to today.
func todayPrefixToken() string {
	return "Сьогодні"
}
