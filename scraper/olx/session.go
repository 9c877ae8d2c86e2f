package olx

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	cdpstorage "github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"

	"olx-scraper/config"
	"olx-scraper/utils"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Browser owns the shared Chrome process and its allocator. Detail tasks
// open isolated tabs off it via NewTab.
type Browser struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *utils.Logger
}

// NewBrowser launches Chrome with the crawl profile.
func NewBrowser(cfg *config.Config, logger *utils.Logger) (*Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("lang", "uk-UA"),
		chromedp.UserAgent(userAgent),
		chromedp.WindowSize(1920, 1080),
	)
	if cfg.ProxyServer != "" {
		opts = append(opts, chromedp.ProxyServer(cfg.ProxyServer))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}

	// Start the browser process now so failures surface here, not inside
	// the first task.
	if err := chromedp.Run(ctx, network.Enable()); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &Browser{ctx: ctx, cancel: cancel, logger: logger}, nil
}

// NewTab opens an isolated tab for one task. The returned cancel tears the
// tab down; callers must invoke it on every exit path.
func (b *Browser) NewTab() (context.Context, context.CancelFunc) {
	return chromedp.NewContext(b.ctx)
}

// Close shuts the browser down.
func (b *Browser) Close() {
	b.cancel()
}

// sessionCookie is one entry of the persisted session snapshot.
type sessionCookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite"`
}

// sessionState mirrors the JSON layout of the state file.
type sessionState struct {
	Cookies []sessionCookie `json:"cookies"`
}

// RestoreSession loads the cookie snapshot, if present, into the browser.
// A missing file is not an error; the session simply starts logged out.
func (b *Browser) RestoreSession(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		b.logger.Info("No session state at %s, starting fresh", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session state: %w", err)
	}

	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse session state: %w", err)
	}

	err = chromedp.Run(b.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		for _, c := range state.Cookies {
			setter := network.SetCookie(c.Name, c.Value).
				WithDomain(strings.TrimPrefix(c.Domain, ".")).
				WithPath(c.Path).
				WithSecure(c.Secure).
				WithHTTPOnly(c.HTTPOnly)
			if c.Expires > 0 {
				expires := cdp.TimeSinceEpoch(time.Unix(int64(c.Expires), 0))
				setter = setter.WithExpires(&expires)
			}
			switch strings.ToLower(c.SameSite) {
			case "strict":
				setter = setter.WithSameSite(network.CookieSameSiteStrict)
			case "lax":
				setter = setter.WithSameSite(network.CookieSameSiteLax)
			case "none":
				setter = setter.WithSameSite(network.CookieSameSiteNone)
			}
			if err := setter.Do(ctx); err != nil {
				b.logger.Warn("Failed to restore cookie %s: %v", c.Name, err)
			}
		}
		return nil
	}))
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	b.logger.Info("Session state restored from %s (%d cookies)", path, len(state.Cookies))
	return nil
}

// SaveSession snapshots the browser cookies back to the state file.
func (b *Browser) SaveSession(path string) error {
	var cookies []*network.Cookie
	err := chromedp.Run(b.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		cookies, err = cdpstorage.GetCookies().Do(ctx)
		return err
	}))
	if err != nil {
		return fmt.Errorf("failed to read browser cookies: %w", err)
	}

	state := sessionState{Cookies: make([]sessionCookie, 0, len(cookies))}
	for _, c := range cookies {
		state.Cookies = append(state.Cookies, sessionCookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  c.Expires,
			HTTPOnly: c.HTTPOnly,
			Secure:   c.Secure,
			SameSite: string(c.SameSite),
		})
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}

	b.logger.Info("Session state saved to %s (%d cookies)", path, len(state.Cookies))
	return nil
}

// Login verifies the authenticated session, driving the login form when
// the restored cookies are stale. The state file is rewritten afterwards
// whether or not login succeeded.
func (b *Browser) Login(cfg *config.Config) error {
	tabCtx, cancel := b.NewTab()
	defer cancel()

	navCtx, cancelNav := context.WithTimeout(tabCtx, cfg.NavigationTimeout)
	defer cancelNav()
	if err := chromedp.Run(navCtx,
		chromedp.Navigate(cfg.BaseURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("failed to open %s: %w", cfg.BaseURL, err)
	}

	// Already logged in from the restored snapshot?
	checkCtx, cancelCheck := context.WithTimeout(tabCtx, 5*time.Second)
	err := chromedp.Run(checkCtx, chromedp.WaitReady(topbarUserSelector, chromedp.ByQuery))
	cancelCheck()
	if err == nil {
		b.logger.Info("Authenticated from session state")
		return b.SaveSession(cfg.StateFilePath)
	}

	if cfg.OlxEmail == "" || cfg.OlxPassword == "" {
		b.logger.Warn("No credentials configured, continuing unauthenticated")
		return b.SaveSession(cfg.StateFilePath)
	}

	b.logger.Info("Session stale, logging in through the form...")
	formCtx, cancelForm := context.WithTimeout(tabCtx, 30*time.Second)
	defer cancelForm()
	err = chromedp.Run(formCtx,
		chromedp.Click(myOlxLinkSelector, chromedp.ByQuery),
		chromedp.WaitVisible(loginEmailSelector, chromedp.ByQuery),
		chromedp.SendKeys(loginEmailSelector, cfg.OlxEmail, chromedp.ByQuery),
		chromedp.SendKeys(loginPassSelector, cfg.OlxPassword, chromedp.ByQuery),
		chromedp.Click(loginSubmitSelector, chromedp.ByQuery),
		chromedp.WaitReady(topbarUserSelector, chromedp.ByQuery),
	)
	if err != nil {
		b.logger.Warn("Login failed: %v", err)
	} else {
		b.logger.Info("Logged in through the form")
	}

	// Rewritten after every attempt, success or not.
	return b.SaveSession(cfg.StateFilePath)
}
