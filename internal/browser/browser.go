package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ErrUnavailable is returned when the shared browser process cannot be
// started or can no longer hand out pages. Nothing can be scraped
// without it, so callers should abort their batch.
var ErrUnavailable = errors.New("browser unavailable")

// Browser owns one long-lived headless Chromium process. All scrapes
// share it; each scrape gets its own short-lived page.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	timeout time.Duration
	settle  time.Duration
	logger  *slog.Logger
}

type Options struct {
	Headless       bool
	Timeout        time.Duration
	SettleDelay    time.Duration
	UserAgent      string
	ViewportWidth  int
	ViewportHeight int
	AcceptLanguage string
	TimezoneID     string
	Locale         string
}

func DefaultOptions() *Options {
	return &Options{
		Headless:       true,
		Timeout:        30 * time.Second,
		SettleDelay:    2 * time.Second,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		ViewportWidth:  1920,
		ViewportHeight: 1080,
		AcceptLanguage: "da-DK,da;q=0.9,en;q=0.8",
		TimezoneID:     "Europe/Copenhagen",
		Locale:         "da-DK",
	}
}

// normalizeOptions fills gaps so a partially populated Options still
// yields a working browser; a zero navigation timeout falls back to
// the default rather than disabling the deadline.
func normalizeOptions(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	return opts
}

func New(opts *Options) (*Browser, error) {
	opts = normalizeOptions(opts)

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to start playwright: %v", ErrUnavailable, err)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: &opts.Headless,
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--disable-setuid-sandbox",
		},
	}

	b, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("%w: failed to launch browser: %v", ErrUnavailable, err)
	}

	contextOpts := playwright.BrowserNewContextOptions{
		UserAgent:  &opts.UserAgent,
		Locale:     &opts.Locale,
		TimezoneId: &opts.TimezoneID,
		Viewport: &playwright.Size{
			Width:  opts.ViewportWidth,
			Height: opts.ViewportHeight,
		},
		ExtraHttpHeaders: map[string]string{
			"Accept-Language": opts.AcceptLanguage,
		},
	}

	browserContext, err := b.NewContext(contextOpts)
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("%w: failed to create browser context: %v", ErrUnavailable, err)
	}

	return &Browser{
		pw:      pw,
		browser: b,
		context: browserContext,
		timeout: opts.Timeout,
		settle:  opts.SettleDelay,
		logger:  slog.Default().With("component", "browser"),
	}, nil
}

// Fetch opens a fresh page, navigates to the URL and returns the
// rendered HTML. Navigation waits for DOMContentLoaded rather than
// network idle (the stores lazy-load non-critical assets) and then
// sleeps a short settle delay so their client-side frameworks finish
// painting price and name elements. The page is closed on every exit
// path.
func (b *Browser) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := b.context.NewPage()
	if err != nil {
		return "", fmt.Errorf("%w: failed to create page: %v", ErrUnavailable, err)
	}
	defer page.Close()

	_, err = page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(b.timeout.Milliseconds())),
	})
	if err != nil {
		return "", fmt.Errorf("navigation to %s failed: %w", url, err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(b.settle):
	}

	content, err := page.Content()
	if err != nil {
		return "", fmt.Errorf("failed to read page content for %s: %w", url, err)
	}

	b.logger.Debug("fetched page", "url", url, "bytes", len(content))
	return content, nil
}

func (b *Browser) Close() error {
	var errs []error

	if b.context != nil {
		if err := b.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close context: %w", err))
		}
	}

	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}

	return nil
}
