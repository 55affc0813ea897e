package browser

import (
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if !opts.Headless {
		t.Error("Expected headless to be true by default")
	}

	if opts.Timeout != 30*time.Second {
		t.Errorf("Expected timeout to be 30s, got %v", opts.Timeout)
	}

	if opts.SettleDelay != 2*time.Second {
		t.Errorf("Expected settle delay to be 2s, got %v", opts.SettleDelay)
	}

	if opts.ViewportWidth != 1920 || opts.ViewportHeight != 1080 {
		t.Errorf("Expected viewport to be 1920x1080, got %dx%d", opts.ViewportWidth, opts.ViewportHeight)
	}

	if opts.Locale != "da-DK" {
		t.Errorf("Expected locale to be da-DK, got %s", opts.Locale)
	}

	if opts.TimezoneID != "Europe/Copenhagen" {
		t.Errorf("Expected timezone to be Europe/Copenhagen, got %s", opts.TimezoneID)
	}
}

func TestNormalizeOptionsNil(t *testing.T) {
	opts := normalizeOptions(nil)

	if opts.Timeout != 30*time.Second {
		t.Errorf("Expected default timeout, got %v", opts.Timeout)
	}
}

func TestNormalizeOptionsKeepsConfiguredTimeout(t *testing.T) {
	opts := normalizeOptions(&Options{Timeout: 45 * time.Second})

	if opts.Timeout != 45*time.Second {
		t.Errorf("Expected configured timeout to survive, got %v", opts.Timeout)
	}
}

func TestNormalizeOptionsZeroTimeout(t *testing.T) {
	opts := normalizeOptions(&Options{Headless: true})

	if opts.Timeout != 30*time.Second {
		t.Errorf("Expected zero timeout to fall back to 30s, got %v", opts.Timeout)
	}
}
