package olx

import "errors"

var (
	// ErrNavigationTimeout means the ad page failed to load within budget.
	ErrNavigationTimeout = errors.New("navigation timeout")

	// ErrBlocked means the anti-bot interstitial was served. It implies
	// external rate limiting, not a bug; the task cools down and is
	// dropped for this run.
	ErrBlocked = errors.New("blocked by anti-bot protection")

	// ErrPageNotReady means a structurally required region (the footer
	// bar) never attached; the task cannot produce a record.
	ErrPageNotReady = errors.New("ad page structure not ready")
)
