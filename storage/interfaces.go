package storage

import (
	"context"

	"olx-scraper/models"
)

// InsertResult reports what an Insert call did.
type InsertResult int

const (
	// ResultStored means a new row was written.
	ResultStored InsertResult = iota
	// ResultAlreadyPresent means the ad id was already stored; the
	// existing row is untouched.
	ResultAlreadyPresent
)

// AdStore is the dedup and persistence gateway for harvested ads.
type AdStore interface {
	Exists(ctx context.Context, adID string) (bool, error)
	Insert(ctx context.Context, rec *models.AdRecord) (InsertResult, error)
	Close() error
}
