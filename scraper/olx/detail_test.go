package olx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"olx-scraper/config"
	"olx-scraper/utils"
)

func newTestExtractor() *Extractor {
	e := NewExtractor(nil, config.Load(), utils.NewLogger())
	e.now = func() time.Time {
		return time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	}
	return e
}

func TestNormalizeDate(t *testing.T) {
	e := newTestExtractor()

	assert.Equal(t, "15 січня 2025 р.", e.normalizeDate("Сьогодні о 09:41", "u"))
	assert.Equal(t, "14 січня 2025 р.", e.normalizeDate("Онлайн вчора", "u"))
	assert.Equal(t, "03 грудня 2024 р.", e.normalizeDate("3 грудня 2024 р.", "u"))
}

func TestNormalizeDateUnparseableLeavesEmpty(t *testing.T) {
	e := newTestExtractor()

	// An unparseable token never produces a garbage value; the cleaner
	// turns the empty result into the documented sentinel.
	assert.Empty(t, e.normalizeDate("whenever", "u"))
	assert.Empty(t, e.normalizeDate("", "u"))
}

func TestParseAdIDText(t *testing.T) {
	assert.Equal(t, "812345678", parseAdIDText("ID: 812345678"))
	assert.Equal(t, "812345678", parseAdIDText("  ID: 812345678  "))
	assert.Equal(t, "812345678", parseAdIDText("812345678"))
	assert.Empty(t, parseAdIDText(""))
}
