package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdDate(t *testing.T) {
	now := time.Date(2025, time.January, 15, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"today marker", "Сьогодні о 14:22", "15 січня 2025 р."},
		{"online yesterday", "Онлайн вчора", "14 січня 2025 р."},
		{"online at time of day", "Онлайн в 11:05", "15 січня 2025 р."},
		{"online absolute date", "Онлайн 3 грудня 2024 р.", "03 грудня 2024 р."},
		{"bare absolute date", "27 серпня 2023 р.", "27 серпня 2023 р."},
		{"bare date already padded", "09 травня 2024 р.", "09 травня 2024 р."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAdDate(tt.token, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAdDateYearBoundary(t *testing.T) {
	newYear := time.Date(2025, time.January, 1, 3, 0, 0, 0, time.UTC)

	got, err := ParseAdDate("Онлайн вчора", newYear)
	require.NoError(t, err)
	assert.Equal(t, "31 грудня 2024 р.", got)
}

func TestParseAdDateInvalid(t *testing.T) {
	now := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not a date at all"},
		{"unknown month", "12 груденя 2024 р."},
		{"missing year", "12 січня"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAdDate(tt.token, now)
			assert.ErrorIs(t, err, ErrInvalidDateFormat)
			assert.Empty(t, got)
		})
	}
}
