package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidDateFormat is returned when a date token matches none of the
// recognized shapes. Callers decide the fallback; an empty string is never
// a valid result.
var ErrInvalidDateFormat = errors.New("invalid date format")

// monthsUK maps month numbers to Ukrainian genitive month names, matching
// what olx.ua renders in ad dates.
var monthsUK = [13]string{
	"", // 1-based
	"січня", "лютого", "березня", "квітня", "травня", "червня",
	"липня", "серпня", "вересня", "жовтня", "листопада", "грудня",
}

const (
	todayPrefix      = "Сьогодні"
	yesterdayPrefix  = "Онлайн вчора"
	onlineAtPrefix   = "Онлайн в "
	onlinePrefix     = "Онлайн "
	dateTokenPattern = `^(\d{1,2}) ([а-яіїєґ]+) (\d{4}) р\.`
)

var dateTokenRe = regexp.MustCompile(dateTokenPattern)

// ParseAdDate resolves a locale-specific relative or absolute date token to
// the canonical "DD <month> YYYY р." string. Four shapes are recognized, in
// priority order:
//
//	"Сьогодні ..."              -> today's date
//	"Онлайн вчора ..."          -> yesterday's date
//	"Онлайн в <time>"           -> today's date (time of day discarded)
//	"[Онлайн ]D <month> YYYY р." -> parsed as-is, day zero-padded
//
// Anything else fails with ErrInvalidDateFormat.
func ParseAdDate(token string, now time.Time) (string, error) {
	token = strings.TrimSpace(token)

	switch {
	case strings.HasPrefix(token, todayPrefix):
		return formatDate(now), nil
	case strings.HasPrefix(token, yesterdayPrefix):
		return formatDate(now.AddDate(0, 0, -1)), nil
	case strings.HasPrefix(token, onlineAtPrefix):
		return formatDate(now), nil
	case strings.HasPrefix(token, onlinePrefix):
		return parseAbsolute(strings.TrimPrefix(token, onlinePrefix))
	default:
		return parseAbsolute(token)
	}
}

func parseAbsolute(token string) (string, error) {
	m := dateTokenRe.FindStringSubmatch(token)
	if m == nil {
		return "", fmt.Errorf("date token %q: %w", token, ErrInvalidDateFormat)
	}
	day, month, year := m[1], m[2], m[3]
	if !validMonth(month) {
		return "", fmt.Errorf("month %q: %w", month, ErrInvalidDateFormat)
	}
	if len(day) == 1 {
		day = "0" + day
	}
	return fmt.Sprintf("%s %s %s р.", day, month, year), nil
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d р.", t.Day(), monthsUK[t.Month()], t.Year())
}

func validMonth(name string) bool {
	for _, m := range monthsUK[1:] {
		if m == name {
			return true
		}
	}
	return false
}
