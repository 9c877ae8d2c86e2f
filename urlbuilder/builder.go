// Package urlbuilder generates paginated olx.ua search URLs for the
// supported category families.
package urlbuilder

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"olx-scraper/models"
)

// ErrUnsupportedCategory is returned when no builder exists for the
// requested category. Unknown categories never silently default.
var ErrUnsupportedCategory = errors.New("unsupported category")

const defaultCurrency = "UAH"

// Builder turns a category search into a concrete listing-page URL.
type Builder interface {
	// Build returns the URL for the given page number (>= 1). The page
	// parameter is overwritten on every call; all other filters pass
	// through untouched.
	Build(page int) string
}

// ForQuery returns the builder matching the query's category.
func ForQuery(baseURL string, query models.UrlQuery) (Builder, error) {
	switch query.Category {
	case "list":
		return newGeneralList(baseURL, query), nil
	case "nedvizhimost":
		return newRealEstate(baseURL, query), nil
	case "transport":
		return newTransport(baseURL, query), nil
	default:
		return nil, fmt.Errorf("category %q: %w", query.Category, ErrUnsupportedCategory)
	}
}

// splitKeyword pulls the "q" keyword out of the filter map; the keyword
// becomes a path segment, not a query parameter.
func splitKeyword(filters map[string]string) (string, map[string]string) {
	keyword := filters["q"]
	delete(filters, "q")
	return keyword, filters
}

// applyDefaultFilters injects the filters every category shares.
func applyDefaultFilters(filters map[string]string) {
	if _, ok := filters["currency"]; !ok {
		filters["currency"] = defaultCurrency
	}
}

// formatKeyword renders the keyword path segment "q-<slug>/" with spaces
// replaced by hyphens and the result percent-encoded.
func formatKeyword(keyword string) string {
	if keyword == "" {
		return ""
	}
	slug := strings.ReplaceAll(keyword, " ", "-")
	return "q-" + url.QueryEscape(slug) + "/"
}

// encodeFilters renders the query string, forcing the page parameter.
func encodeFilters(filters map[string]string, page int) string {
	values := url.Values{}
	for k, v := range filters {
		values.Set(k, v)
	}
	values.Set("page", strconv.Itoa(page))
	return values.Encode()
}
