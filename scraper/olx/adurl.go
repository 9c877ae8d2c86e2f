package olx

import (
	"net/url"
	"regexp"
	"strings"
)

var adIDRe = regexp.MustCompile(`-ID([0-9A-Za-z]+)\.html`)

// ExtractAdID derives the ad id from a detail-page URL slug
// (".../obyavlenie/<slug>-ID<id>.html"). Returns "" when the slug carries
// no id; such tasks rely on the insert conflict for dedup.
func ExtractAdID(rawURL string) string {
	m := adIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// NormalizeAdURL resolves a listing-page href against the site base and
// rewrites the path to the localized /d/uk/ variant.
func NormalizeAdURL(baseURL, href string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	full := base.ResolveReference(ref)
	if strings.Contains(full.Path, "/d/") && !strings.Contains(full.Path, "/d/uk/") {
		full.Path = strings.Replace(full.Path, "/d/", "/d/uk/", 1)
	}
	return full.String()
}
