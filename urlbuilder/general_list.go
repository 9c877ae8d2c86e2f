package urlbuilder

import "olx-scraper/models"

// generalList builds URLs for the general ad listing:
// {base}/{location or "list"}/{keyword}?{filters}
type generalList struct {
	baseURL  string
	location string
	keyword  string
	filters  map[string]string
}

func newGeneralList(baseURL string, query models.UrlQuery) *generalList {
	keyword, filters := splitKeyword(query.CloneFilters())
	applyDefaultFilters(filters)
	return &generalList{
		baseURL:  baseURL,
		location: query.Location,
		keyword:  keyword,
		filters:  filters,
	}
}

func (b *generalList) Build(page int) string {
	path := b.baseURL
	if b.location != "" {
		path += b.location + "/"
	} else {
		path += "list/"
	}
	path += formatKeyword(b.keyword)
	return path + "?" + encodeFilters(b.filters, page)
}
