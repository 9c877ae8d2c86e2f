package models

// UrlQuery describes one category search. It is immutable once a URL is
// built; each page increment produces a new URL, not a new query.
type UrlQuery struct {
	Category     string
	Location     string
	Subcategory1 string
	Subcategory2 string
	Filters      map[string]string
}

// CloneFilters returns a copy of the filter map so builders can inject
// defaults without mutating the caller's query.
func (q UrlQuery) CloneFilters() map[string]string {
	filters := make(map[string]string, len(q.Filters)+2)
	for k, v := range q.Filters {
		filters[k] = v
	}
	return filters
}
