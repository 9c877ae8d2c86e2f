package models

// ListingSummary is the slice of an ad visible on a search results page.
// It only exists to seed a detail task and is never persisted directly.
type ListingSummary struct {
	Title string
	Price string // raw listing-page price, may be empty
	URL   string
}

// AdRecord is the persisted entity for one ad. AdID uniquely identifies a
// record; once stored, a record is never overwritten.
type AdRecord struct {
	AdID             string
	Title            string
	Price            string
	UserName         string
	PhoneNumber      string
	UserScore        string
	UserRegistration string
	UserLastSeen     string
	AdViewCounter    string
	Location         string
	AdPubDate        string
	URL              string
	Description      string
	AdTags           []string
	ImgSrcList       []string
}

// TaskOutcome classifies how a detail task terminated.
type TaskOutcome string

const (
	OutcomePending TaskOutcome = "pending"
	OutcomeSuccess TaskOutcome = "success"
	OutcomeBlocked TaskOutcome = "blocked"
	OutcomeFailed  TaskOutcome = "failed"
)

// CrawlTask is one unit of detail-page work. It is owned by a single
// extractor run and dies with it; the browser tab it opens is released on
// every exit path.
type CrawlTask struct {
	AdID    string // derived from the URL slug, may be empty
	URL     string
	Summary ListingSummary
	Outcome TaskOutcome
}
