package olx

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// fieldProbe declares how one text field is read: its selector, how long
// an absence is tolerated, and the value recorded on a miss. Less
// important fields get longer miss budgets than ones pre-filled from the
// listing page.
type fieldProbe struct {
	name     string
	selector string
	timeout  time.Duration
	sentinel string
}

// detailFields is the declarative probe table for the single-element text
// fields of an ad page.
var detailFields = []fieldProbe{
	{name: "ad_pub_date", selector: adPubDateSelector, timeout: 2 * time.Second, sentinel: ""},
	{name: "user_name", selector: userNameSelector, timeout: time.Second, sentinel: ""},
	{name: "user_score", selector: userScoreSelector, timeout: time.Second, sentinel: ""},
	{name: "user_registration", selector: userRegistrationSelector, timeout: time.Second, sentinel: ""},
	{name: "user_last_seen", selector: userLastSeenSelector, timeout: 100 * time.Millisecond, sentinel: ""},
	{name: "ad_id", selector: adIDSelector, timeout: 3 * time.Second, sentinel: ""},
}

// textOr reads the first matching element's text, or returns the sentinel
// when the element does not attach within the timeout.
func textOr(ctx context.Context, sel string, timeout time.Duration, sentinel string) string {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var txt string
	if err := chromedp.Run(probeCtx, chromedp.Text(sel, &txt, chromedp.ByQuery)); err != nil {
		return sentinel
	}
	return txt
}

// evalString runs a JS snippet expected to return a string; a failed
// evaluation degrades to the sentinel, never to an error.
func evalString(ctx context.Context, js string, timeout time.Duration, sentinel string) string {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var out string
	if err := chromedp.Run(probeCtx, chromedp.Evaluate(js, &out)); err != nil {
		return sentinel
	}
	return out
}

// evalStrings runs a JS snippet expected to return a string array; a
// failed evaluation or an empty result degrades to the one-element
// sentinel list.
func evalStrings(ctx context.Context, js string, timeout time.Duration, sentinel string) []string {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var out []string
	if err := chromedp.Run(probeCtx, chromedp.Evaluate(js, &out)); err != nil || len(out) == 0 {
		return []string{sentinel}
	}
	return out
}
