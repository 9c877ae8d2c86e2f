package services

import (
	"strings"

	"olx-scraper/models"
	"olx-scraper/utils"
)

// Storage sentinels. Text fields never persist empty except description;
// the phone keeps its extraction sentinel. List fields never persist nil.
const (
	SentinelUnknown  = "Unknown"
	SentinelNA       = "N/A"
	SentinelNoPhotos = "no photos"
	SentinelNoTags   = "no tags"
)

// textRule describes the fallback for one text field.
type textRule struct {
	name     string
	sentinel string
}

// RecordCleaner applies the uniform sentinel policy to an extracted record
// before it reaches the gateway.
type RecordCleaner struct {
	logger *utils.Logger
}

// NewRecordCleaner creates a new RecordCleaner
func NewRecordCleaner(logger *utils.Logger) *RecordCleaner {
	return &RecordCleaner{logger: logger}
}

// Clean trims every field and coerces the missing ones to their documented
// sentinel. The input record is modified in place and returned.
func (c *RecordCleaner) Clean(rec *models.AdRecord) *models.AdRecord {
	rules := []struct {
		rule  textRule
		field *string
	}{
		{textRule{"title", SentinelUnknown}, &rec.Title},
		{textRule{"price", SentinelUnknown}, &rec.Price},
		{textRule{"user_name", SentinelUnknown}, &rec.UserName},
		{textRule{"phone_number", SentinelNA}, &rec.PhoneNumber},
		{textRule{"user_score", SentinelUnknown}, &rec.UserScore},
		{textRule{"user_registration", SentinelUnknown}, &rec.UserRegistration},
		{textRule{"user_last_seen", SentinelUnknown}, &rec.UserLastSeen},
		{textRule{"ad_view_counter", SentinelNA}, &rec.AdViewCounter},
		{textRule{"location", SentinelUnknown}, &rec.Location},
		{textRule{"ad_pub_date", SentinelUnknown}, &rec.AdPubDate},
	}

	for _, r := range rules {
		*r.field = strings.TrimSpace(*r.field)
		if *r.field == "" {
			c.logger.Debug("Ad %s: field %s missing, using sentinel %q", rec.AdID, r.rule.name, r.rule.sentinel)
			*r.field = r.rule.sentinel
		}
	}

	// Description may store as explicit empty when truly absent.
	rec.Description = strings.TrimSpace(rec.Description)
	rec.URL = strings.TrimSpace(rec.URL)

	rec.AdTags = cleanList(rec.AdTags, SentinelNoTags)
	rec.ImgSrcList = cleanList(rec.ImgSrcList, SentinelNoPhotos)

	return rec
}

// cleanList trims entries, drops empties, and substitutes the one-element
// sentinel list when nothing survives.
func cleanList(items []string, sentinel string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return []string{sentinel}
	}
	return out
}
