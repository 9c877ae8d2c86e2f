package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"olx-scraper/models"
	"olx-scraper/utils"
)

func TestCleanCoercesMissingFields(t *testing.T) {
	cleaner := NewRecordCleaner(utils.NewLogger())

	rec := cleaner.Clean(&models.AdRecord{
		AdID:  "123",
		Title: "  ThinkPad  ",
		URL:   "https://www.olx.ua/d/uk/obyavlenie/x-ID123.html",
	})

	assert.Equal(t, "ThinkPad", rec.Title)
	assert.Equal(t, SentinelUnknown, rec.Price)
	assert.Equal(t, SentinelUnknown, rec.UserName)
	assert.Equal(t, SentinelNA, rec.PhoneNumber)
	assert.Equal(t, SentinelUnknown, rec.UserScore)
	assert.Equal(t, SentinelUnknown, rec.UserRegistration)
	assert.Equal(t, SentinelUnknown, rec.UserLastSeen)
	assert.Equal(t, SentinelNA, rec.AdViewCounter)
	assert.Equal(t, SentinelUnknown, rec.Location)
	assert.Equal(t, SentinelUnknown, rec.AdPubDate)
	assert.Empty(t, rec.Description, "description stores as explicit empty")
	assert.Equal(t, []string{SentinelNoTags}, rec.AdTags)
	assert.Equal(t, []string{SentinelNoPhotos}, rec.ImgSrcList)
}

func TestCleanKeepsPresentValues(t *testing.T) {
	cleaner := NewRecordCleaner(utils.NewLogger())

	rec := cleaner.Clean(&models.AdRecord{
		AdID:        "9",
		Title:       "BMW E39",
		Price:       "5 000 $",
		PhoneNumber: "+380501234567",
		Description: " повний привід ",
		AdTags:      []string{" Б/в ", ""},
		ImgSrcList:  []string{"https://img.olx.ua/a.jpg", "  "},
	})

	assert.Equal(t, "5 000 $", rec.Price)
	assert.Equal(t, "+380501234567", rec.PhoneNumber)
	assert.Equal(t, "повний привід", rec.Description)
	assert.Equal(t, []string{"Б/в"}, rec.AdTags)
	assert.Equal(t, []string{"https://img.olx.ua/a.jpg"}, rec.ImgSrcList)
}

func TestCleanNeverReturnsEmptyLists(t *testing.T) {
	cleaner := NewRecordCleaner(utils.NewLogger())

	rec := cleaner.Clean(&models.AdRecord{
		AdID:       "7",
		AdTags:     []string{"", "  "},
		ImgSrcList: []string{},
	})

	assert.Equal(t, []string{SentinelNoTags}, rec.AdTags)
	assert.Equal(t, []string{SentinelNoPhotos}, rec.ImgSrcList)
}
