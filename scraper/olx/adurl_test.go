package olx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAdID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			"full detail url",
			"https://www.olx.ua/d/uk/obyavlenie/thinkpad-x1-carbon-IDXok2P.html",
			"Xok2P",
		},
		{
			"numeric id",
			"https://www.olx.ua/d/uk/obyavlenie/bmw-e39-ID812345678.html",
			"812345678",
		},
		{
			"no id in slug",
			"https://www.olx.ua/d/uk/obyavlenie/some-ad.html",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAdID(tt.url))
		})
	}
}

func TestNormalizeAdURL(t *testing.T) {
	base := "https://www.olx.ua/uk/"

	tests := []struct {
		name string
		href string
		want string
	}{
		{
			"relative href gets localized",
			"/d/obyavlenie/thinkpad-ID123.html",
			"https://www.olx.ua/d/uk/obyavlenie/thinkpad-ID123.html",
		},
		{
			"already localized is untouched",
			"https://www.olx.ua/d/uk/obyavlenie/thinkpad-ID123.html",
			"https://www.olx.ua/d/uk/obyavlenie/thinkpad-ID123.html",
		},
		{
			"absolute unlocalized gets rewritten",
			"https://www.olx.ua/d/obyavlenie/bmw-ID9.html",
			"https://www.olx.ua/d/uk/obyavlenie/bmw-ID9.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAdURL(base, tt.href))
		})
	}
}
