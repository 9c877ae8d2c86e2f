package urlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olx-scraper/models"
)

const base = "https://www.olx.ua/uk/"

func TestGeneralListBuild(t *testing.T) {
	b, err := ForQuery(base, models.UrlQuery{
		Category: "list",
		Location: "lvov",
		Filters:  map[string]string{"q": "thinkpad"},
	})
	require.NoError(t, err)

	got := b.Build(1)
	assert.Contains(t, got, "lvov/q-thinkpad/")
	assert.Contains(t, got, "page=1")
	assert.Contains(t, got, "currency=UAH")
}

func TestGeneralListWithoutLocation(t *testing.T) {
	b, err := ForQuery(base, models.UrlQuery{Category: "list"})
	require.NoError(t, err)

	got := b.Build(3)
	assert.Contains(t, got, base+"list/")
	assert.Contains(t, got, "page=3")
}

func TestKeywordFormatting(t *testing.T) {
	b, err := ForQuery(base, models.UrlQuery{
		Category: "list",
		Filters:  map[string]string{"q": "lenovo thinkpad x1"},
	})
	require.NoError(t, err)

	assert.Contains(t, b.Build(1), "q-lenovo-thinkpad-x1/")
}

func TestPageParameterOverwritten(t *testing.T) {
	// A page key in the incoming filters never survives a Build call.
	b, err := ForQuery(base, models.UrlQuery{
		Category: "list",
		Filters:  map[string]string{"page": "99"},
	})
	require.NoError(t, err)

	got := b.Build(2)
	assert.Contains(t, got, "page=2")
	assert.NotContains(t, got, "page=99")
}

func TestBuildDoesNotMutateQuery(t *testing.T) {
	filters := map[string]string{"q": "thinkpad"}
	query := models.UrlQuery{Category: "list", Filters: filters}

	b, err := ForQuery(base, query)
	require.NoError(t, err)
	b.Build(1)
	b.Build(2)

	assert.Equal(t, map[string]string{"q": "thinkpad"}, filters)
}

func TestRealEstateSubcategories(t *testing.T) {
	b, err := ForQuery(base, models.UrlQuery{
		Category:     "nedvizhimost",
		Subcategory1: "posutochno",
		Subcategory2: "posutochno-kvartiry",
		Location:     "kiev",
	})
	require.NoError(t, err)

	got := b.Build(1)
	assert.Contains(t, got, "nedvizhimost/posutochno-pochasovo/posutochno-pochasovo-kvartiry/kiev/")
}

func TestRealEstateUnmappedSubcategoryOmitted(t *testing.T) {
	b, err := ForQuery(base, models.UrlQuery{
		Category:     "nedvizhimost",
		Subcategory1: "castles",
		Location:     "kiev",
	})
	require.NoError(t, err)

	got := b.Build(1)
	assert.Contains(t, got, "nedvizhimost/kiev/")
	assert.NotContains(t, got, "castles")
}

func TestTransportBrandOnlyForCars(t *testing.T) {
	b, err := ForQuery(base, models.UrlQuery{
		Category:     "transport",
		Subcategory1: "legkovye-avtomobili",
		Subcategory2: "bmw",
	})
	require.NoError(t, err)
	assert.Contains(t, b.Build(1), "transport/legkovye-avtomobili/bmw/")

	// Brand is ignored outside the car subcategory.
	b, err = ForQuery(base, models.UrlQuery{
		Category:     "transport",
		Subcategory1: "moto",
		Subcategory2: "bmw",
	})
	require.NoError(t, err)
	got := b.Build(1)
	assert.Contains(t, got, "transport/moto/")
	assert.NotContains(t, got, "bmw")
}

func TestUnsupportedCategory(t *testing.T) {
	_, err := ForQuery(base, models.UrlQuery{Category: "elektronika"})
	assert.ErrorIs(t, err, ErrUnsupportedCategory)
}

func TestCustomCurrencyPreserved(t *testing.T) {
	b, err := ForQuery(base, models.UrlQuery{
		Category: "list",
		Filters:  map[string]string{"currency": "USD"},
	})
	require.NoError(t, err)
	assert.Contains(t, b.Build(1), "currency=USD")
}
