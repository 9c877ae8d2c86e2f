package urlbuilder

import "olx-scraper/models"

// propertyTypes enumerates the real-estate subcategory path segments.
var propertyTypes = map[string]string{
	"kvartiry":       "kvartiry",
	"komnaty":        "komnaty",
	"doma":           "doma",
	"posutochno":     "posutochno-pochasovo",
	"zemlya":         "zemlya",
	"kommercheskaya": "kommercheskaya-nedvizhimost",
	"garazhy":        "garazhy-parkovki",
	"za-rubezhom":    "nedvizhimost-za-rubezhom",
}

// dealTypes enumerates the deal-type path segments nested under a property
// type.
var dealTypes = map[string]string{
	"prodazha-kvartir": "prodazha-kvartir",
	"arenda-kvartir":   "dolgosrochnaya-arenda-kvartir",

	"prodazha-komnat": "prodazha-komnat",
	"arenda-komnat":   "dolgosrochnaya-arenda-komnat",

	"prodazha-domov": "prodazha-domov",
	"arenda-domov":   "arenda-domov",

	"posutochno-doma":                        "posutochno-pochasovo-doma",
	"posutochno-kvartiry":                    "posutochno-pochasovo-kvartiry",
	"posutochno-komnaty":                     "posutochno-pochasovo-komnaty",
	"posutochno-oteli":                       "posutochno-pochasovo-oteli",
	"posutochno-khostely":                    "posutochno-pochasovo-khostely",
	"posutochno-predlozheniya-turoperatorov": "predlozheniya-turoperatorov",

	"arenda-zemli":   "arenda-zemli",
	"prodazha-zemli": "prodazha-zemli",

	"prodazha-kommercheskoy-nedvizhimosti": "prodazha-kommercheskoy-nedvizhimosti",
	"arenda-kommercheskoy-nedvizhimosti":   "arenda-kommercheskoy-nedvizhimosti",
	"kovorkingi":                           "kovorkingi",
	"arenda-garazhey-parkovok":             "arenda-garazhey-parkovok",
	"prodazha-garazhey-parkovok":           "prodazha-garazhey-parkovok",
}

// realEstate builds URLs of the form
// {base}/nedvizhimost/{property type}/{deal type}/{location}/{keyword}?{filters}.
// Unmapped subcategory tokens are omitted, not rejected.
type realEstate struct {
	baseURL      string
	propertyType string
	dealType     string
	location     string
	keyword      string
	filters      map[string]string
}

func newRealEstate(baseURL string, query models.UrlQuery) *realEstate {
	keyword, filters := splitKeyword(query.CloneFilters())
	applyDefaultFilters(filters)
	return &realEstate{
		baseURL:      baseURL,
		propertyType: propertyTypes[query.Subcategory1],
		dealType:     dealTypes[query.Subcategory2],
		location:     query.Location,
		keyword:      keyword,
		filters:      filters,
	}
}

func (b *realEstate) Build(page int) string {
	path := b.baseURL + "nedvizhimost/"
	if b.propertyType != "" {
		path += b.propertyType + "/"
	}
	if b.dealType != "" {
		path += b.dealType + "/"
	}
	if b.location != "" {
		path += b.location + "/"
	}
	path += formatKeyword(b.keyword)
	return path + "?" + encodeFilters(b.filters, page)
}
