package urlbuilder

import "olx-scraper/models"

// transportTypes enumerates the transport subcategory path segments.
var transportTypes = map[string]string{
	"legkovye-avtomobili":                "legkovye-avtomobili",
	"gruzovye-avtomobili":                "gruzovye-avtomobili",
	"avtobusy":                           "avtobusy",
	"moto":                               "moto",
	"spetstehnika":                       "spetstehnika",
	"selhoztehnika":                      "selhoztehnika",
	"vodnyy-transport":                   "vodnyy-transport",
	"avtomobili-iz-polshi":               "avtomobili-iz-polshi",
	"pritsepy-doma-na-kolesah":           "pritsepy-doma-na-kolesah",
	"gruzoviki-i-spetstehnika-iz-polshi": "gruzoviki-i-spetstehnika-iz-polshi",
	"drugoy-transport":                   "drugoy-transport",
}

// carBrands enumerates the brand segments valid under legkovye-avtomobili.
var carBrands = map[string]string{
	"acura": "acura", "alfa_romeo": "alfa_romeo", "aston_martin": "aston_martin",
	"audi": "audi", "bentley": "bentley", "bmw": "bmw", "bmw_alpina": "bmw_alpina",
	"brilliance": "brilliance", "buick": "buick", "byd": "byd", "cadillac": "cadillac",
	"chana": "chana", "chery": "chery", "chevrolet": "chevrolet", "chrysler": "chrysler",
	"citroen": "citroen", "dacia": "dacia", "dadi": "dadi", "daewoo": "daewoo",
	"daihatsu": "daihatsu", "dodge": "dodge", "faw": "faw", "ferrari": "ferrari",
	"fiat": "fiat", "ford": "ford", "geely": "geely", "gmc": "gmc",
	"great_wall": "great_wall", "groz": "groz", "honda": "honda", "hummer": "hummer",
	"hyundai": "hyundai", "infiniti": "infiniti", "isuzu": "isuzu", "iveco": "iveco",
	"jac": "jac", "jaguar": "jaguar", "jeep": "jeep", "kia": "kia",
	"lamborghini": "lamborghini", "lancia": "lancia", "land_rover": "land_rover",
	"lexus": "lexus", "lifan": "lifan", "lincoln": "lincoln", "lotus": "lotus",
	"maserati": "maserati", "maybach": "maybach", "mazda": "mazda", "mclaren": "mclaren",
	"mercedes_benz": "mercedes_benz", "mercury": "mercury", "mg": "mg", "mini": "mini",
	"mitsubishi": "mitsubishi", "nissan": "nissan", "oldsmobile": "oldsmobile",
	"opel": "opel", "peugeot": "peugeot", "polestar": "polestar", "pontiac": "pontiac",
	"porsche": "porsche", "proton": "proton", "ram": "ram", "ravon": "ravon",
	"renault": "renault", "rolls_royce": "rolls_royce", "roewe": "roewe",
	"rover": "rover", "saab": "saab", "samand": "samand", "samsung": "samsung",
	"seat": "seat", "shelby": "shelby", "skoda": "skoda", "smart": "smart",
	"ssangyong": "ssangyong", "subaru": "subaru", "suzuki": "suzuki", "tata": "tata",
	"tesla": "tesla", "toyota": "toyota", "volkswagen": "volkswagen", "volvo": "volvo",
	"wartburg": "wartburg", "zx": "zx", "bogdan": "bogdan", "vaz": "vaz",
	"gaz": "gaz", "zaz": "zaz", "izh": "izh", "luaz": "luaz",
	"moskvich_azlk": "moskvich_azlk", "raf": "raf", "uaz": "uaz", "drugie": "drugie",
}

// transport builds URLs of the form
// {base}/transport/{transport type}/{brand}/{location}/{keyword}?{filters}.
// The brand segment only applies under legkovye-avtomobili.
type transport struct {
	baseURL       string
	transportType string
	brand         string
	location      string
	keyword       string
	filters       map[string]string
}

func newTransport(baseURL string, query models.UrlQuery) *transport {
	keyword, filters := splitKeyword(query.CloneFilters())
	applyDefaultFilters(filters)

	brand := ""
	if query.Subcategory1 == "legkovye-avtomobili" {
		brand = carBrands[query.Subcategory2]
	}
	return &transport{
		baseURL:       baseURL,
		transportType: transportTypes[query.Subcategory1],
		brand:         brand,
		location:      query.Location,
		keyword:       keyword,
		filters:       filters,
	}
}

func (b *transport) Build(page int) string {
	path := b.baseURL + "transport/"
	if b.transportType != "" {
		path += b.transportType + "/"
	}
	if b.brand != "" {
		path += b.brand + "/"
	}
	if b.location != "" {
		path += b.location + "/"
	}
	path += formatKeyword(b.keyword)
	return path + "?" + encodeFilters(b.filters, page)
}
