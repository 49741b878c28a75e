package forecast

// FallbackGlyph is returned by MapIcon for unknown condition codes.
const FallbackGlyph = ")"

// meteocons maps Weather Underground condition codes to glyphs of the
// Meteocons font. Night codes share some glyphs with day codes but are not a
// mirror of them.
var meteocons = map[string]string{
	"chanceflurries": "F",
	"chancerain":     "Q",
	"chancesleet":    "W",
	"chancesnow":     "V",
	"chancetstorms":  "S",
	"clear":          "B",
	"cloudy":         "Y",
	"flurries":       "F",
	"fog":            "M",
	"hazy":           "E",
	"mostlycloudy":   "Y",
	"mostlysunny":    "H",
	"partlycloudy":   "H",
	"partlysunny":    "J",
	"sleet":          "W",
	"rain":           "R",
	"snow":           "W",
	"sunny":          "B",
	"tstorms":        "0",

	"nt_chanceflurries": "F",
	"nt_chancerain":     "7",
	"nt_chancesleet":    "#",
	"nt_chancesnow":     "#",
	"nt_chancetstorms":  "&",
	"nt_clear":          "2",
	"nt_cloudy":         "Y",
	"nt_flurries":       "9",
	"nt_fog":            "M",
	"nt_hazy":           "E",
	"nt_mostlycloudy":   "5",
	"nt_mostlysunny":    "3",
	"nt_partlycloudy":   "4",
	"nt_partlysunny":    "4",
	"nt_sleet":          "9",
	"nt_rain":           "7",
	"nt_snow":           "#",
	"nt_sunny":          "4",
	"nt_tstorms":        "&",
}

// MapIcon returns the Meteocons glyph for a condition code. Matching is exact
// and case sensitive.
func MapIcon(code string) string {
	if g, ok := meteocons[code]; ok {
		return g
	}
	return FallbackGlyph
}
