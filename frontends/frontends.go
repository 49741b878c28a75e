package frontends

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/schachmat/wuforecast/forecast"
)

// numDays clamps the requested number of days to what a store can hold.
func numDays(numdays int) int {
	if numdays < 1 {
		return 1
	}
	if max := forecast.MaxPeriods / 2; numdays > max {
		return max
	}
	return numdays
}

// dayDate returns the date of forecast day n. The simpleforecast section
// stores the date of day n at index n while its temperatures and the textual
// periods use 2n and 2n+1.
func dayDate(s *forecast.Store, n int) (time.Time, bool) {
	day, err := strconv.Atoi(s.Day(n))
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(s.Month(n))
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}

	ref := time.Now().UTC()
	if s.Epoch != 0 {
		ref = time.Unix(s.Epoch, 0).UTC()
	}
	d := time.Date(ref.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// a ten day forecast started in late December reaches into January
	if d.Before(ref.AddDate(0, 0, -1)) {
		d = d.AddDate(1, 0, 0)
	}
	return d, true
}

// periodTemp returns the temperature shown for period i: the high of the day
// for day halves and the low for night halves.
func periodTemp(s *forecast.Store, i int) string {
	if i%2 == 0 {
		return s.HighTemp(i)
	}
	return s.LowTemp(i - 1)
}

func parseTemp(t string) (float32, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(t), 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

// wrap breaks text into at most lines lines of the given display width. The
// last line is truncated with an ellipsis if text does not fit.
func wrap(text string, width, lines int) []string {
	var ret []string
	cur := ""
	words := strings.Fields(text)
	for i, w := range words {
		switch {
		case cur == "":
			cur = w
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) <= width:
			cur += " " + w
		default:
			ret = append(ret, cur)
			cur = w
		}
		if len(ret) == lines-1 {
			cur = strings.Join(append([]string{cur}, words[i+1:]...), " ")
			break
		}
	}
	if cur != "" {
		ret = append(ret, runewidth.Truncate(cur, width, "…"))
	}
	for len(ret) < lines {
		ret = append(ret, "")
	}
	return ret
}

// conditionEmoji maps condition codes to emoji, night codes share the day
// emoji except for clear skies.
func conditionEmoji(code string) string {
	codes := map[string]string{
		"chanceflurries": "🌨",
		"chancerain":     "🌦",
		"chancesleet":    "🌧",
		"chancesnow":     "🌨",
		"chancetstorms":  "⛈",
		"clear":          "☀️",
		"cloudy":         "☁️",
		"flurries":       "🌨",
		"fog":            "🌫",
		"hazy":           "🌫",
		"mostlycloudy":   "☁️",
		"mostlysunny":    "🌤",
		"partlycloudy":   "⛅️",
		"partlysunny":    "⛅️",
		"sleet":          "🌧",
		"rain":           "🌧",
		"snow":           "❄️",
		"sunny":          "☀️",
		"tstorms":        "🌩",
	}

	night := strings.HasPrefix(code, "nt_")
	base := strings.TrimPrefix(code, "nt_")
	if night && (base == "clear" || base == "sunny") {
		return "🌙"
	}
	if icon, ok := codes[base]; ok {
		return icon
	}
	return "✨"
}
