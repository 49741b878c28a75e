package forecast

import "testing"

func TestMapIcon(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"chanceflurries", "F"},
		{"chancerain", "Q"},
		{"chancesleet", "W"},
		{"chancesnow", "V"},
		{"chancetstorms", "S"},
		{"clear", "B"},
		{"cloudy", "Y"},
		{"flurries", "F"},
		{"fog", "M"},
		{"hazy", "E"},
		{"mostlycloudy", "Y"},
		{"mostlysunny", "H"},
		{"partlycloudy", "H"},
		{"partlysunny", "J"},
		{"sleet", "W"},
		{"rain", "R"},
		{"snow", "W"},
		{"sunny", "B"},
		{"tstorms", "0"},

		{"nt_chanceflurries", "F"},
		{"nt_chancerain", "7"},
		{"nt_chancesleet", "#"},
		{"nt_chancesnow", "#"},
		{"nt_chancetstorms", "&"},
		{"nt_clear", "2"},
		{"nt_cloudy", "Y"},
		{"nt_flurries", "9"},
		{"nt_fog", "M"},
		{"nt_hazy", "E"},
		{"nt_mostlycloudy", "5"},
		{"nt_mostlysunny", "3"},
		{"nt_partlycloudy", "4"},
		{"nt_partlysunny", "4"},
		{"nt_sleet", "9"},
		{"nt_rain", "7"},
		{"nt_snow", "#"},
		{"nt_sunny", "4"},
		{"nt_tstorms", "&"},

		{"", ")"},
		{"unknown", ")"},
		{"Sunny", ")"},
		{"NT_SUNNY", ")"},
		{"nt_", ")"},
		{" sunny", ")"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := MapIcon(tt.code); got != tt.want {
				t.Errorf("MapIcon(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestMapIconTableSize(t *testing.T) {
	day, night := 0, 0
	for code := range meteocons {
		if len(code) > 3 && code[:3] == "nt_" {
			night++
			if _, ok := meteocons[code[3:]]; !ok {
				t.Errorf("night code %q has no day counterpart", code)
			}
		} else {
			day++
		}
	}
	if day != 19 || night != 19 {
		t.Errorf("got %d day and %d night codes, want 19 each", day, night)
	}
}
