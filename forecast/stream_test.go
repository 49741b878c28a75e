package forecast

import (
	"errors"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
	"time"
)

type recorder []Event

func (r *recorder) Handle(ev Event) { *r = append(*r, ev) }

func TestStreamEvents(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Event
	}{
		{
			name: "nested object",
			in:   `{"period": 3, "high": {"celsius": "20"}, "ok": true, "none": null}`,
			want: []Event{
				{Kind: DocumentStart},
				{Kind: ObjectStart},
				{Kind: Key, Text: "period"}, {Kind: Value, Text: "3"},
				{Kind: Key, Text: "high"},
				{Kind: ObjectStart},
				{Kind: Key, Text: "celsius"}, {Kind: Value, Text: "20"},
				{Kind: ObjectEnd},
				{Kind: Key, Text: "ok"}, {Kind: Value, Text: "true"},
				{Kind: Key, Text: "none"}, {Kind: Value, Text: "null"},
				{Kind: ObjectEnd},
				{Kind: DocumentEnd},
			},
		},
		{
			name: "strings in arrays are values",
			in:   `{"a": ["x", {"b": "y"}, 1.50]}`,
			want: []Event{
				{Kind: DocumentStart},
				{Kind: ObjectStart},
				{Kind: Key, Text: "a"},
				{Kind: ArrayStart},
				{Kind: Value, Text: "x"},
				{Kind: ObjectStart},
				{Kind: Key, Text: "b"}, {Kind: Value, Text: "y"},
				{Kind: ObjectEnd},
				{Kind: Value, Text: "1.50"},
				{Kind: ArrayEnd},
				{Kind: ObjectEnd},
				{Kind: DocumentEnd},
			},
		},
		{
			name: "key after nested array",
			in:   `{"a": [], "b": "c"}`,
			want: []Event{
				{Kind: DocumentStart},
				{Kind: ObjectStart},
				{Kind: Key, Text: "a"},
				{Kind: ArrayStart},
				{Kind: ArrayEnd},
				{Kind: Key, Text: "b"}, {Kind: Value, Text: "c"},
				{Kind: ObjectEnd},
				{Kind: DocumentEnd},
			},
		},
		{
			name: "scalar document",
			in:   `"period"`,
			want: []Event{
				{Kind: DocumentStart},
				{Kind: Value, Text: "period"},
				{Kind: DocumentEnd},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got recorder
			if err := NewStream(strings.NewReader(tt.in)).Run(&got); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !reflect.DeepEqual([]Event(got), tt.want) {
				t.Errorf("events:\n got %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestStreamStopsAfterDocument(t *testing.T) {
	var got recorder
	err := NewStream(strings.NewReader(`{"a":1} trailing garbage {`)).Run(&got)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if last := got[len(got)-1]; last.Kind != DocumentEnd {
		t.Errorf("last event = %v, want DocumentEnd", last)
	}
}

func TestStreamTruncated(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"open object", `{"period": 3, "title": "Tues`},
		{"between tokens", `{"period": 3, "title": "Tuesday"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got recorder
			err := NewStream(strings.NewReader(tt.in)).Run(&got)
			if err == nil {
				t.Fatal("Run() error = nil, want error")
			}
			for _, ev := range got {
				if ev.Kind == DocumentEnd {
					t.Errorf("DocumentEnd delivered for truncated input")
				}
			}
		})
	}
}

func TestStreamPartialFill(t *testing.T) {
	in := `{"forecastday": [{"period": 0, "title": "Monday"}, {"period": 1, "title": "Monday Night"}, {"period": 2, "ti`
	d := NewDecoder(false)
	err := NewStream(strings.NewReader(in)).Run(d)
	if err == nil {
		t.Fatal("Run() error = nil, want error")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Logf("Run() error = %v", err)
	}

	s := d.Store()
	if s.Title(0) != "Monday" || s.Title(1) != "Monday Night" {
		t.Errorf("titles = %q, %q", s.Title(0), s.Title(1))
	}
}

func TestStreamMalformed(t *testing.T) {
	d := NewDecoder(false)
	err := NewStream(strings.NewReader(`{"period": 4, "title": "Wed", "pop": }`)).Run(d)
	if err == nil {
		t.Fatal("Run() error = nil, want syntax error")
	}
	if got := d.Store().Title(4); got != "Wed" {
		t.Errorf("Title(4) = %q, want %q", got, "Wed")
	}
}

func decodeFile(t *testing.T, path string, metric bool, opts ...Option) *Store {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	d := NewDecoder(metric, opts...)
	if err := NewStream(SkipPrefix(iotest.HalfReader(f))).Run(d); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return d.Store()
}

func TestForecast10Day(t *testing.T) {
	at := time.Date(2016, 12, 19, 13, 55, 0, 0, time.UTC)
	s := decodeFile(t, "testdata/forecast10day.json", true, WithClock(func() time.Time { return at }))

	if s.Epoch != 1482184500 {
		t.Errorf("Epoch = %d, want %d", s.Epoch, 1482184500)
	}
	if !s.UpdatedAt.Equal(at) {
		t.Errorf("UpdatedAt = %v, want %v", s.UpdatedAt, at)
	}

	titles := []string{
		"Monday", "Monday Night", "Tuesday", "Tuesday Night", "Wednesday", "Wednesday Night",
		"Thursday", "Thursday Night", "Friday", "Friday Night", "Saturday", "Saturday Night",
		"Sunday", "Sunday Night", "Monday", "Monday Night", "Tuesday", "Tuesday Night",
		"Wednesday", "Wednesday Night",
	}
	for i, want := range titles {
		if got := s.Title(i); got != want {
			t.Errorf("Title(%d) = %q, want %q", i, got, want)
		}
	}

	if got := s.Text(0); got != "Partly Cloudy. High 16C." {
		t.Errorf("Text(0) = %q", got)
	}
	if got := s.Text(19); got != "Sleet. Low 12C." {
		t.Errorf("Text(19) = %q", got)
	}

	icons := map[int]string{0: "H", 1: "4", 2: "Q", 3: "7", 9: "2", 14: "0", 15: "&", 19: "9"}
	for i, want := range icons {
		if got := s.Icon(i); got != want {
			t.Errorf("Icon(%d) = %q, want %q", i, got, want)
		}
	}

	// simpleforecast pops overwrite the textual ones at index 1..10.
	pops := map[int]string{0: "0", 1: "90", 10: "81", 11: "55", 19: "95"}
	for i, want := range pops {
		if got := s.PoP(i); got != want {
			t.Errorf("PoP(%d) = %q, want %q", i, got, want)
		}
	}

	for n := 0; n < 10; n++ {
		if got, want := s.Day(n), []string{"19", "20", "21", "22", "23", "24", "25", "26", "27", "28"}[n]; got != want {
			t.Errorf("Day(%d) = %q, want %q", n, got, want)
		}
		if got := s.Month(n); got != "12" {
			t.Errorf("Month(%d) = %q, want %q", n, got, "12")
		}
	}

	highs := []string{"16", "16", "17", "17", "18", "18", "19", "19", "20", "21"}
	lows := []string{"7", "8", "8", "9", "9", "10", "11", "11", "12", "12"}
	for n := 0; n < 10; n++ {
		if got := s.HighTemp(2 * n); got != highs[n] {
			t.Errorf("HighTemp(%d) = %q, want %q", 2*n, got, highs[n])
		}
		if got := s.LowTemp(2 * n); got != lows[n] {
			t.Errorf("LowTemp(%d) = %q, want %q", 2*n, got, lows[n])
		}
		if got := s.HighTemp(2*n + 1); got != "" {
			t.Errorf("HighTemp(%d) = %q, want empty", 2*n+1, got)
		}
	}
}

func TestForecast10DayImperial(t *testing.T) {
	loose := decodeFile(t, "testdata/forecast10day.json", false)
	strict := decodeFile(t, "testdata/forecast10day.json", false, WithStrictUnits())

	if got := loose.Text(0); got != "Partly Cloudy. High 60F." {
		t.Errorf("Text(0) = %q", got)
	}
	// celsius follows fahrenheit in the response and wins without strict units.
	if got := loose.HighTemp(0); got != "16" {
		t.Errorf("loose HighTemp(0) = %q, want %q", got, "16")
	}
	if got := strict.HighTemp(0); got != "60" {
		t.Errorf("strict HighTemp(0) = %q, want %q", got, "60")
	}
	if got := strict.LowTemp(18); got != "54" {
		t.Errorf("strict LowTemp(18) = %q, want %q", got, "54")
	}
}
