package forecast

import (
	"time"
)

// MaxPeriods is the fixed capacity of a Store. The textual forecast of the
// forecast10day endpoint uses exactly this many half-day periods.
const MaxPeriods = 20

// Period holds the pre-formatted text of one forecast slot. Even indexes are
// day halves, odd indexes are night halves.
type Period struct {
	Title    string `json:"title"`
	Day      string `json:"day"`
	Month    string `json:"month"`
	HighTemp string `json:"highTemp"`
	LowTemp  string `json:"lowTemp"`
	Text     string `json:"text"`
	PoP      string `json:"pop"`

	// Icon is the condition code as sent by the API, e.g. "nt_chancerain".
	Icon string `json:"icon"`
}

// Store is the result of one decode session. Writes outside of
// [0, MaxPeriods) are dropped.
type Store struct {
	Location string `json:"location"`
	Metric   bool   `json:"metric"`

	// Epoch is the local_epoch reported by the API, 0 if missing or invalid.
	Epoch int64 `json:"epoch"`

	// UpdatedAt is the local clock reading taken when Epoch was seen.
	UpdatedAt time.Time `json:"updatedAt"`

	Periods [MaxPeriods]Period `json:"periods"`
}

func NewStore(metric bool) *Store {
	return &Store{Metric: metric}
}

func (s *Store) period(i int) *Period {
	if i < 0 || i >= MaxPeriods {
		return nil
	}
	return &s.Periods[i]
}

// Icon returns the Meteocons glyph for the condition code of period i.
func (s *Store) Icon(i int) string {
	if p := s.period(i); p != nil {
		return MapIcon(p.Icon)
	}
	return ""
}

func (s *Store) Title(i int) string {
	if p := s.period(i); p != nil {
		return p.Title
	}
	return ""
}

func (s *Store) LowTemp(i int) string {
	if p := s.period(i); p != nil {
		return p.LowTemp
	}
	return ""
}

func (s *Store) HighTemp(i int) string {
	if p := s.period(i); p != nil {
		return p.HighTemp
	}
	return ""
}

func (s *Store) Day(i int) string {
	if p := s.period(i); p != nil {
		return p.Day
	}
	return ""
}

func (s *Store) Month(i int) string {
	if p := s.period(i); p != nil {
		return p.Month
	}
	return ""
}

func (s *Store) Text(i int) string {
	if p := s.period(i); p != nil {
		return p.Text
	}
	return ""
}

func (s *Store) PoP(i int) string {
	if p := s.period(i); p != nil {
		return p.PoP
	}
	return ""
}

// Age reports how long ago the forecast was stamped. It is 0 for a store that
// never saw a local_epoch.
func (s *Store) Age(now time.Time) time.Duration {
	if s.UpdatedAt.IsZero() {
		return 0
	}
	return now.Sub(s.UpdatedAt)
}
