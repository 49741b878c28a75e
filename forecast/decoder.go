package forecast

import (
	"math"
	"time"
)

// DefaultTransitionPeriod is the last period index of the textual forecast.
// Seeing it as the cursor when the first simpleforecast date arrives marks the
// switch between the two sections, because simpleforecast sends its "period"
// key only after the date.
const DefaultTransitionPeriod = 19

type Option func(*Decoder)

// WithTransitionPeriod overrides DefaultTransitionPeriod.
func WithTransitionPeriod(period int) Option {
	return func(d *Decoder) {
		d.transition = period
	}
}

// WithStrictUnits only accepts celsius temperatures in metric mode. Without
// it celsius values are stored regardless of the unit system and overwrite
// the fahrenheit values that precede them in the response.
func WithStrictUnits() Option {
	return func(d *Decoder) {
		d.strictUnits = true
	}
}

// WithClock replaces time.Now as the source of Store.UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(d *Decoder) {
		d.now = now
	}
}

// Decoder routes the events of a forecast10day response into a Store. It
// keeps a single parent key instead of a full path: the schema never needs
// more than the key of the directly enclosing object to tell a "high"
// temperature from a "low" one.
//
// A Decoder lives for exactly one response body and never fails; missing or
// out of range data simply leaves the affected fields empty.
type Decoder struct {
	store       *Store
	metric      bool
	strictUnits bool
	transition  int
	now         func() time.Time

	key    string
	parent string
	period int
	simple bool
}

func NewDecoder(metric bool, opts ...Option) *Decoder {
	d := &Decoder{
		store:      NewStore(metric),
		metric:     metric,
		transition: DefaultTransitionPeriod,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Store returns the store filled so far.
func (d *Decoder) Store() *Store {
	return d.store
}

func (d *Decoder) Handle(ev Event) {
	switch ev.Kind {
	case ObjectStart:
		d.parent = d.key
	case ObjectEnd:
		d.parent = ""
	case Key:
		d.key = ev.Text
		if d.key == "simpleforecast" {
			d.simple = true
		}
	case Value:
		d.value(ev.Text)
	}
}

func (d *Decoder) value(v string) {
	s := d.store

	switch d.key {
	case "local_epoch":
		s.Epoch = toInt(v)
		s.UpdatedAt = d.now()
	case "period":
		// a period that does not fit 16 bits can never address a slot, and
		// narrowing it on 32 bit platforms must not wrap it into one
		if n := toInt(v); n < 0 || n > math.MaxInt16 {
			d.period = -1
		} else {
			d.period = int(n)
		}
	case "title":
		if p := s.period(d.period); p != nil {
			p.Title = v
		}
	case "fcttext":
		if p := s.period(d.period); p != nil && !d.metric {
			p.Text = v
		}
	case "fcttext_metric":
		if p := s.period(d.period); p != nil && d.metric {
			p.Text = v
		}
	case "pop":
		if p := s.period(d.period); p != nil {
			p.PoP = v
		}
	case "icon":
		if p := s.period(d.period); p != nil && !d.simple {
			p.Icon = v
		}
	case "fahrenheit":
		if !d.metric {
			d.temperature(v)
		}
	case "celsius":
		if d.metric || !d.strictUnits {
			d.temperature(v)
		}
	case "month":
		if p := d.simpleDate(); p != nil {
			p.Month = v
		}
	case "day":
		if p := d.simpleDate(); p != nil {
			p.Day = v
		}
	}
}

// temperature stores a daily high or low. simpleforecast counts days from 1
// while the textual section has two slots per day, so day n lands on the
// day half of its textual slots.
func (d *Decoder) temperature(v string) {
	p := d.store.period((d.period - 1) * 2)
	if p == nil {
		return
	}
	switch d.parent {
	case "high":
		p.HighTemp = v
	case "low":
		p.LowTemp = v
	}
}

func (d *Decoder) simpleDate() *Period {
	if !d.simple || d.store.period(d.period) == nil {
		return nil
	}
	if d.period == d.transition {
		d.period = 0
	}
	return d.store.period(d.period)
}

// toInt parses a leading, optionally signed run of decimal digits and
// ignores whatever follows. Input without digits yields 0.
func toInt(s string) int64 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	var n int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > (1<<62)/10 {
			break
		}
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
