package frontends

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/schachmat/wuforecast/forecast"
	"github.com/schachmat/wuforecast/iface"
)

type jsnConfig struct {
	noIndent bool
}

type jsnPeriod struct {
	forecast.Period
	Glyph string `json:"glyph"`
}

type jsnForecast struct {
	Location  string      `json:"location"`
	Units     string      `json:"units"`
	Epoch     int64       `json:"epoch"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Periods   []jsnPeriod `json:"periods"`
}

func (c *jsnConfig) Setup() {
	flag.BoolVar(&c.noIndent, "jsn-no-indent", false, "json frontend: do not indent the output")
}

func (c *jsnConfig) Render(s *forecast.Store, unit iface.UnitSystem, numdays int) {
	r := jsnForecast{
		Location:  s.Location,
		Units:     "imperial",
		Epoch:     s.Epoch,
		UpdatedAt: s.UpdatedAt,
	}
	if unit.Metric() {
		r.Units = "metric"
	}
	for i := 0; i < 2*numDays(numdays); i++ {
		r.Periods = append(r.Periods, jsnPeriod{Period: s.Periods[i], Glyph: s.Icon(i)})
	}

	var b []byte
	var err error
	if c.noIndent {
		b, err = json.Marshal(r)
	} else {
		b, err = json.MarshalIndent(r, "", "\t")
	}
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(b)
}

func init() {
	iface.AllFrontends["json"] = &jsnConfig{}
}
