package backends

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/schachmat/wuforecast/forecast"
	"github.com/schachmat/wuforecast/iface"
)

type jsnConfig struct {
	strictUnits bool
	transition  int
}

func (c *jsnConfig) Setup() {
	flag.BoolVar(&c.strictUnits, "jsn-strict-units", false, "json backend: ignore celsius temperatures when using imperial units")
	flag.IntVar(&c.transition, "jsn-transition-period", forecast.DefaultTransitionPeriod, "json backend: last textual `PERIOD` of the saved response")
}

// Fetch replays a saved forecast10day response from the file named by the
// location argument. The file may still carry the HTTP header it was captured
// with.
func (c *jsnConfig) Fetch(ctx context.Context, loc string, unit iface.UnitSystem) (*forecast.Store, error) {
	f, err := os.Open(loc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := forecast.NewDecoder(unit.Metric(), decoderOptions(c.strictUnits, c.transition)...)
	dec.Store().Location = loc
	if err := forecast.NewStream(forecast.SkipPrefix(f)).Run(dec); err != nil {
		return dec.Store(), fmt.Errorf("unable to decode %s: %w", loc, err)
	}
	return dec.Store(), nil
}

func init() {
	iface.AllBackends["json"] = &jsnConfig{}
}
