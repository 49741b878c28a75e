package backends

import (
	"github.com/schachmat/wuforecast/forecast"
)

// decoderOptions translates the decoder flags every backend shares.
func decoderOptions(strictUnits bool, transition int) []forecast.Option {
	opts := []forecast.Option{forecast.WithTransitionPeriod(transition)}
	if strictUnits {
		opts = append(opts, forecast.WithStrictUnits())
	}
	return opts
}
