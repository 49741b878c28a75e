package iface

import (
	"context"
	"errors"

	"github.com/schachmat/wuforecast/forecast"
)

type UnitSystem int

const (
	UnitsMetric UnitSystem = iota
	UnitsImperial
)

// Metric reports whether the metric fields of the response should be used.
func (u UnitSystem) Metric() bool {
	return u == UnitsMetric
}

// Temp returns the unit label of temperatures in this unit system.
func (u UnitSystem) Temp() string {
	if u == UnitsImperial {
		return "°F"
	}
	return "°C"
}

// TempC converts a temperature given in this unit system to degrees celsius.
func (u UnitSystem) TempC(t float32) float32 {
	if u == UnitsImperial {
		return (t - 32) * 5 / 9
	}
	return t
}

// ErrNoData is returned by backends whose source accepted the request but did
// not send anything before the wait bound ran out.
var ErrNoData = errors.New("no response data")

type Backend interface {
	Setup()

	// Fetch runs one fetch-and-decode session. A nil store means the session
	// never reached the response body. A non-nil store together with an error
	// holds whatever was decoded before the body broke off.
	Fetch(ctx context.Context, location string, unit UnitSystem) (*forecast.Store, error)
}

type Frontend interface {
	Setup()
	Render(s *forecast.Store, unit UnitSystem, numdays int)
}

var (
	AllBackends  = make(map[string]Backend)
	AllFrontends = make(map[string]Frontend)
)
