package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/schachmat/ingo"
	_ "github.com/schachmat/wuforecast/backends"
	"github.com/schachmat/wuforecast/forecast"
	_ "github.com/schachmat/wuforecast/frontends"
	"github.com/schachmat/wuforecast/iface"
)

func main() {
	// environment defaults like WUNDERGROUND_API_KEY may live in a .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

	// initialize backends and frontends (flags and default config)
	for _, be := range iface.AllBackends {
		be.Setup()
	}
	for _, fe := range iface.AllFrontends {
		fe.Setup()
	}

	// initialize global flags and default config
	location := flag.String("location", "CA/San_Francisco", "`LOCATION` to be queried (COUNTRY/CITY, pws:ID or zmw:CODE)")
	flag.StringVar(location, "l", "CA/San_Francisco", "`LOCATION` to be queried (shorthand)")
	numdays := flag.Int("days", 3, "`NUMBER` of days of weather forecast to be displayed")
	flag.IntVar(numdays, "d", 3, "`NUMBER` of days of weather forecast to be displayed (shorthand)")
	unitSystem := flag.String("units", "metric", "`UNITSYSTEM` to use for output.\n    \tChoices are: metric, imperial")
	flag.StringVar(unitSystem, "u", "metric", "`UNITSYSTEM` to use for output. (shorthand)\n    \tChoices are: metric, imperial")
	selectedBackend := flag.String("backend", "wunderground", "`BACKEND` to be used")
	flag.StringVar(selectedBackend, "b", "wunderground", "`BACKEND` to be used (shorthand)")
	selectedFrontend := flag.String("frontend", "ascii-art-table", "`FRONTEND` to be used")
	flag.StringVar(selectedFrontend, "f", "ascii-art-table", "`FRONTEND` to be used (shorthand)")
	refresh := flag.Duration("refresh", 0, "fetch and render again every `DURATION`, 0 runs once")

	// read/write config and parse flags
	if err := ingo.Parse("wuforecast"); err != nil {
		log.Fatalf("Error parsing config: %v", err)
	}

	// non-flag shortcut arguments overwrite possible flag arguments
	for _, arg := range flag.Args() {
		if v, err := strconv.Atoi(arg); err == nil && len(arg) == 1 {
			*numdays = v
		} else {
			*location = arg
		}
	}

	unit := iface.UnitsMetric
	switch *unitSystem {
	case "metric":
	case "imperial":
		unit = iface.UnitsImperial
	default:
		log.Fatalf("Unknown unit system \"%s\"", *unitSystem)
	}

	be, ok := iface.AllBackends[*selectedBackend]
	if !ok {
		log.Fatalf("Could not find selected backend \"%s\"", *selectedBackend)
	}
	fe, ok := iface.AllFrontends[*selectedFrontend]
	if !ok {
		log.Fatalf("Could not find selected frontend \"%s\"", *selectedFrontend)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, be, fe, *location, unit, *numdays, *refresh); err != nil {
		log.Fatal(err)
	}
}

// run fetches and renders until ctx ends, or once if refresh is not positive.
// The last complete or partial store stays on screen when a later session
// fails.
func run(ctx context.Context, be iface.Backend, fe iface.Frontend, location string, unit iface.UnitSystem, numdays int, refresh time.Duration) error {
	var last *forecast.Store
	for {
		if s := fetch(ctx, be, location, unit); s != nil {
			last = s
		}
		if ctx.Err() != nil {
			return nil
		}
		if last != nil {
			fe.Render(last, unit, numdays)
		} else if refresh <= 0 {
			return fmt.Errorf("no forecast data received for \"%s\"", location)
		}

		if refresh <= 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(refresh):
		}
	}
}

// fetch runs one backend session and returns the store to render, or nil if
// the previous one should be kept.
func fetch(ctx context.Context, be iface.Backend, location string, unit iface.UnitSystem) *forecast.Store {
	s, err := be.Fetch(ctx, location, unit)
	switch {
	case err == nil:
		return s
	case errors.Is(err, context.Canceled):
		return nil
	case s != nil:
		log.Printf("Incomplete forecast: %v", err)
		return s
	case errors.Is(err, iface.ErrNoData):
		return nil
	default:
		log.Printf("Unable to fetch forecast: %v", err)
		return nil
	}
}
