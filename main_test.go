package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/schachmat/wuforecast/forecast"
	"github.com/schachmat/wuforecast/iface"
)

type fetchResult struct {
	s   *forecast.Store
	err error
}

// scriptedBackend answers each Fetch with the next result. Once the script
// runs out it cancels the session context.
type scriptedBackend struct {
	results []fetchResult
	cancel  context.CancelFunc
}

func (b *scriptedBackend) Setup() {}

func (b *scriptedBackend) Fetch(ctx context.Context, location string, unit iface.UnitSystem) (*forecast.Store, error) {
	if len(b.results) == 0 {
		b.cancel()
		return nil, ctx.Err()
	}
	r := b.results[0]
	b.results = b.results[1:]
	return r.s, r.err
}

type recordingFrontend struct {
	rendered []*forecast.Store
}

func (f *recordingFrontend) Setup() {}

func (f *recordingFrontend) Render(s *forecast.Store, unit iface.UnitSystem, numdays int) {
	f.rendered = append(f.rendered, s)
}

func TestRun(t *testing.T) {
	good := forecast.NewStore(true)
	partial := forecast.NewStore(true)

	tests := []struct {
		name    string
		results []fetchResult
		refresh time.Duration
		want    []*forecast.Store
		wantErr bool
	}{
		{
			name: "canceled during first fetch",
		},
		{
			name:    "no data without refresh",
			results: []fetchResult{{nil, iface.ErrNoData}},
			wantErr: true,
		},
		{
			name:    "single fetch",
			results: []fetchResult{{good, nil}},
			want:    []*forecast.Store{good},
		},
		{
			name:    "partial store is rendered",
			results: []fetchResult{{partial, errors.New("response body broke off")}},
			want:    []*forecast.Store{partial},
		},
		{
			name:    "failed refresh keeps previous store",
			results: []fetchResult{{good, nil}, {nil, errors.New("connection refused")}, {nil, iface.ErrNoData}},
			refresh: time.Millisecond,
			want:    []*forecast.Store{good, good, good},
		},
		{
			name:    "refresh replaces store",
			results: []fetchResult{{good, nil}, {partial, errors.New("response body broke off")}},
			refresh: time.Millisecond,
			want:    []*forecast.Store{good, partial},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			be := &scriptedBackend{results: tt.results, cancel: cancel}
			fe := &recordingFrontend{}

			err := run(ctx, be, fe, "CA/San_Francisco", iface.UnitsMetric, 3, tt.refresh)
			if (err != nil) != tt.wantErr {
				t.Fatalf("run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(fe.rendered) != len(tt.want) {
				t.Fatalf("rendered %d stores, want %d", len(fe.rendered), len(tt.want))
			}
			for i := range tt.want {
				if fe.rendered[i] != tt.want[i] {
					t.Errorf("render %d got store %p, want %p", i, fe.rendered[i], tt.want[i])
				}
			}
		})
	}
}
