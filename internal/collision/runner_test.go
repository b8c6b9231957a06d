package collision

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFindsCollisionsInSmallKeyspace(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	report, err := New(metrics).Run(context.Background(), Options{
		Runs:    16,
		Workers: 4,
		Bits:    16,
		Seed:    1,
	})
	require.NoError(t, err)

	require.Len(t, report.Trials, 16)
	assert.Equal(t, 16, report.Collisions)

	var drawn int

	for i, trial := range report.Trials {
		assert.Equal(t, i, trial.Run, "trials are ordered by run")
		assert.True(t, trial.Collided)
		assert.GreaterOrEqual(t, trial.Iterations, 2)
		assert.LessOrEqual(t, trial.Iterations, 1<<16+1)

		drawn += trial.Iterations
	}

	// sqrt(pi/2 * 65536) is about 321; 16 trials keep the mean well inside this band.
	assert.InDelta(t, 321, report.Expected, 1)
	assert.Greater(t, report.Mean, 100.0)
	assert.Less(t, report.Mean, 700.0)

	assert.InDelta(t, float64(drawn), testutil.ToFloat64(metrics.Generated), 0)
	assert.InDelta(t, 16, testutil.ToFloat64(metrics.Trials.WithLabelValues(resultCollision)), 0)
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	opts := Options{Runs: 3, Workers: 2, Bits: 12, Seed: 99}

	a, err := New(nil).Run(context.Background(), opts)
	require.NoError(t, err)

	b, err := New(nil).Run(context.Background(), opts)
	require.NoError(t, err)

	for i := range a.Trials {
		assert.Equal(t, a.Trials[i].Iterations, b.Trials[i].Iterations)
	}
}

func TestRunStopsAtLimit(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	report, err := New(metrics).Run(context.Background(), Options{
		Runs:          2,
		Bits:          64,
		MaxIterations: 1000,
		Seed:          5,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, report.Collisions)
	assert.Zero(t, report.Mean)

	for _, trial := range report.Trials {
		assert.False(t, trial.Collided)
		assert.Equal(t, 1000, trial.Iterations)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.Trials.WithLabelValues(resultLimit)), 0)
	assert.InDelta(t, 2000, testutil.ToFloat64(metrics.Generated), 0)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Run(ctx, Options{Runs: 2, Bits: 64})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsBadOptions(t *testing.T) {
	testCases := []struct {
		name string
		opts Options
		want error
	}{
		{name: "zero bits", opts: Options{Runs: 1, Bits: 0}, want: ErrInvalidBits},
		{name: "too many bits", opts: Options{Runs: 1, Bits: 65}, want: ErrInvalidBits},
		{name: "no runs", opts: Options{Runs: 0, Bits: 8}, want: ErrInvalidRuns},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(nil).Run(context.Background(), tc.opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestExpected(t *testing.T) {
	assert.InDelta(t, 1.2533, Expected(0), 0.001)
	assert.InDelta(t, 82137, Expected(32), 1)
}
