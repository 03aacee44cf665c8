package astrocal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedPoint(t *testing.T) {
	got, err := fixedPoint(func(d float64) (float64, error) { return d/2 + 1, nil }, 0, solverMaxIterations)
	require.NoError(t, err)
	assert.InDelta(t, 2, got, 1e-11)

	// Alternates between 0 and 1 forever; the smaller value is taken.
	got, err = fixedPoint(func(d float64) (float64, error) { return 1 - d, nil }, 0, solverMaxIterations)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestFixedPointIterationCap(t *testing.T) {
	_, err := fixedPoint(func(d float64) (float64, error) { return d + 1, nil }, 0, solverMaxIterations)
	assert.ErrorIs(t, err, ErrNumericDivergence)

	// Converges, but not within a single step.
	_, err = fixedPoint(func(d float64) (float64, error) { return d/2 + 1, nil }, 0, 1)
	assert.ErrorIs(t, err, ErrNumericDivergence)
}

func TestNewton(t *testing.T) {
	got, err := newton(func(d float64) (float64, float64) { return d*d - 2, 2 * d }, 1, solverMaxIterations)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, got, 1e-12)
}

func TestNewtonIterationCap(t *testing.T) {
	// d² + 1 has no real root and every Newton step is at least 1 long.
	_, err := newton(func(d float64) (float64, float64) { return d*d + 1, 2 * d }, 0.5, solverMaxIterations)
	assert.ErrorIs(t, err, ErrNumericDivergence)
}

func TestTAIToUTCOverlapTakesEarlierInstant(t *testing.T) {
	// ΔT drops by about 0.25 s at the start of 1600, so TAI instants just after the drop
	// have a UTC preimage on both sides of the bound.
	bound := calendarJD(1600, 1, 1)
	utc := Instant{jd: bound - 0.1/SecondsPerDay, scale: UTC}

	tai, err := utc.In(TAI)
	require.NoError(t, err)
	back, err := tai.In(UTC)
	require.NoError(t, err)
	assert.InDelta(t, utc.JD(), back.JD(), 1e-9)
	assert.Less(t, back.JD(), bound)

	// Just after the bound there is a single preimage.
	utc = Instant{jd: bound + 0.5/SecondsPerDay, scale: UTC}
	tai, err = utc.In(TAI)
	require.NoError(t, err)
	back, err = tai.In(UTC)
	require.NoError(t, err)
	assert.InDelta(t, utc.JD(), back.JD(), 1e-9)
}

func TestTAIToUTCGapTakesEarlierInstant(t *testing.T) {
	// ΔT rises by about 0.05 s at the start of 1860; TAI instants inside the rise have no
	// exact UTC preimage.
	bound := calendarJD(1860, 1, 1)
	before, err := DeltaTForYear(math.Nextafter(1860, 0))
	require.NoError(t, err)
	after, err := DeltaTForYear(1860)
	require.NoError(t, err)
	require.Greater(t, after, before)

	tai := Instant{jd: bound + (before+after)/2/SecondsPerDay, scale: TAI}
	utc, err := tai.In(UTC)
	require.NoError(t, err)
	assert.Less(t, utc.JD(), bound)
	assert.Less(t, bound-utc.JD(), 0.05/SecondsPerDay)
}

func TestSegmentStart(t *testing.T) {
	_, ok := segmentStart(-1000)
	assert.False(t, ok)

	b, ok := segmentStart(1600)
	require.True(t, ok)
	assert.Equal(t, 1600.0, b)

	b, ok = segmentStart(1599.5)
	require.True(t, ok)
	assert.Equal(t, 500.0, b)

	b, ok = segmentStart(3000)
	require.True(t, ok)
	assert.Equal(t, 2150.0, b)
}
