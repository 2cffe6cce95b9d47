package poisson_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nonamecorn/pcg-together/poisson"
)

func TestSample_InvalidRadius(t *testing.T) {
	_, err := poisson.Sample(poisson.Params{Width: 64, Height: 64, Radius: 0, Seed: 1})
	require.ErrorIs(t, err, poisson.ErrInvalidRadius)

	_, err = poisson.Sample(poisson.Params{Width: 64, Height: 64, Radius: -5, Seed: 1})
	require.ErrorIs(t, err, poisson.ErrInvalidRadius)
}

func TestSample_Separation(t *testing.T) {
	points, err := poisson.Sample(poisson.Params{Width: 128, Height: 128, Radius: 8, Seed: 42})
	require.NoError(t, err)
	require.NotEmpty(t, points)

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			dx := points[i].X - points[j].X
			dy := points[i].Y - points[j].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			require.GreaterOrEqualf(t, dist, 8.0-1e-9, "points %d,%d too close", i, j)
		}
	}
}

func TestSample_WithinRegion(t *testing.T) {
	points, err := poisson.Sample(poisson.Params{Width: 64, Height: 32, Radius: 6, Seed: 7})
	require.NoError(t, err)
	for _, p := range points {
		require.GreaterOrEqual(t, p.X, 0.0)
		require.Less(t, p.X, 64.0)
		require.GreaterOrEqual(t, p.Y, 0.0)
		require.Less(t, p.Y, 32.0)
	}
}

func TestSample_Deterministic(t *testing.T) {
	params := poisson.Params{Width: 100, Height: 100, Radius: 10, Seed: 123}
	a, err := poisson.Sample(params)
	require.NoError(t, err)
	b, err := poisson.Sample(params)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSample_DistinctSeedsDivergeUsually(t *testing.T) {
	a, err := poisson.Sample(poisson.Params{Width: 100, Height: 100, Radius: 10, Seed: 1})
	require.NoError(t, err)
	b, err := poisson.Sample(poisson.Params{Width: 100, Height: 100, Radius: 10, Seed: 2})
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSample_SmallRegionProducesAtLeastOnePoint(t *testing.T) {
	points, err := poisson.Sample(poisson.Params{Width: 16, Height: 16, Radius: 20, Seed: 5})
	require.NoError(t, err)
	require.Len(t, points, 1)
}

func TestSample_CustomAttempts(t *testing.T) {
	points, err := poisson.Sample(poisson.Params{Width: 64, Height: 64, Radius: 16, Seed: 9, Attempts: 5})
	require.NoError(t, err)
	require.NotEmpty(t, points)
}
