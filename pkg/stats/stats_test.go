package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/domainkit/pkg/stats"
)

func TestMean(t *testing.T) {
	t.Parallel()

	t.Run("integers", func(t *testing.T) {
		got, err := stats.Mean([]int{1, 2, 3, 4, 5})
		require.NoError(t, err)
		assert.InDelta(t, 3.0, got, 1e-9)
	})

	t.Run("floats", func(t *testing.T) {
		got, err := stats.Mean([]float64{1.5, 2.5})
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got, 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := stats.Mean([]float64{})
		assert.ErrorIs(t, err, stats.ErrEmptyInput)
	})
}

func TestVariance(t *testing.T) {
	t.Parallel()

	t.Run("population", func(t *testing.T) {
		got, err := stats.Variance([]int{1, 2, 3, 4, 5}, stats.Population)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got, 1e-9)
	})

	t.Run("sample applies Bessel's correction", func(t *testing.T) {
		got, err := stats.Variance([]int{1, 2, 3, 4, 5}, stats.Sample)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, got, 1e-9)
	})

	t.Run("population over a single point is zero", func(t *testing.T) {
		got, err := stats.Variance([]float64{0.01}, stats.Population)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, got, 1e-9)
	})

	t.Run("sample over a single point is insufficient", func(t *testing.T) {
		_, err := stats.Variance([]float64{0.01}, stats.Sample)
		assert.ErrorIs(t, err, stats.ErrInsufficientData)
	})

	t.Run("empty input fails for any basis", func(t *testing.T) {
		_, err := stats.Variance([]int{}, stats.Population)
		assert.ErrorIs(t, err, stats.ErrEmptyInput)

		_, err = stats.Variance([]int{}, stats.Sample)
		assert.ErrorIs(t, err, stats.ErrEmptyInput)

		_, err = stats.Variance([]int{}, stats.Basis(99))
		assert.ErrorIs(t, err, stats.ErrEmptyInput)
	})

	t.Run("unknown basis", func(t *testing.T) {
		_, err := stats.Variance([]int{1, 2}, stats.Basis(99))
		assert.ErrorIs(t, err, stats.ErrUnknownBasis)
	})
}

func TestStdDev(t *testing.T) {
	t.Parallel()

	t.Run("square root of variance", func(t *testing.T) {
		got, err := stats.StdDev([]int{2, 4, 4, 4, 5, 5, 7, 9}, stats.Population)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got, 1e-9)
	})

	t.Run("propagates variance errors", func(t *testing.T) {
		_, err := stats.StdDev([]int{}, stats.Population)
		assert.ErrorIs(t, err, stats.ErrEmptyInput)

		_, err = stats.StdDev([]int{1}, stats.Sample)
		assert.ErrorIs(t, err, stats.ErrInsufficientData)
	})
}
