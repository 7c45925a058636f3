package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/pricebot/tools/metrics"
)

func TestCompareIdenticalSeries(t *testing.T) {
	prices := []float64{30.1, 31.2, 29.8, 32.4, 33.0, 31.9, 35.5}

	comparison, err := Compare(prices, prices)
	require.NoError(t, err)

	for _, diff := range comparison.Diffs {
		assert.Equal(t, 0.0, diff)
	}
	assert.Equal(t, 0.0, comparison.AverageDiff)
	assert.Equal(t, 0.0, comparison.CurrentDiff)
	assert.Equal(t, 0.0, comparison.MaxDiff)
	assert.Equal(t, 0.0, comparison.MinDiff)
	assert.Equal(t, SameDirectionEqual, comparison.Movement)
	assert.Equal(t, 0.0, comparison.MagnitudeGap)
	assert.Equal(t, SideSecond, comparison.Cheaper)
	assert.Equal(t, SideNone, comparison.BuyOpportunity)
	require.True(t, comparison.HasCorrelation)
	assert.InDelta(t, 1, comparison.Correlation, 1e-6)
}

func TestCompareDifferentials(t *testing.T) {
	first := []float64{40, 42, 44, 46}
	second := []float64{30, 29, 31, 30}

	comparison, err := Compare(first, second)
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 13, 13, 16}, comparison.Diffs)
	assert.Equal(t, 13.0, comparison.AverageDiff)
	assert.Equal(t, 16.0, comparison.CurrentDiff)
	assert.Equal(t, 15.0, comparison.MaxDiff)
	assert.Equal(t, 11.0, comparison.MinDiff)
	require.NoError(t, comparison.CurrentDiffPercentErr)
	assert.InDelta(t, 53.3333, comparison.CurrentDiffPercent, 1e-3)

	assert.InDelta(t, 15, comparison.FirstChange, 1e-9)
	assert.InDelta(t, 0, comparison.SecondChange, 1e-9)
	assert.Equal(t, DirectionUp, comparison.FirstDirection)
	assert.Equal(t, DirectionFlat, comparison.SecondDirection)
	assert.Equal(t, OppositeDirections, comparison.Movement)

	// first is more expensive now, second is not falling
	assert.Equal(t, SideSecond, comparison.Cheaper)
	assert.Equal(t, SideNone, comparison.BuyOpportunity)
	assert.Equal(t, SideSecond, comparison.Recommended())
}

func TestCompareMovement(t *testing.T) {
	t.Run("same direction, first moved more", func(t *testing.T) {
		comparison, err := Compare([]float64{10, 12}, []float64{10, 11})
		require.NoError(t, err)
		assert.Equal(t, SameDirectionFirstMore, comparison.Movement)
	})

	t.Run("same direction, second moved more", func(t *testing.T) {
		comparison, err := Compare([]float64{10, 9.5}, []float64{10, 8})
		require.NoError(t, err)
		assert.Equal(t, SameDirectionSecondMore, comparison.Movement)
	})

	t.Run("opposite", func(t *testing.T) {
		comparison, err := Compare([]float64{10, 12}, []float64{10, 8})
		require.NoError(t, err)
		assert.Equal(t, OppositeDirections, comparison.Movement)
		assert.Equal(t, DirectionUp, comparison.FirstDirection)
		assert.Equal(t, DirectionDown, comparison.SecondDirection)
	})
}

func TestComparePreference(t *testing.T) {
	t.Run("cheaper first", func(t *testing.T) {
		comparison, err := Compare([]float64{20, 21}, []float64{30, 32})
		require.NoError(t, err)
		assert.Equal(t, SideFirst, comparison.Cheaper)
		assert.Equal(t, SideFirst, comparison.Recommended())
	})

	t.Run("expensive side falling faster is flagged", func(t *testing.T) {
		// first is more expensive but dropping 20%, second drops 5%
		comparison, err := Compare([]float64{50, 40}, []float64{20, 19})
		require.NoError(t, err)
		assert.Equal(t, SideSecond, comparison.Cheaper)
		assert.Equal(t, SideFirst, comparison.BuyOpportunity)
		assert.Equal(t, SideFirst, comparison.Recommended())
	})

	t.Run("cheaper side falling faster stays recommended", func(t *testing.T) {
		comparison, err := Compare([]float64{50, 49}, []float64{20, 10})
		require.NoError(t, err)
		assert.Equal(t, SideSecond, comparison.Cheaper)
		assert.Equal(t, SideSecond, comparison.BuyOpportunity)
		assert.Equal(t, SideSecond, comparison.Recommended())
	})
}

func TestCompareAlignsSuffix(t *testing.T) {
	comparison, err := Compare([]float64{1, 2, 3, 4, 5}, []float64{3, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, comparison.Diffs)
}

func TestCompareConstantSeries(t *testing.T) {
	rising := []float64{20, 21, 22, 23, 24}
	flat := []float64{28, 28, 28, 28, 28}

	comparison, err := Compare(rising, flat)
	require.NoError(t, err)
	assert.False(t, comparison.HasCorrelation)

	comparison, err = Compare(flat, flat)
	require.NoError(t, err)
	assert.False(t, comparison.HasCorrelation)
	assert.Equal(t, 0.0, comparison.Correlation)
}

func TestCompareDegenerate(t *testing.T) {
	_, err := Compare(nil, []float64{1, 2})
	assert.ErrorIs(t, err, metrics.ErrEmptySeries)

	comparison, err := Compare([]float64{0, 5}, []float64{0, 0})
	require.NoError(t, err)
	assert.ErrorIs(t, comparison.FirstChangeErr, metrics.ErrZeroAnchor)
	assert.ErrorIs(t, comparison.SecondChangeErr, metrics.ErrZeroAnchor)
	assert.ErrorIs(t, comparison.CurrentDiffPercentErr, metrics.ErrZeroAnchor)
}
