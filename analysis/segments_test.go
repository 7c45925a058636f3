package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/pricebot/tools/metrics"
)

func TestThirds(t *testing.T) {
	t.Run("21 points", func(t *testing.T) {
		prices := make([]float64, 21)
		for i := range prices {
			prices[i] = float64(10 + i/7*2) // 10 x7, 12 x7, 14 x7
		}

		segments := Thirds(prices)
		require.Len(t, segments, 3)

		assert.Equal(t, Segment{Start: 0, End: 7, Mean: 10}, segments[0])
		assert.Equal(t, 7, segments[1].Start)
		assert.Equal(t, 14, segments[1].End)
		assert.Equal(t, 12.0, segments[1].Mean)
		assert.InDelta(t, 20, segments[1].Change, 1e-9)
		assert.Equal(t, 14.0, segments[2].Mean)
		assert.InDelta(t, 100*(14.0/12.0-1), segments[2].Change, 1e-9)

		// compounding the segment changes gives the first to last segment change
		compound := (1+segments[1].Change/100)*(1+segments[2].Change/100) - 1
		direct, err := metrics.PercentChange(segments[0].Mean, segments[2].Mean)
		require.NoError(t, err)
		assert.InDelta(t, direct, compound*100, 0.05)
	})

	t.Run("remainder joins the last segment", func(t *testing.T) {
		prices := make([]float64, 23)
		for i := range prices {
			prices[i] = 20
		}

		segments := Thirds(prices)
		require.Len(t, segments, 3)
		assert.Equal(t, 14, segments[2].Start)
		assert.Equal(t, 23, segments[2].End)
		assert.Equal(t, 0.0, segments[2].Change)
	})

	t.Run("short window", func(t *testing.T) {
		assert.Nil(t, Thirds(make([]float64, 20)))
	})

	t.Run("zero mean segment", func(t *testing.T) {
		prices := make([]float64, 21)
		for i := 7; i < 21; i++ {
			prices[i] = 5
		}
		segments := Thirds(prices)
		assert.ErrorIs(t, segments[1].ChangeErr, metrics.ErrZeroAnchor)
	})
}

func TestWeekOverWeek(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = math.Pow(2, float64(i/7))
	}

	change, ok, err := WeekOverWeek(prices, 1)
	require.True(t, ok)
	require.NoError(t, err)
	assert.InDelta(t, 100, change, 1e-9)

	change, ok, err = WeekOverWeek(prices, 2)
	require.True(t, ok)
	require.NoError(t, err)
	assert.InDelta(t, 100, change, 1e-9)

	_, ok, _ = WeekOverWeek(prices[:20], 2)
	assert.False(t, ok)

	_, ok, _ = WeekOverWeek(prices, 0)
	assert.False(t, ok)
}
