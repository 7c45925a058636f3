package metrics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	t.Run("constant series", func(t *testing.T) {
		mean, err := Mean([]float64{35.5, 35.5, 35.5, 35.5})
		require.NoError(t, err)
		assert.Equal(t, 35.5, mean)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Mean(nil)
		assert.ErrorIs(t, err, ErrEmptySeries)
	})
}

func TestMinMax(t *testing.T) {
	values := []float64{30.1, 28.4, 33.9, 31.0}

	min, err := Min(values)
	require.NoError(t, err)
	assert.Equal(t, 28.4, min)

	max, err := Max(values)
	require.NoError(t, err)
	assert.Equal(t, 33.9, max)

	_, err = Min(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
	_, err = Max([]float64{})
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestVolatility(t *testing.T) {
	t.Run("constant series", func(t *testing.T) {
		volatility, err := Volatility([]float64{28, 28, 28, 28, 28})
		require.NoError(t, err)
		assert.InDelta(t, 0, volatility, 1e-9)
	})

	t.Run("population standard deviation", func(t *testing.T) {
		// mean 5, population stddev 2
		volatility, err := Volatility([]float64{2, 4, 4, 4, 5, 5, 7, 9})
		require.NoError(t, err)
		assert.InDelta(t, 40, volatility, 1e-9)
	})

	t.Run("zero mean", func(t *testing.T) {
		_, err := Volatility([]float64{-1, 1})
		assert.ErrorIs(t, err, ErrZeroMean)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Volatility(nil)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})
}

func TestPeriodChange(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = float64(i + 1)
	}

	t.Run("week", func(t *testing.T) {
		change, err := PeriodChange(values, WeekOffset)
		require.NoError(t, err)
		assert.InDelta(t, 100*(30.0/23.0-1), change, 1e-9)
	})

	t.Run("month anchors at first element", func(t *testing.T) {
		change, err := PeriodChange(values, MonthOffset)
		require.NoError(t, err)
		assert.InDelta(t, 2900, change, 1e-9)
	})

	t.Run("short series falls back to first element", func(t *testing.T) {
		change, err := PeriodChange([]float64{10, 12, 15}, TwoWeeksOffset)
		require.NoError(t, err)
		assert.InDelta(t, 50, change, 1e-9)
	})

	t.Run("zero anchor", func(t *testing.T) {
		_, err := PeriodChange([]float64{0, 12, 15}, MonthOffset)
		assert.ErrorIs(t, err, ErrZeroAnchor)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := PeriodChange(nil, WeekOffset)
		assert.ErrorIs(t, err, ErrEmptySeries)
	})
}

func TestAnchorIndex(t *testing.T) {
	assert.Equal(t, 22, AnchorIndex(30, WeekOffset))
	assert.Equal(t, 15, AnchorIndex(30, TwoWeeksOffset))
	assert.Equal(t, 0, AnchorIndex(30, MonthOffset))
	assert.Equal(t, 0, AnchorIndex(5, WeekOffset))
}

func TestMaxDailyMove(t *testing.T) {
	assert.Equal(t, 0.0, MaxDailyMove([]float64{10}))
	assert.InDelta(t, 4.5, MaxDailyMove([]float64{10, 11, 6.5, 7}), 1e-9)
}

func TestAboveBelow(t *testing.T) {
	above, below := AboveBelow([]float64{1, 2, 3, 4, 5}, 3)
	assert.Equal(t, 2, above)
	assert.Equal(t, 2, below)
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize([]float64{30, 32, 28, 31})
	require.NoError(t, err)
	assert.Equal(t, 31.0, summary.Current)
	assert.Equal(t, 30.25, summary.Mean)
	assert.Equal(t, 28.0, summary.Min)
	assert.Equal(t, 32.0, summary.Max)

	_, err = Summarize(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestBootstrap(t *testing.T) {
	values := []float64{30.2, 31.5, 29.8, 33.1, 32.4, 30.9, 31.7, 29.5}

	interval, err := Bootstrap(rand.New(rand.NewSource(42)), values, MeanMeasure, 1000, 0.95)
	require.NoError(t, err)
	assert.LessOrEqual(t, interval.Lower, interval.Mean)
	assert.GreaterOrEqual(t, interval.Upper, interval.Mean)
	assert.Greater(t, interval.StdDev, 0.0)

	again, err := Bootstrap(rand.New(rand.NewSource(42)), values, MeanMeasure, 1000, 0.95)
	require.NoError(t, err)
	assert.Equal(t, interval, again)

	_, err = Bootstrap(nil, nil, MeanMeasure, 10, 0.95)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
