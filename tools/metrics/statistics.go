package metrics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrEmptySeries      = errors.New("empty series")
	ErrInsufficientData = errors.New("insufficient data")
	ErrZeroMean         = errors.New("zero mean")
	ErrZeroAnchor       = errors.New("zero anchor price")
)

// 环比的锚点偏移量，从序列末尾往前数
const (
	WeekOffset     = 7
	TwoWeeksOffset = 14
	MonthOffset    = 29
)

func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySeries
	}
	return stat.Mean(values, nil), nil
}

func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySeries
	}
	return floats.Min(values), nil
}

func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySeries
	}
	return floats.Max(values), nil
}

// Volatility 返回总体标准差占均值的百分比。
func Volatility(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrInsufficientData
	}
	mean, stdDev := stat.PopMeanStdDev(values, nil)
	if mean == 0 {
		return 0, ErrZeroMean
	}
	return 100 * stdDev / mean, nil
}

// AnchorIndex 返回距离最新值 offset 天的下标，序列不够长时退回到第一个元素。
func AnchorIndex(length, offset int) int {
	index := length - 1 - offset
	if index < 0 {
		return 0
	}
	return index
}

// PeriodChange 计算最新值相对 offset 天前的变化百分比。
func PeriodChange(values []float64, offset int) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySeries
	}
	anchor := values[AnchorIndex(len(values), offset)]
	return PercentChange(anchor, values[len(values)-1])
}

// PercentChange 计算 from 到 to 的变化百分比，from 为 0 时返回 ErrZeroAnchor。
func PercentChange(from, to float64) (float64, error) {
	if from == 0 {
		return 0, ErrZeroAnchor
	}
	return 100 * (to/from - 1), nil
}

// MaxDailyMove 返回相邻两天价格差的最大绝对值。
func MaxDailyMove(values []float64) float64 {
	var move float64
	for i := 1; i < len(values); i++ {
		move = math.Max(move, math.Abs(values[i]-values[i-1]))
	}
	return move
}

// AboveBelow 统计严格高于和严格低于 reference 的值的个数。
func AboveBelow(values []float64, reference float64) (above, below int) {
	for _, value := range values {
		switch {
		case value > reference:
			above++
		case value < reference:
			below++
		}
	}
	return above, below
}

// MeanMeasure 可以直接传给 Bootstrap。
func MeanMeasure(values []float64) float64 {
	return stat.Mean(values, nil)
}

// Summary 是一个窗口的基本统计
type Summary struct {
	Current float64
	Mean    float64
	Min     float64
	Max     float64
}

func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptySeries
	}
	return Summary{
		Current: values[len(values)-1],
		Mean:    stat.Mean(values, nil),
		Min:     floats.Min(values),
		Max:     floats.Max(values),
	}, nil
}
