package analysis

import (
	"math"

	"github.com/samber/lo"

	"github.com/rodrigo-brito/pricebot/indicator"
	"github.com/rodrigo-brito/pricebot/tools/metrics"
)

// CoMovement 描述两个商品在窗口内的涨跌是否同向，以及谁的幅度更大
type CoMovement string

const (
	SameDirectionFirstMore  CoMovement = "same direction, first moved more"
	SameDirectionSecondMore CoMovement = "same direction, second moved more"
	SameDirectionEqual      CoMovement = "same direction, equal magnitude"
	OppositeDirections      CoMovement = "opposite directions"
)

// Side 指比较中的某一方
type Side int

const (
	SideNone Side = iota
	SideFirst
	SideSecond
)

// Comparison 是两个按日期对齐的价格序列的比较结果。
// 所有差值均为 first - second。
type Comparison struct {
	First  metrics.Summary
	Second metrics.Summary

	Diffs       []float64
	AverageDiff float64
	CurrentDiff float64
	MaxDiff     float64
	MinDiff     float64

	// CurrentDiffPercent 是当前差值占第二个商品当前价格的百分比
	CurrentDiffPercent    float64
	CurrentDiffPercentErr error

	FirstChange     float64
	FirstChangeErr  error
	SecondChange    float64
	SecondChangeErr error

	Movement        CoMovement
	FirstDirection  Direction
	SecondDirection Direction
	MagnitudeGap    float64 // |FirstChange| - |SecondChange|
	Cheaper         Side    // 当前价格更低的一方，相同时为第二个
	BuyOpportunity  Side    // 下跌且跌幅更大、适合近期买入的一方，可能为空

	Correlation    float64
	HasCorrelation bool
}

// Align 按日期下标从末尾对齐两个序列，较长的一方截掉最旧的部分。
func Align(first, second []float64) ([]float64, []float64) {
	size := len(first)
	if len(second) < size {
		size = len(second)
	}
	return first[len(first)-size:], second[len(second)-size:]
}

// Compare 比较两个价格序列。调用前两个商品都必须已经解析成功。
func Compare(first, second []float64) (Comparison, error) {
	first, second = Align(first, second)
	if len(first) == 0 {
		return Comparison{}, metrics.ErrEmptySeries
	}

	firstSummary, err := metrics.Summarize(first)
	if err != nil {
		return Comparison{}, err
	}
	secondSummary, err := metrics.Summarize(second)
	if err != nil {
		return Comparison{}, err
	}

	diffs := lo.Map(first, func(price float64, i int) float64 {
		return price - second[i]
	})

	comparison := Comparison{
		First:       firstSummary,
		Second:      secondSummary,
		Diffs:       diffs,
		AverageDiff: lo.Sum(diffs) / float64(len(diffs)),
		CurrentDiff: diffs[len(diffs)-1],
		MaxDiff:     firstSummary.Max - secondSummary.Max,
		MinDiff:     firstSummary.Min - secondSummary.Min,
	}

	comparison.CurrentDiffPercent, comparison.CurrentDiffPercentErr = diffPercent(comparison.CurrentDiff,
		secondSummary.Current)
	comparison.FirstChange, comparison.FirstChangeErr = metrics.PercentChange(first[0], first[len(first)-1])
	comparison.SecondChange, comparison.SecondChangeErr = metrics.PercentChange(second[0], second[len(second)-1])

	comparison.FirstDirection, _ = magnitude(comparison.FirstChange)
	comparison.SecondDirection, _ = magnitude(comparison.SecondChange)
	comparison.MagnitudeGap = math.Abs(comparison.FirstChange) - math.Abs(comparison.SecondChange)
	comparison.Movement = coMovement(comparison.FirstDirection, comparison.SecondDirection, comparison.MagnitudeGap)

	comparison.Cheaper = SideSecond
	if comparison.CurrentDiff < 0 {
		comparison.Cheaper = SideFirst
	}
	comparison.BuyOpportunity = buyOpportunity(comparison.FirstChange, comparison.SecondChange)
	// 任一序列价格不变时相关系数没有定义
	if firstSummary.Max > firstSummary.Min && secondSummary.Max > secondSummary.Min {
		comparison.Correlation, comparison.HasCorrelation = indicator.Latest(indicator.Correl(first, second, len(first)))
	}

	return comparison, nil
}

func diffPercent(diff, reference float64) (float64, error) {
	if reference == 0 {
		return 0, metrics.ErrZeroAnchor
	}
	return 100 * diff / reference, nil
}

func coMovement(first, second Direction, gap float64) CoMovement {
	if first != second {
		return OppositeDirections
	}

	switch {
	case gap > 0:
		return SameDirectionFirstMore
	case gap < 0:
		return SameDirectionSecondMore
	default:
		return SameDirectionEqual
	}
}

// buyOpportunity 当一方在下跌且跌幅比另一方更大时，认为它是更好的近期买入时机。
func buyOpportunity(firstChange, secondChange float64) Side {
	switch {
	case firstChange < 0 && firstChange < secondChange:
		return SideFirst
	case secondChange < 0 && secondChange < firstChange:
		return SideSecond
	default:
		return SideNone
	}
}

// Recommended 返回推荐购买的一方：默认是当前更便宜的一方，
// 如果另一方正在以更大的幅度下跌，则推荐另一方。
func (c Comparison) Recommended() Side {
	if c.BuyOpportunity != SideNone {
		return c.BuyOpportunity
	}
	return c.Cheaper
}
