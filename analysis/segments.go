package analysis

import (
	"github.com/rodrigo-brito/pricebot/tools/metrics"
)

// MinSegmentedWindow 窗口至少 21 天才做分段分析
const MinSegmentedWindow = 21

// Segment 是窗口中连续的一段，Start/End 为左闭右开的下标。
type Segment struct {
	Start     int
	End       int
	Mean      float64
	Change    float64 // 相对上一段均值的变化百分比，第一段为 0
	ChangeErr error
}

// Thirds 将窗口平均分为连续的三段，余数并入最后一段。窗口不足 21 天时返回 nil。
func Thirds(prices []float64) []Segment {
	if len(prices) < MinSegmentedWindow {
		return nil
	}

	size := len(prices) / 3
	bounds := [][2]int{{0, size}, {size, 2 * size}, {2 * size, len(prices)}}

	segments := make([]Segment, 0, len(bounds))
	for i, bound := range bounds {
		mean, _ := metrics.Mean(prices[bound[0]:bound[1]])
		segment := Segment{Start: bound[0], End: bound[1], Mean: mean}
		if i > 0 {
			segment.Change, segment.ChangeErr = metrics.PercentChange(segments[i-1].Mean, mean)
		}
		segments = append(segments, segment)
	}
	return segments
}

// WeekOverWeek 比较窗口开头连续两周的均值，week 从 1 开始，返回第 week+1 周相对第 week 周的变化。
func WeekOverWeek(prices []float64, week int) (float64, bool, error) {
	end := (week + 1) * 7
	if week < 1 || len(prices) < end {
		return 0, false, nil
	}

	previous, _ := metrics.Mean(prices[end-14 : end-7])
	current, _ := metrics.Mean(prices[end-7 : end])
	change, err := metrics.PercentChange(previous, current)
	return change, true, err
}
