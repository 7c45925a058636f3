package analysis

import (
	"errors"
	"fmt"

	"github.com/rodrigo-brito/pricebot/model"
	"github.com/rodrigo-brito/pricebot/tools/metrics"
)

const (
	// RecentWindow 近期走势只看最近 7 个价格点
	RecentWindow = 7
	// ClearThreshold 近期走势中上涨/下跌次数占比超过该值即为明显趋势
	ClearThreshold = 0.65
	// SustainedThreshold 整个窗口中上涨/下跌次数占比超过该值即为持续趋势
	SustainedThreshold = 0.7
	// NotableChange 和 SharpChange 是窗口涨跌幅（百分比）的分级
	NotableChange = 5.0
	SharpChange   = 10.0
)

// Direction 是价格变化的方向
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// InsufficientData 价格点不够时所有分类都返回这个标签
const InsufficientData = "insufficient data"

// Counts 是相邻价格差中上涨、下跌和持平的次数
type Counts struct {
	Up   int
	Down int
	Flat int
}

func (c Counts) Total() int {
	return c.Up + c.Down + c.Flat
}

func countDeltas(prices model.Series[float64]) Counts {
	var counts Counts
	for _, delta := range model.Deltas(prices) {
		switch {
		case delta > 0:
			counts.Up++
		case delta < 0:
			counts.Down++
		default:
			counts.Flat++
		}
	}
	return counts
}

// RecentLabel 近期走势的分类
type RecentLabel string

const (
	RecentClearUp   RecentLabel = "clear upward trend"
	RecentClearDown RecentLabel = "clear downward trend"
	RecentMildUp    RecentLabel = "mild upward trend"
	RecentMildDown  RecentLabel = "mild downward trend"
	RecentStable    RecentLabel = "relatively stable"
	RecentUnknown   RecentLabel = InsufficientData
)

// RecentTrend 近期走势的分类结果，附带用于分类的涨跌次数
type RecentTrend struct {
	Label  RecentLabel
	Counts Counts
}

func (r RecentTrend) String() string {
	return string(r.Label)
}

// ClassifyRecent 根据最近 7 个价格点的涨跌次数给出近期走势。
func ClassifyRecent(prices []float64) RecentTrend {
	if len(prices) < 2 {
		return RecentTrend{Label: RecentUnknown}
	}

	counts := countDeltas(model.Series[float64](prices).LastValues(RecentWindow))
	total := float64(counts.Total())

	trend := RecentTrend{Counts: counts}
	switch {
	case float64(counts.Up) > ClearThreshold*total:
		trend.Label = RecentClearUp
	case float64(counts.Down) > ClearThreshold*total:
		trend.Label = RecentClearDown
	case counts.Up > counts.Down && counts.Up > counts.Flat:
		trend.Label = RecentMildUp
	case counts.Down > counts.Up && counts.Down > counts.Flat:
		trend.Label = RecentMildDown
	default:
		trend.Label = RecentStable
	}
	return trend
}

// Magnitude 窗口涨跌幅的强度，按 NotableChange 和 SharpChange 分级
type Magnitude string

const (
	MagnitudeSharp   Magnitude = "sharp"
	MagnitudeNotable Magnitude = "notable"
	MagnitudeMild    Magnitude = "mild"
	MagnitudeFlat    Magnitude = "flat"
)

// Persistence 描述涨跌是否持续
type Persistence string

const (
	PersistenceSustainedUp    Persistence = "sustained upward trend"
	PersistenceSustainedDown  Persistence = "sustained downward trend"
	PersistenceVolatileUp     Persistence = "volatile with net upward direction"
	PersistenceVolatileDown   Persistence = "volatile with net downward direction"
	PersistenceHighlyVolatile Persistence = "highly volatile"
)

// WindowTrend 描述整个窗口的涨跌幅以及涨跌的持续性。
type WindowTrend struct {
	Change      float64
	Direction   Direction
	Magnitude   Magnitude
	Persistence Persistence
	Counts      Counts
	Err         error
}

func (w WindowTrend) String() string {
	switch {
	case errors.Is(w.Err, metrics.ErrInsufficientData):
		return InsufficientData
	case w.Err != nil:
		return fmt.Sprintf("undefined (%s), %s", w.Err, w.Persistence)
	}

	var label string
	switch w.Direction {
	case DirectionUp:
		label = fmt.Sprintf("%s rise", w.Magnitude)
	case DirectionDown:
		label = fmt.Sprintf("%s fall", w.Magnitude)
	default:
		label = "flat"
	}
	return fmt.Sprintf("%s (%+.1f%%), %s", label, w.Change, w.Persistence)
}

// ClassifyWindow 计算窗口首尾的涨跌幅，并结合整个窗口的涨跌次数判断持续性。
func ClassifyWindow(prices []float64) WindowTrend {
	if len(prices) < 2 {
		return WindowTrend{Err: metrics.ErrInsufficientData}
	}

	counts := countDeltas(prices)
	trend := WindowTrend{
		Counts:      counts,
		Persistence: persistence(counts),
	}

	change, err := metrics.PercentChange(prices[0], prices[len(prices)-1])
	if err != nil {
		trend.Err = err
		return trend
	}

	trend.Change = change
	trend.Direction, trend.Magnitude = magnitude(change)
	return trend
}

func magnitude(change float64) (Direction, Magnitude) {
	direction := DirectionFlat
	switch {
	case change > 0:
		direction = DirectionUp
	case change < 0:
		direction = DirectionDown
		change = -change
	}

	switch {
	case change > SharpChange:
		return direction, MagnitudeSharp
	case change > NotableChange:
		return direction, MagnitudeNotable
	case change > 0:
		return direction, MagnitudeMild
	default:
		return direction, MagnitudeFlat
	}
}

func persistence(counts Counts) Persistence {
	total := float64(counts.Total())
	switch {
	case float64(counts.Up) > SustainedThreshold*total:
		return PersistenceSustainedUp
	case float64(counts.Down) > SustainedThreshold*total:
		return PersistenceSustainedDown
	case counts.Up > counts.Down && counts.Up > counts.Flat:
		return PersistenceVolatileUp
	case counts.Down > counts.Up && counts.Down > counts.Flat:
		return PersistenceVolatileDown
	default:
		return PersistenceHighlyVolatile
	}
}

// Forecast 是根据涨跌幅给出的短期预测
type Forecast string

const (
	ForecastRising  Forecast = "if the current trend holds, prices are likely to keep rising in the short term"
	ForecastFalling Forecast = "if the current trend holds, prices are likely to keep falling in the short term"
	ForecastStable  Forecast = "prices are likely to fluctuate around the current level"
)

// ForecastFromChange 涨跌幅超过 ±NotableChange 时预测延续当前方向
func ForecastFromChange(change float64) Forecast {
	switch {
	case change > NotableChange:
		return ForecastRising
	case change < -NotableChange:
		return ForecastFalling
	default:
		return ForecastStable
	}
}

// GuidanceThreshold 周环比超过 ±3% 时给出买入/观望建议
const GuidanceThreshold = 3.0

// 波动率分级（百分比）
const (
	HighVolatility     = 10.0
	ModerateVolatility = 5.0
)

// VolatilityLabel 按波动率分级给出描述
func VolatilityLabel(volatility float64) string {
	switch {
	case volatility > HighVolatility:
		return "high volatility, the market is uncertain"
	case volatility > ModerateVolatility:
		return "moderate volatility, within normal market movement"
	default:
		return "low volatility, the market is relatively stable"
	}
}

// ShortTermOutlook 根据最近一周的涨跌幅给出短期展望
func ShortTermOutlook(weekChange float64) string {
	switch {
	case weekChange > NotableChange:
		return "prices are in an upward channel and may keep rising"
	case weekChange < -NotableChange:
		return "prices are in a downward channel and may keep falling"
	default:
		return "prices are relatively stable and may fluctuate around the current level"
	}
}

// PurchaseGuidance 根据周环比给出买入或观望建议，变化不大时不给倾向
func PurchaseGuidance(weekChange float64) string {
	switch {
	case weekChange < -GuidanceThreshold:
		return "prices are trending down, this may be a good time to buy"
	case weekChange > GuidanceThreshold:
		return "prices are trending up, consider waiting for a pullback"
	default:
		return "prices are relatively stable, buy as needed"
	}
}
