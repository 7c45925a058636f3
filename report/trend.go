package report

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"

	"github.com/rodrigo-brito/pricebot/analysis"
	"github.com/rodrigo-brito/pricebot/indicator"
	"github.com/rodrigo-brito/pricebot/model"
	"github.com/rodrigo-brito/pricebot/tools/log"
	"github.com/rodrigo-brito/pricebot/tools/metrics"
)

const (
	IndicatorPeriod     = 7
	RSIPeriod           = 14
	BootstrapSamples    = 1000
	BootstrapConfidence = 0.95
	HistogramBins       = 10
)

var segmentNames = []string{"First third", "Middle third", "Last third"}

// Trend 对整个历史窗口做走势分析。rng 用于均价的自助法置信区间，为空时使用固定种子。
func Trend(commodity *model.Commodity, rng *rand.Rand) string {
	prices := commodity.Values()
	summary, err := metrics.Summarize(prices)
	if err != nil {
		return insufficient(commodity)
	}

	buffer := bytes.NewBufferString("")
	fmt.Fprintf(buffer, "[%s] trend analysis, %d days\n\n", commodity.Name, len(prices))

	volatility, volatilityErr := metrics.Volatility(prices)
	volatilityText := NotAvailable
	if volatilityErr == nil {
		volatilityText = fmt.Sprintf("%.1f%%", volatility)
	}

	weekChange, weekErr := metrics.PeriodChange(prices, metrics.WeekOffset)
	twoWeeksChange, twoWeeksErr := metrics.PeriodChange(prices, metrics.TwoWeeksOffset)
	monthChange, monthErr := metrics.PeriodChange(prices, metrics.MonthOffset)

	statsTable(buffer, [][]string{
		{"Current", formatPrice(summary.Current)},
		{"Average", formatPrice(summary.Mean)},
		{"High", formatPrice(summary.Max)},
		{"Low", formatPrice(summary.Min)},
		{"Volatility", volatilityText},
		{"1 week change", formatPercent(weekChange, weekErr)},
		{"2 weeks change", formatPercent(twoWeeksChange, twoWeeksErr)},
		{"1 month change", formatPercent(monthChange, monthErr)},
	})

	buffer.WriteString("\nIndicators\n")
	fmt.Fprintf(buffer, "- SMA(%d): %s, EMA(%d): %s, RSI(%d): %s\n",
		IndicatorPeriod, latest(indicator.SMA(prices, IndicatorPeriod)),
		IndicatorPeriod, latest(indicator.EMA(prices, IndicatorPeriod)),
		RSIPeriod, latest(indicator.RSI(prices, RSIPeriod)))

	interval, err := metrics.Bootstrap(rng, prices, metrics.MeanMeasure, BootstrapSamples, BootstrapConfidence)
	if err == nil {
		fmt.Fprintf(buffer, "- Average price %.0f%% interval: %s to %s\n", BootstrapConfidence*100,
			formatPrice(interval.Lower), formatPrice(interval.Upper))
	}

	buffer.WriteString("\nSampled prices\n")
	priceTable(buffer, commodity.Prices, unitOf(commodity), TableSampleSize)

	if segments := analysis.Thirds(prices); segments != nil {
		buffer.WriteString("\nSegments\n")
		table := tablewriter.NewWriter(buffer)
		table.SetHeader([]string{"Segment", "Days", "Average", "Change"})
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT})
		for i, segment := range segments {
			change := "-"
			if i > 0 {
				change = formatPercent(segment.Change, segment.ChangeErr)
			}
			table.Append([]string{
				segmentNames[i],
				fmt.Sprintf("%s to %s", commodity.Prices[segment.Start].Day(), commodity.Prices[segment.End-1].Day()),
				formatPrice(segment.Mean),
				change,
			})
		}
		table.Render()
	}

	buffer.WriteString("\nClassification\n")
	fmt.Fprintf(buffer, "- Recent trend: %s\n", analysis.ClassifyRecent(prices))
	fmt.Fprintf(buffer, "- Window trend: %s\n", analysis.ClassifyWindow(prices))

	// 价格全部相同时直方图没有宽度
	if summary.Max > summary.Min {
		buffer.WriteString("\nPrice distribution\n")
		hist := histogram.Hist(HistogramBins, prices)
		if err := histogram.Fprint(buffer, hist, histogram.Linear(20)); err != nil {
			log.Error(err)
		}
	}

	buffer.WriteString("\nForecast\n")
	if weekErr != nil {
		fmt.Fprintf(buffer, "- Short-term outlook: %s\n", NotAvailable)
	} else {
		fmt.Fprintf(buffer, "- Short-term outlook: %s\n", analysis.ShortTermOutlook(weekChange))
	}
	if volatilityErr == nil {
		fmt.Fprintf(buffer, "- Volatility: %s\n", analysis.VolatilityLabel(volatility))
	}
	if weekErr == nil {
		fmt.Fprintf(buffer, "- Purchase guidance: %s\n", analysis.PurchaseGuidance(weekChange))
	}
	return buffer.String()
}

func latest(values []float64) string {
	value, ok := indicator.Latest(values)
	if !ok {
		return NotAvailable
	}
	return formatPrice(value)
}
