package report

import (
	"bytes"
	"fmt"

	"github.com/rodrigo-brito/pricebot/analysis"
	"github.com/rodrigo-brito/pricebot/model"
	"github.com/rodrigo-brito/pricebot/tools/metrics"
)

// Info 商品概览：当前价格、窗口内的最高/最低/平均价、近期走势和抽样价格表。
func Info(commodity *model.Commodity) string {
	prices := commodity.Values()
	summary, err := metrics.Summarize(prices)
	if err != nil {
		return insufficient(commodity)
	}

	unit := unitOf(commodity)
	buffer := bytes.NewBufferString("")
	fmt.Fprintf(buffer, "[%s] price overview\n\n", commodity.Name)
	statsTable(buffer, [][]string{
		{"Current price", fmt.Sprintf("%s %s", formatPrice(summary.Current), unit)},
		{fmt.Sprintf("%d-day high", len(prices)), fmt.Sprintf("%s %s", formatPrice(summary.Max), unit)},
		{fmt.Sprintf("%d-day low", len(prices)), fmt.Sprintf("%s %s", formatPrice(summary.Min), unit)},
		{fmt.Sprintf("%d-day average", len(prices)), fmt.Sprintf("%s %s", formatPrice(summary.Mean), unit)},
	})
	fmt.Fprintf(buffer, "Recent trend: %s\n\n", analysis.ClassifyRecent(prices))
	priceTable(buffer, commodity.Prices, unit, TableSampleSize)
	return buffer.String()
}

// PriceReport 最近 days 天的价格报告，days 由调用方归一化。
func PriceReport(commodity *model.Commodity, days int) string {
	window := commodity.Window(days)
	prices := model.Prices(window)
	summary, err := metrics.Summarize(prices)
	if err != nil {
		return insufficient(commodity)
	}

	unit := unitOf(commodity)
	buffer := bytes.NewBufferString("")
	fmt.Fprintf(buffer, "[%s] price report, last %d days\n\n", commodity.Name, len(window))
	statsTable(buffer, [][]string{
		{"Current", formatPrice(summary.Current)},
		{"Average", formatPrice(summary.Mean)},
		{"High", formatPrice(summary.Max)},
		{"Low", formatPrice(summary.Min)},
		{"Max daily move", formatPrice(metrics.MaxDailyMove(prices))},
	})

	buffer.WriteString("\nSampled prices\n")
	priceTable(buffer, window, unit, TableSampleSize)

	first, last := window[0], window[len(window)-1]
	change, changeErr := metrics.PercentChange(first.Price, last.Price)

	buffer.WriteString("\nPrice movement\n")
	fmt.Fprintf(buffer, "- %s to %s: %s -> %s %s (%s, %s)\n", first.Day(), last.Day(),
		formatPrice(first.Price), formatPrice(last.Price), unit, formatSigned(last.Price-first.Price),
		formatPercent(change, changeErr))

	above, below := metrics.AboveBelow(prices, summary.Mean)
	fmt.Fprintf(buffer, "- Above average on %d days, below average on %d days\n", above, below)

	for week := 1; week <= 2; week++ {
		weekChange, ok, err := analysis.WeekOverWeek(prices, week)
		if !ok {
			continue
		}
		fmt.Fprintf(buffer, "- Week %d vs week %d average: %s\n", week+1, week, formatPercent(weekChange, err))
	}

	buffer.WriteString("\nForecast\n")
	if changeErr != nil {
		fmt.Fprintf(buffer, "- %s\n", NotAvailable)
	} else {
		fmt.Fprintf(buffer, "- %s\n", analysis.ForecastFromChange(change))
	}
	return buffer.String()
}
