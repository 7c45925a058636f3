package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/olekukonko/tablewriter"

	"github.com/rodrigo-brito/pricebot/analysis"
	"github.com/rodrigo-brito/pricebot/model"
)

// Comparison 比较两个商品最近 days 天的价格。
func Comparison(first, second *model.Commodity, days int) string {
	firstWindow, secondWindow := first.Window(days), second.Window(days)
	comparison, err := analysis.Compare(model.Prices(firstWindow), model.Prices(secondWindow))
	if err != nil {
		return fmt.Sprintf("[%s vs %s] %s\n", first.Name, second.Name, analysis.InsufficientData)
	}

	size := len(comparison.Diffs)
	firstWindow = firstWindow[len(firstWindow)-size:]
	secondWindow = secondWindow[len(secondWindow)-size:]

	buffer := bytes.NewBufferString("")
	fmt.Fprintf(buffer, "[%s vs %s] price comparison, last %d days\n\n", first.Name, second.Name, size)

	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"", first.Name, second.Name, "Diff"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT})
	table.AppendBulk([][]string{
		{"Current", formatPrice(comparison.First.Current), formatPrice(comparison.Second.Current),
			formatSigned(comparison.CurrentDiff)},
		{"Average", formatPrice(comparison.First.Mean), formatPrice(comparison.Second.Mean),
			formatSigned(comparison.AverageDiff)},
		{"High", formatPrice(comparison.First.Max), formatPrice(comparison.Second.Max),
			formatSigned(comparison.MaxDiff)},
		{"Low", formatPrice(comparison.First.Min), formatPrice(comparison.Second.Min),
			formatSigned(comparison.MinDiff)},
		{"Change", formatPercent(comparison.FirstChange, comparison.FirstChangeErr),
			formatPercent(comparison.SecondChange, comparison.SecondChangeErr), ""},
	})
	table.Render()

	buffer.WriteString("\nDaily prices (sampled)\n")
	daily := tablewriter.NewWriter(buffer)
	daily.SetHeader([]string{"Date", first.Name, second.Name, "Diff"})
	daily.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT})
	daily.SetFooterAlignment(tablewriter.ALIGN_RIGHT)
	for _, i := range analysis.SampleIndices(size, ComparisonSampleSize) {
		daily.Append([]string{
			firstWindow[i].Day(),
			formatPrice(firstWindow[i].Price),
			formatPrice(secondWindow[i].Price),
			formatSigned(comparison.Diffs[i]),
		})
	}
	daily.SetFooter([]string{"Average", formatPrice(comparison.First.Mean), formatPrice(comparison.Second.Mean),
		formatSigned(comparison.AverageDiff)})
	daily.Render()
	fmt.Fprintf(buffer, "Trend: %s %s; %s %s\n", first.Name, analysis.ClassifyWindow(model.Prices(firstWindow)),
		second.Name, analysis.ClassifyWindow(model.Prices(secondWindow)))

	buffer.WriteString("\nAnalysis\n")
	fmt.Fprintf(buffer, "- %s\n", currentDiffLine(first, second, comparison))
	fmt.Fprintf(buffer, "- Change over %d days: %s %s, %s %s\n", size,
		first.Name, formatPercent(comparison.FirstChange, comparison.FirstChangeErr),
		second.Name, formatPercent(comparison.SecondChange, comparison.SecondChangeErr))
	fmt.Fprintf(buffer, "- Movement: %s\n", movementLine(first, second, comparison))
	if comparison.HasCorrelation && !math.IsNaN(comparison.Correlation) {
		fmt.Fprintf(buffer, "- Correlation: %.2f\n", comparison.Correlation)
	}

	buffer.WriteString("\nPurchase advice\n")
	if comparison.CurrentDiff == 0 {
		buffer.WriteString("- Both cost the same right now; price alone does not favor either\n")
	} else {
		cheaper := sideName(first, second, comparison.Cheaper)
		fmt.Fprintf(buffer, "- %s is cheaper right now; if both suit you equally, it is the better value\n", cheaper)
	}
	if comparison.BuyOpportunity != analysis.SideNone {
		name := sideName(first, second, comparison.BuyOpportunity)
		fmt.Fprintf(buffer, "- %s prices are falling faster, it may be a better near-term buy\n", name)
	}
	fmt.Fprintf(buffer, "- Recommended: %s\n", sideName(first, second, comparison.Recommended()))
	return buffer.String()
}

func sideName(first, second *model.Commodity, side analysis.Side) string {
	if side == analysis.SideFirst {
		return first.Name
	}
	return second.Name
}

func currentDiffLine(first, second *model.Commodity, comparison analysis.Comparison) string {
	percent := formatPercent(comparison.CurrentDiffPercent, comparison.CurrentDiffPercentErr)
	switch {
	case comparison.CurrentDiff > 0:
		return fmt.Sprintf("%s is %s %s more expensive than %s (%s)", first.Name,
			formatPrice(comparison.CurrentDiff), first.Currency, second.Name, percent)
	case comparison.CurrentDiff < 0:
		return fmt.Sprintf("%s is %s %s cheaper than %s (%s)", first.Name,
			formatPrice(-comparison.CurrentDiff), first.Currency, second.Name, percent)
	default:
		return fmt.Sprintf("%s and %s cost the same right now", first.Name, second.Name)
	}
}

func movementLine(first, second *model.Commodity, comparison analysis.Comparison) string {
	switch comparison.Movement {
	case analysis.SameDirectionFirstMore:
		return fmt.Sprintf("same direction, %s moved more", first.Name)
	case analysis.SameDirectionSecondMore:
		return fmt.Sprintf("same direction, %s moved more", second.Name)
	case analysis.SameDirectionEqual:
		return string(analysis.SameDirectionEqual)
	default:
		return fmt.Sprintf("%s, %s %s, %s %s", analysis.OppositeDirections,
			first.Name, comparison.FirstDirection, second.Name, comparison.SecondDirection)
	}
}
