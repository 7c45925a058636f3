package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/rodrigo-brito/pricebot/analysis"
	"github.com/rodrigo-brito/pricebot/model"
)

const (
	// TableSampleSize 单个商品的价格表最多显示 10 行
	TableSampleSize = 10
	// ComparisonSampleSize 比较表最多显示 8 行
	ComparisonSampleSize = 8
	// NotAvailable 表示除数为 0 等无法计算的数值
	NotAvailable = "n/a"
)

func formatPrice(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}

func formatSigned(value float64) string {
	return fmt.Sprintf("%+.1f", value)
}

func formatPercent(value float64, err error) string {
	if err != nil {
		return NotAvailable
	}
	return fmt.Sprintf("%+.1f%%", value)
}

func unitOf(commodity *model.Commodity) string {
	return commodity.Currency + "/" + commodity.Unit
}

func insufficient(commodity *model.Commodity) string {
	return fmt.Sprintf("[%s] %s\n", commodity.Name, analysis.InsufficientData)
}

// statsTable 以两列表格输出指标和值
func statsTable(w io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.AppendBulk(rows)
	table.Render()
}

// priceTable 输出抽样后的价格表，表格下方附上整个窗口的走势。
func priceTable(w io.Writer, points []model.PricePoint, unit string, size int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", fmt.Sprintf("Price (%s)", unit)})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, i := range analysis.SampleIndices(len(points), size) {
		table.Append([]string{points[i].Day(), formatPrice(points[i].Price)})
	}
	table.Render()

	fmt.Fprintf(w, "Trend: %s\n", analysis.ClassifyWindow(model.Prices(points)))
}

// Catalog 列出所有可查询的商品及其别名。
func Catalog(commodities []*model.Commodity, aliases func(id string) []string) string {
	buffer := bytes.NewBufferString("")
	fmt.Fprintf(buffer, "[Catalog] %d commodities\n\n", len(commodities))

	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"ID", "Name", "Price", "Aliases"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT})
	for _, commodity := range commodities {
		var names []string
		if aliases != nil {
			names = aliases(commodity.ID)
		}
		table.Append([]string{
			commodity.ID,
			commodity.Name,
			fmt.Sprintf("%s %s", formatPrice(commodity.Price), unitOf(commodity)),
			strings.Join(names, ", "),
		})
	}
	table.Render()
	return buffer.String()
}

// NotFound 列出所有无法识别的名称以及支持的商品。
func NotFound(names []string, commodities []*model.Commodity) string {
	quoted := lo.Map(names, func(name string, _ int) string {
		return strconv.Quote(name)
	})
	supported := lo.Map(commodities, func(commodity *model.Commodity, _ int) string {
		return fmt.Sprintf("%s (%s)", commodity.Name, commodity.ID)
	})

	return fmt.Sprintf("Cannot find price information for %s.\nSupported commodities: %s\n",
		strings.Join(quoted, ", "), strings.Join(supported, ", "))
}
