package report

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// TopProductsChart renders the top-products result as a PNG bar chart.
func TopProductsChart(w io.Writer, rows []ProductSales) error {
	if len(rows) == 0 {
		return fmt.Errorf("no product sales to chart")
	}
	bars := make([]chart.Value, len(rows))
	for i, r := range rows {
		bars[i] = chart.Value{Label: r.Name, Value: float64(r.UnitsSold)}
	}
	graph := chart.BarChart{
		Title:    "Top Products by Units Sold",
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}
	return graph.Render(chart.PNG, w)
}

// CategoryRevenueChart renders the revenue-by-category result as a PNG bar
// chart.
func CategoryRevenueChart(w io.Writer, rows []CategoryRevenue) error {
	if len(rows) == 0 {
		return fmt.Errorf("no category revenue to chart")
	}
	bars := make([]chart.Value, len(rows))
	for i, r := range rows {
		bars[i] = chart.Value{Label: r.Category, Value: r.Revenue}
	}
	graph := chart.BarChart{
		Title:    "Revenue by Category",
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}
	return graph.Render(chart.PNG, w)
}
