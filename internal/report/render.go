package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/joshika202/ecom-cursor-project/internal/dataset"
)

// RenderCustomers writes the top-customers result as a text table.
func RenderCustomers(w io.Writer, rows []CustomerRevenue) {
	table := newTable(w, []string{"Customer ID", "Name", "Tier", "Revenue"})
	for _, r := range rows {
		table.Append([]string{
			strconv.FormatInt(r.CustomerID, 10),
			r.Name,
			r.LoyaltyTier,
			money(r.Revenue),
		})
	}
	table.Render()
}

// RenderProducts writes the top-products result as a text table.
func RenderProducts(w io.Writer, rows []ProductSales) {
	table := newTable(w, []string{"Product ID", "Name", "Category", "Units Sold", "Revenue"})
	for _, r := range rows {
		table.Append([]string{
			strconv.FormatInt(r.ProductID, 10),
			r.Name,
			r.Category,
			strconv.FormatInt(r.UnitsSold, 10),
			money(r.Revenue),
		})
	}
	table.Render()
}

// RenderOrderLines writes the recent-order-items result as a text table.
func RenderOrderLines(w io.Writer, rows []OrderLine) {
	table := newTable(w, []string{"Order ID", "Order Date", "Customer", "Product", "Qty", "Line Total"})
	for _, r := range rows {
		table.Append([]string{
			strconv.FormatInt(r.OrderID, 10),
			r.OrderDate.Format(dataset.DateTimeFormat),
			r.CustomerName,
			r.ProductName,
			strconv.Itoa(r.Quantity),
			money(r.LineTotal),
		})
	}
	table.Render()
}

// RenderCategories writes the revenue-by-category result as a text table.
func RenderCategories(w io.Writer, rows []CategoryRevenue) {
	table := newTable(w, []string{"Category", "Revenue"})
	for _, r := range rows {
		table.Append([]string{r.Category, money(r.Revenue)})
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
