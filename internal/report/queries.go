// Package report runs the fixed analytical queries against the loaded store
// and renders their results as text tables or charts.
package report

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/joshika202/ecom-cursor-project/internal/store"
)

// DB is the read-only query surface the report layer needs. Both
// *pgxpool.Pool and *pgx.Conn satisfy it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CustomerRevenue is one row of the top-customers result.
type CustomerRevenue struct {
	CustomerID  int64
	Name        string
	LoyaltyTier string
	Revenue     float64
}

// ProductSales is one row of the top-products result.
type ProductSales struct {
	ProductID int64
	Name      string
	Category  string
	UnitsSold int64
	Revenue   float64
}

// OrderLine is one row of the recent-order-items result.
type OrderLine struct {
	OrderID      int64
	OrderDate    time.Time
	CustomerName string
	ProductName  string
	Quantity     int
	LineTotal    float64
}

// CategoryRevenue is one row of the revenue-by-category result.
type CategoryRevenue struct {
	Category string
	Revenue  float64
}

// TopCustomersByRevenue returns up to n customers ordered by total revenue
// descending, ties broken by ascending customer id. Revenue is recomputed
// from order items, not read from the denormalized order total, so the result
// is exactly the sum the generator promised.
func TopCustomersByRevenue(ctx context.Context, db DB, n int) ([]CustomerRevenue, error) {
	rows, err := db.Query(ctx, `
        SELECT
            c.customer_id,
            c.first_name || ' ' || c.last_name AS customer_name,
            c.loyalty_tier,
            SUM(oi.quantity * oi.unit_price)::float8 AS total_revenue
        FROM customers c
        JOIN orders o ON o.customer_id = c.customer_id
        JOIN order_items oi ON oi.order_id = o.order_id
        GROUP BY c.customer_id
        ORDER BY total_revenue DESC, c.customer_id ASC
        LIMIT $1
    `, limit(n))
	if err != nil {
		return nil, &store.UnavailableError{Op: "top customers query", Err: err}
	}
	defer rows.Close()

	var result []CustomerRevenue
	for rows.Next() {
		var r CustomerRevenue
		if err := rows.Scan(&r.CustomerID, &r.Name, &r.LoyaltyTier, &r.Revenue); err != nil {
			return nil, &store.UnavailableError{Op: "top customers scan", Err: err}
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.UnavailableError{Op: "top customers query", Err: err}
	}
	return result, nil
}

// TopProductsByUnitsSold returns up to n products ordered by units sold
// descending, ties broken by ascending product id.
func TopProductsByUnitsSold(ctx context.Context, db DB, n int) ([]ProductSales, error) {
	rows, err := db.Query(ctx, `
        SELECT
            p.product_id,
            p.name,
            p.category,
            SUM(oi.quantity) AS units_sold,
            SUM(oi.line_total)::float8 AS revenue
        FROM products p
        JOIN order_items oi ON oi.product_id = p.product_id
        GROUP BY p.product_id
        ORDER BY units_sold DESC, p.product_id ASC
        LIMIT $1
    `, limit(n))
	if err != nil {
		return nil, &store.UnavailableError{Op: "top products query", Err: err}
	}
	defer rows.Close()

	var result []ProductSales
	for rows.Next() {
		var r ProductSales
		if err := rows.Scan(&r.ProductID, &r.Name, &r.Category, &r.UnitsSold, &r.Revenue); err != nil {
			return nil, &store.UnavailableError{Op: "top products scan", Err: err}
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.UnavailableError{Op: "top products query", Err: err}
	}
	return result, nil
}

// RecentOrderItems returns the n most recent line items, newest order date
// first, ties broken by descending order id.
func RecentOrderItems(ctx context.Context, db DB, n int) ([]OrderLine, error) {
	rows, err := db.Query(ctx, `
        SELECT
            o.order_id,
            o.order_date,
            c.first_name || ' ' || c.last_name AS customer_name,
            p.name AS product_name,
            oi.quantity,
            oi.line_total::float8
        FROM orders o
        JOIN customers c ON c.customer_id = o.customer_id
        JOIN order_items oi ON oi.order_id = o.order_id
        JOIN products p ON p.product_id = oi.product_id
        ORDER BY o.order_date DESC, o.order_id DESC
        LIMIT $1
    `, limit(n))
	if err != nil {
		return nil, &store.UnavailableError{Op: "recent order items query", Err: err}
	}
	defer rows.Close()

	var result []OrderLine
	for rows.Next() {
		var r OrderLine
		if err := rows.Scan(&r.OrderID, &r.OrderDate, &r.CustomerName, &r.ProductName, &r.Quantity, &r.LineTotal); err != nil {
			return nil, &store.UnavailableError{Op: "recent order items scan", Err: err}
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.UnavailableError{Op: "recent order items query", Err: err}
	}
	return result, nil
}

// RevenueByCategory returns total item revenue per product category, highest
// first.
func RevenueByCategory(ctx context.Context, db DB) ([]CategoryRevenue, error) {
	rows, err := db.Query(ctx, `
        SELECT
            p.category,
            SUM(oi.line_total)::float8 AS revenue
        FROM products p
        JOIN order_items oi ON oi.product_id = p.product_id
        GROUP BY p.category
        ORDER BY revenue DESC, p.category ASC
    `)
	if err != nil {
		return nil, &store.UnavailableError{Op: "revenue by category query", Err: err}
	}
	defer rows.Close()

	var result []CategoryRevenue
	for rows.Next() {
		var r CategoryRevenue
		if err := rows.Scan(&r.Category, &r.Revenue); err != nil {
			return nil, &store.UnavailableError{Op: "revenue by category scan", Err: err}
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.UnavailableError{Op: "revenue by category query", Err: err}
	}
	return result, nil
}

// limit clamps n so a negative limit reads as zero rows rather than a SQL
// error.
func limit(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
