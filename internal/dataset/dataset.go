// Package dataset defines the five e-commerce entities, the container that
// holds one generated batch of them, and the shared table descriptions used by
// both the CSV boundary and the database loader.
package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cents is a money amount in integer cents. Keeping money integral in memory
// means order totals can be checked for exact equality against the sum of
// their line totals.
type Cents int64

// Float returns the amount in dollars for handoff to NUMERIC(10,2) columns.
func (c Cents) Float() float64 {
	return float64(c) / 100
}

// String formats the amount as a decimal dollar string, e.g. "12.05".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// ParseCents parses a decimal dollar string produced by Cents.String.
func ParseCents(s string) (Cents, error) {
	whole, frac, found := strings.Cut(s, ".")
	if !found {
		frac = "00"
	}
	if len(frac) != 2 {
		return 0, fmt.Errorf("invalid money amount %q", s)
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid money amount %q", s)
	}
	if strings.HasPrefix(whole, "-") {
		return Cents(w*100 - f), nil
	}
	return Cents(w*100 + f), nil
}

// OrderStatus is the lifecycle state an order was generated in.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderShipped    OrderStatus = "shipped"
	OrderCancelled  OrderStatus = "cancelled"
)

// ReviewEligible reports whether an order in this status may receive a review.
// Only orders that reached the customer qualify.
func (s OrderStatus) ReviewEligible() bool {
	return s == OrderCompleted || s == OrderShipped
}

// Product is one catalog entry. The price is fixed at creation; order items
// snapshot it rather than referencing it.
type Product struct {
	ID        int64
	Name      string
	Category  string
	UnitPrice Cents
	Cost      Cents
	Active    bool
}

// Customer is one registered account.
type Customer struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	City        string
	State       string
	SignupDate  time.Time
	LoyaltyTier string
}

// FullName returns the customer's display name as the queries report it.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Order is one purchase header. Total is always the exact sum of the order's
// item line totals.
type Order struct {
	ID             int64
	CustomerID     int64
	OrderDate      time.Time
	Status         OrderStatus
	ShippingMethod string
	Total          Cents
}

// OrderItem is one purchased line. UnitPrice is the product price snapshot
// taken when the order was generated.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice Cents
	LineTotal Cents
}

// Review is customer feedback attached to a review-eligible order.
type Review struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	CustomerID int64
	Rating     int
	ReviewDate time.Time
	Text       string
}

// Dataset holds one internally consistent generation batch. Entities are
// immutable once generated; downstream stages only read them.
type Dataset struct {
	Products  []Product
	Customers []Customer
	Orders    []Order
	Items     []OrderItem
	Reviews   []Review
}

// Rows returns the row count for the named table.
func (d *Dataset) Rows(table string) int {
	switch table {
	case TableProducts:
		return len(d.Products)
	case TableCustomers:
		return len(d.Customers)
	case TableOrders:
		return len(d.Orders)
	case TableOrderItems:
		return len(d.Items)
	case TableReviews:
		return len(d.Reviews)
	}
	return 0
}

// Timestamp formats used at the CSV boundary. Orders and reviews carry a time
// of day, signups are date-only, matching the persisted column types.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
