// Package integrity validates a generated dataset before it is persisted.
// It is a pure check pass: it never mutates entities, it only rejects the
// batch. Catching a generator bug here is much cheaper than chasing a wrong
// aggregate out of the query layer later.
package integrity

import (
	"fmt"

	"github.com/joshika202/ecom-cursor-project/internal/dataset"
)

// Violation reports a dataset row that breaks an invariant. A violation means
// the generator itself is buggy, so it is fatal and never dropped.
type Violation struct {
	Table string
	ID    int64
	Rule  string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("integrity violation in %s row %d: %s", v.Table, v.ID, v.Rule)
}

// Validate checks referential closure and the value invariants of every
// entity in d. It returns the first *Violation found, or nil.
func Validate(d *dataset.Dataset) error {
	products := make(map[int64]dataset.Product, len(d.Products))
	for i, p := range d.Products {
		if p.ID != int64(i)+1 {
			return &Violation{Table: dataset.TableProducts, ID: p.ID, Rule: "ids must be sequential from 1"}
		}
		if p.UnitPrice <= 0 {
			return &Violation{Table: dataset.TableProducts, ID: p.ID, Rule: "unit price must be positive"}
		}
		products[p.ID] = p
	}

	customers := make(map[int64]dataset.Customer, len(d.Customers))
	for i, c := range d.Customers {
		if c.ID != int64(i)+1 {
			return &Violation{Table: dataset.TableCustomers, ID: c.ID, Rule: "ids must be sequential from 1"}
		}
		customers[c.ID] = c
	}

	orders := make(map[int64]dataset.Order, len(d.Orders))
	for i, o := range d.Orders {
		if o.ID != int64(i)+1 {
			return &Violation{Table: dataset.TableOrders, ID: o.ID, Rule: "ids must be sequential from 1"}
		}
		customer, ok := customers[o.CustomerID]
		if !ok {
			return &Violation{Table: dataset.TableOrders, ID: o.ID,
				Rule: fmt.Sprintf("customer_id %d does not exist", o.CustomerID)}
		}
		if o.OrderDate.Before(customer.SignupDate) {
			return &Violation{Table: dataset.TableOrders, ID: o.ID, Rule: "order date precedes customer signup"}
		}
		orders[o.ID] = o
	}

	// Recompute each order total from its lines and demand exact agreement.
	itemsPerOrder := make(map[int64]int, len(d.Orders))
	lineTotals := make(map[int64]dataset.Cents, len(d.Orders))
	for i, it := range d.Items {
		if it.ID != int64(i)+1 {
			return &Violation{Table: dataset.TableOrderItems, ID: it.ID, Rule: "ids must be sequential from 1"}
		}
		if _, ok := orders[it.OrderID]; !ok {
			return &Violation{Table: dataset.TableOrderItems, ID: it.ID,
				Rule: fmt.Sprintf("order_id %d does not exist", it.OrderID)}
		}
		if _, ok := products[it.ProductID]; !ok {
			return &Violation{Table: dataset.TableOrderItems, ID: it.ID,
				Rule: fmt.Sprintf("product_id %d does not exist", it.ProductID)}
		}
		if it.Quantity < 1 {
			return &Violation{Table: dataset.TableOrderItems, ID: it.ID, Rule: "quantity must be at least 1"}
		}
		if it.LineTotal != dataset.Cents(int64(it.Quantity))*it.UnitPrice {
			return &Violation{Table: dataset.TableOrderItems, ID: it.ID,
				Rule: "line total must equal quantity times unit price"}
		}
		itemsPerOrder[it.OrderID]++
		lineTotals[it.OrderID] += it.LineTotal
	}

	for _, o := range d.Orders {
		if itemsPerOrder[o.ID] == 0 {
			return &Violation{Table: dataset.TableOrders, ID: o.ID, Rule: "order has no items"}
		}
		if o.Total != lineTotals[o.ID] {
			return &Violation{Table: dataset.TableOrders, ID: o.ID,
				Rule: fmt.Sprintf("order total %s does not equal item sum %s", o.Total, lineTotals[o.ID])}
		}
	}

	for i, r := range d.Reviews {
		if r.ID != int64(i)+1 {
			return &Violation{Table: dataset.TableReviews, ID: r.ID, Rule: "ids must be sequential from 1"}
		}
		order, ok := orders[r.OrderID]
		if !ok {
			return &Violation{Table: dataset.TableReviews, ID: r.ID,
				Rule: fmt.Sprintf("order_id %d does not exist", r.OrderID)}
		}
		if !order.Status.ReviewEligible() {
			return &Violation{Table: dataset.TableReviews, ID: r.ID,
				Rule: fmt.Sprintf("order %d status %q is not review eligible", r.OrderID, order.Status)}
		}
		if _, ok := products[r.ProductID]; !ok {
			return &Violation{Table: dataset.TableReviews, ID: r.ID,
				Rule: fmt.Sprintf("product_id %d does not exist", r.ProductID)}
		}
		if r.CustomerID != order.CustomerID {
			return &Violation{Table: dataset.TableReviews, ID: r.ID,
				Rule: "review customer must match order customer"}
		}
		if r.Rating < 1 || r.Rating > 5 {
			return &Violation{Table: dataset.TableReviews, ID: r.ID, Rule: "rating must be within 1..5"}
		}
	}

	return nil
}
