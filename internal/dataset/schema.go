package dataset

import (
	"fmt"
	"strings"
)

// Table names, in foreign-key dependency order.
const (
	TableProducts   = "products"
	TableCustomers  = "customers"
	TableOrders     = "orders"
	TableOrderItems = "order_items"
	TableReviews    = "reviews"
)

// Column describes one relational column. The same description drives the
// CREATE TABLE DDL, the CSV header row, and the bulk-load column order, so the
// in-memory shapes and the store schema cannot drift apart.
type Column struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
	// References names the parent as "table(column)" for foreign keys.
	References string
}

// Table describes one relational table.
type Table struct {
	Name    string
	Columns []Column
}

// ColumnNames returns the column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// DDL renders the CREATE TABLE statement for this table.
func (t Table) DDL() string {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		def := fmt.Sprintf("    %-12s %s", c.Name, c.Type)
		if c.PrimaryKey {
			def += " PRIMARY KEY"
		} else if !c.Nullable {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}
	for _, c := range t.Columns {
		if c.References != "" {
			defs = append(defs, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s", c.Name, c.References))
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)", t.Name, strings.Join(defs, ",\n"))
}

// Tables lists the five dataset tables in dependency order: parents before
// children, so schema creation and bulk loading can walk it front to back and
// dropping can walk it back to front.
var Tables = []Table{
	{
		Name: TableProducts,
		Columns: []Column{
			{Name: "product_id", Type: "BIGINT", PrimaryKey: true},
			{Name: "name", Type: "TEXT"},
			{Name: "category", Type: "TEXT"},
			{Name: "unit_price", Type: "NUMERIC(10,2)"},
			{Name: "cost", Type: "NUMERIC(10,2)"},
			{Name: "active", Type: "BOOLEAN"},
		},
	},
	{
		Name: TableCustomers,
		Columns: []Column{
			{Name: "customer_id", Type: "BIGINT", PrimaryKey: true},
			{Name: "first_name", Type: "TEXT"},
			{Name: "last_name", Type: "TEXT"},
			{Name: "email", Type: "TEXT"},
			{Name: "city", Type: "TEXT"},
			{Name: "state", Type: "TEXT"},
			{Name: "signup_date", Type: "DATE"},
			{Name: "loyalty_tier", Type: "TEXT"},
		},
	},
	{
		Name: TableOrders,
		Columns: []Column{
			{Name: "order_id", Type: "BIGINT", PrimaryKey: true},
			{Name: "customer_id", Type: "BIGINT", References: "customers(customer_id)"},
			{Name: "order_date", Type: "TIMESTAMP"},
			{Name: "order_status", Type: "TEXT"},
			{Name: "shipping_method", Type: "TEXT"},
			{Name: "order_total", Type: "NUMERIC(10,2)"},
		},
	},
	{
		Name: TableOrderItems,
		Columns: []Column{
			{Name: "order_item_id", Type: "BIGINT", PrimaryKey: true},
			{Name: "order_id", Type: "BIGINT", References: "orders(order_id)"},
			{Name: "product_id", Type: "BIGINT", References: "products(product_id)"},
			{Name: "quantity", Type: "INTEGER"},
			{Name: "unit_price", Type: "NUMERIC(10,2)"},
			{Name: "line_total", Type: "NUMERIC(10,2)"},
		},
	},
	{
		Name: TableReviews,
		Columns: []Column{
			{Name: "review_id", Type: "BIGINT", PrimaryKey: true},
			{Name: "order_id", Type: "BIGINT", References: "orders(order_id)"},
			{Name: "product_id", Type: "BIGINT", References: "products(product_id)"},
			{Name: "customer_id", Type: "BIGINT", References: "customers(customer_id)"},
			{Name: "rating", Type: "INTEGER"},
			{Name: "review_date", Type: "TIMESTAMP"},
			{Name: "review_text", Type: "TEXT"},
		},
	},
}

// TableByName returns the table description for name.
func TableByName(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
