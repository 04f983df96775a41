package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// WriteDir writes the five entity collections as CSV files under dir, one file
// per table, header row first. Files are named <table>.csv.
func WriteDir(dir string, d *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	for _, t := range Tables {
		if err := writeTable(dir, t, records(t.Name, d)); err != nil {
			return err
		}
	}
	return nil
}

// ReadDir reads the five CSV files from dir back into a Dataset.
func ReadDir(dir string) (*Dataset, error) {
	d := &Dataset{}
	for _, t := range Tables {
		rows, err := readTable(dir, t)
		if err != nil {
			return nil, err
		}
		if err := parseRows(t.Name, rows, d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func writeTable(dir string, t Table, rows [][]string) error {
	path := filepath.Join(dir, t.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("writing %s header: %w", t.Name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s rows: %w", t.Name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", t.Name, err)
	}
	return f.Close()
}

func readTable(dir string, t Table) ([][]string, error) {
	path := filepath.Join(dir, t.Name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(t.Columns)
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	for i, name := range t.ColumnNames() {
		if all[0][i] != name {
			return nil, fmt.Errorf("%s: header column %d is %q, want %q", path, i, all[0][i], name)
		}
	}
	return all[1:], nil
}

func records(table string, d *Dataset) [][]string {
	switch table {
	case TableProducts:
		rows := make([][]string, len(d.Products))
		for i, p := range d.Products {
			rows[i] = []string{
				strconv.FormatInt(p.ID, 10),
				p.Name,
				p.Category,
				p.UnitPrice.String(),
				p.Cost.String(),
				strconv.FormatBool(p.Active),
			}
		}
		return rows
	case TableCustomers:
		rows := make([][]string, len(d.Customers))
		for i, c := range d.Customers {
			rows[i] = []string{
				strconv.FormatInt(c.ID, 10),
				c.FirstName,
				c.LastName,
				c.Email,
				c.City,
				c.State,
				c.SignupDate.Format(DateFormat),
				c.LoyaltyTier,
			}
		}
		return rows
	case TableOrders:
		rows := make([][]string, len(d.Orders))
		for i, o := range d.Orders {
			rows[i] = []string{
				strconv.FormatInt(o.ID, 10),
				strconv.FormatInt(o.CustomerID, 10),
				o.OrderDate.Format(DateTimeFormat),
				string(o.Status),
				o.ShippingMethod,
				o.Total.String(),
			}
		}
		return rows
	case TableOrderItems:
		rows := make([][]string, len(d.Items))
		for i, it := range d.Items {
			rows[i] = []string{
				strconv.FormatInt(it.ID, 10),
				strconv.FormatInt(it.OrderID, 10),
				strconv.FormatInt(it.ProductID, 10),
				strconv.Itoa(it.Quantity),
				it.UnitPrice.String(),
				it.LineTotal.String(),
			}
		}
		return rows
	case TableReviews:
		rows := make([][]string, len(d.Reviews))
		for i, r := range d.Reviews {
			rows[i] = []string{
				strconv.FormatInt(r.ID, 10),
				strconv.FormatInt(r.OrderID, 10),
				strconv.FormatInt(r.ProductID, 10),
				strconv.FormatInt(r.CustomerID, 10),
				strconv.Itoa(r.Rating),
				r.ReviewDate.Format(DateTimeFormat),
				r.Text,
			}
		}
		return rows
	}
	return nil
}

func parseRows(table string, rows [][]string, d *Dataset) error {
	for n, rec := range rows {
		if err := parseRow(table, rec, d); err != nil {
			return fmt.Errorf("%s.csv row %d: %w", table, n+1, err)
		}
	}
	return nil
}

func parseRow(table string, rec []string, d *Dataset) error {
	switch table {
	case TableProducts:
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return err
		}
		price, err := ParseCents(rec[3])
		if err != nil {
			return err
		}
		cost, err := ParseCents(rec[4])
		if err != nil {
			return err
		}
		active, err := strconv.ParseBool(rec[5])
		if err != nil {
			return err
		}
		d.Products = append(d.Products, Product{
			ID: id, Name: rec[1], Category: rec[2],
			UnitPrice: price, Cost: cost, Active: active,
		})
	case TableCustomers:
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return err
		}
		signup, err := time.Parse(DateFormat, rec[6])
		if err != nil {
			return err
		}
		d.Customers = append(d.Customers, Customer{
			ID: id, FirstName: rec[1], LastName: rec[2], Email: rec[3],
			City: rec[4], State: rec[5], SignupDate: signup, LoyaltyTier: rec[7],
		})
	case TableOrders:
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return err
		}
		customerID, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return err
		}
		date, err := time.Parse(DateTimeFormat, rec[2])
		if err != nil {
			return err
		}
		total, err := ParseCents(rec[5])
		if err != nil {
			return err
		}
		d.Orders = append(d.Orders, Order{
			ID: id, CustomerID: customerID, OrderDate: date,
			Status: OrderStatus(rec[3]), ShippingMethod: rec[4], Total: total,
		})
	case TableOrderItems:
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return err
		}
		orderID, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return err
		}
		productID, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil {
			return err
		}
		qty, err := strconv.Atoi(rec[3])
		if err != nil {
			return err
		}
		price, err := ParseCents(rec[4])
		if err != nil {
			return err
		}
		total, err := ParseCents(rec[5])
		if err != nil {
			return err
		}
		d.Items = append(d.Items, OrderItem{
			ID: id, OrderID: orderID, ProductID: productID,
			Quantity: qty, UnitPrice: price, LineTotal: total,
		})
	case TableReviews:
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return err
		}
		orderID, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return err
		}
		productID, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil {
			return err
		}
		customerID, err := strconv.ParseInt(rec[3], 10, 64)
		if err != nil {
			return err
		}
		rating, err := strconv.Atoi(rec[4])
		if err != nil {
			return err
		}
		date, err := time.Parse(DateTimeFormat, rec[5])
		if err != nil {
			return err
		}
		d.Reviews = append(d.Reviews, Review{
			ID: id, OrderID: orderID, ProductID: productID, CustomerID: customerID,
			Rating: rating, ReviewDate: date, Text: rec[6],
		})
	}
	return nil
}
