package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Products: []Product{
			{ID: 1, Name: "Premium Speaker", Category: "Electronics", UnitPrice: 1000, Cost: 500, Active: true},
			{ID: 2, Name: "Classic Lamp", Category: "Home", UnitPrice: 2550, Cost: 1000, Active: false},
		},
		Customers: []Customer{
			{ID: 1, FirstName: "Ada", LastName: "Hale", Email: "ada.hale1@example.com",
				City: "Portland", State: "OR",
				SignupDate:  time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				LoyaltyTier: "Gold"},
		},
		Orders: []Order{
			{ID: 1, CustomerID: 1,
				OrderDate: time.Date(2025, 2, 1, 10, 30, 15, 0, time.UTC),
				Status:    OrderCompleted, ShippingMethod: "ground", Total: 4550},
		},
		Items: []OrderItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: 1000, LineTotal: 2000},
			{ID: 2, OrderID: 1, ProductID: 2, Quantity: 1, UnitPrice: 2550, LineTotal: 2550},
		},
		Reviews: []Review{
			{ID: 1, OrderID: 1, ProductID: 1, CustomerID: 1, Rating: 5,
				ReviewDate: time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC),
				Text:       "Exceeded expectations!"},
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d := sampleDataset()

	if err := WriteDir(dir, d); err != nil {
		t.Fatalf("WriteDir failed: %v", err)
	}

	got, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	if !reflect.DeepEqual(d.Products, got.Products) {
		t.Errorf("Products changed over round trip:\nwrote %+v\nread  %+v", d.Products, got.Products)
	}
	if !reflect.DeepEqual(d.Customers, got.Customers) {
		t.Errorf("Customers changed over round trip:\nwrote %+v\nread  %+v", d.Customers, got.Customers)
	}
	if !reflect.DeepEqual(d.Orders, got.Orders) {
		t.Errorf("Orders changed over round trip:\nwrote %+v\nread  %+v", d.Orders, got.Orders)
	}
	if !reflect.DeepEqual(d.Items, got.Items) {
		t.Errorf("Items changed over round trip:\nwrote %+v\nread  %+v", d.Items, got.Items)
	}
	if !reflect.DeepEqual(d.Reviews, got.Reviews) {
		t.Errorf("Reviews changed over round trip:\nwrote %+v\nread  %+v", d.Reviews, got.Reviews)
	}
}

func TestWriteDirDeterministic(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	d := sampleDataset()

	if err := WriteDir(dir1, d); err != nil {
		t.Fatalf("WriteDir failed: %v", err)
	}
	if err := WriteDir(dir2, d); err != nil {
		t.Fatalf("WriteDir failed: %v", err)
	}

	for _, tbl := range Tables {
		name := tbl.Name + ".csv"
		b1, err := os.ReadFile(filepath.Join(dir1, name))
		if err != nil {
			t.Fatalf("Reading %s: %v", name, err)
		}
		b2, err := os.ReadFile(filepath.Join(dir2, name))
		if err != nil {
			t.Fatalf("Reading %s: %v", name, err)
		}
		if string(b1) != string(b2) {
			t.Errorf("%s differs between identical writes", name)
		}
	}
}

func TestWriteDirCreatesAllFiles(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDir(dir, sampleDataset()); err != nil {
		t.Fatalf("WriteDir failed: %v", err)
	}

	for _, tbl := range Tables {
		path := filepath.Join(dir, tbl.Name+".csv")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected %s to exist: %v", path, err)
		}
	}
}

func TestReadDirMissingFile(t *testing.T) {
	if _, err := ReadDir(t.TempDir()); err == nil {
		t.Error("ReadDir on empty directory should fail")
	}
}

func TestReadDirHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDir(dir, sampleDataset()); err != nil {
		t.Fatalf("WriteDir failed: %v", err)
	}

	// Corrupt the products header.
	path := filepath.Join(dir, TableProducts+".csv")
	content := "wrong_id,name,category,unit_price,cost,active\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Rewriting %s: %v", path, err)
	}

	if _, err := ReadDir(dir); err == nil {
		t.Error("ReadDir should reject a mismatched header")
	}
}

func TestReadDirBadRow(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDir(dir, sampleDataset()); err != nil {
		t.Fatalf("WriteDir failed: %v", err)
	}

	path := filepath.Join(dir, TableOrderItems+".csv")
	content := "order_item_id,order_id,product_id,quantity,unit_price,line_total\n" +
		"1,1,1,two,10.00,20.00\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Rewriting %s: %v", path, err)
	}

	if _, err := ReadDir(dir); err == nil {
		t.Error("ReadDir should reject an unparseable quantity")
	}
}
