package datagen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshika202/ecom-cursor-project/internal/dataset"
)

func testConfig() Config {
	return Config{
		Seed:              42,
		Products:          50,
		Customers:         100,
		Orders:            500,
		MaxItemsPerOrder:  5,
		ReviewProbability: 0.6,
		OrderWindowStart:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		OrderWindowEnd:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "zero products", mutate: func(c *Config) { c.Products = 0 }, field: "products", wantErr: true},
		{name: "negative customers", mutate: func(c *Config) { c.Customers = -1 }, field: "customers", wantErr: true},
		{name: "zero orders", mutate: func(c *Config) { c.Orders = 0 }, field: "orders", wantErr: true},
		{name: "zero max items", mutate: func(c *Config) { c.MaxItemsPerOrder = 0 }, field: "max_items_per_order", wantErr: true},
		{name: "probability above one", mutate: func(c *Config) { c.ReviewProbability = 1.5 }, field: "review_probability", wantErr: true},
		{name: "negative probability", mutate: func(c *Config) { c.ReviewProbability = -0.1 }, field: "review_probability", wantErr: true},
		{name: "inverted window", mutate: func(c *Config) {
			c.OrderWindowStart, c.OrderWindowEnd = c.OrderWindowEnd, c.OrderWindowStart
		}, field: "order_window", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Orders = 0
	g, err := New(cfg)
	require.Error(t, err)
	assert.Nil(t, g)
}

func TestGenerateCounts(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	d := g.Generate()
	assert.Len(t, d.Products, 50)
	assert.Len(t, d.Customers, 100)
	assert.Len(t, d.Orders, 500)

	// Each order carries between 1 and MaxItemsPerOrder items.
	assert.GreaterOrEqual(t, len(d.Items), 500)
	assert.LessOrEqual(t, len(d.Items), 500*5)
}

func TestGenerateDeterminism(t *testing.T) {
	g1, err := New(testConfig())
	require.NoError(t, err)
	g2, err := New(testConfig())
	require.NoError(t, err)

	d1 := g1.Generate()
	d2 := g2.Generate()

	assert.Equal(t, d1.Products, d2.Products)
	assert.Equal(t, d1.Customers, d2.Customers)
	assert.Equal(t, d1.Orders, d2.Orders)
	assert.Equal(t, d1.Items, d2.Items)
	assert.Equal(t, d1.Reviews, d2.Reviews)
}

func TestGenerateDifferentSeeds(t *testing.T) {
	cfg1 := testConfig()
	cfg2 := testConfig()
	cfg2.Seed = 43

	g1, err := New(cfg1)
	require.NoError(t, err)
	g2, err := New(cfg2)
	require.NoError(t, err)

	d1 := g1.Generate()
	d2 := g2.Generate()
	assert.NotEqual(t, d1.Products, d2.Products)
}

func TestGenerateSequentialIDs(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)
	d := g.Generate()

	for i, p := range d.Products {
		require.Equal(t, int64(i+1), p.ID)
	}
	for i, c := range d.Customers {
		require.Equal(t, int64(i+1), c.ID)
	}
	for i, o := range d.Orders {
		require.Equal(t, int64(i+1), o.ID)
	}
	for i, it := range d.Items {
		require.Equal(t, int64(i+1), it.ID)
	}
	for i, r := range d.Reviews {
		require.Equal(t, int64(i+1), r.ID)
	}
}

func TestGenerateOrderTotals(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)
	d := g.Generate()

	totals := make(map[int64]dataset.Cents)
	for _, it := range d.Items {
		require.GreaterOrEqual(t, it.Quantity, 1)
		require.LessOrEqual(t, it.Quantity, maxItemQuantity)
		require.Equal(t, dataset.Cents(int64(it.Quantity))*it.UnitPrice, it.LineTotal)
		totals[it.OrderID] += it.LineTotal
	}

	for _, o := range d.Orders {
		require.Equal(t, totals[o.ID], o.Total, "order %d total mismatch", o.ID)
	}
}

func TestGeneratePriceSnapshot(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)
	d := g.Generate()

	prices := make(map[int64]dataset.Cents, len(d.Products))
	for _, p := range d.Products {
		require.Positive(t, p.UnitPrice)
		require.Positive(t, p.Cost)
		prices[p.ID] = p.UnitPrice
	}

	for _, it := range d.Items {
		require.Equal(t, prices[it.ProductID], it.UnitPrice)
	}
}

func TestGenerateOrderDatesRespectSignup(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)
	d := g.Generate()

	cfg := testConfig()
	signups := make(map[int64]time.Time, len(d.Customers))
	for _, c := range d.Customers {
		signups[c.ID] = c.SignupDate
	}

	for _, o := range d.Orders {
		require.False(t, o.OrderDate.Before(signups[o.CustomerID]),
			"order %d predates customer %d signup", o.ID, o.CustomerID)
		require.False(t, o.OrderDate.Before(cfg.OrderWindowStart))
		require.False(t, o.OrderDate.After(cfg.OrderWindowEnd))
	}
}

func TestGenerateReviews(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)
	d := g.Generate()

	orders := make(map[int64]dataset.Order, len(d.Orders))
	for _, o := range d.Orders {
		orders[o.ID] = o
	}
	orderProducts := make(map[int64]map[int64]bool)
	for _, it := range d.Items {
		if orderProducts[it.OrderID] == nil {
			orderProducts[it.OrderID] = make(map[int64]bool)
		}
		orderProducts[it.OrderID][it.ProductID] = true
	}

	eligible := 0
	for _, o := range d.Orders {
		if o.Status.ReviewEligible() {
			eligible++
		}
	}
	require.Positive(t, eligible)

	for _, r := range d.Reviews {
		o, ok := orders[r.OrderID]
		require.True(t, ok)
		require.True(t, o.Status.ReviewEligible(),
			"review %d on order %d with status %s", r.ID, o.ID, o.Status)
		require.Equal(t, o.CustomerID, r.CustomerID)
		require.True(t, orderProducts[r.OrderID][r.ProductID],
			"review %d names product %d not in order %d", r.ID, r.ProductID, r.OrderID)
		require.GreaterOrEqual(t, r.Rating, 1)
		require.LessOrEqual(t, r.Rating, 5)
		require.False(t, r.ReviewDate.Before(o.OrderDate))
	}

	// Roughly ReviewProbability of the eligible orders get reviews.
	ratio := float64(len(d.Reviews)) / float64(eligible)
	assert.InDelta(t, 0.6, ratio, 0.15)
}

func TestGenerateReviewProbabilityZero(t *testing.T) {
	cfg := testConfig()
	cfg.ReviewProbability = 0

	g, err := New(cfg)
	require.NoError(t, err)
	d := g.Generate()
	assert.Empty(t, d.Reviews)
}

func TestGenerateSmallDataset(t *testing.T) {
	cfg := testConfig()
	cfg.Products = 1
	cfg.Customers = 1
	cfg.Orders = 1
	cfg.MaxItemsPerOrder = 1

	g, err := New(cfg)
	require.NoError(t, err)
	d := g.Generate()

	require.Len(t, d.Orders, 1)
	require.Len(t, d.Items, 1)
	assert.Equal(t, int64(1), d.Items[0].OrderID)
	assert.Equal(t, int64(1), d.Items[0].ProductID)
	assert.Equal(t, int64(1), d.Orders[0].CustomerID)
}
