package datagen

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/joshika202/ecom-cursor-project/internal/dataset"
	"github.com/joshika202/ecom-cursor-project/internal/logging"
)

// Reference data for synthetic values. Names and categories are fixed lists so
// the dataset stays small and readable; everything else comes from the faker.
var (
	productCategories = []string{
		"Electronics", "Home", "Outdoors", "Sports", "Beauty",
		"Automotive", "Toys", "Fashion", "Books", "Grocery",
	}
	productAdjectives = []string{
		"Premium", "Compact", "Eco", "Smart", "Classic",
		"Deluxe", "Lightweight", "Portable", "Advanced", "Essential",
	}
	productNouns = []string{
		"Speaker", "Backpack", "Bottle", "Lamp", "Watch",
		"Camera", "Shoes", "Notebook", "Headphones", "Mixer",
	}
	loyaltyTiers    = []string{"Bronze", "Silver", "Gold", "Platinum"}
	shippingMethods = []string{"ground", "express", "pickup"}
	reviewTexts     = []string{
		"Great quality and fast shipping.",
		"Decent product for the price.",
		"Exceeded expectations!",
		"Not satisfied with the durability.",
		"Would definitely recommend to friends.",
	}

	orderStatuses = []dataset.OrderStatus{
		dataset.OrderPending, dataset.OrderProcessing, dataset.OrderCompleted,
		dataset.OrderShipped, dataset.OrderCancelled,
	}
	orderStatusWeights = []int{5, 20, 40, 30, 5}

	// Ratings skew high: most purchases that get reviewed were liked.
	ratings       = []int{1, 2, 3, 4, 5}
	ratingWeights = []int{5, 10, 15, 30, 40}
)

const maxItemQuantity = 4

// Config holds the generation parameters for one run.
type Config struct {
	// Seed drives all randomness. Equal seed and counts reproduce the
	// dataset exactly.
	Seed uint64

	Products  int
	Customers int
	Orders    int

	// MaxItemsPerOrder bounds the line items per order (at least 1 each).
	MaxItemsPerOrder int

	// ReviewProbability is the chance a review-eligible order gets a review.
	ReviewProbability float64

	// OrderWindowStart and OrderWindowEnd bound order dates. Customer
	// signups fall in the year before the window so signup dates never
	// trail order dates.
	OrderWindowStart time.Time
	OrderWindowEnd   time.Time
}

// ConfigError reports an invalid generation parameter. It is fatal to the
// run; nothing is generated.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid generation config: %s %s", e.Field, e.Reason)
}

// Validate checks the generation parameters.
func (c Config) Validate() error {
	if c.Products <= 0 {
		return &ConfigError{Field: "products", Reason: "must be positive"}
	}
	if c.Customers <= 0 {
		return &ConfigError{Field: "customers", Reason: "must be positive"}
	}
	if c.Orders <= 0 {
		return &ConfigError{Field: "orders", Reason: "must be positive"}
	}
	if c.MaxItemsPerOrder < 1 {
		return &ConfigError{Field: "max_items_per_order", Reason: "must be at least 1"}
	}
	if c.ReviewProbability < 0 || c.ReviewProbability > 1 {
		return &ConfigError{Field: "review_probability", Reason: "must be within [0, 1]"}
	}
	if c.OrderWindowEnd.Before(c.OrderWindowStart) {
		return &ConfigError{Field: "order_window", Reason: "end precedes start"}
	}
	return nil
}

// Generator produces one dataset from a validated config.
type Generator struct {
	cfg   Config
	faker *Faker
}

// New creates a generator, validating the config first.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, faker: NewFaker(cfg.Seed)}, nil
}

// Generate produces the five entity collections. IDs are assigned
// sequentially from 1 per table; every foreign key references a row generated
// earlier in the same run.
func (g *Generator) Generate() *dataset.Dataset {
	d := &dataset.Dataset{}
	g.generateProducts(d)
	g.generateCustomers(d)
	g.generateOrders(d)
	g.generateReviews(d)

	logging.Info().
		Uint64("seed", g.cfg.Seed).
		Int("products", len(d.Products)).
		Int("customers", len(d.Customers)).
		Int("orders", len(d.Orders)).
		Int("order_items", len(d.Items)).
		Int("reviews", len(d.Reviews)).
		Msg("Dataset generated")
	return d
}

func (g *Generator) generateProducts(d *dataset.Dataset) {
	d.Products = make([]dataset.Product, 0, g.cfg.Products)
	for id := int64(1); id <= int64(g.cfg.Products); id++ {
		cost := dataset.Cents(g.faker.Int(500, 8000))
		markup := g.faker.Float64(1.2, 2.5)
		price := dataset.Cents(math.Round(float64(cost) * markup))

		d.Products = append(d.Products, dataset.Product{
			ID:        id,
			Name:      Choose(g.faker, productAdjectives) + " " + Choose(g.faker, productNouns),
			Category:  Choose(g.faker, productCategories),
			UnitPrice: price,
			Cost:      cost,
			Active:    g.faker.Int(1, 4) != 4, // mostly active
		})
	}
}

func (g *Generator) generateCustomers(d *dataset.Dataset) {
	signupStart := g.cfg.OrderWindowStart.AddDate(-1, 0, 0)

	d.Customers = make([]dataset.Customer, 0, g.cfg.Customers)
	for id := int64(1); id <= int64(g.cfg.Customers); id++ {
		first := g.faker.FirstName()
		last := g.faker.LastName()
		signup := g.faker.DateRange(signupStart, g.cfg.OrderWindowEnd).UTC()
		signup = time.Date(signup.Year(), signup.Month(), signup.Day(), 0, 0, 0, 0, time.UTC)

		d.Customers = append(d.Customers, dataset.Customer{
			ID:          id,
			FirstName:   first,
			LastName:    last,
			Email:       fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), id),
			City:        g.faker.City(),
			State:       g.faker.State(),
			SignupDate:  signup,
			LoyaltyTier: Choose(g.faker, loyaltyTiers),
		})
	}
}

func (g *Generator) generateOrders(d *dataset.Dataset) {
	d.Orders = make([]dataset.Order, 0, g.cfg.Orders)
	d.Items = make([]dataset.OrderItem, 0, g.cfg.Orders)

	itemID := int64(1)
	for id := int64(1); id <= int64(g.cfg.Orders); id++ {
		customer := d.Customers[g.faker.Int(0, len(d.Customers)-1)]

		// A customer cannot order before signing up.
		start := g.cfg.OrderWindowStart
		if customer.SignupDate.After(start) {
			start = customer.SignupDate
		}
		orderDate := g.faker.DateRange(start, g.cfg.OrderWindowEnd).UTC().Truncate(time.Second)

		var total dataset.Cents
		numItems := g.faker.Int(1, g.cfg.MaxItemsPerOrder)
		for j := 0; j < numItems; j++ {
			product := d.Products[g.faker.Int(0, len(d.Products)-1)]
			qty := g.faker.Int(1, maxItemQuantity)
			lineTotal := dataset.Cents(int64(qty)) * product.UnitPrice

			d.Items = append(d.Items, dataset.OrderItem{
				ID:        itemID,
				OrderID:   id,
				ProductID: product.ID,
				Quantity:  qty,
				UnitPrice: product.UnitPrice,
				LineTotal: lineTotal,
			})
			total += lineTotal
			itemID++
		}

		d.Orders = append(d.Orders, dataset.Order{
			ID:             id,
			CustomerID:     customer.ID,
			OrderDate:      orderDate,
			Status:         ChooseWeighted(g.faker, orderStatuses, orderStatusWeights),
			ShippingMethod: Choose(g.faker, shippingMethods),
			Total:          total,
		})
	}
}

func (g *Generator) generateReviews(d *dataset.Dataset) {
	// Items are generated in order-id order, so group them with one pass.
	itemsByOrder := make(map[int64][]dataset.OrderItem, len(d.Orders))
	for _, it := range d.Items {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
	}

	reviewID := int64(1)
	for _, o := range d.Orders {
		if !o.Status.ReviewEligible() {
			continue
		}
		if g.faker.Float64(0, 1) >= g.cfg.ReviewProbability {
			continue
		}

		items := itemsByOrder[o.ID]
		reviewed := items[g.faker.Int(0, len(items)-1)]
		reviewDate := g.faker.DateRange(o.OrderDate, g.cfg.OrderWindowEnd).UTC().Truncate(time.Second)

		d.Reviews = append(d.Reviews, dataset.Review{
			ID:         reviewID,
			OrderID:    o.ID,
			ProductID:  reviewed.ProductID,
			CustomerID: o.CustomerID,
			Rating:     ChooseWeighted(g.faker, ratings, ratingWeights),
			ReviewDate: reviewDate,
			Text:       Choose(g.faker, reviewTexts),
		})
		reviewID++
	}
}
