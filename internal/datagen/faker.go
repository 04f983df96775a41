// Package datagen generates the synthetic e-commerce dataset.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker wraps gofakeit behind the handful of generators this package needs.
// It is always seeded explicitly and passed by value-of-reference through the
// generation run, never shared globally, so independent runs cannot interfere
// and equal seeds reproduce equal datasets.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a seeded faker.
func NewFaker(seed uint64) *Faker {
	return &Faker{faker: gofakeit.New(seed)}
}

// Int generates a random integer in [min, max].
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 in [min, max].
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Bool generates a random boolean.
func (f *Faker) Bool() bool {
	return f.faker.Bool()
}

// FirstName generates a random first name.
func (f *Faker) FirstName() string {
	return f.faker.FirstName()
}

// LastName generates a random last name.
func (f *Faker) LastName() string {
	return f.faker.LastName()
}

// City generates a random city name.
func (f *Faker) City() string {
	return f.faker.City()
}

// State generates a random US state abbreviation.
func (f *Faker) State() string {
	return f.faker.StateAbr()
}

// DateRange generates a random time in [start, end].
func (f *Faker) DateRange(start, end time.Time) time.Time {
	return f.faker.DateRange(start, end)
}

// Choose returns a random element of items.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// ChooseWeighted returns a random element of items with probability
// proportional to its weight.
func ChooseWeighted[T any](f *Faker, items []T, weights []int) T {
	if len(items) == 0 || len(weights) != len(items) {
		var zero T
		return zero
	}

	total := 0
	for _, w := range weights {
		total += w
	}

	r := f.Int(1, total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return items[i]
		}
	}
	return items[len(items)-1]
}
