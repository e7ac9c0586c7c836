package kernel

import (
	"fmt"
	"math"

	"storefront/internal/pkg/errs"
)

// Money is a non-negative single-currency amount held as integer cents.
// Addition and quantity multiplication are exact; only construction from a
// float and rate multiplication round, to two decimals, half away from zero.
//
// The zero value is a valid 0.00 amount.
type Money struct {
	cents int64
}

// NewMoney creates a Money from a decimal amount, rounding to cents.
// Returns an error for negative or non-finite amounts.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// MoneyFromCents creates a Money directly from cents.
// Used by persistence adapters restoring stored amounts.
func MoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("cents",
			fmt.Errorf("%d is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the decimal amount. Intended for display payloads only;
// arithmetic stays in cents.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQty returns the amount multiplied by a non-negative quantity, exactly.
func (m Money) MulQty(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

// MulRate returns the amount multiplied by a rate, rounded to cents.
func (m Money) MulRate(rate float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * rate))}
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// GreaterOrEqual reports whether m is at least other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.cents >= other.cents
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimals, e.g. "45.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
