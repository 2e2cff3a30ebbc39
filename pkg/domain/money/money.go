// Package money provides the Money value object used across the transaction
// domain.
package money

import (
	"errors"
	"fmt"

	"github.com/kouame/payboard/pkg/currency"
	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeAmount is returned when constructing money with a negative amount.
	ErrNegativeAmount = errors.New("amount cannot be negative")
	// ErrTooManyDecimals is returned when an amount carries more fraction
	// digits than its currency allows.
	ErrTooManyDecimals = errors.New("amount has more decimal places than the currency allows")
	// ErrCurrencyMismatch is returned when comparing amounts of different currencies.
	ErrCurrencyMismatch = errors.New("cannot compare amounts with different currencies")
)

// Money is an immutable monetary value in a specific currency.
// Invariants:
//   - The amount is stored in the smallest currency unit (cents for USD/EUR,
//     francs for XOF).
//   - The currency is one of the registry codes.
//   - New rejects negative amounts; FromMinorUnit is the decoding path and
//     does not, so values arriving from storage format without re-validation.
type Money struct {
	amount   int64
	currency currency.Code
}

// New creates Money from a main-unit amount. The amount must be
// non-negative and must not exceed the currency's fraction digits.
func New(amount float64, code currency.Code) (Money, error) {
	meta, err := currency.Get(code)
	if err != nil {
		return Money{}, err
	}
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}

	d := decimal.NewFromFloat(amount)
	minor := d.Shift(int32(meta.Decimals))
	if !minor.IsInteger() {
		return Money{}, fmt.Errorf("%w: %v %s", ErrTooManyDecimals, amount, code)
	}
	if !minor.BigInt().IsInt64() {
		return Money{}, fmt.Errorf("amount %v %s exceeds the representable range", amount, code)
	}
	return Money{amount: minor.IntPart(), currency: code}, nil
}

// Zero returns a zero amount in the given currency.
func Zero(code currency.Code) (Money, error) {
	return New(0, code)
}

// FromMinorUnit creates Money directly from a smallest-unit amount. It only
// validates the currency; negative amounts pass through. External decoding
// paths use it, which is why Format must cope with negatives.
func FromMinorUnit(minor int64, code currency.Code) (Money, error) {
	if !currency.IsSupported(code) {
		return Money{}, currency.ErrUnsupportedCurrency
	}
	return Money{amount: minor, currency: code}, nil
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// AmountFloat returns the amount in the main currency unit.
func (m Money) AmountFloat() float64 {
	meta, err := currency.Get(m.currency)
	if err != nil {
		return 0
	}
	f, _ := decimal.New(m.amount, -int32(meta.Decimals)).Float64()
	return f
}

// Currency returns the currency code.
func (m Money) Currency() currency.Code {
	return m.currency
}

// Equals reports exact equality of amount and currency. There is no epsilon
// tolerance; amounts are exact minor-unit integers.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount == other.amount
}

// GreaterThan compares two amounts of the same currency. It never converts:
// comparing across currencies is an ErrCurrencyMismatch.
func (m Money) GreaterThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, ErrCurrencyMismatch
	}
	return m.amount > other.amount, nil
}

// Format renders the amount with its currency's locale conventions.
func (m Money) Format() string {
	s, err := currency.FormatAmount(m.amount, m.currency)
	if err != nil {
		return ""
	}
	return s
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.Format()
}
