// Package money holds the monetary value objects used across the payroll
// engine. Amounts carry an explicit currency code and use exact decimal
// arithmetic; a missing local-currency quote is a distinct state, never a
// zero amount.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Money struct {
	value    decimal.Decimal
	currency string
}

func New(value decimal.Decimal, currency string) Money {
	return Money{value: value, currency: currency}
}

func FromFloat(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), currency: currency}
}

func Zero(currency string) Money {
	return Money{value: decimal.Zero, currency: currency}
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) Decimal() decimal.Decimal {
	return m.value
}

func (m Money) Float64() float64 {
	f, _ := m.value.Float64()
	return f
}

func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value), currency: m.currency}
}

func (m Money) Sub(other Money) Money {
	return Money{value: m.value.Sub(other.value), currency: m.currency}
}

func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

func (m Money) IsZero() bool {
	return m.value.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.value.Equal(other.value)
}

// String renders the amount to two decimal places, the precision every
// payslip cell uses.
func (m Money) String() string {
	return m.value.StringFixed(2)
}

func (m Money) Format() string {
	return fmt.Sprintf("%s %s", m.currency, m.value.StringFixed(2))
}

// LocalAmount is the local-currency counterpart of an anchor amount. When no
// exchange rate was captured for the period the amount is unavailable, which
// downstream rendering must keep distinct from a zero amount.
type LocalAmount struct {
	amount    Money
	available bool
}

func Unavailable() LocalAmount {
	return LocalAmount{}
}

func Local(amount Money) LocalAmount {
	return LocalAmount{amount: amount, available: true}
}

func (l LocalAmount) Available() bool {
	return l.available
}

func (l LocalAmount) Amount() (Money, bool) {
	return l.amount, l.available
}

// Display renders to two decimal places, or the unavailable marker when no
// quote exists.
func (l LocalAmount) Display() string {
	if !l.available {
		return "N/A"
	}
	return l.amount.String()
}

// ToLocal converts an anchor-currency amount using the period's exchange-rate
// snapshot. A zero rate means no quote was available, not a free currency.
func ToLocal(anchor Money, rate decimal.Decimal, localCurrency string) LocalAmount {
	if rate.Sign() <= 0 {
		return Unavailable()
	}
	return Local(Money{value: anchor.value.Mul(rate), currency: localCurrency})
}

// ToLocalRate is a float convenience for callers holding the persisted
// snapshot as a plain number.
func ToLocalRate(anchor Money, rate float64, localCurrency string) LocalAmount {
	return ToLocal(anchor, decimal.NewFromFloat(rate), localCurrency)
}
