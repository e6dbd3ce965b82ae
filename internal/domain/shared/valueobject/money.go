package valueobject

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Currency represents an ISO 4217 currency code
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	BRL Currency = "BRL"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CNY Currency = "CNY"
)

// ParseCurrency normalizes and validates an ISO 4217 code
func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", shared.NewInvalidArgumentError("Currency is required")
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", shared.NewInvalidArgumentError("Currency is invalid: " + code)
	}
	return Currency(unit.String()), nil
}

// Money is an immutable monetary amount in a single currency.
// Construction rejects negative amounts; every operation returns a new Money.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money with the specified amount and currency
func NewMoney(amount decimal.Decimal, cur Currency) (Money, error) {
	c, err := ParseCurrency(string(cur))
	if err != nil {
		return Money{}, err
	}
	if amount.IsNegative() {
		return Money{}, shared.NewInvalidArgumentError("Amount must be greater than zero")
	}
	return Money{amount: amount, currency: c}, nil
}

// NewMoneyFromString creates Money from a decimal string such as "19.90"
func NewMoneyFromString(amount string, cur Currency) (Money, error) {
	if _, err := ParseCurrency(string(cur)); err != nil {
		return Money{}, err
	}
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return Money{}, shared.NewInvalidArgumentError("Amount is required")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, shared.NewInvalidArgumentError("Amount is invalid: " + amount)
	}
	return NewMoney(d, cur)
}

// MustNewMoney is NewMoney for literals known to be valid; it panics otherwise
func MustNewMoney(amount string, cur Currency) Money {
	m, err := NewMoneyFromString(amount, cur)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// IsEmpty reports whether m is the zero value, i.e. no money was supplied
func (m Money) IsEmpty() bool {
	return m.currency == ""
}

// IsNegative returns true if the amount is below zero
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// SameCurrency reports whether both values share a currency
func (m Money) SameCurrency(other Money) bool {
	return m.currency == other.currency
}

func (m Money) checkOperand(other Money) error {
	if other.IsEmpty() {
		return shared.NewInvalidArgumentError("Money is required")
	}
	if !m.SameCurrency(other) {
		return shared.NewInvalidArgumentError("Currency mismatch")
	}
	return nil
}

// Add returns the sum of both amounts
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkOperand(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference. The result may be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.checkOperand(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Replace returns a Money carrying other's amount after the same currency check as Add
func (m Money) Replace(other Money) (Money, error) {
	if err := m.checkOperand(other); err != nil {
		return Money{}, err
	}
	return Money{amount: other.amount, currency: m.currency}, nil
}

// Multiply returns the amount multiplied by a strictly positive quantity
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, shared.NewInvalidArgumentError("quantity must be greater than zero")
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), currency: m.currency}, nil
}

// Equals compares amounts numerically, so 10.0 USD equals 10.00 USD
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String returns a string representation of the Money
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// StringFixed returns the amount as a string with fixed decimal places
func (m Money) StringFixed(places int32) string {
	return m.amount.StringFixed(places)
}

type moneyJSON struct {
	Amount   string   `json:"amount"`
	Currency Currency `json:"currency"`
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.amount.String(), Currency: m.currency})
}

// UnmarshalJSON implements json.Unmarshaler.
// Negative amounts are accepted since Subtract may legitimately produce them.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v moneyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	c, err := ParseCurrency(string(v.Currency))
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(v.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	m.amount = amount
	m.currency = c
	return nil
}
