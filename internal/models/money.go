package models

import "github.com/shopspring/decimal"

// Money is an amount in minor currency units (cents). Prices and totals are
// kept as integers and converted to a decimal only for display and for the
// provider's string amount.
type Money int64

func Dollars(major int64) Money {
	return Money(major * 100)
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m)).Shift(-2)
}

// String renders the amount in major units without trailing zeros, e.g. 55800 -> "558".
func (m Money) String() string {
	return m.Decimal().String()
}

// Fixed renders the amount with two decimals, e.g. 55800 -> "558.00".
func (m Money) Fixed() string {
	return m.Decimal().StringFixed(2)
}
