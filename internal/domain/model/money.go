package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a decimal amount string cannot be parsed.
var ErrInvalidAmount = errors.New("invalid monetary amount")

var centsFactor = decimal.NewFromInt(100)

// ParseMinorUnits converts a decimal amount string into integer minor
// currency units (cents). Fractional digits beyond two are truncated, not
// rounded: "40.239" becomes 4023. Negative amounts are rejected since unit
// prices and quantities are non-negative by contract.
func ParseMinorUnits(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}
	return d.Mul(centsFactor).Truncate(0).IntPart(), nil
}

// FormatMinorUnits renders integer minor units as a decimal string with
// exactly two fractional digits: 500 becomes "5.00".
func FormatMinorUnits(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
