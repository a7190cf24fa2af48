package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a money amount that must be strictly positive.
//
// A comma is accepted as the decimal separator.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.Replace(strings.TrimSpace(amount), ",", ".", 1)

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrNonPositiveAmount
	}

	return d, nil
}
