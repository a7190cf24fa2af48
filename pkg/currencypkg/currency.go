// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"github.com/shopspring/decimal"
)

// Constants for all supported currencies.
const (
	BRL = "BRL"
	USD = "USD"
	EUR = "EUR"
)

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []string{
	BRL,
	USD,
	EUR,
}

var symbols = map[string]string{
	BRL: "R$",
	USD: "$",
	EUR: "€",
}

// IsSupportedCurrency returns true if the currency is supported.
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}

	return false
}

// Symbol returns the display symbol of the currency, or the code itself when
// the currency is unknown.
func Symbol(currency string) string {
	if s, ok := symbols[currency]; ok {
		return s
	}

	return currency
}

// Format renders the amount with the currency symbol and two decimals.
func Format(currency string, amount decimal.Decimal) string {
	return Symbol(currency) + amount.StringFixed(2)
}
