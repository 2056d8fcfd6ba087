package mollie

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies have no minor unit in Mollie's amount format.
var zeroDecimalCurrencies = map[string]struct{}{
	"ISK": {},
	"JPY": {},
	"KRW": {},
}

// Amount is a currency code plus a decimal string, e.g. {"EUR", "25.00"}.
type Amount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

// CurrencyDecimals returns the number of fraction digits Mollie expects
// for the currency.
func CurrencyDecimals(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToUpper(currency)]; ok {
		return 0
	}
	return 2
}

// NewAmount formats value with the currency's fraction digits.
func NewAmount(currency string, value decimal.Decimal) Amount {
	currency = strings.ToUpper(currency)
	return Amount{
		Currency: currency,
		Value:    value.StringFixed(CurrencyDecimals(currency)),
	}
}

// Decimal parses the amount's value.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(a.Value)
}
