package models

// Currency is an ISO 4217 currency code supported by the tracker.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyDZD Currency = "DZD"
)

// DefaultCurrency is applied when a record carries no currency of its own,
// including rows restored from a backup sheet with an empty currency column.
const DefaultCurrency = CurrencyDZD

// CurrencyInfo describes a supported currency for display purposes.
type CurrencyInfo struct {
	Code   Currency `json:"code"`
	Symbol string   `json:"symbol"`
	Name   string   `json:"name"`
}

// SupportedCurrencies lists every currency the tracker accepts.
var SupportedCurrencies = []CurrencyInfo{
	{Code: CurrencyEUR, Symbol: "€", Name: "Euro"},
	{Code: CurrencyUSD, Symbol: "$", Name: "US Dollar"},
	{Code: CurrencyDZD, Symbol: "DA", Name: "Algerian Dinar"},
}

// Valid reports whether c is one of the supported currency codes.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyEUR, CurrencyUSD, CurrencyDZD:
		return true
	}
	return false
}

// OrDefault returns c when it is a supported code and DefaultCurrency
// otherwise.
func (c Currency) OrDefault() Currency {
	if c.Valid() {
		return c
	}
	return DefaultCurrency
}
