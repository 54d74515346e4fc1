package view

import "fmt"

type currencyFormat struct {
	symbol string
	after  bool // symbol rendered after the amount (RTL currencies)
}

// Gulf currencies render the symbol after the amount, western ones before.
// Unknown codes fall back to SAR.
var currencies = map[string]currencyFormat{
	"SAR": {symbol: "ر.س", after: true},
	"AED": {symbol: "د.إ", after: true},
	"KWD": {symbol: "د.ك", after: true},
	"QAR": {symbol: "ر.ق", after: true},
	"BHD": {symbol: "د.ب", after: true},
	"OMR": {symbol: "ر.ع", after: true},
	"EGP": {symbol: "ج.م", after: true},
	"USD": {symbol: "$", after: false},
	"EUR": {symbol: "€", after: false},
	"GBP": {symbol: "£", after: false},
}

// Money converts cents to a display string.
// Money(1000, "USD") -> "$10.00", Money(1000, "SAR") -> "10.00 ر.س".
func Money(cents int64, currency string) string {
	f, ok := currencies[currency]
	if !ok {
		f = currencies["SAR"]
	}
	amount := fmt.Sprintf("%.2f", float64(cents)/100.0)
	if f.after {
		return amount + " " + f.symbol
	}
	return f.symbol + amount
}

// CurrencySymbol returns the bare symbol for a code (SAR fallback).
func CurrencySymbol(currency string) string {
	if f, ok := currencies[currency]; ok {
		return f.symbol
	}
	return currencies["SAR"].symbol
}
