package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	cases := []struct {
		name     string
		cents    int64
		currency string
		want     string
	}{
		{"usd symbol before", 1000, "USD", "$10.00"},
		{"sar symbol after", 1000, "SAR", "10.00 ر.س"},
		{"aed symbol after", 2550, "AED", "25.50 د.إ"},
		{"eur", 99, "EUR", "€0.99"},
		{"zero", 0, "SAR", "0.00 ر.س"},
		{"unknown falls back to sar", 1500, "XXX", "15.00 ر.س"},
		{"empty falls back to sar", 1500, "", "15.00 ر.س"},
		{"negative refund", -500, "USD", "$-5.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Money(tc.cents, tc.currency))
		})
	}
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "ر.س", CurrencySymbol("SAR"))
	assert.Equal(t, "ر.س", CurrencySymbol("nope"))
}
