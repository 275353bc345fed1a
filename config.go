package gagyebu

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Config carries the per-ledger currency settings.
//
// Fraction digits default to the ISO-4217 definitions from the go-money
// registry (0 for KRW and JPY, 2 for USD) and can be overridden per currency.
type Config struct {
	// BaseCurrency is the ledger's home currency. Exchange fees are charged
	// in this currency.
	BaseCurrency string
	// Decimals overrides the fraction digits used when rounding amounts of a
	// given currency.
	Decimals map[string]int32
}

// DefaultConfig returns the reference configuration: a KRW-based ledger.
func DefaultConfig() Config {
	return Config{BaseCurrency: "KRW"}
}

// DecimalsFor returns the number of fraction digits for a currency.
func (c Config) DecimalsFor(currency string) int32 {
	if d, ok := c.Decimals[currency]; ok {
		return d
	}
	if cur := money.GetCurrency(currency); cur != nil {
		return int32(cur.Fraction)
	}
	return 2
}

// ValidateCurrency checks that the code is a known three-letter currency code.
func ValidateCurrency(code string) error {
	if len(code) != 3 {
		return fmt.Errorf("invalid currency code %q: want a three-letter code", code)
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}
