package gagyebu

import "github.com/shopspring/decimal"

// Effect is a single signed balance adjustment implied by an event under its
// kind-specific policy: add Delta to the Account's balance in Currency.
type Effect struct {
	Account  int64
	Currency string
	Delta    decimal.Decimal
}

// reverseEffects returns the element-wise negation of an effect list. Applied
// to the effects computed from an event's stored state, it exactly undoes the
// event's balance impact.
func reverseEffects(effects []Effect) []Effect {
	reversed := make([]Effect, len(effects))
	for i, e := range effects {
		reversed[i] = Effect{Account: e.Account, Currency: e.Currency, Delta: e.Delta.Neg()}
	}
	return reversed
}
