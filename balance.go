package gagyebu

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// applyEffects mutates the account set in place, adding each effect's delta
// to the targeted balance. An account or currency entry that does not exist
// yet is created at zero first, so effects against fresh accounts work
// without prior setup.
func applyEffects(accounts map[int64]*Account, effects []Effect) {
	for _, e := range effects {
		a, ok := accounts[e.Account]
		if !ok {
			a = NewAccount(e.Account, "")
			accounts[e.Account] = a
		}
		a.Balances[e.Currency] = a.Balances[e.Currency].Add(e.Delta)
	}
}

// replayEffects drops every balance and rebuilds them by applying the effects
// of all events in order. Balances are not persisted; this is how they come
// back after a load.
func replayEffects(accounts map[int64]*Account, events []Event, c Config) error {
	for _, a := range accounts {
		a.Balances = make(map[string]decimal.Decimal)
	}
	for _, ev := range events {
		effects, err := ev.Effects(c)
		if err != nil {
			return fmt.Errorf("replaying event %d: %w", ev.ID(), err)
		}
		applyEffects(accounts, effects)
	}
	return nil
}
