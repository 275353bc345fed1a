package gagyebu

import (
	"github.com/shopspring/decimal"
)

// Account is a place money lives: a wallet, a bank account, a card or a
// trading account. Balances are kept per currency and are derived entirely
// from the recorded events.
type Account struct {
	ID   int64
	Name string
	// Balances maps a currency code to the account's current balance in that
	// currency. Entries appear lazily the first time an effect touches the
	// currency; a missing entry reads as zero.
	Balances map[string]decimal.Decimal
}

// NewAccount creates an account with no balances yet.
func NewAccount(id int64, name string) *Account {
	return &Account{ID: id, Name: name, Balances: make(map[string]decimal.Decimal)}
}

// Balance returns the account's balance in the given currency. Currencies
// never touched by an effect read as zero.
func (a *Account) Balance(currency string) decimal.Decimal {
	return a.Balances[currency]
}

// clone returns a deep copy of the account.
func (a *Account) clone() *Account {
	c := &Account{ID: a.ID, Name: a.Name, Balances: make(map[string]decimal.Decimal, len(a.Balances))}
	for cur, b := range a.Balances {
		c.Balances[cur] = b
	}
	return c
}

// MarshalJSON persists the account's identity only. Balances are derived and
// recomputed from the events on load.
func (a *Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("entry", EntryAccount)
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	return w.MarshalJSON()
}

// Category labels spendings and incomes. Categories form a two-level tree:
// a top-level category has Parent 0, a sub-category points at its parent.
type Category struct {
	ID     int64
	Name   string
	Parent int64
	// Kind tells whether the category applies to spendings, incomes or
	// transfers.
	Kind TransactionKind
}

// MarshalJSON implements the json.Marshaler interface for Category.
func (c *Category) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("entry", EntryCategory)
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Optional("parent", c.Parent)
	w.Append("kind", c.Kind)
	return w.MarshalJSON()
}
