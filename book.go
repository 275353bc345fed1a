package gagyebu

import (
	"fmt"
)

// Book coordinates the ledger's write operations. Every mutation records the
// event and adjusts the affected balances in a single store transaction, so
// the invariant "balances equal the sum of all recorded effects" holds at
// every committed state.
type Book struct {
	store  Store
	config Config
}

// NewBook wraps a store with the ledger's write operations.
func NewBook(store Store, c Config) *Book {
	return &Book{store: store, config: c}
}

// Config returns the ledger configuration the book validates and computes
// effects against.
func (b *Book) Config() Config { return b.config }

// Store returns the underlying store, for read-only queries.
func (b *Book) Store() Store { return b.store }

// Create validates and records a new event and applies its balance effects.
// It returns the stored copy carrying the assigned id.
func (b *Book) Create(e Event) (Event, error) {
	if err := e.Validate(b.config); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	effects, err := e.Effects(b.config)
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	tx, err := b.store.Begin()
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	defer tx.Abort()

	stored, err := tx.InsertEvent(e)
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	if err := tx.ApplyEffects(effects); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	return stored, nil
}

// Update replaces the stored event with the same id. Compensation runs in two
// steps inside one transaction: the old event's effects are reversed from the
// stored state, then the new event's effects are applied. Changing the kind,
// amount, currency or accounts is therefore safe.
func (b *Book) Update(e Event) error {
	if e.ID() == 0 {
		return fmt.Errorf("update: %w: event has no id", ErrNotFound)
	}
	if err := e.Validate(b.config); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	newEffects, err := e.Effects(b.config)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	tx, err := b.store.Begin()
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	defer tx.Abort()

	old, err := tx.Event(e.ID())
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	// Reverse against the stored state, not the caller's view of it.
	oldEffects, err := old.Effects(b.config)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if err := tx.ApplyEffects(reverseEffects(oldEffects)); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if err := tx.UpdateEvent(e); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if err := tx.ApplyEffects(newEffects); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

// Delete removes the event with the given id and reverses its balance
// effects.
func (b *Book) Delete(id int64) error {
	tx, err := b.store.Begin()
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	defer tx.Abort()

	old, err := tx.Event(id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	oldEffects, err := old.Effects(b.config)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if err := tx.ApplyEffects(reverseEffects(oldEffects)); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if err := tx.DeleteEvent(id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// Get returns the committed event with the given id.
func (b *Book) Get(id int64) (Event, error) {
	return b.store.Event(id)
}

// AddAccount registers a new account under the next free id and returns it.
func (b *Book) AddAccount(name string) (*Account, error) {
	var id int64 = 1
	for _, a := range b.store.Accounts() {
		if a.ID >= id {
			id = a.ID + 1
		}
	}
	account := NewAccount(id, name)
	if err := b.upsertAccount(account); err != nil {
		return nil, fmt.Errorf("add account: %w", err)
	}
	return account, nil
}

// RenameAccount changes an existing account's name, keeping its balances.
func (b *Book) RenameAccount(id int64, name string) error {
	account, err := b.store.Account(id)
	if err != nil {
		return fmt.Errorf("rename account: %w", err)
	}
	account.Name = name
	if err := b.upsertAccount(account); err != nil {
		return fmt.Errorf("rename account: %w", err)
	}
	return nil
}

func (b *Book) upsertAccount(a *Account) error {
	tx, err := b.store.Begin()
	if err != nil {
		return err
	}
	defer tx.Abort()
	if err := tx.UpsertAccount(a); err != nil {
		return err
	}
	return tx.Commit()
}

// AddCategory registers a new category under the next free id and returns it.
// A non-zero parent must reference an existing category.
func (b *Book) AddCategory(name string, parent int64, kind TransactionKind) (*Category, error) {
	if _, err := ParseTransactionKind(string(kind)); err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}
	if parent != 0 {
		if _, err := b.store.Category(parent); err != nil {
			return nil, fmt.Errorf("add category: parent: %w", err)
		}
	}
	var id int64 = 1
	for _, c := range b.store.Categories() {
		if c.ID >= id {
			id = c.ID + 1
		}
	}
	category := &Category{ID: id, Name: name, Parent: parent, Kind: kind}
	tx, err := b.store.Begin()
	if err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}
	defer tx.Abort()
	if err := tx.UpsertCategory(category); err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}
	return category, nil
}
