package gagyebu

// Store is the gateway to a ledger's persisted state: the recorded events,
// the accounts with their derived balances, and the categories.
//
// Reads always observe the last committed state. Writes go through a Tx so
// that an event and its balance effects land together or not at all.
type Store interface {
	// Event returns the event with the given id, or ErrNotFound.
	Event(id int64) (Event, error)
	// Events returns every committed event, ordered by id.
	Events() []Event
	// Account returns the account with the given id, or ErrNotFound.
	Account(id int64) (*Account, error)
	// Accounts returns every account, ordered by id.
	Accounts() []*Account
	// Category returns the category with the given id, or ErrNotFound.
	Category(id int64) (*Category, error)
	// Categories returns every category, ordered by id.
	Categories() []*Category

	// Begin opens a transaction. A single writer at a time is assumed.
	Begin() (Tx, error)
}

// Tx is a pending batch of changes against a Store. Changes made through a Tx
// are invisible to readers until Commit; Abort discards them.
type Tx interface {
	// InsertEvent stores a new event, assigns it the next id, and returns
	// the stored copy.
	InsertEvent(e Event) (Event, error)
	// UpdateEvent replaces the stored event with the same id, or returns
	// ErrNotFound.
	UpdateEvent(e Event) error
	// DeleteEvent removes the event with the given id, or returns
	// ErrNotFound.
	DeleteEvent(id int64) error
	// Event returns the event with the given id as seen by this Tx.
	Event(id int64) (Event, error)

	// ApplyEffects adds each effect's delta to the targeted account balance,
	// creating zero-valued currency entries as needed.
	ApplyEffects(effects []Effect) error

	// UpsertAccount stores or replaces an account.
	UpsertAccount(a *Account) error
	// UpsertCategory stores or replaces a category.
	UpsertCategory(c *Category) error

	// Commit atomically publishes the pending changes.
	Commit() error
	// Abort discards the pending changes. Calling Abort after a successful
	// Commit is a no-op.
	Abort()
}
