package gagyebu

import (
	"fmt"
	"sort"
	"sync"
)

// MemStore is the in-memory Store implementation backing a loaded ledger
// file. A transaction works on a private copy of the whole state and swaps
// it in at Commit, so readers never observe a half-applied change.
type MemStore struct {
	mu sync.RWMutex // guards the committed state below.

	events     map[int64]Event
	accounts   map[int64]*Account
	categories map[int64]*Category
	nextID     int64

	txMu sync.Mutex // held from Begin to Commit or Abort: one writer at a time.
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		events:     make(map[int64]Event),
		accounts:   make(map[int64]*Account),
		categories: make(map[int64]*Category),
		nextID:     1,
	}
}

// Event implements Store.
func (s *MemStore) Event(id int64) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev, ok := s.events[id]
	if !ok {
		return nil, fmt.Errorf("%w: event %d", ErrNotFound, id)
	}
	return ev, nil
}

// Events implements Store, returning events ordered by id.
func (s *MemStore) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]Event, 0, len(s.events))
	for _, ev := range s.events {
		events = append(events, ev)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID() < events[j].ID() })
	return events
}

// Account implements Store. The returned account is a copy; mutating it does
// not change the store.
func (s *MemStore) Account(id int64) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: account %d", ErrNotFound, id)
	}
	return a.clone(), nil
}

// Accounts implements Store, returning account copies ordered by id.
func (s *MemStore) Accounts() []*Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts := make([]*Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, a.clone())
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts
}

// Category implements Store.
func (s *MemStore) Category(id int64) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
	}
	dup := *c
	return &dup, nil
}

// Categories implements Store, returning category copies ordered by id.
func (s *MemStore) Categories() []*Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := make([]*Category, 0, len(s.categories))
	for _, c := range s.categories {
		dup := *c
		categories = append(categories, &dup)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories
}

// Begin implements Store. It blocks while another transaction is open.
func (s *MemStore) Begin() (Tx, error) {
	s.txMu.Lock()
	s.mu.RLock()
	tx := &memTx{
		store:      s,
		events:     make(map[int64]Event, len(s.events)),
		accounts:   make(map[int64]*Account, len(s.accounts)),
		categories: make(map[int64]*Category, len(s.categories)),
		nextID:     s.nextID,
	}
	for id, ev := range s.events {
		tx.events[id] = ev
	}
	for id, a := range s.accounts {
		tx.accounts[id] = a.clone()
	}
	for id, c := range s.categories {
		dup := *c
		tx.categories[id] = &dup
	}
	s.mu.RUnlock()
	return tx, nil
}

// memTx is the private working copy of a MemStore transaction.
type memTx struct {
	store      *MemStore
	events     map[int64]Event
	accounts   map[int64]*Account
	categories map[int64]*Category
	nextID     int64
	done       bool
}

func (tx *memTx) InsertEvent(e Event) (Event, error) {
	stored := e.withSeq(tx.nextID)
	tx.events[tx.nextID] = stored
	tx.nextID++
	return stored, nil
}

func (tx *memTx) UpdateEvent(e Event) error {
	if _, ok := tx.events[e.ID()]; !ok {
		return fmt.Errorf("%w: event %d", ErrNotFound, e.ID())
	}
	tx.events[e.ID()] = e
	return nil
}

func (tx *memTx) DeleteEvent(id int64) error {
	if _, ok := tx.events[id]; !ok {
		return fmt.Errorf("%w: event %d", ErrNotFound, id)
	}
	delete(tx.events, id)
	return nil
}

func (tx *memTx) Event(id int64) (Event, error) {
	ev, ok := tx.events[id]
	if !ok {
		return nil, fmt.Errorf("%w: event %d", ErrNotFound, id)
	}
	return ev, nil
}

func (tx *memTx) ApplyEffects(effects []Effect) error {
	applyEffects(tx.accounts, effects)
	return nil
}

func (tx *memTx) UpsertAccount(a *Account) error {
	tx.accounts[a.ID] = a.clone()
	return nil
}

func (tx *memTx) UpsertCategory(c *Category) error {
	dup := *c
	tx.categories[c.ID] = &dup
	return nil
}

// Commit swaps the working copy in as the committed state.
func (tx *memTx) Commit() error {
	if tx.done {
		return fmt.Errorf("transaction already finished")
	}
	s := tx.store
	s.mu.Lock()
	s.events = tx.events
	s.accounts = tx.accounts
	s.categories = tx.categories
	s.nextID = tx.nextID
	s.mu.Unlock()
	tx.done = true
	s.txMu.Unlock()
	return nil
}

// Abort drops the working copy.
func (tx *memTx) Abort() {
	if tx.done {
		return
	}
	tx.done = true
	tx.store.txMu.Unlock()
}
