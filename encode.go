package gagyebu

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountRec is a specialized struct to read a money value split over the
// "amount" and "currency" fields of an entry. Embedding Money directly would
// not round-trip the custom layout.
type amountRec struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Fee      decimal.Decimal `json:"fee"`
}

func (a amountRec) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeStore reads a ledger file in JSONL format and returns a store holding
// its entries, with every balance rebuilt by replaying the events' effects.
func DecodeStore(r io.Reader, c Config) (*MemStore, error) {
	s := NewMemStore()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Entry EntryType `json:"entry"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify entry in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Entry {
		case EntryTransaction:
			var t Transaction
			if err := json.Unmarshal(lineBytes, &t); err != nil {
				return nil, err
			}
			s.events[t.ID()] = t
		case EntryTrade:
			var t Trade
			if err := json.Unmarshal(lineBytes, &t); err != nil {
				return nil, err
			}
			s.events[t.ID()] = t
		case EntryExchange:
			var x Exchange
			if err := json.Unmarshal(lineBytes, &x); err != nil {
				return nil, err
			}
			s.events[x.ID()] = x
		case EntryAccount:
			var temp struct {
				ID   int64  `json:"id"`
				Name string `json:"name"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			s.accounts[temp.ID] = NewAccount(temp.ID, temp.Name)
		case EntryCategory:
			var temp struct {
				ID     int64           `json:"id"`
				Name   string          `json:"name"`
				Parent int64           `json:"parent"`
				Kind   TransactionKind `json:"kind"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			s.categories[temp.ID] = &Category{ID: temp.ID, Name: temp.Name, Parent: temp.Parent, Kind: temp.Kind}
		default:
			return nil, fmt.Errorf("unknown entry type: %q", identifier.Entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// Balances are not persisted; rebuild them from the events.
	events := s.Events()
	if err := replayEffects(s.accounts, events, c); err != nil {
		return nil, err
	}
	for _, ev := range events {
		if ev.ID() >= s.nextID {
			s.nextID = ev.ID() + 1
		}
	}
	return s, nil
}

// encodeEntry marshals a single entry to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func encodeEntry(w io.Writer, entry any) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// EncodeStore persists the store's entries to an io.Writer in JSONL format:
// accounts first, then categories, then events in id order. Balances are
// derived state and are not written.
func EncodeStore(w io.Writer, s Store) error {
	decimal.MarshalJSONWithoutQuotes = true

	for _, a := range s.Accounts() {
		if err := encodeEntry(w, a); err != nil {
			return err
		}
	}
	for _, c := range s.Categories() {
		if err := encodeEntry(w, c); err != nil {
			return err
		}
	}
	for _, ev := range s.Events() {
		if err := encodeEntry(w, ev); err != nil {
			return err
		}
	}
	return nil
}

// LoadStore reads the ledger file at path. A missing file yields an empty
// store, so a fresh ledger needs no setup step.
func LoadStore(path string, c Config) (*MemStore, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewMemStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file: %w", err)
	}
	defer f.Close()
	s, err := DecodeStore(f, c)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger file %q: %w", path, err)
	}
	return s, nil
}

// SaveStore writes the store to the ledger file at path. The file is written
// to a temporary sibling first and moved into place, so a failed write never
// truncates the previous ledger.
func SaveStore(path string, s Store) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeStore(tmp, s); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot replace ledger file: %w", err)
	}
	return nil
}
