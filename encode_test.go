package gagyebu

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEncodeDecodeStore_roundTrip(t *testing.T) {
	book := NewBook(NewMemStore(), DefaultConfig())
	if _, err := book.AddAccount("wallet"); err != nil {
		t.Fatal(err)
	}
	if _, err := book.AddAccount("bank"); err != nil {
		t.Fatal(err)
	}
	if _, err := book.AddCategory("food", 0, Spending); err != nil {
		t.Fatal(err)
	}

	events := []Event{
		NewTransaction(MustParseDate("2025-07-01"), "lunch", Spending, 1, M(10000, "KRW"), d("500"), 1, 0),
		NewTransaction(MustParseDate("2025-07-02"), "to savings", Transfer, 0, M(200000, "KRW"), decimal.Zero, 1, 2),
		NewTrade(MustParseDate("2025-07-03"), "", TradeBuy, 2, "Samsung Electronics", Q(10), M(70000, "KRW"), d("350"), d("150")),
		NewExchange(MustParseDate("2025-07-04"), "trip money", ExchangeBuy, 2, M(1400000, "KRW"), M(1000, "USD"), d("3000")),
	}
	for _, e := range events {
		if _, err := book.Create(e); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	var buf bytes.Buffer
	if err := EncodeStore(&buf, book.Store()); err != nil {
		t.Fatalf("EncodeStore() error = %v", err)
	}

	decoded, err := DecodeStore(&buf, DefaultConfig())
	if err != nil {
		t.Fatalf("DecodeStore() error = %v", err)
	}

	// Same events, in the same order.
	orig := book.Store().Events()
	got := decoded.Events()
	if len(got) != len(orig) {
		t.Fatalf("decoded %d events, want %d", len(got), len(orig))
	}
	for i := range orig {
		if !got[i].Equal(orig[i]) {
			t.Errorf("event[%d] = %+v, want %+v", i, got[i], orig[i])
		}
	}

	// Account identity survives, balances come back from replay.
	for _, want := range book.Store().Accounts() {
		a, err := decoded.Account(want.ID)
		if err != nil {
			t.Fatalf("decoded Account(%d) error = %v", want.ID, err)
		}
		if a.Name != want.Name {
			t.Errorf("account %d name = %q, want %q", want.ID, a.Name, want.Name)
		}
		for cur, balance := range want.Balances {
			if !a.Balance(cur).Equal(balance) {
				t.Errorf("account %d balance[%s] = %s, want %s", want.ID, cur, a.Balance(cur), balance)
			}
		}
	}

	if _, err := decoded.Category(1); err != nil {
		t.Errorf("decoded Category(1) error = %v", err)
	}

	// A fresh insert must not collide with decoded ids.
	b2 := NewBook(decoded, DefaultConfig())
	stored, err := b2.Create(NewTransaction(MustParseDate("2025-07-05"), "", Spending, 1, M(100, "KRW"), decimal.Zero, 1, 0))
	if err != nil {
		t.Fatalf("Create() on decoded store error = %v", err)
	}
	if want := orig[len(orig)-1].ID() + 1; stored.ID() != want {
		t.Errorf("new event id = %d, want %d", stored.ID(), want)
	}
}

func TestEncodeStore_lineShape(t *testing.T) {
	book := NewBook(NewMemStore(), DefaultConfig())
	if _, err := book.Create(NewTransaction(MustParseDate("2025-07-01"), "lunch", Spending, 3, M(10000, "KRW"), d("500"), 1, 0)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeStore(&buf, book.Store()); err != nil {
		t.Fatalf("EncodeStore() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// One lazily created account plus the transaction.
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	want := `{"entry":"transaction","id":1,"date":"2025-07-01","note":"lunch","kind":"SPENDING","category":3,"currency":"KRW","amount":10000,"fee":500,"payAccount":1}`
	if lines[1] != want {
		t.Errorf("transaction line = %s, want %s", lines[1], want)
	}
}

func TestDecodeStore_errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"unknown entry type", `{"entry":"voucher","id":1}`},
		{"broken json", `{"entry":"transaction",`},
		{"unidentifiable line", `[1,2,3]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeStore(strings.NewReader(tc.input), DefaultConfig()); err == nil {
				t.Error("DecodeStore() accepted bad input")
			}
		})
	}
}

func TestDecodeStore_skipsEmptyLines(t *testing.T) {
	input := "\n" + `{"entry":"account","id":1,"name":"wallet"}` + "\n\n"
	s, err := DecodeStore(strings.NewReader(input), DefaultConfig())
	if err != nil {
		t.Fatalf("DecodeStore() error = %v", err)
	}
	if _, err := s.Account(1); err != nil {
		t.Errorf("Account(1) error = %v", err)
	}
}

func TestLoadSaveStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.jsonl")

	// A missing file yields an empty, usable store.
	s, err := LoadStore(path, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadStore() on missing file error = %v", err)
	}
	book := NewBook(s, DefaultConfig())
	if _, err := book.AddAccount("wallet"); err != nil {
		t.Fatal(err)
	}
	if _, err := book.Create(NewTransaction(MustParseDate("2025-07-01"), "", Spending, 0, M(10000, "KRW"), decimal.Zero, 1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := SaveStore(path, s); err != nil {
		t.Fatalf("SaveStore() error = %v", err)
	}

	reloaded, err := LoadStore(path, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadStore() error = %v", err)
	}
	assertBalance(t, reloaded, 1, "KRW", "-10000")
}
