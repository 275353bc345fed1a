package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sjhan/gagyebu"
)

func fixtureStore(t *testing.T) gagyebu.Store {
	t.Helper()
	book := gagyebu.NewBook(gagyebu.NewMemStore(), gagyebu.DefaultConfig())
	if _, err := book.AddAccount("wallet"); err != nil {
		t.Fatal(err)
	}
	if _, err := book.AddCategory("food", 0, gagyebu.Spending); err != nil {
		t.Fatal(err)
	}
	if _, err := book.Create(gagyebu.NewTransaction(gagyebu.MustParseDate("2025-07-01"), "lunch", gagyebu.Spending, 1,
		gagyebu.M(10000, "KRW"), decimal.Zero, 1, 0)); err != nil {
		t.Fatal(err)
	}
	return book.Store()
}

func TestEvent(t *testing.T) {
	day := gagyebu.MustParseDate("2025-07-01")
	testCases := []struct {
		name string
		ev   gagyebu.Event
		want string
	}{
		{
			name: "spending",
			ev:   gagyebu.NewTransaction(day, "", gagyebu.Spending, 0, gagyebu.M(10000, "KRW"), decimal.Zero, 1, 0),
			want: "Spent",
		},
		{
			name: "transfer",
			ev:   gagyebu.NewTransaction(day, "", gagyebu.Transfer, 0, gagyebu.M(10000, "KRW"), decimal.Zero, 1, 2),
			want: "Transferred",
		},
		{
			name: "trade",
			ev:   gagyebu.NewTrade(day, "", gagyebu.TradeSell, 1, "AAPL", gagyebu.Q(2), gagyebu.M(200, "USD"), decimal.Zero, decimal.Zero),
			want: "Sold 2 of AAPL",
		},
		{
			name: "exchange",
			ev:   gagyebu.NewExchange(day, "", gagyebu.ExchangeBuy, 1, gagyebu.M(1400, "KRW"), gagyebu.M(1, "USD"), decimal.Zero),
			want: "Exchanged",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Event(tc.ev); !strings.Contains(got, tc.want) {
				t.Errorf("Event() = %q, want it to contain %q", got, tc.want)
			}
		})
	}
}

func TestTransactions(t *testing.T) {
	s := fixtureStore(t)
	md := Transactions(gagyebu.Search(s, gagyebu.SearchFilter{}), s)

	for _, want := range []string{"| Id |", "2025-07-01", "SPENDING", "food", "wallet", "lunch"} {
		if !strings.Contains(md, want) {
			t.Errorf("Transactions() missing %q in:\n%s", want, md)
		}
	}
}

func TestTransactions_empty(t *testing.T) {
	s := gagyebu.NewMemStore()
	if got := Transactions(nil, s); !strings.Contains(got, "No transactions") {
		t.Errorf("Transactions(nil) = %q", got)
	}
}

func TestBalances(t *testing.T) {
	s := fixtureStore(t)
	md := Balances(s.Accounts())
	for _, want := range []string{"wallet", "KRW", "-10000"} {
		if !strings.Contains(md, want) {
			t.Errorf("Balances() missing %q in:\n%s", want, md)
		}
	}
}

func TestKindSums(t *testing.T) {
	s := fixtureStore(t)
	md := KindSums(gagyebu.MonthlyKindSums(s, gagyebu.Date{}, gagyebu.Date{}, "KRW"))
	for _, want := range []string{"2025-07", "SPENDING", "10000", "Fees"} {
		if !strings.Contains(md, want) {
			t.Errorf("KindSums() missing %q in:\n%s", want, md)
		}
	}
}
