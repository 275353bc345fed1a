package gagyebu

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestTransaction_Effects(t *testing.T) {
	c := DefaultConfig()
	day := MustParseDate("2025-07-01")

	testCases := []struct {
		name string
		tx   Transaction
		want []Effect
	}{
		{
			name: "spending removes amount plus fee from the pay account",
			tx:   NewTransaction(day, "lunch", Spending, 1, M(10000, "KRW"), d("500"), 1, 0),
			want: []Effect{{Account: 1, Currency: "KRW", Delta: d("-10500")}},
		},
		{
			name: "spending without fee",
			tx:   NewTransaction(day, "", Spending, 1, M(3500, "KRW"), decimal.Zero, 2, 0),
			want: []Effect{{Account: 2, Currency: "KRW", Delta: d("-3500")}},
		},
		{
			name: "income adds amount minus fee to the receive account",
			tx:   NewTransaction(day, "salary", Income, 5, M(3000000, "KRW"), d("1000"), 0, 3),
			want: []Effect{{Account: 3, Currency: "KRW", Delta: d("2999000")}},
		},
		{
			name: "transfer debits pay then credits receive, fee on the payer",
			tx:   NewTransaction(day, "to savings", Transfer, 0, M(200000, "KRW"), d("500"), 1, 2),
			want: []Effect{
				{Account: 1, Currency: "KRW", Delta: d("-200500")},
				{Account: 2, Currency: "KRW", Delta: d("200000")},
			},
		},
		{
			name: "foreign currency spending stays in its currency",
			tx:   NewTransaction(day, "", Spending, 1, M(d("19.99"), "USD"), d("0.30"), 4, 0),
			want: []Effect{{Account: 4, Currency: "USD", Delta: d("-20.29")}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.tx.Effects(c)
			if err != nil {
				t.Fatalf("Effects() error = %v", err)
			}
			assertEffects(t, got, tc.want)
		})
	}
}

func TestTransaction_Effects_unknownKind(t *testing.T) {
	tx := NewTransaction(MustParseDate("2025-07-01"), "", TransactionKind("REFUND"), 1, M(100, "KRW"), decimal.Zero, 1, 0)
	_, err := tx.Effects(DefaultConfig())
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Effects() error = %v, want ErrUnknownKind", err)
	}
}

func TestTrade_Effects(t *testing.T) {
	c := DefaultConfig()
	day := MustParseDate("2025-07-02")

	testCases := []struct {
		name  string
		trade Trade
		want  []Effect
	}{
		{
			name:  "buy removes gross plus tax and fee",
			trade: NewTrade(day, "", TradeBuy, 7, "Samsung Electronics", Q(10), M(70000, "KRW"), d("350"), d("150")),
			want:  []Effect{{Account: 7, Currency: "KRW", Delta: d("-700500")}},
		},
		{
			name:  "sell adds gross minus tax and fee",
			trade: NewTrade(day, "", TradeSell, 7, "Samsung Electronics", Q(5), M(72000, "KRW"), d("828"), d("100")),
			want:  []Effect{{Account: 7, Currency: "KRW", Delta: d("359072")}},
		},
		{
			name:  "fractional quantity in a foreign currency",
			trade: NewTrade(day, "", TradeBuy, 8, "AAPL", Q(d("0.5")), M(d("200.00"), "USD"), decimal.Zero, d("0.25")),
			want:  []Effect{{Account: 8, Currency: "USD", Delta: d("-100.25")}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.trade.Effects(c)
			if err != nil {
				t.Fatalf("Effects() error = %v", err)
			}
			assertEffects(t, got, tc.want)
		})
	}
}

func TestTrade_Effects_unknownKind(t *testing.T) {
	trade := NewTrade(MustParseDate("2025-07-02"), "", TradeKind("SHORT"), 7, "AAPL", Q(1), M(100, "USD"), decimal.Zero, decimal.Zero)
	_, err := trade.Effects(DefaultConfig())
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Effects() error = %v, want ErrUnknownKind", err)
	}
}

func TestExchange_Effects(t *testing.T) {
	c := DefaultConfig()
	day := MustParseDate("2025-07-03")

	t.Run("sold leaves, bought enters, fee in base currency", func(t *testing.T) {
		x := NewExchange(day, "", ExchangeBuy, 9, M(1400000, "KRW"), M(1000, "USD"), d("3000"))
		got, err := x.Effects(c)
		if err != nil {
			t.Fatalf("Effects() error = %v", err)
		}
		want := []Effect{
			{Account: 9, Currency: "KRW", Delta: d("-1400000")},
			{Account: 9, Currency: "USD", Delta: d("1000")},
			{Account: 9, Currency: "KRW", Delta: d("-3000")},
		}
		assertEffects(t, got, want)
	})

	t.Run("zero fee yields only two effects", func(t *testing.T) {
		x := NewExchange(day, "", ExchangeSell, 9, M(500, "USD"), M(690000, "KRW"), decimal.Zero)
		got, err := x.Effects(c)
		if err != nil {
			t.Fatalf("Effects() error = %v", err)
		}
		want := []Effect{
			{Account: 9, Currency: "USD", Delta: d("-500")},
			{Account: 9, Currency: "KRW", Delta: d("690000")},
		}
		assertEffects(t, got, want)
	})

	t.Run("unknown kind", func(t *testing.T) {
		x := NewExchange(day, "", ExchangeKind("SWAP"), 9, M(1, "USD"), M(1400, "KRW"), decimal.Zero)
		if _, err := x.Effects(c); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("Effects() error = %v, want ErrUnknownKind", err)
		}
	})
}

func TestReverseEffects(t *testing.T) {
	effects := []Effect{
		{Account: 1, Currency: "KRW", Delta: d("-10500")},
		{Account: 2, Currency: "KRW", Delta: d("10000")},
	}
	reversed := reverseEffects(effects)
	want := []Effect{
		{Account: 1, Currency: "KRW", Delta: d("10500")},
		{Account: 2, Currency: "KRW", Delta: d("-10000")},
	}
	assertEffects(t, reversed, want)

	// Reversing twice gives back the original.
	assertEffects(t, reverseEffects(reversed), effects)
}

func assertEffects(t *testing.T, got, want []Effect) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d effects, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Account != want[i].Account || got[i].Currency != want[i].Currency || !got[i].Delta.Equal(want[i].Delta) {
			t.Errorf("effect[%d] = {%d %s %s}, want {%d %s %s}",
				i, got[i].Account, got[i].Currency, got[i].Delta,
				want[i].Account, want[i].Currency, want[i].Delta)
		}
	}
}
