package gagyebu

import (
	"testing"

	"github.com/shopspring/decimal"
)

// newQueryFixture fills a book with a category tree and a small two-month
// history. Categories: 1 transport, 2 food, 3 lunch (under food), 4 dinner
// (under food), 5 salary.
func newQueryFixture(t *testing.T) *Book {
	t.Helper()
	book := NewBook(NewMemStore(), DefaultConfig())

	categories := []struct {
		name   string
		parent int64
		kind   TransactionKind
	}{
		{"transport", 0, Spending},
		{"food", 0, Spending},
		{"lunch", 2, Spending},
		{"dinner", 2, Spending},
		{"salary", 0, Income},
	}
	for _, c := range categories {
		if _, err := book.AddCategory(c.name, c.parent, c.kind); err != nil {
			t.Fatalf("AddCategory(%s) error = %v", c.name, err)
		}
	}

	entries := []Event{
		NewTransaction(MustParseDate("2025-06-03"), "bus card", Spending, 1, M(50000, "KRW"), decimal.Zero, 1, 0),
		NewTransaction(MustParseDate("2025-06-10"), "lunch kimbap", Spending, 3, M(9000, "KRW"), decimal.Zero, 1, 0),
		NewTransaction(MustParseDate("2025-06-25"), "salary", Income, 5, M(3000000, "KRW"), decimal.Zero, 0, 2),
		NewTransaction(MustParseDate("2025-07-01"), "to savings", Transfer, 0, M(500000, "KRW"), d("500"), 2, 3),
		NewTransaction(MustParseDate("2025-07-02"), "lunch bibimbap", Spending, 3, M(11000, "KRW"), decimal.Zero, 1, 0),
		NewTransaction(MustParseDate("2025-07-02"), "dinner", Spending, 4, M(25000, "KRW"), decimal.Zero, 2, 0),
		NewTransaction(MustParseDate("2025-07-15"), "coffee in hongdae", Spending, 3, M(d("5.50"), "USD"), decimal.Zero, 1, 0),
		NewTransaction(MustParseDate("2025-07-25"), "salary", Income, 5, M(3000000, "KRW"), decimal.Zero, 0, 2),
		NewTrade(MustParseDate("2025-07-10"), "", TradeBuy, 4, "Samsung Electronics", Q(10), M(70000, "KRW"), d("350"), d("150")),
	}
	for _, e := range entries {
		if _, err := book.Create(e); err != nil {
			t.Fatalf("Create(%v) error = %v", e, err)
		}
	}
	return book
}

func TestSearch(t *testing.T) {
	book := newQueryFixture(t)
	s := book.Store()

	testCases := []struct {
		name      string
		filter    SearchFilter
		wantNotes []string
	}{
		{
			name:      "zero filter matches all transactions, most recent first",
			filter:    SearchFilter{},
			wantNotes: []string{"salary", "coffee in hongdae", "dinner", "lunch bibimbap", "to savings", "salary", "lunch kimbap", "bus card"},
		},
		{
			name:      "period bounds are inclusive",
			filter:    SearchFilter{From: MustParseDate("2025-06-10"), To: MustParseDate("2025-07-01")},
			wantNotes: []string{"to savings", "salary", "lunch kimbap"},
		},
		{
			name:      "kind filter",
			filter:    SearchFilter{Kinds: []TransactionKind{Income}},
			wantNotes: []string{"salary", "salary"},
		},
		{
			name:      "currency filter",
			filter:    SearchFilter{Currency: "USD"},
			wantNotes: []string{"coffee in hongdae"},
		},
		{
			name:      "account matches pay or receive side",
			filter:    SearchFilter{Account: 2},
			wantNotes: []string{"salary", "dinner", "to savings", "salary"},
		},
		{
			name:      "category filter",
			filter:    SearchFilter{Category: 3},
			wantNotes: []string{"coffee in hongdae", "lunch bibimbap", "lunch kimbap"},
		},
		{
			name:      "note substring is case-insensitive",
			filter:    SearchFilter{Note: "LUNCH"},
			wantNotes: []string{"lunch bibimbap", "lunch kimbap"},
		},
		{
			name:      "combined filters",
			filter:    SearchFilter{From: MustParseDate("2025-07-01"), Kinds: []TransactionKind{Spending}, Account: 1, Currency: "KRW"},
			wantNotes: []string{"lunch bibimbap"},
		},
		{
			name:      "no match",
			filter:    SearchFilter{Note: "taxi"},
			wantNotes: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Search(s, tc.filter)
			if len(got) != len(tc.wantNotes) {
				t.Fatalf("Search() returned %d transactions, want %d", len(got), len(tc.wantNotes))
			}
			for i, want := range tc.wantNotes {
				if got[i].Note() != want {
					t.Errorf("Search()[%d].Note() = %q, want %q", i, got[i].Note(), want)
				}
			}
		})
	}
}

func TestSearch_orderMostRecentFirst(t *testing.T) {
	book := NewBook(NewMemStore(), DefaultConfig())
	for _, day := range []string{"2025-06-01", "2025-07-01", "2025-07-01"} {
		if _, err := book.Create(NewTransaction(MustParseDate(day), "", Spending, 0, M(100, "KRW"), decimal.Zero, 1, 0)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got := Search(book.Store(), SearchFilter{})
	// Descending date, then descending id within the same day.
	want := []int64{3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("Search() returned %d transactions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID() != want[i] {
			t.Errorf("Search()[%d].ID() = %d, want %d", i, got[i].ID(), want[i])
		}
	}
}

func TestSearch_excludesOtherFamilies(t *testing.T) {
	book := newQueryFixture(t)

	// The fixture holds eight transactions and one trade; the trade must not
	// leak into the transaction search.
	if got := len(Search(book.Store(), SearchFilter{})); got != 8 {
		t.Errorf("Search() returned %d transactions, want 8", got)
	}
	if got := len(Trades(book.Store(), Date{}, Date{})); got != 1 {
		t.Errorf("Trades() returned %d trades, want 1", got)
	}
}

func TestMonthlyCategorySums(t *testing.T) {
	book := newQueryFixture(t)

	// The lunch and dinner sub-categories roll up into food (2); the USD
	// coffee is outside the KRW scope.
	got := MonthlyCategorySums(book.Store(), Date{}, Date{}, Spending, "KRW")
	want := []MonthlySum{
		{Month: MustParseDate("2025-06-01"), Key: 1, Sum: d("50000")},
		{Month: MustParseDate("2025-06-01"), Key: 2, Sum: d("9000")},
		{Month: MustParseDate("2025-07-01"), Key: 2, Sum: d("36000")},
	}
	if len(got) != len(want) {
		t.Fatalf("MonthlyCategorySums() returned %d rows, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Month.Equal(want[i].Month) || got[i].Key != want[i].Key || !got[i].Sum.Equal(want[i].Sum) {
			t.Errorf("row[%d] = {%s %d %s}, want {%s %d %s}",
				i, got[i].Month, got[i].Key, got[i].Sum, want[i].Month, want[i].Key, want[i].Sum)
		}
	}
}

func TestMonthlyKindSums(t *testing.T) {
	book := newQueryFixture(t)

	got := MonthlyKindSums(book.Store(), MustParseDate("2025-07-01"), MustParseDate("2025-07-31"), "KRW")
	want := []KindSum{
		{Month: MustParseDate("2025-07-01"), Kind: Spending, Sum: d("36000"), Fee: d("0")},
		{Month: MustParseDate("2025-07-01"), Kind: Income, Sum: d("3000000"), Fee: d("0")},
		{Month: MustParseDate("2025-07-01"), Kind: Transfer, Sum: d("500000"), Fee: d("500")},
	}
	if len(got) != len(want) {
		t.Fatalf("MonthlyKindSums() returned %d rows, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Month.Equal(want[i].Month) || got[i].Kind != want[i].Kind ||
			!got[i].Sum.Equal(want[i].Sum) || !got[i].Fee.Equal(want[i].Fee) {
			t.Errorf("row[%d] = {%s %s %s %s}, want {%s %s %s %s}",
				i, got[i].Month, got[i].Kind, got[i].Sum, got[i].Fee,
				want[i].Month, want[i].Kind, want[i].Sum, want[i].Fee)
		}
	}
}

func TestFrequentCategories(t *testing.T) {
	book := NewBook(NewMemStore(), DefaultConfig())
	spend := func(day Date, note string, category int64) {
		t.Helper()
		if _, err := book.Create(NewTransaction(day, note, Spending, category, M(1000, "KRW"), decimal.Zero, 1, 0)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	spend(Today().Add(-5), "lunch kimbap", 3)
	spend(Today().Add(-20), "lunch bibimbap", 3)
	spend(Today().Add(-30), "bus card", 1)
	// Outside the 100-day window; must not count.
	spend(Today().Add(-150), "bus card", 1)
	spend(Today().Add(-150), "bus card", 1)

	got := FrequentCategories(book.Store(), Spending, "", 10)
	want := []int64{3, 1} // 3 used twice in the window, 1 once
	if len(got) != len(want) {
		t.Fatalf("FrequentCategories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FrequentCategories()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if got := FrequentCategories(book.Store(), Spending, "LUNCH", 10); len(got) != 1 || got[0] != 3 {
		t.Errorf("FrequentCategories(prefix) = %v, want [3]", got)
	}
	if got := FrequentCategories(book.Store(), Spending, "", 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("FrequentCategories(limit=1) = %v, want [3]", got)
	}
}
