package gagyebu

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SearchFilter narrows a transaction search. The zero value matches every
// transaction.
type SearchFilter struct {
	From Date // From is the inclusive lower date bound; zero means open.
	To   Date // To is the inclusive upper date bound; zero means open.
	// Kinds restricts the result to the listed kinds; empty means all.
	Kinds []TransactionKind
	// Currency matches the transaction amount's currency; empty means any.
	Currency string
	// Account matches transactions paying from or receiving into the
	// account; zero means any.
	Account int64
	// Category matches the transaction's category; zero means any.
	Category int64
	// Note is a case-insensitive substring match on the note.
	Note string
}

func (f SearchFilter) matches(t Transaction) bool {
	if !f.From.IsZero() && t.When().Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.When().After(f.To) {
		return false
	}
	if len(f.Kinds) > 0 {
		found := false
		for _, k := range f.Kinds {
			if t.Kind == k {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Currency != "" && t.Amount.Currency() != f.Currency {
		return false
	}
	if f.Account != 0 && t.PayAccount != f.Account && t.ReceiveAccount != f.Account {
		return false
	}
	if f.Category != 0 && t.Category != f.Category {
		return false
	}
	if f.Note != "" && !strings.Contains(strings.ToLower(t.Note()), strings.ToLower(f.Note)) {
		return false
	}
	return true
}

// Search returns the transactions matching the filter, most recent first:
// descending date, then descending id within a day.
func Search(s Store, f SearchFilter) []Transaction {
	var result []Transaction
	for _, ev := range s.Events() {
		t, ok := ev.(Transaction)
		if !ok {
			continue
		}
		if f.matches(t) {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].When().Equal(result[j].When()) {
			return result[i].When().After(result[j].When())
		}
		return result[i].ID() > result[j].ID()
	})
	return result
}

// Trades returns every trade in the given period, most recent first. Zero
// bounds are open.
func Trades(s Store, from, to Date) []Trade {
	var result []Trade
	for _, ev := range s.Events() {
		t, ok := ev.(Trade)
		if !ok {
			continue
		}
		if !from.IsZero() && t.When().Before(from) {
			continue
		}
		if !to.IsZero() && t.When().After(to) {
			continue
		}
		result = append(result, t)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].When().Equal(result[j].When()) {
			return result[i].When().After(result[j].When())
		}
		return result[i].ID() > result[j].ID()
	})
	return result
}

// Exchanges returns every currency exchange in the given period, most recent
// first. Zero bounds are open.
func Exchanges(s Store, from, to Date) []Exchange {
	var result []Exchange
	for _, ev := range s.Events() {
		x, ok := ev.(Exchange)
		if !ok {
			continue
		}
		if !from.IsZero() && x.When().Before(from) {
			continue
		}
		if !to.IsZero() && x.When().After(to) {
			continue
		}
		result = append(result, x)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].When().Equal(result[j].When()) {
			return result[i].When().After(result[j].When())
		}
		return result[i].ID() > result[j].ID()
	})
	return result
}

// MonthlySum is one cell of a monthly aggregation: the sum of transaction
// amounts for one month and one grouping key.
type MonthlySum struct {
	Month Date // Month is the first day of the month.
	Key   int64
	Sum   decimal.Decimal
}

// MonthlyCategorySums aggregates transaction amounts of one kind and one
// currency per month, grouped by top-level category. A transaction in a
// sub-category counts toward the sub-category's parent. Fees are not
// included; the sums mirror the entered amounts. The result is ordered by
// month then category id.
func MonthlyCategorySums(s Store, from, to Date, kind TransactionKind, currency string) []MonthlySum {
	sums := make(map[Date]map[int64]decimal.Decimal)
	for _, t := range Search(s, SearchFilter{From: from, To: to, Kinds: []TransactionKind{kind}, Currency: currency}) {
		month := t.When().StartOfMonth()
		key := topLevelCategory(s, t.Category)
		if sums[month] == nil {
			sums[month] = make(map[int64]decimal.Decimal)
		}
		sums[month][key] = sums[month][key].Add(t.Amount.Amount())
	}
	return flattenSums(sums)
}

// topLevelCategory resolves a category to its top-level ancestor. Categories
// form a two-level tree, so one hop suffices; an unknown category stands for
// itself.
func topLevelCategory(s Store, id int64) int64 {
	c, err := s.Category(id)
	if err != nil || c.Parent == 0 {
		return id
	}
	return c.Parent
}

// KindSum is one cell of a per-kind monthly aggregation: the amount and fee
// totals for one month and one kind.
type KindSum struct {
	Month Date
	Kind  TransactionKind
	Sum   decimal.Decimal
	Fee   decimal.Decimal
}

// MonthlyKindSums aggregates transaction amounts and fees of one currency per
// month and kind over the given period. The result is ordered by month, then
// by kind in declaration order.
func MonthlyKindSums(s Store, from, to Date, currency string) []KindSum {
	type cell struct{ sum, fee decimal.Decimal }
	sums := make(map[Date]map[TransactionKind]*cell)
	for _, t := range Search(s, SearchFilter{From: from, To: to, Currency: currency}) {
		month := t.When().StartOfMonth()
		if sums[month] == nil {
			sums[month] = make(map[TransactionKind]*cell)
		}
		c, ok := sums[month][t.Kind]
		if !ok {
			c = &cell{}
			sums[month][t.Kind] = c
		}
		c.sum = c.sum.Add(t.Amount.Amount())
		c.fee = c.fee.Add(t.Fee)
	}
	months := make([]Date, 0, len(sums))
	for month := range sums {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	var result []KindSum
	for _, month := range months {
		for _, kind := range TransactionKinds() {
			if c, ok := sums[month][kind]; ok {
				result = append(result, KindSum{Month: month, Kind: kind, Sum: c.sum, Fee: c.fee})
			}
		}
	}
	return result
}

func flattenSums(sums map[Date]map[int64]decimal.Decimal) []MonthlySum {
	var result []MonthlySum
	for month, byKey := range sums {
		for key, sum := range byKey {
			result = append(result, MonthlySum{Month: month, Key: key, Sum: sum})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Month.Equal(result[j].Month) {
			return result[i].Month.Before(result[j].Month)
		}
		return result[i].Key < result[j].Key
	})
	return result
}

// FrequentCategories returns up to limit category ids of the given kind,
// most used first, counting only entries of the last 100 days whose note
// starts with prefix (case-insensitively; empty matches all). Ties break on
// the lower id. It backs the entry form's category suggestions.
func FrequentCategories(s Store, kind TransactionKind, prefix string, limit int) []int64 {
	cutoff := Today().Add(-100)
	counts := make(map[int64]int)
	for _, t := range Search(s, SearchFilter{Kinds: []TransactionKind{kind}}) {
		if t.Category == 0 || !t.When().After(cutoff) {
			continue
		}
		if prefix != "" && !strings.HasPrefix(strings.ToLower(t.Note()), strings.ToLower(prefix)) {
			continue
		}
		counts[t.Category]++
	}
	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}
