// Package renderer turns ledger data into markdown for terminal display.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sjhan/gagyebu"
)

// Event renders a single ledger event to a one-line string.
func Event(ev gagyebu.Event) string {
	switch v := ev.(type) {
	case gagyebu.Transaction:
		switch v.Kind {
		case gagyebu.Spending:
			return fmt.Sprintf("Spent %s from account %d", v.Amount, v.PayAccount)
		case gagyebu.Income:
			return fmt.Sprintf("Received %s into account %d", v.Amount, v.ReceiveAccount)
		case gagyebu.Transfer:
			return fmt.Sprintf("Transferred %s from account %d to %d", v.Amount, v.PayAccount, v.ReceiveAccount)
		}
		return fmt.Sprintf("%s of %s", v.Kind, v.Amount)
	case gagyebu.Trade:
		verb := "Bought"
		if v.Kind == gagyebu.TradeSell {
			verb = "Sold"
		}
		return fmt.Sprintf("%s %s of %s at %s", verb, v.Quantity, v.Security, v.Price)
	case gagyebu.Exchange:
		return fmt.Sprintf("Exchanged %s for %s in account %d", v.Sell, v.Buy, v.Account)
	default:
		return fmt.Sprintf("%v", ev)
	}
}

// Transactions renders a markdown table of transactions. Account and
// category names come from the store when known.
func Transactions(transactions []gagyebu.Transaction, s gagyebu.Store) string {
	if len(transactions) == 0 {
		return "No transactions.\n"
	}
	var b strings.Builder
	b.WriteString("| Id | Date | Kind | Category | Amount | Fee | From | To | Note |\n")
	b.WriteString("|---:|------|------|----------|-------:|----:|------|----|------|\n")
	for _, t := range transactions {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			t.ID(), t.When(), t.Kind,
			categoryName(s, t.Category),
			t.Amount, t.Fee,
			accountName(s, t.PayAccount),
			accountName(s, t.ReceiveAccount),
			t.Note())
	}
	return b.String()
}

// Balances renders a markdown table with one row per account and currency.
func Balances(accounts []*gagyebu.Account) string {
	var b strings.Builder
	b.WriteString("| Account | Name | Currency | Balance |\n")
	b.WriteString("|--------:|------|----------|--------:|\n")
	rows := 0
	for _, a := range accounts {
		currencies := make([]string, 0, len(a.Balances))
		for cur := range a.Balances {
			currencies = append(currencies, cur)
		}
		sort.Strings(currencies)
		for _, cur := range currencies {
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", a.ID, a.Name, cur, a.Balances[cur])
			rows++
		}
		if len(currencies) == 0 {
			fmt.Fprintf(&b, "| %d | %s | - | - |\n", a.ID, a.Name)
			rows++
		}
	}
	if rows == 0 {
		return "No accounts.\n"
	}
	return b.String()
}

// Accounts renders the account list.
func Accounts(accounts []*gagyebu.Account) string {
	if len(accounts) == 0 {
		return "No accounts.\n"
	}
	var b strings.Builder
	b.WriteString("| Id | Name |\n")
	b.WriteString("|---:|------|\n")
	for _, a := range accounts {
		fmt.Fprintf(&b, "| %d | %s |\n", a.ID, a.Name)
	}
	return b.String()
}

// Categories renders the category tree as a table, sub-categories after
// their parent.
func Categories(categories []*gagyebu.Category) string {
	if len(categories) == 0 {
		return "No categories.\n"
	}
	var b strings.Builder
	b.WriteString("| Id | Kind | Name | Parent |\n")
	b.WriteString("|---:|------|------|-------:|\n")
	for _, c := range categories {
		parent := ""
		if c.Parent != 0 {
			parent = fmt.Sprintf("%d", c.Parent)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", c.ID, c.Kind, c.Name, parent)
	}
	return b.String()
}

// KindSums renders a per-month, per-kind table of amount and fee totals.
func KindSums(sums []gagyebu.KindSum) string {
	if len(sums) == 0 {
		return "No transactions in the period.\n"
	}
	var b strings.Builder
	b.WriteString("| Month | Kind | Sum | Fees |\n")
	b.WriteString("|-------|------|----:|-----:|\n")
	for _, s := range sums {
		fmt.Fprintf(&b, "| %d-%02d | %s | %s | %s |\n", s.Month.Year(), s.Month.Month(), s.Kind, s.Sum, s.Fee)
	}
	return b.String()
}

// CategorySums renders a per-month sum table grouped by top-level category.
func CategorySums(sums []gagyebu.MonthlySum, s gagyebu.Store) string {
	if len(sums) == 0 {
		return "No transactions in the period.\n"
	}
	var b strings.Builder
	b.WriteString("| Month | Category | Sum |\n")
	b.WriteString("|-------|----------|----:|\n")
	for _, row := range sums {
		fmt.Fprintf(&b, "| %d-%02d | %s | %s |\n", row.Month.Year(), row.Month.Month(), categoryName(s, row.Key), row.Sum)
	}
	return b.String()
}

func accountName(s gagyebu.Store, id int64) string {
	if id == 0 {
		return ""
	}
	if a, err := s.Account(id); err == nil && a.Name != "" {
		return a.Name
	}
	return fmt.Sprintf("%d", id)
}

func categoryName(s gagyebu.Store, id int64) string {
	if id == 0 {
		return ""
	}
	if c, err := s.Category(id); err == nil && c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%d", id)
}
