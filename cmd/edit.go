package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sjhan/gagyebu"
	"github.com/sjhan/gagyebu/renderer"
)

// --- Edit Command ---

type editCmd struct {
	id       int64
	kind     string
	date     string
	amount   float64
	currency string
	fee      float64
	category int64
	from     int64
	to       int64
	memo     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify a recorded transaction" }
func (*editCmd) Usage() string {
	return `gagye edit -id <id> [-k <kind>] [-d <date>] [-a <amount>] [-c <currency>] [-fee <fee>] [-cat <category>] [-from <account>] [-to <account>] [-m <memo>]

  Rewrites a recorded spending, income or transfer. Balances are adjusted as
  if the old entry never happened and the new one always had. Only the flags
  given change; the rest keeps its stored value. Trades and exchanges cannot
  be edited; delete and re-record them.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the entry to edit")
	f.StringVar(&c.kind, "k", "", "New kind (spending, income, transfer)")
	f.StringVar(&c.date, "d", "", "New entry date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "New amount")
	f.StringVar(&c.currency, "c", "", "New currency")
	f.Float64Var(&c.fee, "fee", -1, "New fee")
	f.Int64Var(&c.category, "cat", -1, "New category id (0 clears it)")
	f.Int64Var(&c.from, "from", -1, "New pay account (0 clears it)")
	f.Int64Var(&c.to, "to", -1, "New receive account (0 clears it)")
	f.StringVar(&c.memo, "m", "\x00", "New note")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	ev, err := book.Get(c.id)
	if err != nil {
		return fail(err)
	}
	tx, ok := ev.(gagyebu.Transaction)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: entry %d is not a spending, income or transfer\n", c.id)
		return subcommands.ExitFailure
	}

	if c.kind != "" {
		kind, err := gagyebu.ParseTransactionKind(normalizeKind(c.kind))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Kind = kind
	}
	if c.date != "" {
		day, err := gagyebu.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Date = day
	}
	if c.amount != 0 {
		currency := tx.Amount.Currency()
		if c.currency != "" {
			currency = c.currency
		}
		tx.Amount = gagyebu.M(c.amount, currency)
	} else if c.currency != "" {
		tx.Amount = gagyebu.M(tx.Amount.Amount(), c.currency)
	}
	if c.fee >= 0 {
		tx.Fee = decimal.NewFromFloat(c.fee)
	}
	if c.category >= 0 {
		tx.Category = c.category
	}
	if c.from >= 0 {
		tx.PayAccount = c.from
	}
	if c.to >= 0 {
		tx.ReceiveAccount = c.to
	}
	if c.memo != "\x00" {
		tx.Memo = c.memo
	}

	if err := book.Update(tx); err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated entry %d: %s\n", tx.ID(), renderer.Event(tx))
	return subcommands.ExitSuccess
}

// --- Delete Command ---

type deleteCmd struct {
	id int64
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a recorded entry" }
func (*deleteCmd) Usage() string {
	return `gagye delete -id <id>

  Removes an entry and reverses its balance effects.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the entry to delete")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	ev, err := book.Get(c.id)
	if err != nil {
		return fail(err)
	}
	if err := book.Delete(c.id); err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted entry %d: %s\n", c.id, renderer.Event(ev))
	return subcommands.ExitSuccess
}
