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

// record validates, stores and persists a new ledger event.
func record(e gagyebu.Event) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	stored, err := book.Create(e)
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded entry %d: %s\n", stored.ID(), renderer.Event(stored))
	return subcommands.ExitSuccess
}

// --- Spend Command ---

type spendCmd struct {
	date     string
	amount   float64
	currency string
	fee      float64
	category int64
	account  int64
	memo     string
}

func (*spendCmd) Name() string     { return "spend" }
func (*spendCmd) Synopsis() string { return "record a spending" }
func (*spendCmd) Usage() string {
	return `gagye spend -a <amount> -from <account> [-d <date>] [-c <currency>] [-fee <fee>] [-cat <category>] [-m <memo>]

  Records a spending. The amount plus the fee is debited from the pay account.
`
}

func (c *spendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", gagyebu.Today().String(), "Entry date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount spent")
	f.StringVar(&c.currency, "c", *baseCurrency, "Currency of the amount")
	f.Float64Var(&c.fee, "fee", 0, "Fee charged on top of the amount")
	f.Int64Var(&c.category, "cat", 0, "Category id")
	f.Int64Var(&c.account, "from", 0, "Account paying")
	f.StringVar(&c.memo, "m", "", "An optional note for the entry")
}

func (c *spendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 || c.account == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := gagyebu.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return record(gagyebu.NewTransaction(day, c.memo, gagyebu.Spending, c.category,
		gagyebu.M(c.amount, c.currency), decimal.NewFromFloat(c.fee), c.account, 0))
}

// --- Income Command ---

type incomeCmd struct {
	date     string
	amount   float64
	currency string
	fee      float64
	category int64
	account  int64
	memo     string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income" }
func (*incomeCmd) Usage() string {
	return `gagye income -a <amount> -to <account> [-d <date>] [-c <currency>] [-fee <fee>] [-cat <category>] [-m <memo>]

  Records an income. The amount minus the fee is credited to the receive account.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", gagyebu.Today().String(), "Entry date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount received")
	f.StringVar(&c.currency, "c", *baseCurrency, "Currency of the amount")
	f.Float64Var(&c.fee, "fee", 0, "Fee withheld from the amount")
	f.Int64Var(&c.category, "cat", 0, "Category id")
	f.Int64Var(&c.account, "to", 0, "Account receiving")
	f.StringVar(&c.memo, "m", "", "An optional note for the entry")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 || c.account == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := gagyebu.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return record(gagyebu.NewTransaction(day, c.memo, gagyebu.Income, c.category,
		gagyebu.M(c.amount, c.currency), decimal.NewFromFloat(c.fee), 0, c.account))
}

// --- Transfer Command ---

type transferCmd struct {
	date     string
	amount   float64
	currency string
	fee      float64
	from     int64
	to       int64
	memo     string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "record a transfer between two accounts" }
func (*transferCmd) Usage() string {
	return `gagye transfer -a <amount> -from <account> -to <account> [-d <date>] [-c <currency>] [-fee <fee>] [-m <memo>]

  Moves money between two accounts. The fee stays on the paying side.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", gagyebu.Today().String(), "Entry date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount moved")
	f.StringVar(&c.currency, "c", *baseCurrency, "Currency of the amount")
	f.Float64Var(&c.fee, "fee", 0, "Transfer fee, charged to the paying account")
	f.Int64Var(&c.from, "from", 0, "Account paying")
	f.Int64Var(&c.to, "to", 0, "Account receiving")
	f.StringVar(&c.memo, "m", "", "An optional note for the entry")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 || c.from == 0 || c.to == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := gagyebu.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return record(gagyebu.NewTransaction(day, c.memo, gagyebu.Transfer, 0,
		gagyebu.M(c.amount, c.currency), decimal.NewFromFloat(c.fee), c.from, c.to))
}
