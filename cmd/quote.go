package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/sjhan/gagyebu"
)

type quoteCmd struct {
	amount float64
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show today's exchange rate between two currencies" }
func (*quoteCmd) Usage() string {
	return `gagye quote [-a <amount>] <from> <to>

  Shows today's exchange rate, e.g. 'gagye quote USD KRW'. With -a, converts
  the given amount instead of one unit.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 1, "Amount of the 'from' currency to convert")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	from := strings.ToUpper(f.Arg(0))
	to := strings.ToUpper(f.Arg(1))

	rate, err := gagyebu.FxRate(from, to)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%.2f %s = %.2f %s (rate %.4f)\n", c.amount, from, c.amount*rate, to, rate)
	return subcommands.ExitSuccess
}

// --- Fmt Command ---

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the ledger file in canonical form" }
func (*fmtCmd) Usage() string {
	return `gagye fmt

  Reads the ledger file and writes it back: accounts first, then categories,
  then entries in id order, one JSON object per line. Also verifies the file
  parses and that every entry's effects replay cleanly.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Formatted %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}
