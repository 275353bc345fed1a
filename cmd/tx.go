package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/sjhan/gagyebu"
	"github.com/sjhan/gagyebu/renderer"
)

type txCmd struct {
	start    string
	end      string
	kinds    string
	currency string
	account  int64
	category int64
	note     string
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `gagye tx [-s <start_date>] [-e <end_date>] [-k <kinds>] [-c <currency>] [-acc <account>] [-cat <category>] [-n <text>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger, most recent first, with options for
  filtering and limiting the output. Bounds are inclusive; -n matches the
  note, case-insensitively.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the period (YYYY-MM-DD)")
	f.StringVar(&c.end, "e", "", "End date of the period (YYYY-MM-DD)")
	f.StringVar(&c.kinds, "k", "", "Comma-separated kinds (spending, income, transfer)")
	f.StringVar(&c.currency, "c", "", "Only transactions in this currency")
	f.Int64Var(&c.account, "acc", 0, "Only transactions paying from or into this account")
	f.Int64Var(&c.category, "cat", 0, "Only transactions in this category")
	f.StringVar(&c.note, "n", "", "Only transactions whose note contains this text")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	filter := gagyebu.SearchFilter{Currency: strings.ToUpper(strings.TrimSpace(c.currency)), Account: c.account, Category: c.category, Note: c.note}
	var err error
	if c.start != "" {
		if filter.From, err = gagyebu.ParseDate(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.end != "" {
		if filter.To, err = gagyebu.ParseDate(c.end); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	for _, k := range strings.Split(c.kinds, ",") {
		if k = strings.TrimSpace(k); k == "" {
			continue
		}
		kind, err := gagyebu.ParseTransactionKind(normalizeKind(k))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.Kinds = append(filter.Kinds, kind)
	}

	book, err := openBook()
	if err != nil {
		return fail(err)
	}

	transactions := gagyebu.Search(book.Store(), filter)
	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.Transactions(transactions, book.Store()))

	return subcommands.ExitSuccess
}
