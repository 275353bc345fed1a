package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sjhan/gagyebu"
	"github.com/sjhan/gagyebu/renderer"
)

type monthlyCmd struct {
	start    string
	end      string
	by       string
	kind     string
	currency string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display monthly spending and income sums" }
func (*monthlyCmd) Usage() string {
	return `gagye monthly [-s <start_date>] [-e <end_date>] [-by <kind|category>] [-k <kind>] [-c <currency>]

  Aggregates transaction amounts of one currency per month. With -by kind
  (the default), one row per month and kind with amount and fee totals; with
  -by category, one row per month and top-level category of the kind given
  by -k.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the period (YYYY-MM-DD)")
	f.StringVar(&c.end, "e", "", "End date of the period (YYYY-MM-DD)")
	f.StringVar(&c.by, "by", "kind", "Grouping: kind or category")
	f.StringVar(&c.kind, "k", "spending", "Kind to break down, used with -by category")
	f.StringVar(&c.currency, "c", *baseCurrency, "Currency of the summed amounts")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var from, to gagyebu.Date
	var err error
	if c.start != "" {
		if from, err = gagyebu.ParseDate(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.end != "" {
		if to, err = gagyebu.ParseDate(c.end); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	book, err := openBook()
	if err != nil {
		return fail(err)
	}

	switch c.by {
	case "kind":
		sums := gagyebu.MonthlyKindSums(book.Store(), from, to, c.currency)
		printMarkdown(renderer.KindSums(sums))
	case "category":
		kind, err := gagyebu.ParseTransactionKind(normalizeKind(c.kind))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		sums := gagyebu.MonthlyCategorySums(book.Store(), from, to, kind, c.currency)
		printMarkdown(renderer.CategorySums(sums, book.Store()))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown grouping %q, want kind or category\n", c.by)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

// --- Suggest Command ---

type suggestCmd struct {
	kind   string
	prefix string
	limit  int
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest categories by recent frequency of use" }
func (*suggestCmd) Usage() string {
	return `gagye suggest [-k <kind>] [-p <note prefix>] [-n <limit>]

  Lists the categories most used for a kind over the last 100 days, most
  frequent first. With -p, only entries whose note starts with the prefix
  count. Handy to pick a category id when recording an entry.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "spending", "Kind to suggest categories for")
	f.StringVar(&c.prefix, "p", "", "Count only entries whose note starts with this prefix")
	f.IntVar(&c.limit, "n", 5, "Maximum number of suggestions")
}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := gagyebu.ParseTransactionKind(normalizeKind(c.kind))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	ids := gagyebu.FrequentCategories(book.Store(), kind, c.prefix, c.limit)
	if len(ids) == 0 {
		fmt.Println("No categories used yet.")
		return subcommands.ExitSuccess
	}
	for _, id := range ids {
		name := fmt.Sprintf("category %d", id)
		if cat, err := book.Store().Category(id); err == nil {
			name = cat.Name
		}
		fmt.Printf("%d\t%s\n", id, name)
	}
	return subcommands.ExitSuccess
}
