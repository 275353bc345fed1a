// Package cmd implements the CLI application to keep a household ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sjhan/gagyebu"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountCmd{}, "ledger")
	c.Register(&categoryCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&spendCmd{}, "entries")
	c.Register(&incomeCmd{}, "entries")
	c.Register(&transferCmd{}, "entries")
	c.Register(&tradeCmd{}, "entries")
	c.Register(&exchangeCmd{}, "entries")
	c.Register(&editCmd{}, "entries")
	c.Register(&deleteCmd{}, "entries")

	c.Register(&txCmd{}, "reports")
	c.Register(&balanceCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&suggestCmd{}, "reports")

	c.Register(&quoteCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
	c.Register(&assistCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file (JSONL format)")
var baseCurrency = flag.String("base-currency", "KRW", "The ledger's home currency")

func appConfig() gagyebu.Config {
	return gagyebu.Config{BaseCurrency: *baseCurrency}
}

// openBook loads the ledger file into a book ready for reads and writes.
// A missing file opens an empty ledger.
func openBook() (*gagyebu.Book, error) {
	store, err := gagyebu.LoadStore(*ledgerFile, appConfig())
	if err != nil {
		return nil, err
	}
	return gagyebu.NewBook(store, appConfig()), nil
}

// saveBook persists the book's store back to the ledger file.
func saveBook(book *gagyebu.Book) error {
	return gagyebu.SaveStore(*ledgerFile, book.Store())
}

// fail prints the error and maps it to the command exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// normalizeKind maps the user spelling of a kind flag to the stored form.
func normalizeKind(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
