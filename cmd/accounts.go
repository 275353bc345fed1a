package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sjhan/gagyebu"
	"github.com/sjhan/gagyebu/renderer"
)

// --- Account Command ---

type accountCmd struct {
	add    string
	rename int64
	name   string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "add, rename or list accounts" }
func (*accountCmd) Usage() string {
	return `gagye account [-add <name> | -rename <id> -name <name>]

  Without flags, lists the accounts. With -add, registers a new account.
  With -rename, changes an account's name without touching its history.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a new account to register")
	f.Int64Var(&c.rename, "rename", 0, "Id of an account to rename")
	f.StringVar(&c.name, "name", "", "New name, used with -rename")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	switch {
	case c.add != "":
		account, err := book.AddAccount(c.add)
		if err != nil {
			return fail(err)
		}
		if err := saveBook(book); err != nil {
			return fail(err)
		}
		fmt.Printf("Added account %d %q\n", account.ID, account.Name)
	case c.rename != 0:
		if c.name == "" {
			f.Usage()
			return subcommands.ExitUsageError
		}
		if err := book.RenameAccount(c.rename, c.name); err != nil {
			return fail(err)
		}
		if err := saveBook(book); err != nil {
			return fail(err)
		}
		fmt.Printf("Renamed account %d to %q\n", c.rename, c.name)
	default:
		printMarkdown(renderer.Accounts(book.Store().Accounts()))
	}
	return subcommands.ExitSuccess
}

// --- Category Command ---

type categoryCmd struct {
	add    string
	parent int64
	kind   string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "add or list categories" }
func (*categoryCmd) Usage() string {
	return `gagye category [-add <name> [-parent <id>] [-k <kind>]]

  Without flags, lists the categories. With -add, registers a new category,
  optionally as a sub-category of -parent.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a new category to register")
	f.Int64Var(&c.parent, "parent", 0, "Parent category id for a sub-category")
	f.StringVar(&c.kind, "k", "spending", "Kind the category applies to (spending, income, transfer)")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if c.add == "" {
		printMarkdown(renderer.Categories(book.Store().Categories()))
		return subcommands.ExitSuccess
	}
	category, err := book.AddCategory(c.add, c.parent, gagyebu.TransactionKind(normalizeKind(c.kind)))
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Added category %d %q\n", category.ID, category.Name)
	return subcommands.ExitSuccess
}

// --- Balance Command ---

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show every account balance" }
func (*balanceCmd) Usage() string {
	return `gagye balance

  Shows the current balance of every account, per currency.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Balances(book.Store().Accounts()))
	return subcommands.ExitSuccess
}
