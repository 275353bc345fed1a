package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sjhan/gagyebu/cmd"
)

func main() {
	// When invoked by the shell for completion, this prints the candidates
	// and exits. Install with: COMP_INSTALL=1 gagye
	completer().Complete("gagye")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completer() *complete.Command {
	dateFlags := map[string]complete.Predictor{
		"d": predict.Nothing,
		"m": predict.Nothing,
	}
	kinds := predict.Set{"spending", "income", "transfer"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file":   predict.Files("*.jsonl"),
			"base-currency": predict.Set{"KRW", "USD", "EUR", "JPY"},
		},
		Sub: map[string]*complete.Command{
			"spend":    {Flags: dateFlags},
			"income":   {Flags: dateFlags},
			"transfer": {Flags: dateFlags},
			"trade":    {Flags: map[string]complete.Predictor{"k": predict.Set{"buy", "sell"}}},
			"exchange": {Flags: map[string]complete.Predictor{"k": predict.Set{"buy", "sell"}}},
			"edit":     {Flags: map[string]complete.Predictor{"k": kinds}},
			"delete":   {},
			"account":  {},
			"category": {Flags: map[string]complete.Predictor{"k": kinds}},
			"balance":  {},
			"tx":       {Flags: map[string]complete.Predictor{"k": kinds}},
			"monthly":  {Flags: map[string]complete.Predictor{"by": predict.Set{"kind", "category"}, "k": kinds}},
			"suggest":  {Flags: map[string]complete.Predictor{"k": kinds}},
			"quote":    {},
			"fmt":      {},
			"topic":    {},
			"assist":   {},
		},
	}
}
