package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/coinlot/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Load secrets (GEMINI_API_KEY) from a local .env file, if present.
	godotenv.Load()

	completion().Complete("clt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the clt command line for shell completion.
// Run COMP_INSTALL=1 clt to install it.
func completion() *complete.Command {
	global := map[string]complete.Predictor{
		"ledger-file": predict.Files("*.csv"),
		"seed-file":   predict.Files("*.jsonl"),
		"fiat":        predict.Set{"USD", "EUR"},
	}
	return &complete.Command{
		Flags: global,
		Sub: map[string]*complete.Command{
			"process": {Flags: map[string]complete.Predictor{
				"orders":    predict.Files("*.csv"),
				"disposals": predict.Files("*.csv"),
			}},
			"orders": {},
			"gains":  {},
			"price": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
			}},
			"explain": {},
			"topic":   {Args: predict.Set{"readme", "ledger", "opening", "gains"}},
		},
	}
}
