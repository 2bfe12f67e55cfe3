package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinlot"
	"github.com/google/subcommands"
)

type processCmd struct {
	ordersOut    string
	disposalsOut string
}

func (*processCmd) Name() string     { return "process" }
func (*processCmd) Synopsis() string { return "rebuilds orders and disposals from the account export" }
func (*processCmd) Usage() string {
	return `clt process [-orders <file>] [-disposals <file>]

Runs the full pipeline on the account export: folds the ledger rows back into
orders, then matches disposals against acquisition lots (FIFO) to compute the
realized gains. Both results are written as CSV files.

The account export, the seed file and the fiat unit come from the global
-ledger-file, -seed-file and -fiat flags.
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ordersOut, "orders", "orders.csv", "Output file for the rebuilt orders.")
	f.StringVar(&c.disposalsOut, "disposals", "disposals.csv", "Output file for the disposal records.")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	orders, err := rebuildOrders()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not rebuild orders: %v\n", err)
		return subcommands.ExitFailure
	}

	disposals, err := coinlot.MatchDisposals(orders)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not match disposals: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := writeCSV(c.ordersOut, func(w *os.File) error { return coinlot.EncodeOrders(w, orders) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeCSV(c.disposalsOut, func(w *os.File) error { return coinlot.EncodeDisposals(w, disposals) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %d orders to %q and %d disposals to %q.\n", len(orders), c.ordersOut, len(disposals), c.disposalsOut)
	return subcommands.ExitSuccess
}

func writeCSV(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return f.Close()
}
