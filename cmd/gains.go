package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinlot"
	"github.com/etnz/coinlot/renderer"
	"github.com/google/subcommands"
)

type gainsCmd struct{}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "displays the realized gains report" }
func (*gainsCmd) Usage() string {
	return `clt gains

Rebuilds the orders from the account export, matches every disposal against
its acquisition lots (FIFO), and displays the realized gain or loss of each
disposal, with per-unit subtotals.
`
}
func (*gainsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.GainsMarkdown(disposals))
	return subcommands.ExitSuccess
}
