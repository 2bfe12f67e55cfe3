package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinlot/renderer"
	"github.com/google/subcommands"
)

type ordersCmd struct{}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "displays the orders rebuilt from the account export" }
func (*ordersCmd) Usage() string {
	return `clt orders

Folds the account export back into orders (including synthetic opening
orders and transfers) and displays them as a table, sorted by date.
`
}
func (*ordersCmd) SetFlags(_ *flag.FlagSet) {}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	orders, err := rebuildOrders()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not rebuild orders: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.OrdersMarkdown(orders))
	return subcommands.ExitSuccess
}
