package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinlot"
	"github.com/etnz/coinlot/date"
	"github.com/google/subcommands"
)

type priceCmd struct {
	day string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "looks up a unit's historical price" }
func (*priceCmd) Usage() string {
	return `clt price [-d <date>] <unit>

Looks up the unit's closing price on the given day from the public price
source, the same one used to value transfers. Useful to check what price
a deposit or withdrawal will be valued at.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", date.Today().String(), "Day to look up the price for (YYYY-MM-DD).")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one unit, e.g. 'clt price BTC'")
		return subcommands.ExitUsageError
	}
	unit := f.Arg(0)

	on, err := date.Parse(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid date %q: %v\n", c.day, err)
		return subcommands.ExitUsageError
	}

	price, err := coinlot.NewCoinDesk().Price(unit, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s on %s: %s\n", unit, on, price)
	return subcommands.ExitSuccess
}
