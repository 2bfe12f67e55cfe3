// Package cmd implements the CLI application to rebuild orders and realized
// gains from an exchange account export.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/coinlot"
	"github.com/google/subcommands"
)

// Commands lists all clt subcommands.
// A main package will call subcommands.Register on each, and Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&processCmd{},
	&ordersCmd{},
	&gainsCmd{},
	&priceCmd{},
	&explainCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global vaariables.

var ledgerFile = flag.String("ledger-file", "account.csv", "Path to the exchange account export (CSV format)")
var seedFile = flag.String("seed-file", "seeds.jsonl", "Path to the cost basis seed file (JSONL format)")
var fiatUnit = flag.String("fiat", "USD", "Fiat unit of the account")

// decodeRecords reads the account export from the app ledger file.
func decodeRecords() ([]coinlot.RawRecord, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open account export %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return coinlot.DecodeRecords(f)
}

// decodeSeeds reads the seed file from the app seed path.
func decodeSeeds() (coinlot.Seeds, error) {
	f, err := os.Open(*seedFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, seed file does not exist, using an empty one instead")
		return coinlot.Seeds{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open seed file %q: %w", *seedFile, err)
	}
	defer f.Close()
	return coinlot.DecodeSeeds(f)
}

// rebuildOrders runs the reconstruction stage on the app inputs.
func rebuildOrders() ([]coinlot.Order, error) {
	records, err := decodeRecords()
	if err != nil {
		return nil, err
	}
	seeds, err := decodeSeeds()
	if err != nil {
		return nil, err
	}
	r := coinlot.NewRebuilder(coinlot.NewCoinDesk(), seeds)
	r.Fiat = *fiatUnit
	return r.Rebuild(records)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal cannot be detected.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
