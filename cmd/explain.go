package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinlot"
	"github.com/etnz/coinlot/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const explainModel = "gemini-2.5-flash"

type explainCmd struct{}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "explains the realized gains report in plain language" }
func (*explainCmd) Usage() string {
	return `clt explain

Runs the gains report and asks Gemini for a plain-language summary of it:
which disposals drive the result, per-unit totals, and anything unusual
(unvalued withdrawals, large fees).

Requires a Gemini API key in the GEMINI_API_KEY environment variable.
`
}
func (*explainCmd) SetFlags(_ *flag.FlagSet) {}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	prompt := `You are a tax accountant. Below is a realized gains report for a
crypto account: each row is one disposal, matched against its acquisition lot
(FIFO), with proceeds, cost basis, gain and fee in USD. Summarize it in plain
language for the account owner: total realized gain or loss, which units and
disposals drive it, and point out anything unusual such as unvalued
withdrawals or large fees. Be concise.

` + renderer.GainsMarkdown(disposals)

	resp, err := client.Models.GenerateContent(ctx, explainModel, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Gemini request failed: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
