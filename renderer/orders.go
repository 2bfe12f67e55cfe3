// Package renderer turns coinlot results into markdown reports for the
// terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/coinlot"
)

// OrdersMarkdown renders the reconstructed orders as a markdown table.
func OrdersMarkdown(orders []coinlot.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Reconstructed Orders\n\n")
	fmt.Fprintf(&b, "Total: %d orders\n\n", len(orders))

	fmt.Fprintln(&b, "| Date | Type | Unit | Quantity | USD | Fee |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")

	for _, o := range orders {
		usd := o.Amount.String()
		if o.Unvalued {
			usd = "unvalued"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			o.Date.String(),
			o.Type,
			o.Unit,
			o.Quantity,
			usd,
			o.Fee.String(),
		)
	}

	return b.String()
}
