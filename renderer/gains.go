package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/coinlot"
)

// GainsMarkdown renders the realized disposals as a markdown report, with a
// per unit subtotal and a grand total.
func GainsMarkdown(disposals []coinlot.Disposal) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Realized Gains Report\n\n")

	fmt.Fprintln(&b, "| Unit | Quantity | Acquired | Disposed | Proceeds | Cost Basis | Gain | Fee |")
	fmt.Fprintln(&b, "|:---|---:|:---|:---|---:|---:|---:|---:|")

	var totalProceeds, totalCost, totalGain coinlot.Money
	perUnit := make(map[string]coinlot.Money)
	var units []string

	for _, d := range disposals {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			d.Unit,
			d.Quantity,
			d.Acquired.String(),
			d.Disposed.String(),
			d.Proceeds.String(),
			d.CostBasis.String(),
			d.Gain.SignedString(),
			d.Fee.String(),
		)
		totalProceeds = totalProceeds.Add(d.Proceeds)
		totalCost = totalCost.Add(d.CostBasis)
		totalGain = totalGain.Add(d.Gain)

		if _, seen := perUnit[d.Unit]; !seen {
			units = append(units, d.Unit)
		}
		perUnit[d.Unit] = perUnit[d.Unit].Add(d.Gain)
	}
	fmt.Fprintf(&b, "| **Total** | | | | **%s** | **%s** | **%s** | |\n\n",
		totalProceeds.String(),
		totalCost.String(),
		totalGain.SignedString(),
	)

	fmt.Fprint(&b, "## Gains per Unit\n\n")
	fmt.Fprintln(&b, "| Unit | Realized |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, unit := range units {
		fmt.Fprintf(&b, "| %s | %s |\n", unit, perUnit[unit].SignedString())
	}

	return b.String()
}
