package coinlot

import (
	"errors"
	"fmt"

	"github.com/etnz/coinlot/date"
)

// ErrOverdrawn is returned when a sell disposes of more quantity than all
// remaining lots hold for its unit: the ledger and the matching state
// disagree, and fabricating a zero cost lot would silently understate cost
// basis.
var ErrOverdrawn = errors.New("sell overdraws available lots")

// Disposal is one realized gain/loss record: a (possibly partial) lot
// matched against a fraction of a sell order. Immutable once created.
type Disposal struct {
	Unit      string
	Quantity  Quantity // quantity disposed from this lot, always positive
	Proceeds  Money    // fiat realized, pro rated on the sell order's total
	CostBasis Money    // fiat cost of the matched lot fraction
	Gain      Money    // Proceeds - CostBasis
	Fee       Money    // pro rated share of the sell order's fee, reported separately
	Acquired  date.Date
	Disposed  date.Date
}

// lot is a single acquisition of a unit, partially consumable.
type lot struct {
	acquired  date.Date
	remaining Quantity
	unitCost  Money // fiat cost per unit, fixed at acquisition
}

// MatchDisposals pairs every sold unit against previously acquired lots,
// oldest first (FIFO), one queue per unit. Orders must be chronologically
// sorted, which is the contract of Rebuild.
//
// Cross-unit state is fully independent; within one unit the order of lots
// is load bearing.
func MatchDisposals(orders []Order) ([]Disposal, error) {
	queues := make(map[string][]*lot)
	var disposals []Disposal

	for _, o := range orders {
		switch o.Type {
		case Buy:
			if o.Quantity.IsZero() {
				return nil, fmt.Errorf("buy order of %s on %s has zero quantity, ledger is malformed", o.Unit, o.Date)
			}
			queues[o.Unit] = append(queues[o.Unit], &lot{
				acquired:  o.Date,
				remaining: o.Quantity,
				unitCost:  o.Amount.Div(o.Quantity),
			})

		case Sell:
			queue := queues[o.Unit]
			left := o.Quantity
			for !left.IsZero() {
				if len(queue) == 0 {
					return nil, fmt.Errorf("sell of %s %s on %s: %w", left, o.Unit, o.Date, ErrOverdrawn)
				}
				oldest := queue[0]

				take := oldest.remaining
				if left.LessThan(take) {
					take = left
				}

				// Proceeds and fee are the sold fraction of the order's
				// totals, pro rated by quantity.
				proceeds := o.Amount.Mul(take).Div(o.Quantity)
				fee := o.Fee.Mul(take).Div(o.Quantity)
				costBasis := oldest.unitCost.Mul(take)

				disposals = append(disposals, Disposal{
					Unit:      o.Unit,
					Quantity:  take,
					Proceeds:  proceeds,
					CostBasis: costBasis,
					Gain:      proceeds.Sub(costBasis),
					Fee:       fee,
					Acquired:  oldest.acquired,
					Disposed:  o.Date,
				})

				oldest.remaining = oldest.remaining.Sub(take)
				if oldest.remaining.IsZero() {
					queue = queue[1:]
				}
				left = left.Sub(take)
			}
			queues[o.Unit] = queue
		}
	}
	return disposals, nil
}
