package coinlot

import (
	"fmt"
	"sort"

	"github.com/etnz/coinlot/date"
)

// OrderType tells whether an order acquired or disposed of an asset.
type OrderType int

const (
	// unknownOrder is the state of an order builder before any fiat leg
	// determined its direction. It never appears in a finalized Order.
	unknownOrder OrderType = iota
	Buy
	Sell
)

func (t OrderType) String() string {
	switch t {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "unknown"
	}
}

// ParseOrderType parses a string into an OrderType.
func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown order type: %q", s)
	}
}

// Order is one reconstructed trade or transfer.
//
// During reconstruction an Order is an accumulator: the rows sharing its
// correlation key each contribute a part (fee, fiat leg, asset leg). Once
// the whole ledger has been folded it is final and never mutated again.
type Order struct {
	Type     OrderType
	Unit     string    // asset code, e.g. "BTC"
	Quantity Quantity  // absolute quantity of the asset side
	Amount   Money     // absolute fiat value of the order
	Fee      Money     // exchange fee, zero for transfers and openings
	Date     date.Date

	// Unvalued marks a transfer whose fiat value could not be determined
	// because no price source covers the unit. Amount is zero in that case,
	// and any proceeds derived from this order are not yet determinable.
	Unvalued bool
}

// sortOrders sorts orders chronologically, keeping the encounter order for
// orders of the same date. The matching engine relies on that total order.
func sortOrders(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.Before(orders[j].Date)
	})
}
