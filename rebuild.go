package coinlot

import (
	"errors"
	"fmt"
	"log"

	"github.com/etnz/coinlot/date"
)

// ErrUnsupportedUnit is returned by a PriceOracle that has no price history
// for the requested unit.
var ErrUnsupportedUnit = errors.New("unsupported unit")

// ErrMissingSeed is returned when a unit holds a pre-ledger balance and no
// cost basis seed was configured for it. Without a seed the whole report
// would be wrong, so reconstruction stops there.
var ErrMissingSeed = errors.New("missing cost basis seed")

// PriceOracle gives the market price of one unit of an asset in fiat on a
// given calendar date. Implementations report units they do not cover by
// wrapping ErrUnsupportedUnit.
type PriceOracle interface {
	Price(unit string, on date.Date) (Money, error)
}

// Seed is an operator supplied acquisition for a balance that predates the
// ledger: the date it was acquired and the total fiat cost paid for it.
type Seed struct {
	Date date.Date
	Cost Money
}

// CostBasisSeed looks up the operator supplied cost basis for a unit's
// pre-ledger balance.
type CostBasisSeed interface {
	Lookup(unit string) (Seed, bool)
}

// Rebuilder folds a stream of raw ledger rows into reconstructed Orders.
//
// The fold is single pass and keeps two pieces of state: the order builders
// indexed by correlation key, and the set of units whose opening balance has
// already been checked.
type Rebuilder struct {
	Oracle PriceOracle
	Seeds  CostBasisSeed
	Fiat   string // the fiat unit of the account, "USD" by default
}

// NewRebuilder creates a Rebuilder for a USD denominated account.
func NewRebuilder(oracle PriceOracle, seeds CostBasisSeed) *Rebuilder {
	return &Rebuilder{Oracle: oracle, Seeds: seeds, Fiat: "USD"}
}

// Rebuild consumes the ledger rows in order and returns the reconstructed
// Orders sorted by date, stable in encounter order.
//
// Rebuild never returns partial results: any error means the ledger cannot
// be turned into a correct report and the caller must not persist anything.
func (r *Rebuilder) Rebuild(records []RawRecord) ([]Order, error) {
	builders := make(map[corrKey]*Order)
	var keys []corrKey // builder creation order, for stable date ties

	// units whose opening balance has already been checked. Explicit set:
	// a unit is checked exactly once for the whole stream.
	checked := make(map[string]bool)

	for _, rec := range records {
		if rec.Type == Match && rec.Unit != r.Fiat && !checked[rec.Unit] {
			checked[rec.Unit] = true
			if err := r.checkOpening(rec, builders, &keys); err != nil {
				return nil, err
			}
		}

		switch rec.Type {
		case Deposit, Withdrawal:
			if rec.Unit == r.Fiat {
				// Moving fiat in or out is a cash movement, not a
				// reportable disposal or acquisition.
				continue
			}
			o, err := r.transferOrder(rec)
			if err != nil {
				return nil, err
			}
			key := transferKey(rec.Transfer)
			builders[key] = o
			keys = append(keys, key)

		case Match, Fee:
			key := tradeKey(rec.Order)
			o, ok := builders[key]
			if !ok {
				o = &Order{Date: rec.Time, Amount: M(0, r.Fiat), Fee: M(0, r.Fiat)}
				builders[key] = o
				keys = append(keys, key)
			}
			r.contribute(o, rec)
		}
	}

	orders := make([]Order, 0, len(keys))
	for _, key := range keys {
		orders = append(orders, *builders[key])
	}
	sortOrders(orders)
	return orders, nil
}

// checkOpening runs on the first match row of a non fiat unit. If the
// balance before that row is not zero, the ledger does not account for how
// that position was acquired, and a synthetic BUY is created from the
// operator supplied seed.
func (r *Rebuilder) checkOpening(rec RawRecord, builders map[corrKey]*Order, keys *[]corrKey) error {
	prior := rec.Balance.Sub(rec.Amount)
	if prior.IsZero() {
		return nil
	}

	seed, ok := r.Seeds.Lookup(rec.Unit)
	if !ok {
		return fmt.Errorf("unit %s holds %s before its first trade on %s: %w",
			rec.Unit, prior, rec.Time, ErrMissingSeed)
	}
	log.Printf("opening balance for %s: %s acquired %s for %s", rec.Unit, prior, seed.Date, seed.Cost)

	// The seed cost is the total fiat cost of the whole prior balance.
	key := openingKey(rec.Unit)
	builders[key] = &Order{
		Type:     Buy,
		Unit:     rec.Unit,
		Quantity: prior,
		Amount:   seed.Cost,
		Fee:      M(0, r.Fiat),
		Date:     seed.Date,
	}
	*keys = append(*keys, key)
	return nil
}

// transferOrder turns a single deposit or withdrawal row into its Order.
// Transfers never merge with other rows: one row, one order.
func (r *Rebuilder) transferOrder(rec RawRecord) (*Order, error) {
	o := &Order{
		Unit:     rec.Unit,
		Quantity: rec.Amount.Abs(),
		Fee:      M(0, r.Fiat),
		Date:     rec.Time,
	}
	if rec.Type == Withdrawal {
		o.Type = Sell
	} else {
		o.Type = Buy
	}

	price, err := r.Oracle.Price(rec.Unit, rec.Time)
	switch {
	case errors.Is(err, ErrUnsupportedUnit):
		// Known incompleteness: the transfer stays in the report but its
		// fiat value is explicitly marked as not determined.
		log.Printf("no price source for %s on %s: transfer %s left unvalued", rec.Unit, rec.Time, rec.Transfer)
		o.Unvalued = true
		o.Amount = M(0, r.Fiat)
	case err != nil:
		return nil, fmt.Errorf("cannot value %s transfer of %s on %s: %w", rec.Unit, o.Quantity, rec.Time, err)
	default:
		o.Amount = price.Mul(o.Quantity)
	}
	return o, nil
}

// contribute folds one match or fee row into its order builder.
func (r *Rebuilder) contribute(o *Order, rec RawRecord) {
	if rec.Type == Fee {
		o.Fee = NewMoney(rec.Amount.Abs().value, r.Fiat)
		return
	}

	if rec.Unit == r.Fiat {
		// The fiat leg is authoritative for the order direction: cash out
		// means the asset was bought, cash in means it was sold.
		if rec.Amount.IsNegative() {
			o.Type = Buy
		} else {
			o.Type = Sell
		}
		o.Amount = o.Amount.Add(NewMoney(rec.Amount.Abs().value, r.Fiat))
		return
	}

	// The asset leg names the unit and accumulates quantity, without
	// touching the direction.
	o.Unit = rec.Unit
	o.Quantity = o.Quantity.Add(rec.Amount.Abs())
}
