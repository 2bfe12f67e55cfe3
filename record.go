package coinlot

import (
	"fmt"

	"github.com/etnz/coinlot/date"
)

// RecordType is the kind of activity a single ledger row describes.
type RecordType int

const (
	// Match is one leg of an executed trade: either the fiat leg or the
	// asset leg, both sharing the same order id.
	Match RecordType = iota
	// Fee is the exchange fee charged for an order, always in fiat.
	Fee
	// Deposit credits the account with an asset coming from outside.
	Deposit
	// Withdrawal debits the account with an asset going outside.
	Withdrawal
)

func (t RecordType) String() string {
	switch t {
	case Match:
		return "match"
	case Fee:
		return "fee"
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// ParseRecordType parses the type cell of a ledger row.
func ParseRecordType(s string) (RecordType, error) {
	switch s {
	case "match":
		return Match, nil
	case "fee":
		return Fee, nil
	case "deposit":
		return Deposit, nil
	case "withdrawal":
		return Withdrawal, nil
	default:
		return 0, fmt.Errorf("unknown record type: %q", s)
	}
}

// RawRecord is a single row of the account ledger, already parsed.
//
// Amount is signed: positive credits the balance, negative debits it.
// Balance is the account balance in Unit immediately after this row.
type RawRecord struct {
	Time     date.Date
	Type     RecordType
	Unit     string
	Amount   Quantity
	Balance  Quantity
	Transfer string // transfer id, set on Deposit and Withdrawal rows
	Order    string // order id, set on Match and Fee rows
}

// keyKind tags the kind of identifier a correlation key holds, so that
// order ids, transfer ids and synthetic opening keys can never collide.
type keyKind int

const (
	tradeKind keyKind = iota
	transferKind
	openingKind
)

// corrKey identifies the Order that a ledger row contributes to.
type corrKey struct {
	kind keyKind
	id   string
}

// tradeKey groups the match and fee rows of a single exchange order.
func tradeKey(id string) corrKey { return corrKey{kind: tradeKind, id: id} }

// transferKey identifies a deposit or withdrawal, one row per key.
func transferKey(id string) corrKey { return corrKey{kind: transferKind, id: id} }

// openingKey identifies the synthetic order that accounts for a unit's
// pre-ledger balance.
func openingKey(unit string) corrKey { return corrKey{kind: openingKind, id: unit} }
