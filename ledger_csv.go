package coinlot

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etnz/coinlot/date"
)

// this file reads the exchange account export, and writes the two result
// tables (orders and disposals). All three are plain CSV with a header.

// the columns of the account export this tool understands. The export has
// more columns (portfolio, trade id); they are ignored.
const (
	colType     = "type"
	colTime     = "time"
	colAmount   = "amount"
	colBalance  = "balance"
	colUnit     = "amount/balance unit"
	colTransfer = "transfer id"
	colOrder    = "order id"
)

// DecodeRecords reads an account export from 'r' into RawRecords, in file
// order. Columns are resolved by header name, so column order does not
// matter.
func DecodeRecords(r io.Reader) ([]RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read account export header: %w", err)
	}
	col := make(map[string]int)
	for i, name := range header {
		col[name] = i
	}
	for _, name := range []string{colType, colTime, colAmount, colBalance, colUnit} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("account export is missing column %q", name)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []RawRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read account export: %w", err)
		}
		line++

		rtype, err := ParseRecordType(cell(row, colType))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		// rows carry a full timestamp, the report only needs the day.
		stamp := cell(row, colTime)
		if len(stamp) < len(date.DateFormat) {
			return nil, fmt.Errorf("line %d: invalid time %q", line, stamp)
		}
		on, err := date.Parse(stamp[:len(date.DateFormat)])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		amount, err := ParseQuantity(cell(row, colAmount))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q: %w", line, cell(row, colAmount), err)
		}
		balance, err := ParseQuantity(cell(row, colBalance))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid balance %q: %w", line, cell(row, colBalance), err)
		}

		unit := cell(row, colUnit)
		if unit == "" {
			return nil, fmt.Errorf("line %d: missing unit", line)
		}

		records = append(records, RawRecord{
			Time:     on,
			Type:     rtype,
			Unit:     unit,
			Amount:   amount,
			Balance:  balance,
			Transfer: cell(row, colTransfer),
			Order:    cell(row, colOrder),
		})
	}
	return records, nil
}

// EncodeOrders writes the reconstructed orders to 'w' as CSV, in the order
// given (Rebuild already sorted them by date).
func EncodeOrders(w io.Writer, orders []Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "type", "unit", "quantity", "usd", "fee", "unvalued"}); err != nil {
		return err
	}
	for _, o := range orders {
		unvalued := ""
		if o.Unvalued {
			unvalued = "true"
		}
		row := []string{
			o.Date.String(),
			o.Type.String(),
			o.Unit,
			o.Quantity.String(),
			o.Amount.Text(),
			o.Fee.Text(),
			unvalued,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeDisposals writes the realized disposal records to 'w' as CSV.
func EncodeDisposals(w io.Writer, disposals []Disposal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"unit", "quantity", "proceeds", "cost_basis", "gain", "fee", "acquired", "disposed"}); err != nil {
		return err
	}
	for _, d := range disposals {
		row := []string{
			d.Unit,
			d.Quantity.String(),
			d.Proceeds.Text(),
			d.CostBasis.Text(),
			d.Gain.Text(),
			d.Fee.Text(),
			d.Acquired.String(),
			d.Disposed.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
