package coinlot

import (
	"strings"
	"testing"
	"time"
)

const sampleExport = `portfolio,type,time,amount,balance,amount/balance unit,transfer id,trade id,order id
default,deposit,2017-12-08T15:30:02.817Z,1000.0000000000000000,1000.0000000000000000,USD,8bfb3f06,,
default,match,2017-12-10T21:00:37.561Z,-988.0100000000000000,11.9900000000000000,USD,,34,8afa4d0b
default,fee,2017-12-10T21:00:37.561Z,-2.9640300000000000,9.0259700000000000,USD,,34,8afa4d0b
default,match,2017-12-10T21:00:37.561Z,0.0658910500000000,0.0658910500000000,BTC,,34,8afa4d0b
default,withdrawal,2017-12-21T12:01:05.000Z,-0.0100000000000000,0.0558910500000000,BTC,53e1ee3a,,
`

func TestDecodeRecords(t *testing.T) {
	records, err := DecodeRecords(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("DecodeRecords() error = %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("DecodeRecords() = %d records, want 5", len(records))
	}

	fee := records[2]
	if fee.Type != Fee {
		t.Errorf("records[2].Type = %s, want fee", fee.Type)
	}
	if fee.Order != "8afa4d0b" {
		t.Errorf("records[2].Order = %q, want 8afa4d0b", fee.Order)
	}
	if fee.Time != day(2017, time.December, 10) {
		t.Errorf("records[2].Time = %s, want 2017-12-10", fee.Time)
	}

	match := records[3]
	if match.Unit != "BTC" {
		t.Errorf("records[3].Unit = %q, want BTC", match.Unit)
	}
	if q, _ := ParseQuantity("0.06589105"); !match.Amount.Equal(q) {
		t.Errorf("records[3].Amount = %s, want 0.06589105", match.Amount)
	}

	out := records[4]
	if out.Type != Withdrawal || out.Transfer != "53e1ee3a" {
		t.Errorf("records[4] = %s %q, want withdrawal 53e1ee3a", out.Type, out.Transfer)
	}
	if !out.Amount.IsNegative() {
		t.Errorf("withdrawal amount = %s, want negative", out.Amount)
	}
}

func TestDecodeRecords_UnknownTypeIsFatal(t *testing.T) {
	export := "type,time,amount,balance,amount/balance unit,transfer id,order id\n" +
		"conversion,2017-12-08T15:30:02.817Z,1.0,1.0,BTC,,x\n"
	if _, err := DecodeRecords(strings.NewReader(export)); err == nil {
		t.Fatalf("DecodeRecords() accepted an unknown record type")
	}
}

func TestDecodeRecords_MissingColumnIsFatal(t *testing.T) {
	export := "type,time,amount\nmatch,2017-12-08T15:30:02.817Z,1.0\n"
	if _, err := DecodeRecords(strings.NewReader(export)); err == nil {
		t.Fatalf("DecodeRecords() accepted an export without a balance column")
	}
}

func TestEncodeOrders(t *testing.T) {
	orders := []Order{
		{Type: Buy, Unit: "BTC", Quantity: Q(0.5), Amount: USD(5000), Fee: USD(12.5), Date: day(2017, time.October, 1)},
		{Type: Sell, Unit: "XRP", Quantity: Q(100.0), Date: day(2018, time.March, 1), Unvalued: true, Amount: USD(0), Fee: USD(0)},
	}
	var b strings.Builder
	if err := EncodeOrders(&b, orders); err != nil {
		t.Fatalf("EncodeOrders() error = %v", err)
	}
	got := b.String()
	want := "date,type,unit,quantity,usd,fee,unvalued\n" +
		"2017-10-01,BUY,BTC,0.5,5000,12.5,\n" +
		"2018-03-01,SELL,XRP,100,0,0,true\n"
	if got != want {
		t.Errorf("EncodeOrders() =\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeDisposals(t *testing.T) {
	disposals := []Disposal{
		{
			Unit:      "BTC",
			Quantity:  Q(2.0),
			Proceeds:  USD(500),
			CostBasis: USD(200),
			Gain:      USD(300),
			Fee:       USD(0),
			Acquired:  day(2017, time.January, 1),
			Disposed:  day(2017, time.January, 3),
		},
	}
	var b strings.Builder
	if err := EncodeDisposals(&b, disposals); err != nil {
		t.Fatalf("EncodeDisposals() error = %v", err)
	}
	got := b.String()
	want := "unit,quantity,proceeds,cost_basis,gain,fee,acquired,disposed\n" +
		"BTC,2,500,200,300,0,2017-01-01,2017-01-03\n"
	if got != want {
		t.Errorf("EncodeDisposals() =\n%s\nwant:\n%s", got, want)
	}
}

func TestPipeline_EndToEnd(t *testing.T) {
	// The sample export holds one buy funded by a deposit, and one small
	// withdrawal treated as a disposal.
	records, err := DecodeRecords(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("DecodeRecords() error = %v", err)
	}

	oracle := staticOracle{"BTC": 15000}
	orders, err := NewRebuilder(oracle, Seeds{}).Rebuild(records)
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	// The USD deposit is skipped: one trade order and one transfer order.
	if len(orders) != 2 {
		t.Fatalf("Rebuild() = %d orders, want 2", len(orders))
	}

	disposals, err := MatchDisposals(orders)
	if err != nil {
		t.Fatalf("MatchDisposals() error = %v", err)
	}
	if len(disposals) != 1 {
		t.Fatalf("MatchDisposals() = %d disposals, want 1", len(disposals))
	}
	d := disposals[0]
	if !d.Quantity.Equal(Q(0.01)) {
		t.Errorf("disposed quantity = %s, want 0.01", d.Quantity)
	}
	if !d.Proceeds.Equal(USD(150)) {
		t.Errorf("proceeds = %s, want 150 (0.01 BTC at 15000)", d.Proceeds.Text())
	}
}
