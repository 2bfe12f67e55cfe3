package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/coinlot"
	"github.com/etnz/coinlot/date"
)

func TestOrdersMarkdown(t *testing.T) {
	orders := []coinlot.Order{
		{Type: coinlot.Buy, Unit: "BTC", Quantity: coinlot.Q(0.5), Amount: coinlot.M(5000, "USD"), Fee: coinlot.M(12.5, "USD"), Date: date.New(2017, time.October, 1)},
		{Type: coinlot.Sell, Unit: "XRP", Quantity: coinlot.Q(100.0), Amount: coinlot.M(0, "USD"), Fee: coinlot.M(0, "USD"), Date: date.New(2018, time.March, 1), Unvalued: true},
	}
	md := OrdersMarkdown(orders)

	for _, want := range []string{"| 2017-10-01 | BUY | BTC |", "Total: 2 orders", "unvalued"} {
		if !strings.Contains(md, want) {
			t.Errorf("OrdersMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestGainsMarkdown(t *testing.T) {
	disposals := []coinlot.Disposal{
		{
			Unit:      "BTC",
			Quantity:  coinlot.Q(2.0),
			Proceeds:  coinlot.M(500, "USD"),
			CostBasis: coinlot.M(200, "USD"),
			Gain:      coinlot.M(300, "USD"),
			Fee:       coinlot.M(0, "USD"),
			Acquired:  date.New(2017, time.January, 1),
			Disposed:  date.New(2017, time.January, 3),
		},
		{
			Unit:      "LTC",
			Quantity:  coinlot.Q(10.0),
			Proceeds:  coinlot.M(800, "USD"),
			CostBasis: coinlot.M(900, "USD"),
			Gain:      coinlot.M(-100, "USD"),
			Fee:       coinlot.M(2, "USD"),
			Acquired:  date.New(2017, time.February, 1),
			Disposed:  date.New(2017, time.March, 3),
		},
	}
	md := GainsMarkdown(disposals)

	if !strings.Contains(md, "## Gains per Unit") {
		t.Errorf("GainsMarkdown() missing the per unit section:\n%s", md)
	}
	// Grand total gain: 300 - 100 = +200.
	if !strings.Contains(md, "+$200.00") {
		t.Errorf("GainsMarkdown() missing the +$200.00 total in:\n%s", md)
	}
	if !strings.Contains(md, "| LTC | -$100.00 |") {
		t.Errorf("GainsMarkdown() missing the LTC subtotal in:\n%s", md)
	}
}
