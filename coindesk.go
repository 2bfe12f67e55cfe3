package coinlot

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/coinlot/date"
)

/*
	https://api.coindesk.com/v1/bpi/historical/close.json?start=2017-01-01&end=2017-01-01

	{
	    "bpi": {
	        "2017-01-01": 997.6888
	    },
	    "disclaimer": "...",
	    "time": {
	        "updated": "Jan 2, 2017 00:03:00 UTC",
	        "updatedISO": "2017-01-02T00:03:00+00:00"
	    }
	}
*/

const coindeskURL = "https://api.coindesk.com/v1/bpi/historical/close.json"

// CoinDesk is a PriceOracle backed by the CoinDesk Bitcoin Price Index.
//
// The index only covers BTC: any other unit gets ErrUnsupportedUnit, which
// the reconstruction engine turns into an explicitly unvalued transfer.
type CoinDesk struct {
	// BaseURL of the historical close endpoint, overridable in tests.
	BaseURL string

	client *http.Client
}

// NewCoinDesk creates a CoinDesk oracle with a daily expiring disk cache,
// so a full ledger run queries each date at most once a day.
func NewCoinDesk() *CoinDesk {
	return &CoinDesk{BaseURL: coindeskURL, client: daily()}
}

// Price returns the BTC close price in USD on the given date.
func (c *CoinDesk) Price(unit string, on date.Date) (Money, error) {
	if unit != "BTC" {
		return Money{}, fmt.Errorf("coindesk has no price history for %q: %w", unit, ErrUnsupportedUnit)
	}

	addr := fmt.Sprintf("%s?start=%s&end=%s", c.BaseURL, on, on)
	var jobj any
	if err := jwget(c.client, addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error in wget %q: %w", addr, err)
	}

	path := fmt.Sprintf("$.bpi[%q]", on.String())
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error parsing coindesk response: %q %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("error parsing coindesk response: %q %s %v", path, "not a float", jval)
	}
	return M(val, "USD"), nil
}

// check the oracle contract at compile time.
var _ PriceOracle = (*CoinDesk)(nil)
