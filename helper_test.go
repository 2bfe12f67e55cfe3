package coinlot

import (
	"time"

	"github.com/etnz/coinlot/date"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// day is a helper for test to create a date from const
func day(y int, m time.Month, d int) date.Date { return date.New(y, m, d) }

// staticOracle prices every supported unit at a fixed USD value, whatever
// the date.
type staticOracle map[string]float64

func (o staticOracle) Price(unit string, on date.Date) (Money, error) {
	v, ok := o[unit]
	if !ok {
		return Money{}, ErrUnsupportedUnit
	}
	return USD(v), nil
}
