package coinlot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/coinlot/date"
)

// this file handles the operator supplied cost basis seed file.
// It should remain human readable and trivial to edit by hand.

// Seeds maps a unit to its pre-ledger acquisition. It implements
// CostBasisSeed.
type Seeds map[string]Seed

// Lookup returns the seed for a unit, if one was configured.
func (s Seeds) Lookup(unit string) (Seed, bool) {
	seed, ok := s[unit]
	return seed, ok
}

var _ CostBasisSeed = Seeds(nil)

// DecodeSeeds reads a seed file from 'r'.
//
// The format is a JSONL file, one JSON object per line, with the unit, the
// acquisition date, and the total USD cost paid for the whole pre-ledger
// balance of that unit:
//
//	{"unit": "BTC", "date": "2016-07-01", "cost": 1200.50}
//
// The cost is a total, not a per-unit price: the synthetic opening order
// carries it as its amount, so the lot's unit cost comes out as cost
// divided by the prior balance.
func DecodeSeeds(r io.Reader) (Seeds, error) {
	type jseed struct {
		Unit string    `json:"unit"`
		Date date.Date `json:"date"`
		Cost float64   `json:"cost"`
	}

	seeds := make(Seeds)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var js jseed
		if err := json.Unmarshal(line, &js); err != nil {
			return nil, fmt.Errorf("cannot parse line for seed format: %q: %w", string(line), err)
		}
		if js.Unit == "" {
			return nil, fmt.Errorf("seed line %q has no unit", string(line))
		}
		if _, dup := seeds[js.Unit]; dup {
			return nil, fmt.Errorf("duplicate seed for unit %q", js.Unit)
		}
		seeds[js.Unit] = Seed{Date: js.Date, Cost: M(js.Cost, "USD")}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read seed file: %w", err)
	}
	return seeds, nil
}
