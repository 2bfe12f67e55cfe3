// Package coinlot reconstructs discrete buy/sell orders from a raw exchange
// account ledger, and matches disposals against prior acquisitions to compute
// realized gain/loss per disposed lot. It is designed for preparing tax
// reporting from an exchange's transaction export.
//
// The core is a two stage pipeline:
//   - Ledger Reconstruction: folding the loosely correlated ledger rows
//     (trade legs, fees, deposits, withdrawals) into well formed Order
//     aggregates, including a synthetic opening acquisition when the ledger
//     does not account for a pre-existing balance.
//   - Cost Basis Matching: consuming the chronologically sorted Orders and
//     pairing every disposed unit against previously acquired, not yet
//     consumed lots, first acquired first disposed (FIFO).
//
// All amounts use exact decimal arithmetic; nothing is rounded before the
// output boundary. A run either produces the complete orders and disposals
// tables or fails with an error, never a partial result.
//
// This package serves as the foundational logic for the `clt` command-line
// tool.
package coinlot
