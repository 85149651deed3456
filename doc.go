// Package stockunlock derives the market value of a stock position over
// time from a transaction ledger and a series of historical closing prices.
//
// The core functionalities include:
//   - Ledger Management: Recording buy and sell transactions for a single
//     instrument in a human-readable, version-controllable JSONL file.
//   - Price History: Collapsing raw price observations (keyed by epoch
//     seconds) into a deterministic day-keyed series of closing prices.
//   - Valuation: A pure derivation that merges the ledger and the price
//     series into a chronological sequence of portfolio value points,
//     ready to be handed to a chart or table renderer.
//
// This package serves as the foundational logic for the `sul` command-line
// tool.
package stockunlock
