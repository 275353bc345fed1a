// Package gagyebu implements a personal bookkeeping ledger whose account
// balances are always kept consistent with the set of recorded monetary
// events.
//
// The core functionalities include:
//   - Monetary Events: Recording spendings, incomes, transfers, stock trades
//     and currency exchanges, each with its own balance-effect policy.
//   - Balance Consistency: Deriving per-account, per-currency balances from
//     the recorded events, and keeping them exactly synchronized as events
//     are created, edited or deleted, using all-or-nothing updates.
//   - Queries: Filtered search over events and monthly aggregations by
//     category or kind.
//   - Data Persistence: Encoding and decoding the ledger to and from a
//     human-readable, version-controllable JSONL file.
//
// This package serves as the foundational logic for the `gagye` command-line
// tool.
package gagyebu
