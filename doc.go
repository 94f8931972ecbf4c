// Package ledger provides types and verification logic for a chronologically
// ordered bookkeeping ledger with hierarchical accounts and embedded balance
// assertions.
//
// The core functionalities include:
//   - Entry Model: Transactions (a dated list of postings against accounts)
//     and Balance assertions (a declaration that an account's accumulated
//     balance must equal a stated amount at a point in time).
//   - Balance Verification: A single-pass replay engine that maintains
//     running balances for the minimal set of accounts involved in any
//     assertion, aggregates sub-account balances on demand, and reports
//     every assertion whose observed balance deviates from the declared
//     amount beyond a configurable tolerance.
//   - Data Persistence: Encoding and decoding of ledgers to and from a
//     human-readable, git-friendly JSONL format.
//
// This package serves as the foundational logic for the `lvet` command-line
// tool, which validates ledger files and renders failure reports.
package ledger
