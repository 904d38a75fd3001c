// Package ledger models prepaid user balances and the append-only transaction
// history behind them. The cached account balance and the transaction rows
// always change together inside one unit of work, keeping the conservation
// invariant: balance equals the sum of signed transaction amounts.
package ledger
