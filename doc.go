// Package cryptotax implements the cost-basis accounting and capital-gains
// tax engine behind the CoinClarity tax reports.
//
// The engine turns a validated ledger of per-asset acquisition and disposal
// transactions into IRS-style taxable events: acquisitions open tax lots,
// disposals consume them under a selectable cost-basis method (FIFO, LIFO or
// HIFO), losses are screened for wash sales, and the surviving events are
// aggregated into a year-level summary with estimated federal and state
// liabilities.
//
// Report generation is a pure function of its inputs: the ledger snapshot,
// the tax year, the cost-basis method, the state code and the filer's
// marginal bracket. The engine performs no I/O, keeps no hidden state, and
// either returns a complete, internally consistent report or an error.
//
// All monetary arithmetic is exact decimal; rounding happens only when a
// value is formatted for display or export.
package cryptotax
