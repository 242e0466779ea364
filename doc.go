// Package homesim simulates a household's financial position over a bounded
// window of time. A declarative scenario (assets, liabilities, recurring
// income and expenses, property purchases) is expanded into a ledger of dated
// double-entry transactions, which reduces to a net-equity figure.
//
// The core functionalities include:
//   - Schedule expansion: turning a named period and a date range into a
//     finite sequence of posting dates.
//   - Mortgage math: periodic rate, payment count, level payment, and
//     remaining balance in closed form.
//   - Stamp duty: the Western Australia transfer-duty brackets plus the fixed
//     registration and land-transfer fees, expressed as inspectable tables.
//   - Ledger: immutable transaction records, assembled in a fixed category
//     order and folded into equity.
//
// Every simulation run is a pure one-shot computation: identical inputs yield
// identical ledgers, nothing is persisted, and no I/O happens inside the
// core. This package serves as the foundational logic for the `hfs`
// command-line tool.
package homesim
