package homesim

// streamHandler turns one configuration category into its transactions.
type streamHandler func(cfg *Configuration, currency string, window Range) ([]Transaction, error)

// handlers run in this fixed order; the ledger is their concatenation, each
// sub-sequence chronologically ordered within its category.
var handlers = []streamHandler{
	func(cfg *Configuration, cur string, w Range) ([]Transaction, error) {
		return assetRecords(cfg.Assets, cur, w)
	},
	func(cfg *Configuration, cur string, w Range) ([]Transaction, error) {
		return liabilityRecords(cfg.Liabilities, cur, w)
	},
	func(cfg *Configuration, cur string, w Range) ([]Transaction, error) {
		return purchaseRecords(cfg.Purchases, cur, w)
	},
	func(cfg *Configuration, cur string, w Range) ([]Transaction, error) {
		return expenseRecords(cfg.Expenses, cur, w)
	},
	func(cfg *Configuration, cur string, w Range) ([]Transaction, error) {
		return revenueRecords(cfg.Revenues, cur, w)
	},
}

// Simulate realizes a scenario into a ledger of dated transactions over the
// window resolved from the configuration, with today as the reference for
// defaults. The run is pure: no clock, no I/O, and any invalid input aborts
// the whole simulation.
//
// The returned ledger carries numeric amounts; EncodeLedger applies the
// display form, and Ledger.Equity reduces the same ledger to a scalar.
func Simulate(cfg *Configuration, today Date) (*Ledger, error) {
	window := cfg.Runtime.Window(today)
	currency := cfg.Runtime.currency()

	var transactions []Transaction
	for _, handle := range handlers {
		records, err := handle(cfg, currency, window)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, records...)
	}
	return NewLedger(transactions...), nil
}
