package homesim

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// EncodeLedger writes the ledger as JSONL: one record mapping per line, in
// ledger order, with the amount in #,##0.00 form and the date in YYYY-MM-DD
// form. This is the single point where amounts become text.
func EncodeLedger(w io.Writer, l *Ledger) error {
	bw := bufio.NewWriter(w)
	for tx := range l.Transactions() {
		line, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("cannot encode transaction %q: %w", tx.Description, err)
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
