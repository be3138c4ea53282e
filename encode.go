package papertrade

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeTransaction writes a single transaction as a line of JSON.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	line, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot encode %s transaction: %w", tx.What(), err)
	}
	line = append(line, '\n')
	_, err = w.Write(line)
	return err
}

// EncodeTransactions writes the transactions in order as JSONL, one
// transaction per line.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	bw := bufio.NewWriter(w)
	for i, tx := range txs {
		if err := EncodeTransaction(bw, tx); err != nil {
			return fmt.Errorf("transaction #%d: %w", i+1, err)
		}
	}
	return bw.Flush()
}
