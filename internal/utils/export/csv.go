package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
)

// csvHeader matches the dashboard's download columns.
var csvHeader = []string{"date", "type", "amount", "category", "description", "classification"}

// TransactionsCSV renders the transaction set as CSV bytes, one row per
// transaction in the order given, amounts as unsigned magnitudes.
func TransactionsCSV(txns []domain.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, t := range txns {
		category := t.CategoryName
		if category == "" {
			category = domain.UncategorizedBucket
		}
		row := []string{
			t.Date.UTC().Format("2006-01-02"),
			strings.ToLower(string(t.Type)),
			t.Amount.String(),
			category,
			t.Description,
			strings.ToLower(string(t.Classification)),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row for transaction %s: %w", t.TransactionID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
