package transaction

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/kouame/payboard/pkg/domain/transaction"
	repo "github.com/kouame/payboard/pkg/repository/transaction"
)

// exportDateLayout renders creation timestamps the way the dashboard's
// French users read them.
const exportDateLayout = "02/01/2006 15:04:05"

// utf8BOM keeps spreadsheet software from misreading the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeader = []string{"Date", "Référence", "Bénéficiaire", "IBAN", "Montant", "Devise", "Statut"}

// Export serializes the filtered transactions to a semicolon-delimited CSV
// document. It fetches one row past the export cap to detect overflow
// without pulling the unbounded result set; when the filtered total exceeds
// MaxExportLimit it fails without exporting anything. IBANs are always
// masked in export output — that is a data-protection rule, not formatting.
func (s *Service) Export(ctx context.Context, filters repo.Filters) ([]byte, error) {
	logger := s.logger.With("op", "Export")

	result, err := s.repo.FindAll(
		ctx,
		filters,
		repo.Pagination{Page: 1, PageSize: MaxExportLimit + 1},
		repo.Sort{By: repo.SortByDate, Order: repo.SortDesc},
	)
	if err != nil {
		logger.Error("query failed", "error", err)
		return nil, err
	}

	if result.Total > MaxExportLimit {
		logger.Warn("export limit exceeded", "total", result.Total, "limit", MaxExportLimit)
		return nil, &transaction.ExportLimitExceededError{Count: result.Total, Limit: MaxExportLimit}
	}

	doc, err := generateCSV(result.Data)
	if err != nil {
		logger.Error("serialization failed", "error", err)
		return nil, err
	}
	logger.Info("export generated", "rows", len(result.Data), "bytes", len(doc))
	return doc, nil
}

// generateCSV writes the header plus one row per transaction. Fields
// containing separators, quotes or newlines are quoted by the csv writer.
func generateCSV(transactions []*transaction.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, t := range transactions {
		row := []string{
			t.CreatedAt.Format(exportDateLayout),
			t.Reference,
			t.Beneficiary.Name,
			t.Beneficiary.IBAN.Mask(),
			strconv.FormatFloat(t.Amount.AmountFloat(), 'f', -1, 64),
			string(t.Amount.Currency()),
			t.Status.Label(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row for %s: %w", t.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
