// Package mapper converts between wire DTOs and domain entities. ToDomain
// runs every value-object validation and propagates the first failure; it
// never swallows a construction error.
package mapper

import (
	"fmt"
	"time"

	"github.com/kouame/payboard/pkg/currency"
	"github.com/kouame/payboard/pkg/domain/money"
	"github.com/kouame/payboard/pkg/domain/transaction"
	"github.com/kouame/payboard/pkg/dto"
)

// ToDomain builds a domain Transaction from its wire shape.
func ToDomain(d dto.Transaction) (*transaction.Transaction, error) {
	id, err := transaction.NewID(d.ID)
	if err != nil {
		return nil, err
	}

	code, err := currency.Parse(d.Currency)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", d.ID, err)
	}
	amount, err := money.New(d.Amount, code)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", d.ID, err)
	}

	status, err := transaction.ParseStatus(d.Status)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", d.ID, err)
	}

	iban, err := transaction.NewIBAN(d.Beneficiary.IBAN)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", d.ID, err)
	}

	createdAt, err := parseTime(d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: createdAt: %w", d.ID, err)
	}
	updatedAt, err := parseTime(d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: updatedAt: %w", d.ID, err)
	}

	history := make([]transaction.StatusHistoryEntry, 0, len(d.StatusHistory))
	for i, entry := range d.StatusHistory {
		entryStatus, err := transaction.ParseStatus(entry.Status)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: statusHistory[%d]: %w", d.ID, i, err)
		}
		ts, err := parseTime(entry.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: statusHistory[%d]: %w", d.ID, i, err)
		}
		history = append(history, transaction.StatusHistoryEntry{
			Status:    entryStatus,
			Timestamp: ts,
			Reason:    entry.Reason,
		})
	}

	return &transaction.Transaction{
		ID:        id,
		Reference: d.Reference,
		Amount:    amount,
		Status:    status,
		Beneficiary: transaction.Beneficiary{
			Name:     d.Beneficiary.Name,
			IBAN:     iban,
			BankName: d.Beneficiary.BankName,
		},
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		StatusHistory: history,
		FailureReason: d.FailureReason,
	}, nil
}

// ToDTO flattens a domain Transaction back to its wire shape. Timestamps
// are normalized to RFC 3339 UTC.
func ToDTO(t *transaction.Transaction) dto.Transaction {
	history := make([]dto.StatusHistoryEntry, 0, len(t.StatusHistory))
	for _, entry := range t.StatusHistory {
		history = append(history, dto.StatusHistoryEntry{
			Status:    string(entry.Status),
			Timestamp: formatTime(entry.Timestamp),
			Reason:    entry.Reason,
		})
	}

	return dto.Transaction{
		ID:        t.ID.Value(),
		Reference: t.Reference,
		Amount:    t.Amount.AmountFloat(),
		Currency:  string(t.Amount.Currency()),
		Status:    string(t.Status),
		Beneficiary: dto.Beneficiary{
			Name:     t.Beneficiary.Name,
			IBAN:     t.Beneficiary.IBAN.Value(),
			BankName: t.Beneficiary.BankName,
		},
		CreatedAt:     formatTime(t.CreatedAt),
		UpdatedAt:     formatTime(t.UpdatedAt),
		StatusHistory: history,
		FailureReason: t.FailureReason,
	}
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
