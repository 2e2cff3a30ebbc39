// Package transaction holds the transaction aggregate and its value
// objects: the validated identifier, the IBAN, the status lifecycle and the
// immutable entity itself.
package transaction

import (
	"time"

	"github.com/kouame/payboard/pkg/domain/money"
)

// Beneficiary is the receiving party of a transaction.
type Beneficiary struct {
	Name     string
	IBAN     IBAN
	BankName string
}

// StatusHistoryEntry records one status transition. The history is
// append-only and insertion-ordered.
type StatusHistoryEntry struct {
	Status    Status
	Timestamp time.Time
	Reason    string
}

// Transaction is the immutable transaction aggregate. State changes go
// through WithStatus, which returns a new value; an instance is never
// mutated in place.
type Transaction struct {
	ID            ID
	Reference     string
	Amount        money.Money
	Status        Status
	Beneficiary   Beneficiary
	CreatedAt     time.Time
	UpdatedAt     time.Time
	StatusHistory []StatusHistoryEntry
	// FailureReason is set only while the latest transition put the
	// transaction in StatusFailed.
	FailureReason string
}

// CanRetry reports whether a retry is allowed. Only failed transactions can
// be retried.
func (t *Transaction) CanRetry() bool {
	return t.Status == StatusFailed
}

// CanCancel reports whether a cancellation is allowed. Only pending
// transactions can be cancelled.
func (t *Transaction) CanCancel() bool {
	return t.Status == StatusPending
}

// IsCompleted reports whether the transaction settled.
func (t *Transaction) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// WithStatus returns a copy of the transaction in the new status, with one
// history entry appended and UpdatedAt refreshed. FailureReason carries the
// reason only when the new status is failed and is cleared otherwise.
// WithStatus itself is unconditional; guarding which transitions are legal
// is the caller's job.
func (t *Transaction) WithStatus(newStatus Status, reason string) *Transaction {
	now := time.Now()

	history := make([]StatusHistoryEntry, len(t.StatusHistory), len(t.StatusHistory)+1)
	copy(history, t.StatusHistory)
	history = append(history, StatusHistoryEntry{
		Status:    newStatus,
		Timestamp: now,
		Reason:    reason,
	})

	failureReason := ""
	if newStatus == StatusFailed {
		failureReason = reason
	}

	return &Transaction{
		ID:            t.ID,
		Reference:     t.Reference,
		Amount:        t.Amount,
		Status:        newStatus,
		Beneficiary:   t.Beneficiary,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     now,
		StatusHistory: history,
		FailureReason: failureReason,
	}
}
