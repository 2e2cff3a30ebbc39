package transaction

import (
	"errors"
	"fmt"
)

// The error taxonomy is a closed set: sentinel errors for kinds that carry
// no payload, typed errors for kinds that do. Every error carries a
// human-readable message; callers check kinds with errors.Is / errors.As.
var (
	// ErrEmptyID is returned for empty or whitespace-only transaction IDs.
	ErrEmptyID = errors.New("transaction ID cannot be empty")
	// ErrInvalidIDFormat is returned when an ID is not "txn_" plus five digits.
	ErrInvalidIDFormat = errors.New("invalid transaction ID format, expected txn_XXXXX")
	// ErrSequenceOutOfRange is returned by Generate for sequence numbers
	// the five-digit format cannot carry.
	ErrSequenceOutOfRange = errors.New("sequence number out of range for transaction ID")
	// ErrInvalidIBANLength is returned for IBANs outside 15-34 characters.
	ErrInvalidIBANLength = errors.New("invalid IBAN length")
	// ErrInvalidIBANFormat is returned for IBANs not matching the ISO pattern.
	ErrInvalidIBANFormat = errors.New("invalid IBAN format")
	// ErrInvalidAmountRange is returned when an amount filter has min > max.
	ErrInvalidAmountRange = errors.New("minimum amount cannot be greater than maximum amount")
	// ErrInvalidDateRange is returned when a date filter has from after to.
	ErrInvalidDateRange = errors.New("start date cannot be after end date")
)

// NotFoundError is returned when a transaction ID does not resolve.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction with ID %s not found", e.ID)
}

// CannotRetryError is returned when retrying a transaction that is not failed.
type CannotRetryError struct {
	ID string
}

func (e *CannotRetryError) Error() string {
	return fmt.Sprintf("transaction %s cannot be retried: only failed transactions can be retried", e.ID)
}

// CannotCancelError is returned when cancelling a transaction that is not pending.
type CannotCancelError struct {
	ID string
}

func (e *CannotCancelError) Error() string {
	return fmt.Sprintf("transaction %s cannot be cancelled: only pending transactions can be cancelled", e.ID)
}

// ExportLimitExceededError is returned when an export would exceed the
// maximum row count.
type ExportLimitExceededError struct {
	Count int
	Limit int
}

func (e *ExportLimitExceededError) Error() string {
	return fmt.Sprintf("cannot export %d transactions, maximum limit is %d", e.Count, e.Limit)
}
