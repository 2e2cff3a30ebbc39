package transaction

import (
	"context"

	"github.com/kouame/payboard/pkg/domain/transaction"
)

// Retry re-submits a failed transaction. The status guard runs against the
// fetched snapshot: unless the transaction is failed, the mutation is never
// issued. The repository performs the actual transition to pending.
func (s *Service) Retry(ctx context.Context, rawID string) (*transaction.Transaction, error) {
	logger := s.logger.With("op", "Retry", "id", rawID)

	id, err := transaction.NewID(rawID)
	if err != nil {
		logger.Warn("invalid transaction ID", "error", err)
		return nil, err
	}

	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logger.Error("lookup failed", "error", err)
		return nil, err
	}

	if !tx.CanRetry() {
		logger.Warn("retry rejected", "status", tx.Status)
		return nil, &transaction.CannotRetryError{ID: id.Value()}
	}

	updated, err := s.repo.Retry(ctx, id)
	if err != nil {
		logger.Error("retry mutation failed", "error", err)
		return nil, err
	}
	logger.Info("transaction retried", "status", updated.Status)
	return updated, nil
}

// Cancel aborts a pending transaction. Symmetric to Retry: the pending
// guard runs before the mutation is issued.
func (s *Service) Cancel(ctx context.Context, rawID string) (*transaction.Transaction, error) {
	logger := s.logger.With("op", "Cancel", "id", rawID)

	id, err := transaction.NewID(rawID)
	if err != nil {
		logger.Warn("invalid transaction ID", "error", err)
		return nil, err
	}

	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logger.Error("lookup failed", "error", err)
		return nil, err
	}

	if !tx.CanCancel() {
		logger.Warn("cancel rejected", "status", tx.Status)
		return nil, &transaction.CannotCancelError{ID: id.Value()}
	}

	updated, err := s.repo.Cancel(ctx, id)
	if err != nil {
		logger.Error("cancel mutation failed", "error", err)
		return nil, err
	}
	logger.Info("transaction cancelled", "status", updated.Status)
	return updated, nil
}
