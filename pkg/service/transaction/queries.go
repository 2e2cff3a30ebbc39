package transaction

import (
	"context"

	"github.com/kouame/payboard/pkg/domain/transaction"
	repo "github.com/kouame/payboard/pkg/repository/transaction"
)

// GetTransactions validates the filter ranges, normalizes pagination and
// delegates the query to the repository. Inverted ranges fail before any
// repository call; out-of-range pagination values are corrected silently.
func (s *Service) GetTransactions(
	ctx context.Context,
	filters repo.Filters,
	page repo.Pagination,
	sort repo.Sort,
) (*repo.PaginatedResult, error) {
	logger := s.logger.With("op", "GetTransactions")

	if filters.AmountMin != nil && filters.AmountMax != nil && *filters.AmountMin > *filters.AmountMax {
		logger.Warn("rejected inverted amount range", "min", *filters.AmountMin, "max", *filters.AmountMax)
		return nil, transaction.ErrInvalidAmountRange
	}
	if filters.DateFrom != nil && filters.DateTo != nil && filters.DateFrom.After(*filters.DateTo) {
		logger.Warn("rejected inverted date range", "from", *filters.DateFrom, "to", *filters.DateTo)
		return nil, transaction.ErrInvalidDateRange
	}

	if page.Page < 1 {
		page.Page = 1
	}
	if page.PageSize < 1 {
		page.PageSize = DefaultPageSize
	}

	result, err := s.repo.FindAll(ctx, filters, page, sort)
	if err != nil {
		logger.Error("query failed", "error", err)
		return nil, err
	}
	logger.Info("query succeeded", "total", result.Total, "page", result.Page)
	return result, nil
}

// GetTransactionDetail parses a raw identifier and looks the transaction
// up. Identifier validation errors surface to the caller unchanged, as does
// the repository's not-found error.
func (s *Service) GetTransactionDetail(ctx context.Context, rawID string) (*transaction.Transaction, error) {
	logger := s.logger.With("op", "GetTransactionDetail", "id", rawID)

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
	return tx, nil
}
