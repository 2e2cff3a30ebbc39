// Package transaction defines the repository port the transaction use cases
// depend on, together with the filter, sort and pagination contracts a
// conforming implementation must honor.
package transaction

import (
	"context"
	"time"

	"github.com/kouame/payboard/pkg/currency"
	"github.com/kouame/payboard/pkg/domain/transaction"
)

// Filters narrows a transaction query. All active filters combine with
// logical AND; zero values deactivate a filter.
type Filters struct {
	// Search matches case-insensitively as a substring of the reference or
	// of the beneficiary name.
	Search string
	// Statuses is an inclusion set; empty means no status filter.
	Statuses []transaction.Status
	// DateFrom and DateTo are inclusive bounds on CreatedAt.
	DateFrom *time.Time
	DateTo   *time.Time
	// AmountMin and AmountMax are inclusive bounds on the main-unit amount,
	// applied regardless of currency. Cross-currency comparison is a known
	// limitation of the dashboard.
	AmountMin *float64
	AmountMax *float64
	// Currency restricts to an exact currency match; empty means any.
	Currency currency.Code
}

// Pagination selects a page of results.
type Pagination struct {
	Page     int
	PageSize int
}

// SortBy names a sortable column.
type SortBy string

const (
	SortByDate   SortBy = "date"
	SortByAmount SortBy = "amount"
	SortByStatus SortBy = "status"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort describes the requested ordering. A zero Sort leaves results in
// repository-defined order.
type Sort struct {
	By    SortBy
	Order SortOrder
}

// PaginatedResult is one page of transactions plus the totals needed to
// render a pager. TotalPages is ceil(Total / PageSize). Pages past the end
// of the result set carry an empty Data slice with accurate totals.
type PaginatedResult struct {
	Data       []*transaction.Transaction
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Repository is the port the use cases query and mutate transactions
// through. Implementations return transaction.NotFoundError for unknown
// IDs; infrastructure failures pass through as-is.
type Repository interface {
	// FindAll executes a filtered, sorted, paginated query.
	FindAll(ctx context.Context, filters Filters, page Pagination, sort Sort) (*PaginatedResult, error)

	// FindByID looks up a single transaction.
	FindByID(ctx context.Context, id transaction.ID) (*transaction.Transaction, error)

	// Retry transitions a failed transaction back to pending, appending a
	// "Transaction retried" history entry, and returns the updated entity.
	Retry(ctx context.Context, id transaction.ID) (*transaction.Transaction, error)

	// Cancel transitions a pending transaction to cancelled, appending a
	// "Cancelled by user" history entry, and returns the updated entity.
	Cancel(ctx context.Context, id transaction.ID) (*transaction.Transaction, error)
}
