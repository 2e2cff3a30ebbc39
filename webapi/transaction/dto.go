package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/kouame/payboard/pkg/currency"
	domain "github.com/kouame/payboard/pkg/domain/transaction"
	repo "github.com/kouame/payboard/pkg/repository/transaction"
)

// ListRequest carries the query parameters of the list and export routes.
type ListRequest struct {
	Search    string   `query:"search"`
	Status    string   `query:"status"`
	DateFrom  string   `query:"date_from"`
	DateTo    string   `query:"date_to"`
	AmountMin *float64 `query:"amount_min"`
	AmountMax *float64 `query:"amount_max"`
	Currency  string   `query:"currency"`
	Page      int      `query:"page"`
	PageSize  int      `query:"page_size"`
	SortBy    string   `query:"sort_by" validate:"omitempty,oneof=date amount status"`
	SortOrder string   `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// Filters translates the raw query parameters into repository filters.
func (r *ListRequest) Filters() (repo.Filters, error) {
	filters := repo.Filters{
		Search:    strings.TrimSpace(r.Search),
		AmountMin: r.AmountMin,
		AmountMax: r.AmountMax,
	}

	if r.Status != "" {
		for _, raw := range strings.Split(r.Status, ",") {
			status, err := domain.ParseStatus(strings.TrimSpace(raw))
			if err != nil {
				return repo.Filters{}, err
			}
			filters.Statuses = append(filters.Statuses, status)
		}
	}

	if r.DateFrom != "" {
		from, err := time.Parse(time.RFC3339, r.DateFrom)
		if err != nil {
			return repo.Filters{}, fmt.Errorf("date_from: %w", err)
		}
		filters.DateFrom = &from
	}
	if r.DateTo != "" {
		to, err := time.Parse(time.RFC3339, r.DateTo)
		if err != nil {
			return repo.Filters{}, fmt.Errorf("date_to: %w", err)
		}
		filters.DateTo = &to
	}

	if r.Currency != "" {
		code, err := currency.Parse(r.Currency)
		if err != nil {
			return repo.Filters{}, err
		}
		filters.Currency = code
	}

	return filters, nil
}

// Pagination translates the raw page parameters. Values below one are left
// as-is; the service normalizes them.
func (r *ListRequest) Pagination() repo.Pagination {
	return repo.Pagination{Page: r.Page, PageSize: r.PageSize}
}

// Sort translates the raw sort parameters.
func (r *ListRequest) Sort() repo.Sort {
	return repo.Sort{
		By:    repo.SortBy(r.SortBy),
		Order: repo.SortOrder(r.SortOrder),
	}
}

// ListResponse is the wire shape of a paginated listing.
type ListResponse struct {
	Data       any `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}
