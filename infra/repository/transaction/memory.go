// Package transaction provides the in-memory implementation of the
// transaction repository port. It backs the dashboard while the product has
// no real storage and doubles as the test double: an injectable fault
// policy simulates network latency and failures deterministically.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kouame/payboard/pkg/domain/transaction"
	"github.com/kouame/payboard/pkg/dto"
	"github.com/kouame/payboard/pkg/mapper"
	repo "github.com/kouame/payboard/pkg/repository/transaction"
)

// ErrNetworkFailure is the simulated infrastructure failure injected by a
// fault policy.
var ErrNetworkFailure = errors.New("network error: failed to fetch transactions")

// FaultPolicy simulates an unreliable transport. Zero value means no delay
// and no failures.
type FaultPolicy struct {
	// Failure is the probability in [0,1] that a call fails.
	Failure float64
	// MinDelay and MaxDelay bound the simulated latency per call.
	MinDelay time.Duration
	MaxDelay time.Duration
}

// MemoryRepository keeps the transactions in process memory. Mutations are
// serialized behind a mutex, so at most one mutation per ID is in flight at
// a time.
type MemoryRepository struct {
	mu           sync.RWMutex
	transactions []*transaction.Transaction
	policy       FaultPolicy
	rng          *rand.Rand
	rngMu        sync.Mutex
}

// Option configures a MemoryRepository.
type Option func(*MemoryRepository)

// WithFaultPolicy injects latency and failure simulation. The seed makes
// the failure sequence reproducible.
func WithFaultPolicy(policy FaultPolicy, seed int64) Option {
	return func(r *MemoryRepository) {
		r.policy = policy
		r.rng = rand.New(rand.NewSource(seed))
	}
}

// NewMemoryRepository builds the repository from wire-shaped records. Every
// record runs through the mapper; a validation failure in any record fails
// construction rather than silently dropping data.
func NewMemoryRepository(records []dto.Transaction, opts ...Option) (*MemoryRepository, error) {
	transactions := make([]*transaction.Transaction, 0, len(records))
	for _, record := range records {
		tx, err := mapper.ToDomain(record)
		if err != nil {
			return nil, fmt.Errorf("load record: %w", err)
		}
		transactions = append(transactions, tx)
	}

	r := &MemoryRepository{transactions: transactions}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// FindAll implements the port's query semantics: AND-combined filters,
// optional sorting, half-open slice pagination.
func (r *MemoryRepository) FindAll(
	ctx context.Context,
	filters repo.Filters,
	page repo.Pagination,
	sortOpts repo.Sort,
) (*repo.PaginatedResult, error) {
	if err := r.simulateTransport(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	filtered := make([]*transaction.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		if matches(tx, filters) {
			filtered = append(filtered, tx)
		}
	}
	r.mu.RUnlock()

	applySort(filtered, sortOpts)

	if page.Page < 1 {
		page.Page = 1
	}
	if page.PageSize < 1 {
		page.PageSize = 1
	}

	total := len(filtered)
	totalPages := (total + page.PageSize - 1) / page.PageSize

	start := (page.Page - 1) * page.PageSize
	end := start + page.PageSize
	var data []*transaction.Transaction
	switch {
	case start >= total:
		data = []*transaction.Transaction{}
	case end > total:
		data = filtered[start:total]
	default:
		data = filtered[start:end]
	}

	return &repo.PaginatedResult{
		Data:       data,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: totalPages,
	}, nil
}

// FindByID implements the port.
func (r *MemoryRepository) FindByID(ctx context.Context, id transaction.ID) (*transaction.Transaction, error) {
	if err := r.simulateTransport(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tx := range r.transactions {
		if tx.ID.Equals(id) {
			return tx, nil
		}
	}
	return nil, &transaction.NotFoundError{ID: id.Value()}
}

// Retry transitions the transaction back to pending with a retried history
// entry. Status guarding belongs to the use case; the repository applies
// the transition unconditionally.
func (r *MemoryRepository) Retry(ctx context.Context, id transaction.ID) (*transaction.Transaction, error) {
	return r.transition(ctx, id, transaction.StatusPending, "Transaction retried")
}

// Cancel transitions the transaction to cancelled.
func (r *MemoryRepository) Cancel(ctx context.Context, id transaction.ID) (*transaction.Transaction, error) {
	return r.transition(ctx, id, transaction.StatusCancelled, "Cancelled by user")
}

func (r *MemoryRepository) transition(
	ctx context.Context,
	id transaction.ID,
	status transaction.Status,
	reason string,
) (*transaction.Transaction, error) {
	if err := r.simulateTransport(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, tx := range r.transactions {
		if tx.ID.Equals(id) {
			updated := tx.WithStatus(status, reason)
			r.transactions[i] = updated
			return updated, nil
		}
	}
	return nil, &transaction.NotFoundError{ID: id.Value()}
}

// simulateTransport applies the fault policy: a random delay inside the
// configured window, honoring ctx cancellation, then a probabilistic
// failure.
func (r *MemoryRepository) simulateTransport(ctx context.Context) error {
	if r.rng == nil {
		return ctx.Err()
	}

	r.rngMu.Lock()
	delay := r.policy.MinDelay
	if spread := r.policy.MaxDelay - r.policy.MinDelay; spread > 0 {
		delay += time.Duration(r.rng.Int63n(int64(spread)))
	}
	fail := r.policy.Failure > 0 && r.rng.Float64() < r.policy.Failure
	r.rngMu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if fail {
		return ErrNetworkFailure
	}
	return ctx.Err()
}

func matches(tx *transaction.Transaction, f repo.Filters) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(tx.Reference), needle) &&
			!strings.Contains(strings.ToLower(tx.Beneficiary.Name), needle) {
			return false
		}
	}

	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if tx.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.DateFrom != nil && tx.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && tx.CreatedAt.After(*f.DateTo) {
		return false
	}

	if f.AmountMin != nil && tx.Amount.AmountFloat() < *f.AmountMin {
		return false
	}
	if f.AmountMax != nil && tx.Amount.AmountFloat() > *f.AmountMax {
		return false
	}

	if f.Currency != "" && tx.Amount.Currency() != f.Currency {
		return false
	}

	return true
}

func applySort(txs []*transaction.Transaction, s repo.Sort) {
	if s.By == "" {
		return
	}

	sort.SliceStable(txs, func(i, j int) bool {
		var less bool
		switch s.By {
		case repo.SortByDate:
			less = txs[i].CreatedAt.Before(txs[j].CreatedAt)
		case repo.SortByAmount:
			less = txs[i].Amount.AmountFloat() < txs[j].Amount.AmountFloat()
		case repo.SortByStatus:
			less = txs[i].Status < txs[j].Status
		default:
			return false
		}
		if s.Order == repo.SortDesc {
			return !less && !equalKey(txs[i], txs[j], s.By)
		}
		return less
	})
}

func equalKey(a, b *transaction.Transaction, by repo.SortBy) bool {
	switch by {
	case repo.SortByDate:
		return a.CreatedAt.Equal(b.CreatedAt)
	case repo.SortByAmount:
		return a.Amount.AmountFloat() == b.Amount.AmountFloat()
	case repo.SortByStatus:
		return a.Status == b.Status
	default:
		return false
	}
}
