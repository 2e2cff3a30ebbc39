// Package transaction provides the application services for the transaction
// dashboard: listing with filters, detail lookup, retry, cancel and CSV
// export. Each operation validates its input, talks to the repository port
// at most once for queries and twice for guarded mutations, and returns an
// explicit error from the domain taxonomy instead of panicking.
package transaction

import (
	"log/slog"

	repo "github.com/kouame/payboard/pkg/repository/transaction"
)

const (
	// DefaultPageSize is applied silently when a caller asks for a page
	// size below one.
	DefaultPageSize = 20
	// MaxExportLimit caps the number of rows a single CSV export may carry.
	MaxExportLimit = 10000
)

// Service orchestrates transaction use cases over the repository port.
type Service struct {
	repo   repo.Repository
	logger *slog.Logger
}

// NewService creates a Service with the provided dependencies.
func NewService(r repo.Repository, logger *slog.Logger) *Service {
	return &Service{repo: r, logger: logger}
}
