// Package fixtures produces seeded transaction records for local runs and
// tests. The data mimics the product's West-African payment corridor:
// mobile-money operators and Ivorian banks as beneficiaries, XOF amounts an
// order of magnitude above EUR/USD ones, French failure reasons.
package fixtures

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/kouame/payboard/pkg/currency"
	"github.com/kouame/payboard/pkg/domain/transaction"
	"github.com/kouame/payboard/pkg/dto"
)

var companies = []string{
	"Orange Money CI",
	"MTN Mobile Money",
	"Wave Sénégal",
	"Moov Africa",
	"Société Ivoirienne de Banque",
	"Ecobank Côte d'Ivoire",
	"NSIA Banque",
	"Coris Bank International",
	"Banque Atlantique",
	"UBA Côte d'Ivoire",
}

var failureReasons = []string{
	"Solde insuffisant",
	"IBAN invalide",
	"Banque bénéficiaire indisponible",
	"Limite journalière dépassée",
	"Compte bénéficiaire clôturé",
	"Transaction suspecte détectée",
	"Erreur de connexion bancaire",
	"Données bénéficiaire incorrectes",
}

var statuses = []transaction.Status{
	transaction.StatusPending,
	transaction.StatusCompleted,
	transaction.StatusFailed,
	transaction.StatusCancelled,
}

// Transactions generates n records, reproducible per seed, sorted by
// creation date descending. Every record satisfies the domain invariants:
// ids come from the bounded generator, IBANs pass validation, the status
// history is coherent with the final status and the failure reason is set
// exactly when the transaction failed.
func Transactions(n int, seed int64) []dto.Transaction {
	rng := rand.New(rand.NewSource(seed))
	codes := currency.ListSupported()
	records := make([]dto.Transaction, 0, n)

	for i := 1; i <= n; i++ {
		id, err := transaction.Generate(i)
		if err != nil {
			// n beyond the id space; stop at the last representable record.
			break
		}

		code := codes[rng.Intn(len(codes))]
		var amount float64
		if code == currency.XOF {
			amount = float64(rng.Intn(50000000) + 50000)
		} else {
			amount = float64(rng.Intn(100000) + 100)
		}

		createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).
			Add(time.Duration(rng.Intn(365*24)) * time.Hour)
		status := statuses[rng.Intn(len(statuses))]

		history := []dto.StatusHistoryEntry{
			{Status: string(transaction.StatusPending), Timestamp: createdAt.Format(time.RFC3339)},
		}
		updatedAt := createdAt
		failureReason := ""
		if status != transaction.StatusPending {
			updatedAt = createdAt.Add(time.Duration(rng.Intn(48)+1) * time.Hour)
			reason := ""
			if status == transaction.StatusFailed {
				reason = failureReasons[rng.Intn(len(failureReasons))]
				failureReason = reason
			}
			history = append(history, dto.StatusHistoryEntry{
				Status:    string(status),
				Timestamp: updatedAt.Format(time.RFC3339),
				Reason:    reason,
			})
		}

		records = append(records, dto.Transaction{
			ID:        id.Value(),
			Reference: fmt.Sprintf("PAY-2024-%06d", rng.Intn(1000000)),
			Amount:    amount,
			Currency:  string(code),
			Status:    string(status),
			Beneficiary: dto.Beneficiary{
				Name:     companies[rng.Intn(len(companies))],
				IBAN:     fmt.Sprintf("CI93%020d", rng.Int63n(1e18)),
				BankName: "Banque Atlantique CI",
			},
			CreatedAt:     createdAt.Format(time.RFC3339),
			UpdatedAt:     updatedAt.Format(time.RFC3339),
			StatusHistory: history,
			FailureReason: failureReason,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
	return records
}
