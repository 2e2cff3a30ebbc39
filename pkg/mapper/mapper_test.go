package mapper_test

import (
	"testing"

	"github.com/kouame/payboard/pkg/domain/money"
	"github.com/kouame/payboard/pkg/domain/transaction"
	"github.com/kouame/payboard/pkg/dto"
	"github.com/kouame/payboard/pkg/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDTO() dto.Transaction {
	return dto.Transaction{
		ID:        "txn_00007",
		Reference: "PAY-2024-000777",
		Amount:    1250.50,
		Currency:  "EUR",
		Status:    "failed",
		Beneficiary: dto.Beneficiary{
			Name:     "Wave Sénégal",
			IBAN:     "CI9312345678901234567890",
			BankName: "Banque Atlantique CI",
		},
		CreatedAt: "2024-05-01T10:00:00Z",
		UpdatedAt: "2024-05-02T08:30:00Z",
		StatusHistory: []dto.StatusHistoryEntry{
			{Status: "pending", Timestamp: "2024-05-01T10:00:00Z"},
			{Status: "failed", Timestamp: "2024-05-02T08:30:00Z", Reason: "Solde insuffisant"},
		},
		FailureReason: "Solde insuffisant",
	}
}

func TestToDomain(t *testing.T) {
	t.Parallel()

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()
		tx, err := mapper.ToDomain(validDTO())
		require.NoError(t, err)

		assert.Equal(t, "txn_00007", tx.ID.Value())
		assert.Equal(t, int64(125050), tx.Amount.Amount())
		assert.Equal(t, transaction.StatusFailed, tx.Status)
		assert.Equal(t, "Solde insuffisant", tx.FailureReason)
		require.Len(t, tx.StatusHistory, 2)
		assert.Equal(t, transaction.StatusPending, tx.StatusHistory[0].Status)
		assert.True(t, tx.CanRetry())
	})

	t.Run("value object failures propagate", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name    string
			mutate  func(*dto.Transaction)
			wantErr error
		}{
			{"bad id", func(d *dto.Transaction) { d.ID = "tx-7" }, transaction.ErrInvalidIDFormat},
			{"empty id", func(d *dto.Transaction) { d.ID = " " }, transaction.ErrEmptyID},
			{"bad iban", func(d *dto.Transaction) { d.Beneficiary.IBAN = "CI93" }, transaction.ErrInvalidIBANLength},
			{"negative amount", func(d *dto.Transaction) { d.Amount = -5 }, money.ErrNegativeAmount},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				d := validDTO()
				tt.mutate(&d)
				_, err := mapper.ToDomain(d)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("bad status and timestamps rejected", func(t *testing.T) {
		t.Parallel()
		d := validDTO()
		d.Status = "unknown"
		_, err := mapper.ToDomain(d)
		assert.Error(t, err)

		d = validDTO()
		d.CreatedAt = "yesterday"
		_, err = mapper.ToDomain(d)
		assert.Error(t, err)

		d = validDTO()
		d.StatusHistory[1].Timestamp = "not-a-time"
		_, err = mapper.ToDomain(d)
		assert.Error(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	original := validDTO()
	tx, err := mapper.ToDomain(original)
	require.NoError(t, err)

	back := mapper.ToDTO(tx)
	assert.Equal(t, original, back)
}
