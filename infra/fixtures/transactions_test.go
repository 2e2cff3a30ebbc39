package fixtures_test

import (
	"testing"

	"github.com/kouame/payboard/infra/fixtures"
	"github.com/kouame/payboard/pkg/domain/transaction"
	"github.com/kouame/payboard/pkg/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactions(t *testing.T) {
	t.Parallel()

	t.Run("deterministic per seed", func(t *testing.T) {
		t.Parallel()
		a := fixtures.Transactions(50, 7)
		b := fixtures.Transactions(50, 7)
		c := fixtures.Transactions(50, 8)
		assert.Equal(t, a, b)
		assert.NotEqual(t, a, c)
	})

	t.Run("every record maps cleanly to domain", func(t *testing.T) {
		t.Parallel()
		records := fixtures.Transactions(150, 1)
		require.Len(t, records, 150)

		for _, record := range records {
			tx, err := mapper.ToDomain(record)
			require.NoError(t, err, "record %s", record.ID)

			// Failure reason tracks failed status.
			if tx.Status == transaction.StatusFailed {
				assert.NotEmpty(t, tx.FailureReason, "record %s", record.ID)
			} else {
				assert.Empty(t, tx.FailureReason, "record %s", record.ID)
			}
			assert.NotEmpty(t, tx.StatusHistory, "record %s", record.ID)
		}
	})

	t.Run("sorted by creation date descending", func(t *testing.T) {
		t.Parallel()
		records := fixtures.Transactions(100, 3)
		for i := 1; i < len(records); i++ {
			assert.GreaterOrEqual(t, records[i-1].CreatedAt, records[i].CreatedAt)
		}
	})

	t.Run("caps at the id space", func(t *testing.T) {
		t.Parallel()
		records := fixtures.Transactions(100001, 1)
		assert.Len(t, records, 99999)
	})
}
