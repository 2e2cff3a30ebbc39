package transaction_test

import (
	"strings"
	"testing"

	"github.com/kouame/payboard/pkg/domain/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleIBAN = "CI9312345678901234567890"

func TestNewIBAN(t *testing.T) {
	t.Parallel()

	t.Run("spaced and unspaced forms are equal", func(t *testing.T) {
		t.Parallel()
		unspaced, err := transaction.NewIBAN(sampleIBAN)
		require.NoError(t, err)
		spaced, err := transaction.NewIBAN("CI93 1234 5678 9012 3456 7890")
		require.NoError(t, err)
		oddlySpaced, err := transaction.NewIBAN("C I93 123456789 01234567890")
		require.NoError(t, err)

		assert.True(t, unspaced.Equals(spaced))
		assert.True(t, unspaced.Equals(oddlySpaced))
		assert.Equal(t, sampleIBAN, spaced.Value())
	})

	t.Run("too short fails length check", func(t *testing.T) {
		t.Parallel()
		_, err := transaction.NewIBAN("CI93")
		assert.ErrorIs(t, err, transaction.ErrInvalidIBANLength)
	})

	t.Run("too long fails length check", func(t *testing.T) {
		t.Parallel()
		_, err := transaction.NewIBAN("CI93" + strings.Repeat("1", 32))
		assert.ErrorIs(t, err, transaction.ErrInvalidIBANLength)
	})

	t.Run("bad shapes fail format check", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{
			"1234567890123456",     // no country code
			"CIXX123456789012345",  // letters where check digits belong
			"ci9312345678901234",   // lowercase country code
			"CI93-1234-5678-9012a", // illegal character
		} {
			_, err := transaction.NewIBAN(raw)
			assert.ErrorIs(t, err, transaction.ErrInvalidIBANFormat, "input %q", raw)
		}
	})
}

func TestIBANFormatted(t *testing.T) {
	t.Parallel()
	iban, err := transaction.NewIBAN(sampleIBAN)
	require.NoError(t, err)
	assert.Equal(t, "CI93 1234 5678 9012 3456 7890", iban.Formatted())

	short, err := transaction.NewIBAN("FR761234567890123")
	require.NoError(t, err)
	assert.Equal(t, "FR76 1234 5678 9012 3", short.Formatted())
}

func TestMaskIBAN(t *testing.T) {
	t.Parallel()

	t.Run("keeps first four and last two", func(t *testing.T) {
		t.Parallel()
		iban, err := transaction.NewIBAN(sampleIBAN)
		require.NoError(t, err)

		masked := iban.Mask()
		assert.True(t, strings.HasPrefix(masked, "CI93 "), "masked %q", masked)
		assert.True(t, strings.HasSuffix(masked, "••90"), "masked %q", masked)
		assert.NotContains(t, masked, "1234567890")
	})

	t.Run("group count rounds up", func(t *testing.T) {
		t.Parallel()
		// 24 characters leave an 18 character middle: ceil(18/4) = 5 groups.
		masked := transaction.MaskIBAN(sampleIBAN)
		assert.Equal(t, "CI93 •••• •••• •••• •••• •••• ••90", masked)
	})

	t.Run("short input passes through unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "CI93", transaction.MaskIBAN("CI93"))
		assert.Equal(t, "AB 12", transaction.MaskIBAN("AB 12"))
		assert.Equal(t, "", transaction.MaskIBAN(""))
	})

	t.Run("masks raw spaced input", func(t *testing.T) {
		t.Parallel()
		spaced := transaction.MaskIBAN("CI93 1234 5678 9012 3456 7890")
		unspaced := transaction.MaskIBAN(sampleIBAN)
		assert.Equal(t, unspaced, spaced)
	})
}
