package transaction

import (
	"fmt"
	"regexp"
	"strings"
)

// idPattern is the canonical transaction identifier shape: the txn_ prefix
// followed by exactly five digits.
var idPattern = regexp.MustCompile(`^txn_\d{5}$`)

// maxSequence is the highest sequence number the five-digit format can carry.
const maxSequence = 99999

// ID is a validated transaction identifier.
type ID struct {
	value string
}

// NewID validates a raw identifier string. Empty or whitespace-only input
// fails with ErrEmptyID, which is distinct from a format mismatch.
func NewID(raw string) (ID, error) {
	if strings.TrimSpace(raw) == "" {
		return ID{}, ErrEmptyID
	}
	if !idPattern.MatchString(raw) {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidIDFormat, raw)
	}
	return ID{value: raw}, nil
}

// Generate builds an ID from a sequence number, zero-padded to five digits.
// Sequence numbers outside [0, 99999] are rejected so that every generated
// ID survives a round trip through NewID.
func Generate(seq int) (ID, error) {
	if seq < 0 || seq > maxSequence {
		return ID{}, fmt.Errorf("%w: %d", ErrSequenceOutOfRange, seq)
	}
	return ID{value: fmt.Sprintf("txn_%05d", seq)}, nil
}

// Value returns the identifier string.
func (id ID) Value() string {
	return id.value
}

// Equals reports whether both identifiers have the same value.
func (id ID) Equals(other ID) bool {
	return id.value == other.value
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return id.value
}
