package transaction

import (
	"fmt"
	"regexp"
	"strings"
)

// ibanPattern is the ISO-style shape: country code, two check digits,
// alphanumeric rest. Full mod-97 checksum validation is intentionally out of
// scope; the dashboard only guards shape.
var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]+$`)

// IBAN is a validated international bank account number, stored unspaced.
type IBAN struct {
	value string
}

// NewIBAN validates a raw IBAN string. Whitespace is stripped before
// validation, so spaced and unspaced forms of the same account are equal.
func NewIBAN(raw string) (IBAN, error) {
	cleaned := stripWhitespace(raw)
	if len(cleaned) < 15 || len(cleaned) > 34 {
		return IBAN{}, fmt.Errorf("%w: %d characters", ErrInvalidIBANLength, len(cleaned))
	}
	if !ibanPattern.MatchString(cleaned) {
		return IBAN{}, ErrInvalidIBANFormat
	}
	return IBAN{value: cleaned}, nil
}

// Value returns the canonical unspaced IBAN.
func (i IBAN) Value() string {
	return i.value
}

// Formatted returns the IBAN grouped in blocks of four characters.
func (i IBAN) Formatted() string {
	var groups []string
	for start := 0; start < len(i.value); start += 4 {
		end := start + 4
		if end > len(i.value) {
			end = len(i.value)
		}
		groups = append(groups, i.value[start:end])
	}
	return strings.Join(groups, " ")
}

// Mask returns the masked display form of the IBAN.
func (i IBAN) Mask() string {
	return MaskIBAN(i.value)
}

// Equals reports whether both IBANs have the same canonical value.
func (i IBAN) Equals(other IBAN) bool {
	return i.value == other.value
}

// MaskIBAN masks an IBAN for display or export: the first four and last two
// characters stay visible, the middle collapses into groups of four bullet
// characters, rounding the group count up. Inputs shorter than eight
// characters after whitespace stripping are returned unchanged rather than
// treated as an error. This is the only mask implementation; every layer
// that redacts IBANs goes through it.
func MaskIBAN(raw string) string {
	cleaned := stripWhitespace(raw)
	if len(cleaned) < 8 {
		return raw
	}

	first4 := cleaned[:4]
	last2 := cleaned[len(cleaned)-2:]
	middleLength := len(cleaned) - 6
	maskedGroups := (middleLength + 3) / 4

	groups := make([]string, maskedGroups)
	for i := range groups {
		groups[i] = "••••"
	}
	return first4 + " " + strings.Join(groups, " ") + " ••" + last2
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
