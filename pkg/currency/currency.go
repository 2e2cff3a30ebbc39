// Package currency holds the registry of currencies supported by the
// dashboard and their display metadata. The product operates on exactly
// three currencies (XOF, EUR, USD); no conversion is ever performed.
package currency

import (
	"errors"
	"strings"
)

// Code represents a supported currency code.
type Code string

const (
	// XOF is the West African CFA franc.
	XOF Code = "XOF"
	// EUR is the euro.
	EUR Code = "EUR"
	// USD is the US dollar.
	USD Code = "USD"
)

// ErrUnsupportedCurrency is returned for codes outside the registry.
var ErrUnsupportedCurrency = errors.New("unsupported currency code")

// Meta holds display metadata for a currency.
type Meta struct {
	// Decimals is the number of fraction digits in the main unit.
	Decimals int
	// Symbol is the display symbol. XOF renders as "FCFA", never the raw code.
	Symbol string
	// SymbolBefore places the symbol before the number (en-US style).
	SymbolBefore bool
	// GroupSep separates groups of thousands.
	GroupSep string
	// DecimalSep separates the integer and fraction parts.
	DecimalSep string
}

// nbsp is the non-breaking space used by French number formatting.
const nbsp = " "

var registry = map[Code]Meta{
	XOF: {Decimals: 0, Symbol: "FCFA", GroupSep: nbsp},
	EUR: {Decimals: 2, Symbol: "€", GroupSep: nbsp, DecimalSep: ","},
	USD: {Decimals: 2, Symbol: "$", SymbolBefore: true, GroupSep: ",", DecimalSep: "."},
}

// Get returns the metadata for a currency code.
func Get(code Code) (Meta, error) {
	meta, ok := registry[code]
	if !ok {
		return Meta{}, ErrUnsupportedCurrency
	}
	return meta, nil
}

// IsSupported reports whether the code is registered.
func IsSupported(code Code) bool {
	_, ok := registry[code]
	return ok
}

// Parse validates a raw currency string and returns its Code.
func Parse(s string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !IsSupported(code) {
		return "", ErrUnsupportedCurrency
	}
	return code, nil
}

// ListSupported returns the registered currency codes.
func ListSupported() []Code {
	return []Code{XOF, EUR, USD}
}

// FormatAmount renders a minor-unit amount using the locale conventions of
// its currency: XOF as "1 234 567 FCFA", EUR as "1 234,56 €", USD as
// "$1,234.56". Negative amounts take a leading minus sign.
func FormatAmount(minor int64, code Code) (string, error) {
	meta, err := Get(code)
	if err != nil {
		return "", err
	}

	negative := minor < 0
	if negative {
		minor = -minor
	}

	intPart := minor
	var fracPart int64
	pow := int64(1)
	for i := 0; i < meta.Decimals; i++ {
		pow *= 10
	}
	if pow > 1 {
		intPart = minor / pow
		fracPart = minor % pow
	}

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	if meta.SymbolBefore {
		b.WriteString(meta.Symbol)
	}
	b.WriteString(groupDigits(intPart, meta.GroupSep))
	if meta.Decimals > 0 {
		b.WriteString(meta.DecimalSep)
		b.WriteString(padLeft(fracPart, meta.Decimals))
	}
	if !meta.SymbolBefore {
		b.WriteString(nbsp)
		b.WriteString(meta.Symbol)
	}
	return b.String(), nil
}

// groupDigits renders n with sep between groups of three digits.
func groupDigits(n int64, sep string) string {
	digits := itoa(n)
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func padLeft(n int64, width int) string {
	s := itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
