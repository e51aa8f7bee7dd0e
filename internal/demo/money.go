package demo

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money formats whole currency amounts for one locale.
type Money struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewMoney builds a formatter for a BCP 47 locale and an ISO 4217 code,
// e.g. NewMoney("en-US", "USD").
func NewMoney(locale, code string) (*Money, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("demo: locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("demo: currency %q: %w", code, err)
	}
	return &Money{printer: message.NewPrinter(tag), unit: unit}, nil
}

// Format renders v with the currency symbol directly in front of the
// amount, e.g. "$1,234.00".
func (m *Money) Format(v int) string {
	s := m.printer.Sprint(currency.Symbol(m.unit.Amount(v)))
	// x/text always separates the symbol from the number with one space.
	return strings.Replace(s, " ", "", 1)
}
