package validate

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal coerces a form value to a decimal number. Blank input is zero.
func Decimal(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
