package invoiceservice

import (
	"errors"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/pkg/validate"
	"github.com/shopspring/decimal"
)

const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmount         = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

// invoiceSchema covers the user-editable fields. id and date are never read from the form.
var invoiceSchema = validate.NewSchema(
	validate.Field[domain.InvoiceInput]{
		Name:    "customerId",
		Tag:     "required",
		Message: MsgSelectCustomer,
		Set:     func(dst *domain.InvoiceInput, v any) { dst.CustomerID = v.(string) },
	},
	validate.Field[domain.InvoiceInput]{
		Name:    "amount",
		Coerce:  coerceAmount,
		Tag:     "gt=0",
		Message: MsgAmount,
		Set:     func(dst *domain.InvoiceInput, v any) { dst.Amount = v.(decimal.Decimal) },
	},
	validate.Field[domain.InvoiceInput]{
		Name:    "status",
		Tag:     "oneof=pending paid",
		Message: MsgSelectStatus,
		Set:     func(dst *domain.InvoiceInput, v any) { dst.Status = domain.InvoiceStatus(v.(string)) },
	},
)

var hundred = decimal.NewFromInt(100)

var errAmountRange = errors.New("amount out of range")

// coerceAmount parses the amount and rejects values whose cents do not fit the
// BIGINT column.
func coerceAmount(raw string) (any, error) {
	v, err := validate.Decimal(raw)
	if err != nil {
		return nil, err
	}
	if !v.(decimal.Decimal).Mul(hundred).Round(0).BigInt().IsInt64() {
		return nil, errAmountRange
	}
	return v, nil
}

// toCents converts a major-unit amount to cents, rounding half away from zero.
// Amounts reach it only through coerceAmount, so the result fits an int64.
func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}
