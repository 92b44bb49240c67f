package dto

import (
	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/shopspring/decimal"
)

type SummaryDTO struct {
	NumberOfInvoices     int64  `json:"number_of_invoices" example:"13"`
	NumberOfCustomers    int64  `json:"number_of_customers" example:"6"`
	TotalPaidInvoices    string `json:"total_paid_invoices" example:"$1,250.00"`
	TotalPendingInvoices string `json:"total_pending_invoices" example:"$340.50"`
}

type InvoiceRowDTO struct {
	ID       string `json:"id" example:"cc27c14a-0acf-4f4a-a6c9-d45682c144b9"`
	Name     string `json:"name" example:"Evil Rabbit"`
	Email    string `json:"email" example:"evil@rabbit.com"`
	ImageURL string `json:"image_url" example:"/customers/evil-rabbit.png"`
	Amount   string `json:"amount" example:"$157.95"`
	Date     string `json:"date" example:"2026-10-20"`
	Status   string `json:"status" example:"pending"`
}

type OverviewResponseDTO struct {
	Summary        SummaryDTO      `json:"summary"`
	LatestInvoices []InvoiceRowDTO `json:"latest_invoices"`
}

func NewSummary(s domain.Summary) SummaryDTO {
	return SummaryDTO{
		NumberOfInvoices:     s.NumberOfInvoices,
		NumberOfCustomers:    s.NumberOfCustomers,
		TotalPaidInvoices:    FormatCurrency(s.TotalPaid),
		TotalPendingInvoices: FormatCurrency(s.TotalPending),
	}
}

func NewInvoiceRows(rows []domain.InvoiceRow) []InvoiceRowDTO {
	out := make([]InvoiceRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, InvoiceRowDTO{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
			Amount:   FormatCurrency(row.Amount),
			Date:     row.Date,
			Status:   string(row.Status),
		})
	}
	return out
}

// FormatCurrency renders an amount in cents as US dollars, e.g. 125000 -> "$1,250.00".
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	fixed := decimal.New(cents, -2).StringFixed(2)
	whole, frac := fixed[:len(fixed)-3], fixed[len(fixed)-3:]

	grouped := make([]byte, 0, len(whole)+len(whole)/3)
	for i := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, whole[i])
	}
	return sign + "$" + string(grouped) + frac
}
