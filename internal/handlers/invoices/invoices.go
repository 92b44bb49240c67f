package invoices

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/handlers/formstate"
	"github.com/GlebRadaev/invoicedash/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	CreateInvoice(ctx context.Context, form map[string]string) (*domain.FormResult, error)
	EditInvoice(ctx context.Context, id string, form map[string]string) (*domain.FormResult, error)
	DeleteInvoice(ctx context.Context, id string) (*domain.FormResult, error)
}

type InvoiceHandler struct {
	invoiceService Service
}

func New(invoiceService Service) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// CreateInvoice godoc
//
//	@Summary		Create an invoice
//	@Description	Validate the invoice form, store the invoice in cents with today's date and redirect to the list
//	@Tags			Invoices
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			customerId	formData	string	true	"Customer ID"
//	@Param			amount		formData	string	true	"Amount in dollars"
//	@Param			status		formData	string	true	"pending or paid"
//	@Success		303
//	@Failure		400	{object}	utils.Response		"Invalid form body"
//	@Failure		401	{object}	utils.Response		"Unauthorized"
//	@Failure		422	{object}	dto.FormStateDTO	"Validation failed"
//	@Failure		500	{object}	dto.FormStateDTO	"Database error"
//	@Router			/dashboard/invoices [post]
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	form, err := utils.FormValues(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	res, err := h.invoiceService.CreateInvoice(r.Context(), form)
	formstate.Respond(w, r, "create_invoice", res, err)
}

// EditInvoice godoc
//
//	@Summary		Edit an invoice
//	@Description	Replace customer, amount, status and date of an existing invoice
//	@Tags			Invoices
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			id			path		string	true	"Invoice ID"
//	@Param			customerId	formData	string	true	"Customer ID"
//	@Param			amount		formData	string	true	"Amount in dollars"
//	@Param			status		formData	string	true	"pending or paid"
//	@Success		303
//	@Failure		400	{object}	utils.Response		"Invalid form body"
//	@Failure		401	{object}	utils.Response		"Unauthorized"
//	@Failure		422	{object}	dto.FormStateDTO	"Validation failed"
//	@Failure		500	{object}	dto.FormStateDTO	"Database error"
//	@Router			/dashboard/invoices/{id}/edit [post]
func (h *InvoiceHandler) EditInvoice(w http.ResponseWriter, r *http.Request) {
	form, err := utils.FormValues(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	res, err := h.invoiceService.EditInvoice(r.Context(), chi.URLParam(r, "id"), form)
	formstate.Respond(w, r, "edit_invoice", res, err)
}

// DeleteInvoice godoc
//
//	@Summary		Delete an invoice
//	@Description	Remove an invoice; deleting a missing invoice also succeeds
//	@Tags			Invoices
//	@Produce		json
//	@Param			id	path		string	true	"Invoice ID"
//	@Success		200	{object}	dto.FormStateDTO
//	@Failure		401	{object}	utils.Response		"Unauthorized"
//	@Failure		500	{object}	dto.FormStateDTO	"Database error"
//	@Router			/dashboard/invoices/{id}/delete [post]
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	res, err := h.invoiceService.DeleteInvoice(r.Context(), chi.URLParam(r, "id"))
	formstate.Respond(w, r, "delete_invoice", res, err)
}
