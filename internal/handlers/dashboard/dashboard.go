package dashboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/dto"
	"github.com/GlebRadaev/invoicedash/internal/service/dashboardservice"
	"github.com/GlebRadaev/invoicedash/pkg/utils"
)

type Service interface {
	GetOverview(ctx context.Context) (*dashboardservice.Overview, error)
	GetInvoices(ctx context.Context, query string, page int) ([]domain.InvoiceRow, error)
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetOverview godoc
//
//	@Summary		Dashboard overview
//	@Description	Invoice and customer counts, paid and pending totals and the latest invoices
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	dto.OverviewResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/dashboard [get]
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardService.GetOverview(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch card data.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OverviewResponseDTO{
		Summary:        dto.NewSummary(overview.Summary),
		LatestInvoices: dto.NewInvoiceRows(overview.Latest),
	})
}

// GetInvoices godoc
//
//	@Summary		List invoices
//	@Description	One page of invoices, optionally filtered by customer, amount, date or status
//	@Tags			Dashboard
//	@Produce		json
//	@Param			query	query		string	false	"Search term"
//	@Param			page	query		int		false	"Page number, starting at 1"
//	@Success		200		{array}		dto.InvoiceRowDTO
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/dashboard/invoices [get]
func (h *DashboardHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}
	invoices, err := h.dashboardService.GetInvoices(r.Context(), r.URL.Query().Get("query"), page)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch invoices.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInvoiceRows(invoices))
}
