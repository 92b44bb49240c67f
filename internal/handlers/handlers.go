package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/invoicedash/docs"
	authhandlers "github.com/GlebRadaev/invoicedash/internal/handlers/auth"
	dashboardhandlers "github.com/GlebRadaev/invoicedash/internal/handlers/dashboard"
	invoicehandlers "github.com/GlebRadaev/invoicedash/internal/handlers/invoices"
	"github.com/GlebRadaev/invoicedash/internal/service"
	"github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/GlebRadaev/invoicedash/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	CreateInvoice(w http.ResponseWriter, r *http.Request)
	EditInvoice(w http.ResponseWriter, r *http.Request)
	DeleteInvoice(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
	GetInvoices(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	InvoiceHandler   InvoiceHandler
	DashboardHandler DashboardHandler

	tokens auth.TokenService
}

func New(s *service.Services, tokens auth.TokenService) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		InvoiceHandler:   invoicehandlers.New(s.InvoiceService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		tokens:           tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Post("/register", h.AuthHandler.Register)
	r.Post("/login", h.AuthHandler.Login)

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(auth.Middleware(h.tokens))
		r.Get("/", h.DashboardHandler.GetOverview)
		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.DashboardHandler.GetInvoices)
			r.Post("/", h.InvoiceHandler.CreateInvoice)
			r.Post("/{id}/edit", h.InvoiceHandler.EditInvoice)
			r.Post("/{id}/delete", h.InvoiceHandler.DeleteInvoice)
		})
	})

	return r
}
