package service

import (
	"github.com/GlebRadaev/invoicedash/internal/handlers/auth"
	"github.com/GlebRadaev/invoicedash/internal/handlers/dashboard"
	"github.com/GlebRadaev/invoicedash/internal/handlers/invoices"

	pkgauth "github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/GlebRadaev/invoicedash/pkg/viewcache"

	"github.com/GlebRadaev/invoicedash/internal/repo"
	authservice "github.com/GlebRadaev/invoicedash/internal/service/authservice"
	dashboardservice "github.com/GlebRadaev/invoicedash/internal/service/dashboardservice"
	invoiceservice "github.com/GlebRadaev/invoicedash/internal/service/invoiceservice"
)

type Services struct {
	AuthService      auth.Service
	InvoiceService   invoices.Service
	DashboardService dashboard.Service
}

func New(repo *repo.Repositories, views viewcache.Cache, tokens pkgauth.TokenService) *Services {
	hasher := pkgauth.NewBcryptHasher()
	credentials := authservice.NewCredentialsProvider(repo.UserRepo, hasher, tokens)

	return &Services{
		AuthService:      authservice.New(repo.UserRepo, repo.TXManager, hasher, credentials),
		InvoiceService:   invoiceservice.New(repo.InvoiceRepo, views),
		DashboardService: dashboardservice.New(repo.InvoiceRepo, views),
	}
}
