package repo

import (
	"github.com/GlebRadaev/invoicedash/internal/pg"
	invoicerepo "github.com/GlebRadaev/invoicedash/internal/repo/invoice-repo"
	userrepo "github.com/GlebRadaev/invoicedash/internal/repo/user-repo"
	"github.com/GlebRadaev/invoicedash/internal/service/authservice"
	"github.com/GlebRadaev/invoicedash/internal/service/dashboardservice"
	"github.com/GlebRadaev/invoicedash/internal/service/invoiceservice"
)

// InvoiceRepo serves both invoice writes and dashboard reads.
type InvoiceRepo interface {
	invoiceservice.Repo
	dashboardservice.Repo
}

type Repositories struct {
	UserRepo    authservice.Repo
	InvoiceRepo InvoiceRepo
	TXManager   pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		InvoiceRepo: invoicerepo.New(conn),
		TXManager:   txManager,
	}
}
