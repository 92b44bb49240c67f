package dashboardservice

import (
	"context"
	"encoding/json"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/pkg/viewcache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DashboardPath = "/dashboard"
	InvoicesPath  = "/dashboard/invoices"

	LatestInvoices = 5
	ItemsPerPage   = 6
)

type Repo interface {
	FindLatest(ctx context.Context, limit int) ([]domain.InvoiceRow, error)
	Search(ctx context.Context, q string, limit, offset int) ([]domain.InvoiceRow, error)
	CountInvoices(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	TotalsByStatus(ctx context.Context) (paid, pending int64, err error)
}

// Overview is the dashboard landing view.
type Overview struct {
	Summary domain.Summary      `json:"summary"`
	Latest  []domain.InvoiceRow `json:"latest"`
}

type Service struct {
	invoiceRepo Repo
	views       viewcache.Cache
}

func New(repo Repo, views viewcache.Cache) *Service {
	return &Service{
		invoiceRepo: repo,
		views:       views,
	}
}

// GetOverview returns the cached overview or recomputes it with concurrent queries.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	version := s.views.Version(ctx, DashboardPath)
	var overview Overview
	if s.fromCache(ctx, DashboardPath, &overview) {
		return &overview, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.invoiceRepo.CountInvoices(gctx)
		overview.Summary.NumberOfInvoices = n
		return err
	})
	g.Go(func() error {
		n, err := s.invoiceRepo.CountCustomers(gctx)
		overview.Summary.NumberOfCustomers = n
		return err
	})
	g.Go(func() error {
		paid, pending, err := s.invoiceRepo.TotalsByStatus(gctx)
		overview.Summary.TotalPaid, overview.Summary.TotalPending = paid, pending
		return err
	})
	g.Go(func() error {
		latest, err := s.invoiceRepo.FindLatest(gctx, LatestInvoices)
		overview.Latest = latest
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't build dashboard overview", zap.Error(err))
		return nil, err
	}

	s.toCache(ctx, DashboardPath, version, &overview)
	return &overview, nil
}

// GetInvoices lists one page of invoices matching query. Only the unfiltered
// first page is cached, since that is the view mutations revalidate.
func (s *Service) GetInvoices(ctx context.Context, query string, page int) ([]domain.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	cacheable := query == "" && page == 1

	var version int64
	var invoices []domain.InvoiceRow
	if cacheable {
		version = s.views.Version(ctx, InvoicesPath)
		if s.fromCache(ctx, InvoicesPath, &invoices) {
			return invoices, nil
		}
	}

	invoices, err := s.invoiceRepo.Search(ctx, query, ItemsPerPage, (page-1)*ItemsPerPage)
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.toCache(ctx, InvoicesPath, version, invoices)
	}
	return invoices, nil
}

func (s *Service) fromCache(ctx context.Context, path string, dst any) bool {
	data, ok := s.views.Get(ctx, path)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		zap.L().Warn("dropping unreadable cached view", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// toCache stores view unless path was revalidated after version was taken.
func (s *Service) toCache(ctx context.Context, path string, version int64, view any) {
	data, err := json.Marshal(view)
	if err != nil {
		zap.L().Error("can't encode view", zap.String("path", path), zap.Error(err))
		return
	}
	s.views.Set(ctx, path, version, data)
}
