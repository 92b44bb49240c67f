package invoiceservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Views that list or aggregate invoices.
const (
	InvoicesPath  = "/dashboard/invoices"
	DashboardPath = "/dashboard"
)

const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgCreateDBError       = "Database Error: Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgUpdateDBError       = "Database Error: Failed to Update Invoice."
	MsgDeleteDBError       = "Database Error: Failed to Delete Invoice."
	MsgDeleted             = "Deleted Invoice."
)

const dateLayout = "2006-01-02"

type Repo interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id string) error
}

type Revalidator interface {
	RevalidatePath(ctx context.Context, path string) error
}

type Service struct {
	repo  Repo
	views Revalidator
	now   func() time.Time
	newID func() string
}

func New(repo Repo, views Revalidator) *Service {
	return &Service{
		repo:  repo,
		views: views,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) CreateInvoice(ctx context.Context, form map[string]string) (*domain.FormResult, error) {
	input, errs := invoiceSchema.Parse(form)
	if errs != nil {
		zap.L().Info("invoice form rejected", zap.Any("errors", errs))
		return domain.ValidationFailed(errs, MsgCreateMissingFields), nil
	}

	invoice := s.build(s.newID(), input)
	if err := s.repo.Create(ctx, invoice); err != nil {
		zap.L().Error("can't create invoice: ", zap.Error(err))
		return domain.StoreFailed(MsgCreateDBError), nil
	}

	if err := s.revalidate(ctx); err != nil {
		return nil, err
	}
	zap.L().Info("invoice created", zap.String("id", invoice.ID))
	return domain.Redirect(InvoicesPath), nil
}

func (s *Service) EditInvoice(ctx context.Context, id string, form map[string]string) (*domain.FormResult, error) {
	input, errs := invoiceSchema.Parse(form)
	if errs != nil {
		zap.L().Info("invoice form rejected", zap.String("id", id), zap.Any("errors", errs))
		return domain.ValidationFailed(errs, MsgUpdateMissingFields), nil
	}

	invoice := s.build(id, input)
	if err := s.repo.Update(ctx, invoice); err != nil {
		zap.L().Error("can't update invoice: ", zap.Error(err))
		return domain.StoreFailed(MsgUpdateDBError), nil
	}

	if err := s.revalidate(ctx); err != nil {
		return nil, err
	}
	zap.L().Info("invoice updated", zap.String("id", id))
	return domain.Redirect(InvoicesPath), nil
}

// DeleteInvoice is idempotent and never navigates.
func (s *Service) DeleteInvoice(ctx context.Context, id string) (*domain.FormResult, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete invoice: ", zap.Error(err))
		return domain.StoreFailed(MsgDeleteDBError), nil
	}

	if err := s.revalidate(ctx); err != nil {
		return nil, err
	}
	zap.L().Info("invoice deleted", zap.String("id", id))
	return domain.Done(MsgDeleted), nil
}

func (s *Service) build(id string, input domain.InvoiceInput) *domain.Invoice {
	return &domain.Invoice{
		ID:         id,
		CustomerID: input.CustomerID,
		Amount:     toCents(input.Amount),
		Status:     input.Status,
		Date:       s.now().UTC().Format(dateLayout),
	}
}

func (s *Service) revalidate(ctx context.Context) error {
	for _, path := range []string{InvoicesPath, DashboardPath} {
		if err := s.views.RevalidatePath(ctx, path); err != nil {
			return fmt.Errorf("can't revalidate %s: %w", path, err)
		}
	}
	return nil
}
