package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio-crm/internal/common/models"
	"studio-crm/internal/store"
	"studio-crm/pkg/utils"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("invoice not found")

type InvoiceService interface {
	List(ctx context.Context) []models.Invoice
	Get(ctx context.Context, id string) (*models.Invoice, error)
	Create(ctx context.Context, inv models.Invoice)
	Update(ctx context.Context, id string, inv models.Invoice)
	Delete(ctx context.Context, id string)

	GenerateBilling(ctx context.Context, id string) (*models.Invoice, error)
	SendBilling(ctx context.Context, id string) (*models.Invoice, error)
	CollectBilling(ctx context.Context, id string) (*models.Invoice, error)

	MarkOverdue(ctx context.Context, now time.Time) int
}

type InvoiceServiceImpl struct {
	Store  *store.Store
	Logger *zap.Logger
}

func NewInvoiceService(s *store.Store, logger *zap.Logger) InvoiceService {
	return &InvoiceServiceImpl{Store: s, Logger: logger}
}

func (s *InvoiceServiceImpl) List(ctx context.Context) []models.Invoice {
	return s.Store.Snapshot().Invoices
}

func (s *InvoiceServiceImpl) Get(ctx context.Context, id string) (*models.Invoice, error) {
	for _, inv := range s.Store.Snapshot().Invoices {
		if inv.ID == id {
			return &inv, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InvoiceServiceImpl) Create(ctx context.Context, inv models.Invoice) {
	s.Store.AddInvoice(inv)
}

func (s *InvoiceServiceImpl) Update(ctx context.Context, id string, inv models.Invoice) {
	s.Store.UpdateInvoice(id, inv)
}

func (s *InvoiceServiceImpl) Delete(ctx context.Context, id string) {
	s.Store.DeleteInvoice(id)
}

// billingRank orders the one-way external mirror. Advancement is monotonic:
// repeating an action, or one the invoice is already past, changes nothing.
func billingRank(status models.BillingStatus) int {
	switch status {
	case models.BillingStatusGenerated:
		return 1
	case models.BillingStatusSent:
		return 2
	case models.BillingStatusPaid:
		return 3
	default:
		return 0
	}
}

func (s *InvoiceServiceImpl) advanceBilling(ctx context.Context, id string, target models.BillingStatus) (*models.Invoice, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	billing := models.BillingSync{Status: models.BillingStatusNotCreated}
	if inv.Billing != nil {
		billing = *inv.Billing
	}

	if billingRank(billing.Status) >= billingRank(target) {
		return inv, nil
	}

	// The external document is allocated once; later actions only move status.
	if billing.ExternalID == "" {
		billing.ExternalID = "ext-" + utils.NewID()
		billing.ExternalURL = fmt.Sprintf("https://billing.example.com/invoices/%s", billing.ExternalID)
	}
	billing.Status = target
	now := time.Now().UTC()
	billing.LastActionAt = &now

	updated := *inv
	updated.Billing = &billing
	s.Store.UpdateInvoice(id, updated)

	s.Logger.Info("billing mirror advanced",
		zap.String("invoice_id", id),
		zap.String("status", string(target)),
		zap.String("external_id", billing.ExternalID))

	return &updated, nil
}

func (s *InvoiceServiceImpl) GenerateBilling(ctx context.Context, id string) (*models.Invoice, error) {
	return s.advanceBilling(ctx, id, models.BillingStatusGenerated)
}

func (s *InvoiceServiceImpl) SendBilling(ctx context.Context, id string) (*models.Invoice, error) {
	return s.advanceBilling(ctx, id, models.BillingStatusSent)
}

func (s *InvoiceServiceImpl) CollectBilling(ctx context.Context, id string) (*models.Invoice, error) {
	return s.advanceBilling(ctx, id, models.BillingStatusPaid)
}

// MarkOverdue flips sent invoices whose due date has passed to overdue and
// returns how many changed. Dates compare lexically in YYYY-MM-DD form.
func (s *InvoiceServiceImpl) MarkOverdue(ctx context.Context, now time.Time) int {
	today := now.Format("2006-01-02")
	changed := 0
	for _, inv := range s.Store.Snapshot().Invoices {
		if inv.Status == models.InvoiceStatusSent && inv.DueDate != "" && inv.DueDate < today {
			inv.Status = models.InvoiceStatusOverdue
			s.Store.UpdateInvoice(inv.ID, inv)
			changed++
		}
	}
	if changed > 0 {
		s.Logger.Info("marked invoices overdue", zap.Int("count", changed))
	}
	return changed
}
