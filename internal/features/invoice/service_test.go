package invoice

import (
	"context"
	"testing"
	"time"

	"studio-crm/internal/common/models"
	"studio-crm/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(initial models.CRMData) InvoiceService {
	s := store.NewStore(initial, nil, zap.NewNop())
	return NewInvoiceService(s, zap.NewNop())
}

func TestGenerateBillingAllocatesOnce(t *testing.T) {
	svc := newTestService(models.CRMData{
		Invoices: []models.Invoice{{ID: "i1", ClientID: "c1", Total: 500}},
	})
	ctx := context.Background()

	first, err := svc.GenerateBilling(ctx, "i1")
	require.NoError(t, err)
	require.NotNil(t, first.Billing)
	assert.Equal(t, models.BillingStatusGenerated, first.Billing.Status)
	assert.NotEmpty(t, first.Billing.ExternalID)
	assert.Contains(t, first.Billing.ExternalURL, first.Billing.ExternalID)

	second, err := svc.GenerateBilling(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, first.Billing.ExternalID, second.Billing.ExternalID)
	assert.Equal(t, models.BillingStatusGenerated, second.Billing.Status)
}

func TestBillingAdvancesMonotonically(t *testing.T) {
	svc := newTestService(models.CRMData{
		Invoices: []models.Invoice{{ID: "i1", ClientID: "c1", Total: 500}},
	})
	ctx := context.Background()

	sent, err := svc.SendBilling(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, models.BillingStatusSent, sent.Billing.Status)
	externalID := sent.Billing.ExternalID

	// generate after send is a no-op, not a rollback
	regen, err := svc.GenerateBilling(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, models.BillingStatusSent, regen.Billing.Status)
	assert.Equal(t, externalID, regen.Billing.ExternalID)

	paid, err := svc.CollectBilling(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, models.BillingStatusPaid, paid.Billing.Status)
	assert.Equal(t, externalID, paid.Billing.ExternalID)
}

func TestBillingMissingInvoice(t *testing.T) {
	svc := newTestService(models.CRMData{})

	_, err := svc.GenerateBilling(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkOverdue(t *testing.T) {
	svc := newTestService(models.CRMData{
		Invoices: []models.Invoice{
			{ID: "late", Status: models.InvoiceStatusSent, DueDate: "2026-05-01"},
			{ID: "due-today", Status: models.InvoiceStatusSent, DueDate: "2026-06-01"},
			{ID: "future", Status: models.InvoiceStatusSent, DueDate: "2026-07-01"},
			{ID: "draft", Status: models.InvoiceStatusDraft, DueDate: "2026-05-01"},
			{ID: "paid", Status: models.InvoiceStatusPaid, DueDate: "2026-05-01"},
			{ID: "no-due", Status: models.InvoiceStatusSent},
		},
	})
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	changed := svc.MarkOverdue(context.Background(), now)
	assert.Equal(t, 1, changed)

	statuses := make(map[string]models.InvoiceStatus)
	for _, inv := range svc.List(context.Background()) {
		statuses[inv.ID] = inv.Status
	}
	assert.Equal(t, models.InvoiceStatusOverdue, statuses["late"])
	assert.Equal(t, models.InvoiceStatusSent, statuses["due-today"])
	assert.Equal(t, models.InvoiceStatusSent, statuses["future"])
	assert.Equal(t, models.InvoiceStatusDraft, statuses["draft"])
	assert.Equal(t, models.InvoiceStatusPaid, statuses["paid"])
	assert.Equal(t, models.InvoiceStatusSent, statuses["no-due"])
}

func TestMarkOverdueIdempotent(t *testing.T) {
	svc := newTestService(models.CRMData{
		Invoices: []models.Invoice{{ID: "late", Status: models.InvoiceStatusSent, DueDate: "2026-05-01"}},
	})
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, svc.MarkOverdue(context.Background(), now))
	assert.Equal(t, 0, svc.MarkOverdue(context.Background(), now))
}
