package export

import (
	"context"
	"strings"
	"testing"

	"studio-crm/internal/common/models"
	"studio-crm/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func f(v float64) *float64 { return &v }

func TestField(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain stays bare", "Amy", "Amy"},
		{"empty stays bare", "", ""},
		{"comma forces quotes", "Smith, Amy", `"Smith, Amy"`},
		{"quote doubled and wrapped", `the "big" day`, `"the ""big"" day"`},
		{"newline forces quotes", "line1\nline2", "\"line1\nline2\""},
		{"spaces alone stay bare", "no special chars here", "no special chars here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Field(tt.value))
		})
	}
}

func TestClientsCSV(t *testing.T) {
	clients := []models.Client{
		{Name: "Amy", Email: "amy@x.com", Phone: "555-1111", Status: models.ClientStatusBooked, EventDate: "2026-06-15", Budget: f(12500), Notes: "outdoor, needs tent"},
		{Name: "Bea", Status: models.ClientStatusLead},
	}

	got := ClientsCSV(clients)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Email,Phone,Status,Event Date,Budget,Notes", lines[0])
	assert.Equal(t, `Amy,amy@x.com,555-1111,booked,2026-06-15,12500,"outdoor, needs tent"`, lines[1])
	assert.Equal(t, "Bea,,,lead,,,", lines[2])
}

func TestEventsCSV(t *testing.T) {
	paid := true
	events := []models.Event{
		{Name: "Garden Wedding", Date: "2026-06-15", ClientID: "c1", Venue: "Rose Hall", VenueCost: f(2500.5), Coordinator: "Sam", Status: models.EventStatusConfirmed, Estimate: f(12000), Deposit: f(3000), DepositPaid: &paid},
	}

	got := EventsCSV(events)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Garden Wedding,2026-06-15,c1,Rose Hall,2500.5,Sam,confirmed,12000,3000,true", lines[1])
}

func TestInvoicesCSVJoinsItems(t *testing.T) {
	invoices := []models.Invoice{
		{ClientID: "c1", IssueDate: "2026-05-01", DueDate: "2026-06-01", Status: models.InvoiceStatusSent, Total: 2000, Items: []models.InvoiceItem{
			{Description: "Deposit", Amount: 500},
			{Description: "Balance", Amount: 1500},
		}},
	}

	got := InvoicesCSV(invoices)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "c1,2026-05-01,2026-06-01,sent,2000,Deposit (500); Balance (1500),", lines[1])
}

func TestExportCollection(t *testing.T) {
	s := store.NewStore(models.CRMData{
		Vendors: []models.Vendor{{ID: "v1", Name: "Florist", Service: "Flowers"}},
	}, nil, zap.NewNop())
	svc := NewExportService(s)

	got, err := svc.ExportCollection(context.Background(), "vendors")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "Name,Service,Cost,"))
	assert.Contains(t, got, "Florist,Flowers")

	_, err = svc.ExportCollection(context.Background(), "widgets")
	assert.Error(t, err)
}
