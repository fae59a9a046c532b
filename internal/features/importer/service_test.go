package importer

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

func newTestImporter() (ImportService, *store.Store) {
	s := store.NewStore(models.CRMData{}, nil, zap.NewNop())
	return NewImportService(s, zap.NewNop()), s
}

func TestImportTextCommaLine(t *testing.T) {
	svc, s := newTestImporter()

	result := svc.ImportText(context.Background(), "Amy,amy@x.com,555-1111,booked")

	assert.Equal(t, ImportResult{Imported: 1}, result)
	clients := s.Snapshot().Clients
	require.Len(t, clients, 1)
	got := clients[0]
	assert.Equal(t, "Amy", got.Name)
	assert.Equal(t, "amy@x.com", got.Email)
	assert.Equal(t, "555-1111", got.Phone)
	assert.Equal(t, models.ClientStatusBooked, got.Status)
	assert.Empty(t, got.EventDate)
	assert.Nil(t, got.Budget)
	assert.Empty(t, got.Notes)
}

func TestImportTextDelimiters(t *testing.T) {
	tests := []struct {
		name string
		line string
		want models.Client
	}{
		{
			name: "pipe delimited with notes",
			line: "Bea | bea@x.com | 555-2222 | planning | 2026-09-12 | $12,500 | outdoor ceremony | needs tent",
			want: models.Client{
				Name: "Bea", Email: "bea@x.com", Phone: "555-2222",
				Status: models.ClientStatusPlanning, EventDate: "2026-09-12",
				Notes: "outdoor ceremony, needs tent",
			},
		},
		{
			name: "dash delimited",
			line: "Cho - cho@x.com - 555-3333",
			want: models.Client{Name: "Cho", Email: "cho@x.com", Phone: "555-3333", Status: models.ClientStatusLead},
		},
		{
			name: "bare name",
			line: "Dana Smith",
			want: models.Client{Name: "Dana Smith", Status: models.ClientStatusLead},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, s := newTestImporter()

			result := svc.ImportText(context.Background(), tt.line)
			assert.Equal(t, 1, result.Imported)

			clients := s.Snapshot().Clients
			require.Len(t, clients, 1)
			got := clients[0]
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Email, got.Email)
			assert.Equal(t, tt.want.Phone, got.Phone)
			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.EventDate, got.EventDate)
			assert.Equal(t, tt.want.Notes, got.Notes)
		})
	}
}

func TestImportTextSkipsNamelessLines(t *testing.T) {
	svc, s := newTestImporter()

	text := strings.Join([]string{
		"Amy,amy@x.com",
		",no-name@x.com",
		"",
		"   ",
		"| pipe with empty name",
	}, "\n")

	result := svc.ImportText(context.Background(), text)
	assert.Equal(t, ImportResult{Imported: 1, Skipped: 2}, result)
	assert.Len(t, s.Snapshot().Clients, 1)
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want models.ClientStatus
	}{
		{"booked", models.ClientStatusBooked},
		{"Booked!", models.ClientStatusBooked},
		{"will book soon", models.ClientStatusBooked},
		{"planning", models.ClientStatusPlanning},
		{"in the plan phase", models.ClientStatusPlanning},
		{"wrapped", models.ClientStatusCompleted},
		{"Completed", models.ClientStatusCompleted},
		{"lead", models.ClientStatusLead},
		{"whatever", models.ClientStatusLead},
		{"", models.ClientStatusLead},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeStatus(tt.raw), "raw %q", tt.raw)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2026-06-15", "2026-06-15"},
		{"06/15/2026", "2026-06-15"},
		{"6/5/2026", "2026-06-05"},
		{"06-15-2026", "2026-06-15"},
		{"Jun 15, 2026", "2026-06-15"},
		{"June 15, 2026", "2026-06-15"},
		{"15 Jun 2026", "2026-06-15"},
		{"next summer", "next summer"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDate(tt.raw), "raw %q", tt.raw)
	}
}

func TestParseBudget(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{"$12,500", f(12500)},
		{"12500.50", f(12500.50)},
		{"about 8000 total", f(8000)},
		{"", nil},
		{"TBD", nil},
	}

	for _, tt := range tests {
		got := parseBudget(tt.raw)
		if tt.want == nil {
			assert.Nil(t, got, "raw %q", tt.raw)
			continue
		}
		require.NotNil(t, got, "raw %q", tt.raw)
		assert.Equal(t, *tt.want, *got, "raw %q", tt.raw)
	}
}

func f(v float64) *float64 { return &v }

func TestImportCSVFile(t *testing.T) {
	svc, s := newTestImporter()

	csvData := strings.Join([]string{
		"Email,Name,Status,Budget",
		"amy@x.com,Amy,booked,\"$5,000\"",
		"no-name@x.com,,lead,",
	}, "\n")

	result, err := svc.ImportFile(context.Background(), strings.NewReader(csvData), "clients.csv")
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Imported: 1, Skipped: 1}, result)

	clients := s.Snapshot().Clients
	require.Len(t, clients, 1)
	assert.Equal(t, "Amy", clients[0].Name)
	assert.Equal(t, "amy@x.com", clients[0].Email)
	assert.Equal(t, models.ClientStatusBooked, clients[0].Status)
	require.NotNil(t, clients[0].Budget)
	assert.Equal(t, 5000.0, *clients[0].Budget)
}

func TestImportFileUnsupportedFormat(t *testing.T) {
	svc, _ := newTestImporter()

	_, err := svc.ImportFile(context.Background(), strings.NewReader("x"), "clients.pdf")
	assert.Error(t, err)
}
