package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"studio-crm/internal/common/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// capturePersister records every snapshot handed to it.
type capturePersister struct {
	saves []models.CRMData
}

func (p *capturePersister) Save(data models.CRMData) {
	p.saves = append(p.saves, data)
}

func newTestStore(initial models.CRMData) (*Store, *capturePersister) {
	p := &capturePersister{}
	return NewStore(initial, p, zap.NewNop()), p
}

func TestAddClientDefaultsAndPrepends(t *testing.T) {
	s, _ := newTestStore(models.CRMData{
		Clients: []models.Client{{ID: "existing", Name: "Old", Status: models.ClientStatusBooked}},
	})

	s.AddClient(models.Client{Name: "Amy", Email: "amy@x.com"})

	clients := s.Snapshot().Clients
	require.Len(t, clients, 2)
	assert.Equal(t, "Amy", clients[0].Name)
	assert.Equal(t, models.ClientStatusLead, clients[0].Status)
	assert.NotEmpty(t, clients[0].ID)
	assert.Equal(t, "existing", clients[1].ID)
}

func TestUpdateNeverChangesID(t *testing.T) {
	s, _ := newTestStore(models.CRMData{
		Clients: []models.Client{{ID: "c1", Name: "Amy", Status: models.ClientStatusLead}},
	})

	s.UpdateClient("c1", models.Client{ID: "hijacked", Name: "Amy Updated", Status: models.ClientStatusBooked})

	clients := s.Snapshot().Clients
	require.Len(t, clients, 1)
	assert.Equal(t, "c1", clients[0].ID)
	assert.Equal(t, "Amy Updated", clients[0].Name)
	assert.Equal(t, models.ClientStatusBooked, clients[0].Status)
}

func TestUpdateMissingIDIsNoOpButPersists(t *testing.T) {
	s, p := newTestStore(models.CRMData{
		Clients: []models.Client{{ID: "c1", Name: "Amy", Status: models.ClientStatusLead}},
	})

	s.UpdateClient("missing", models.Client{Name: "Ghost"})

	clients := s.Snapshot().Clients
	require.Len(t, clients, 1)
	assert.Equal(t, "Amy", clients[0].Name)
	assert.Len(t, p.saves, 1, "the unchanged collection is still persisted")
}

func TestDeleteVendorCascades(t *testing.T) {
	s, _ := newTestStore(models.CRMData{
		Vendors: []models.Vendor{{ID: "v1", Name: "Florist"}, {ID: "v2", Name: "Photo"}},
		Events: []models.Event{{
			ID:          "e1",
			Name:        "Wedding",
			VendorIDs:   []string{"v1", "v2"},
			VendorCosts: map[string]float64{"v1": 100},
		}},
	})

	s.DeleteVendor("v1")

	data := s.Snapshot()
	require.Len(t, data.Vendors, 1)
	require.Len(t, data.Events, 1)
	assert.Equal(t, []string{"v2"}, data.Events[0].VendorIDs)
	assert.Nil(t, data.Events[0].VendorCosts, "an emptied cost map collapses to unset")
}

func TestDeleteClientKeepsReferencingEvents(t *testing.T) {
	s, _ := newTestStore(models.CRMData{
		Clients: []models.Client{{ID: "c1", Name: "Amy"}},
		Events:  []models.Event{{ID: "e1", Name: "Wedding", ClientID: "c1"}},
	})

	s.DeleteClient("c1")

	data := s.Snapshot()
	assert.Empty(t, data.Clients)
	require.Len(t, data.Events, 1)
	assert.Equal(t, "c1", data.Events[0].ClientID, "dangling client reference is tolerated")
}

func TestEventNormalization(t *testing.T) {
	paid := true
	tests := []struct {
		name      string
		event     models.Event
		wantIDs   []string
		wantCosts map[string]float64
		wantPaid  *bool
	}{
		{
			name:    "unknown and duplicate vendor ids dropped",
			event:   models.Event{Name: "A", VendorIDs: []string{"v1", "v1", "ghost", "v2"}},
			wantIDs: []string{"v1", "v2"},
		},
		{
			name:      "cost keys restricted to assigned vendors",
			event:     models.Event{Name: "B", VendorIDs: []string{"v1"}, VendorCosts: map[string]float64{"v1": 50, "v2": 75}},
			wantIDs:   []string{"v1"},
			wantCosts: map[string]float64{"v1": 50},
		},
		{
			name:    "no valid vendors collapses to unset",
			event:   models.Event{Name: "C", VendorIDs: []string{"ghost"}, VendorCosts: map[string]float64{"ghost": 10}},
			wantIDs: nil,
		},
		{
			name:     "deposit paid cleared without deposit",
			event:    models.Event{Name: "D", DepositPaid: &paid},
			wantPaid: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(models.CRMData{
				Vendors: []models.Vendor{{ID: "v1"}, {ID: "v2"}},
			})

			s.AddEvent(tt.event)

			got := s.Snapshot().Events[0]
			assert.Equal(t, tt.wantIDs, got.VendorIDs)
			assert.Equal(t, tt.wantCosts, got.VendorCosts)
			assert.Equal(t, tt.wantPaid, got.DepositPaid)
		})
	}
}

func TestInvoiceItemIDsIdempotent(t *testing.T) {
	s, _ := newTestStore(models.CRMData{})

	s.AddInvoice(models.Invoice{
		ClientID: "c1",
		Items: []models.InvoiceItem{
			{Description: "Deposit", Amount: 500},
			{Description: "Balance", Amount: 1500},
		},
	})

	first := s.Snapshot().Invoices[0]
	require.Len(t, first.Items, 2)
	require.NotEmpty(t, first.Items[0].ID)
	require.NotEmpty(t, first.Items[1].ID)

	// update with the now-populated ids: they must come back unchanged
	s.UpdateInvoice(first.ID, first)

	second := s.Snapshot().Invoices[0]
	assert.Equal(t, first.Items[0].ID, second.Items[0].ID)
	assert.Equal(t, first.Items[1].ID, second.Items[1].ID)
}

func TestReplaceInstallsSnapshotWholesale(t *testing.T) {
	s, _ := newTestStore(models.CRMData{
		Clients: []models.Client{{ID: "local", Name: "Local"}},
	})

	s.Replace(models.CRMData{
		Clients: []models.Client{{ID: "remote", Name: "Remote", Status: models.ClientStatusBooked}},
	})

	clients := s.Snapshot().Clients
	require.Len(t, clients, 1)
	assert.Equal(t, "remote", clients[0].ID)
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	s, _ := newTestStore(models.CRMData{})
	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.AddClient(models.Client{Name: "Amy"})

	snapshot := <-ch
	require.Len(t, snapshot.Clients, 1)
	assert.Equal(t, "Amy", snapshot.Clients[0].Name)
}

func TestUnsubscribeRemovesSubscriber(t *testing.T) {
	s, _ := newTestStore(models.CRMData{})

	// churn through short-lived consumers, the websocket connect/disconnect
	// pattern
	for i := 0; i < 100; i++ {
		ch, unsubscribe := s.Subscribe()
		unsubscribe()
		_, open := <-ch
		assert.False(t, open, "unsubscribed channel must be closed")
	}

	s.subMu.Lock()
	remaining := len(s.subs)
	s.subMu.Unlock()
	assert.Zero(t, remaining, "deregistered subscribers must not be retained")

	// a surviving subscriber still gets snapshots after the churn
	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()
	s.AddClient(models.Client{Name: "Amy"})
	snapshot := <-ch
	require.Len(t, snapshot.Clients, 1)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	s, _ := newTestStore(models.CRMData{})

	_, unsubscribe := s.Subscribe()
	unsubscribe()
	unsubscribe() // second call must not panic or close twice
}

func TestReplaceCopiesCallerData(t *testing.T) {
	s, _ := newTestStore(models.CRMData{})

	clients := []models.Client{{ID: "c1", Name: "Amy", Status: models.ClientStatusLead}}
	s.Replace(models.CRMData{Clients: clients})

	clients[0].Name = "mutated after replace"

	got := s.Snapshot().Clients
	require.Len(t, got, 1)
	assert.Equal(t, "Amy", got[0].Name, "store state must not alias the caller's slice")
}

func TestAggregateRoundTrip(t *testing.T) {
	budget := 12500.0
	deposit := 1000.0
	paid := true
	original := models.CRMData{
		Clients: []models.Client{{ID: "c1", Name: "Amy", Email: "amy@x.com", Status: models.ClientStatusBooked, Budget: &budget}},
		Vendors: []models.Vendor{{ID: "v1", Name: "Florist", Service: "Flowers", PreferredContact: models.ContactEmail}},
		Events: []models.Event{{
			ID: "e1", Name: "Wedding", Date: "2026-06-01", ClientID: "c1",
			Status: models.EventStatusConfirmed, VendorIDs: []string{"v1"},
			VendorCosts: map[string]float64{"v1": 300}, Deposit: &deposit, DepositPaid: &paid,
		}},
		Invoices: []models.Invoice{{
			ID: "i1", ClientID: "c1", IssueDate: "2026-05-01", DueDate: "2026-06-01",
			Status: models.InvoiceStatusSent, Total: 500,
			Items: []models.InvoiceItem{{ID: "it1", Description: "Deposit", Amount: 500}},
		}},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded models.CRMData
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original, decoded)
}

func TestLoadFallsBackOnMalformedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	data := Load(path, zap.NewNop())

	sample := SampleData()
	assert.Equal(t, len(sample.Clients), len(data.Clients))
	assert.Equal(t, sample.Clients[0].ID, data.Clients[0].ID)
}

func TestLoadMissingFileUsesSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	data := Load(path, zap.NewNop())

	assert.NotEmpty(t, data.Clients)
	assert.NotEmpty(t, data.Vendors)
}
