package client

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"studio-crm/internal/common/models"
	"studio-crm/internal/config"
	"studio-crm/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(initial models.CRMData) (*fiber.App, *store.Store) {
	s := store.NewStore(initial, nil, zap.NewNop())
	ctrl := NewClientController(NewClientService(s))
	route := NewClientApi(ctrl, &config.Config{SkipAuth: true})

	app := fiber.New()
	route.Setup(app)
	return app, s
}

func TestCreateClientReturnsFullList(t *testing.T) {
	app, _ := newTestApp(models.CRMData{
		Clients: []models.Client{{ID: "c1", Name: "Old", Status: models.ClientStatusBooked}},
	})

	req := httptest.NewRequest("POST", "/api/clients/", strings.NewReader(`{"name":"Amy","email":"amy@x.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var clients []models.Client
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&clients))
	require.Len(t, clients, 2)
	assert.Equal(t, "Amy", clients[0].Name)
	assert.Equal(t, models.ClientStatusLead, clients[0].Status)
}

func TestUpdateClientMergesOverExisting(t *testing.T) {
	budget := 8000.0
	app, s := newTestApp(models.CRMData{
		Clients: []models.Client{{
			ID: "c1", Name: "Amy", Email: "amy@x.com", Phone: "555-1111",
			Status: models.ClientStatusLead, Budget: &budget, Notes: "met at expo",
		}},
	})

	req := httptest.NewRequest("PUT", "/api/clients/c1", strings.NewReader(`{"status":"booked"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := s.Snapshot().Clients[0]
	assert.Equal(t, models.ClientStatusBooked, got.Status)
	assert.Equal(t, "Amy", got.Name, "omitted fields keep their values")
	assert.Equal(t, "555-1111", got.Phone)
	require.NotNil(t, got.Budget)
	assert.Equal(t, 8000.0, *got.Budget)
	assert.Equal(t, "met at expo", got.Notes)
}

func TestUpdateMissingClientLeavesListUntouched(t *testing.T) {
	app, s := newTestApp(models.CRMData{
		Clients: []models.Client{{ID: "c1", Name: "Amy", Status: models.ClientStatusLead}},
	})

	req := httptest.NewRequest("PUT", "/api/clients/missing", strings.NewReader(`{"name":"Ghost"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	clients := s.Snapshot().Clients
	require.Len(t, clients, 1)
	assert.Equal(t, "Amy", clients[0].Name)
}

func TestGetClientNotFound(t *testing.T) {
	app, _ := newTestApp(models.CRMData{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/clients/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteClient(t *testing.T) {
	app, s := newTestApp(models.CRMData{
		Clients: []models.Client{{ID: "c1", Name: "Amy", Status: models.ClientStatusLead}},
		Events:  []models.Event{{ID: "e1", Name: "Wedding", ClientID: "c1"}},
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/clients/c1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	data := s.Snapshot()
	assert.Empty(t, data.Clients)
	require.Len(t, data.Events, 1)
	assert.Equal(t, "c1", data.Events[0].ClientID)
}
