package client

import (
	"context"
	"errors"

	"studio-crm/internal/common/models"
	"studio-crm/internal/store"
)

var ErrNotFound = errors.New("client not found")

type ClientService interface {
	List(ctx context.Context) []models.Client
	Get(ctx context.Context, id string) (*models.Client, error)
	Create(ctx context.Context, c models.Client)
	Update(ctx context.Context, id string, c models.Client)
	Delete(ctx context.Context, id string)
}

type ClientServiceImpl struct {
	Store *store.Store
}

func NewClientService(s *store.Store) ClientService {
	return &ClientServiceImpl{Store: s}
}

func (s *ClientServiceImpl) List(ctx context.Context) []models.Client {
	return s.Store.Snapshot().Clients
}

func (s *ClientServiceImpl) Get(ctx context.Context, id string) (*models.Client, error) {
	for _, c := range s.Store.Snapshot().Clients {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *ClientServiceImpl) Create(ctx context.Context, c models.Client) {
	s.Store.AddClient(c)
}

// Update is a no-op on an unknown id; the store still persists, which is the
// accepted behavior rather than an error.
func (s *ClientServiceImpl) Update(ctx context.Context, id string, c models.Client) {
	s.Store.UpdateClient(id, c)
}

func (s *ClientServiceImpl) Delete(ctx context.Context, id string) {
	s.Store.DeleteClient(id)
}
