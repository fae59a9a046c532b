package event

import (
	"context"
	"errors"

	"studio-crm/internal/common/models"
	"studio-crm/internal/store"
)

var ErrNotFound = errors.New("event not found")

type EventService interface {
	List(ctx context.Context) []models.Event
	Get(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, e models.Event)
	Update(ctx context.Context, id string, e models.Event)
	Delete(ctx context.Context, id string)
}

type EventServiceImpl struct {
	Store *store.Store
}

func NewEventService(s *store.Store) EventService {
	return &EventServiceImpl{Store: s}
}

func (s *EventServiceImpl) List(ctx context.Context) []models.Event {
	return s.Store.Snapshot().Events
}

func (s *EventServiceImpl) Get(ctx context.Context, id string) (*models.Event, error) {
	for _, e := range s.Store.Snapshot().Events {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

// Create stores the event with its vendor references normalized: unknown
// vendor ids are dropped, costs are restricted to assigned vendors.
func (s *EventServiceImpl) Create(ctx context.Context, e models.Event) {
	s.Store.AddEvent(e)
}

func (s *EventServiceImpl) Update(ctx context.Context, id string, e models.Event) {
	s.Store.UpdateEvent(id, e)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) {
	s.Store.DeleteEvent(id)
}
