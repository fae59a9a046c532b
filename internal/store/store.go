package store

import (
	"sync"

	"studio-crm/internal/common/models"
	"studio-crm/pkg/utils"

	"go.uber.org/zap"
)

// Store owns the CRMData aggregate. Mutations run as pure reducers under the
// write lock; the resulting snapshot is then handed to the persister and to
// subscribers without blocking the caller.
type Store struct {
	mu   sync.RWMutex
	data models.CRMData

	persister Persister
	logger    *zap.Logger

	subMu sync.Mutex
	subs  []chan models.CRMData

	// newID is swappable in tests
	newID func() string
}

// Persister receives the full aggregate after every mutation. Implementations
// must not block; failures stay on their side of the boundary.
type Persister interface {
	Save(data models.CRMData)
}

func NewStore(initial models.CRMData, persister Persister, logger *zap.Logger) *Store {
	return &Store{
		data:      normalizeData(initial),
		persister: persister,
		logger:    logger,
		newID:     utils.NewID,
	}
}

// Snapshot returns a deep copy of the current aggregate.
func (s *Store) Snapshot() models.CRMData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Replace installs an externally produced snapshot wholesale. Last writer
// wins; there is no per-field merging. The snapshot is deep-copied so the
// store never aliases the caller's slices or maps.
func (s *Store) Replace(data models.CRMData) {
	s.apply(func(models.CRMData) models.CRMData {
		return normalizeData(data.Clone())
	})
}

// Subscribe returns a channel that receives a snapshot after every mutation,
// plus a func that deregisters it and closes the channel. Slow consumers miss
// intermediate snapshots rather than blocking mutations.
func (s *Store) Subscribe() (<-chan models.CRMData, func()) {
	ch := make(chan models.CRMData, 8)
	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()

	unsubscribe := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, unsubscribe
}

func (s *Store) apply(reduce func(models.CRMData) models.CRMData) {
	s.mu.Lock()
	s.data = reduce(s.data.Clone())
	snapshot := s.data.Clone()
	s.mu.Unlock()

	if s.persister != nil {
		s.persister.Save(snapshot)
	}
	s.notify(snapshot)
}

func (s *Store) notify(snapshot models.CRMData) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- snapshot.Clone():
		default:
			if s.logger != nil {
				s.logger.Warn("store subscriber lagging, snapshot dropped")
			}
		}
	}
}

// --- Clients ---

func (s *Store) AddClient(c models.Client) {
	c.ID = s.newID()
	s.apply(func(d models.CRMData) models.CRMData { return addClient(d, c) })
}

func (s *Store) UpdateClient(id string, c models.Client) {
	s.apply(func(d models.CRMData) models.CRMData { return updateClient(d, id, c) })
}

func (s *Store) DeleteClient(id string) {
	s.apply(func(d models.CRMData) models.CRMData { return deleteClient(d, id) })
}

// --- Vendors ---

func (s *Store) AddVendor(v models.Vendor) {
	v.ID = s.newID()
	s.apply(func(d models.CRMData) models.CRMData { return addVendor(d, v) })
}

func (s *Store) UpdateVendor(id string, v models.Vendor) {
	s.apply(func(d models.CRMData) models.CRMData { return updateVendor(d, id, v) })
}

// DeleteVendor removes the vendor and prunes it from every event's
// assignment list and cost map.
func (s *Store) DeleteVendor(id string) {
	s.apply(func(d models.CRMData) models.CRMData { return deleteVendor(d, id) })
}

// --- Events ---

func (s *Store) AddEvent(e models.Event) {
	e.ID = s.newID()
	s.apply(func(d models.CRMData) models.CRMData { return addEvent(d, e) })
}

func (s *Store) UpdateEvent(id string, e models.Event) {
	s.apply(func(d models.CRMData) models.CRMData { return updateEvent(d, id, e) })
}

func (s *Store) DeleteEvent(id string) {
	s.apply(func(d models.CRMData) models.CRMData { return deleteEvent(d, id) })
}

// --- Invoices ---

func (s *Store) AddInvoice(inv models.Invoice) {
	inv.ID = s.newID()
	s.apply(func(d models.CRMData) models.CRMData { return addInvoice(d, inv, s.newID) })
}

func (s *Store) UpdateInvoice(id string, inv models.Invoice) {
	s.apply(func(d models.CRMData) models.CRMData { return updateInvoice(d, id, inv, s.newID) })
}

func (s *Store) DeleteInvoice(id string) {
	s.apply(func(d models.CRMData) models.CRMData { return deleteInvoice(d, id) })
}
