// Package vendors manages the vendor collection. The directory is named
// "vendors" because the Go toolchain reserves "vendor" paths.
package vendors

import (
	"context"
	"errors"

	"studio-crm/internal/common/models"
	"studio-crm/internal/store"
)

var ErrNotFound = errors.New("vendor not found")

type VendorService interface {
	List(ctx context.Context) []models.Vendor
	Get(ctx context.Context, id string) (*models.Vendor, error)
	Create(ctx context.Context, v models.Vendor)
	Update(ctx context.Context, id string, v models.Vendor)
	Delete(ctx context.Context, id string)
}

type VendorServiceImpl struct {
	Store *store.Store
}

func NewVendorService(s *store.Store) VendorService {
	return &VendorServiceImpl{Store: s}
}

func (s *VendorServiceImpl) List(ctx context.Context) []models.Vendor {
	return s.Store.Snapshot().Vendors
}

func (s *VendorServiceImpl) Get(ctx context.Context, id string) (*models.Vendor, error) {
	for _, v := range s.Store.Snapshot().Vendors {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (s *VendorServiceImpl) Create(ctx context.Context, v models.Vendor) {
	s.Store.AddVendor(v)
}

func (s *VendorServiceImpl) Update(ctx context.Context, id string, v models.Vendor) {
	s.Store.UpdateVendor(id, v)
}

// Delete removes the vendor and cascades through every event, pruning its id
// from vendor assignments and cost maps.
func (s *VendorServiceImpl) Delete(ctx context.Context, id string) {
	s.Store.DeleteVendor(id)
}
