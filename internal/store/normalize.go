package store

import (
	"studio-crm/internal/common/models"
	"studio-crm/pkg/utils"
)

func normalizeClient(c models.Client) models.Client {
	if c.Status == "" {
		c.Status = models.ClientStatusLead
	}
	return c
}

// normalizeEvent keeps VendorIDs consistent with the vendor collection:
// unknown ids and duplicates are dropped, VendorCosts keys are restricted to
// the surviving VendorIDs, and empty collections collapse to unset. A nil
// Deposit also clears DepositPaid, which is meaningless on its own.
func normalizeEvent(e models.Event, vendors []models.Vendor) models.Event {
	known := make(map[string]bool, len(vendors))
	for _, v := range vendors {
		known[v.ID] = true
	}

	var ids []string
	seen := make(map[string]bool, len(e.VendorIDs))
	for _, id := range e.VendorIDs {
		if known[id] && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	e.VendorIDs = ids // nil when nothing valid remains

	if e.VendorCosts != nil {
		costs := make(map[string]float64, len(e.VendorCosts))
		for id, cost := range e.VendorCosts {
			if seen[id] {
				costs[id] = cost
			}
		}
		if len(costs) == 0 {
			costs = nil
		}
		e.VendorCosts = costs
	}

	if e.Deposit == nil {
		e.DepositPaid = nil
	}
	return e
}

// normalizeInvoice assigns a fresh id to every item that lacks one and keeps
// existing item ids untouched, so repeated normalization is a no-op.
func normalizeInvoice(inv models.Invoice, newID func() string) models.Invoice {
	for i := range inv.Items {
		if inv.Items[i].ID == "" {
			inv.Items[i].ID = newID()
		}
	}
	if inv.Status == "" {
		inv.Status = models.InvoiceStatusDraft
	}
	return inv
}

// normalizeData re-runs entity normalization across the whole aggregate. Used
// on hydration and on remote snapshots, which may predate the current rules.
func normalizeData(d models.CRMData) models.CRMData {
	for i := range d.Clients {
		d.Clients[i] = normalizeClient(d.Clients[i])
	}
	for i := range d.Events {
		d.Events[i] = normalizeEvent(d.Events[i], d.Vendors)
	}
	for i := range d.Invoices {
		d.Invoices[i] = normalizeInvoice(d.Invoices[i], utils.NewID)
	}
	return d
}
