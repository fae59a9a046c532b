package store

import "studio-crm/internal/common/models"

// Reducers are pure: they take the (already copied) aggregate plus a mutation
// and return the next aggregate. Updates on ids that no longer exist leave the
// state unchanged; the caller still persists, which is accepted behavior.

func addClient(d models.CRMData, c models.Client) models.CRMData {
	d.Clients = append([]models.Client{normalizeClient(c)}, d.Clients...)
	return d
}

func updateClient(d models.CRMData, id string, c models.Client) models.CRMData {
	for i := range d.Clients {
		if d.Clients[i].ID == id {
			c.ID = id
			d.Clients[i] = normalizeClient(c)
			break
		}
	}
	return d
}

func deleteClient(d models.CRMData, id string) models.CRMData {
	out := d.Clients[:0]
	for _, c := range d.Clients {
		if c.ID != id {
			out = append(out, c)
		}
	}
	d.Clients = out
	// events referencing the client keep their dangling client_id
	return d
}

func addVendor(d models.CRMData, v models.Vendor) models.CRMData {
	d.Vendors = append([]models.Vendor{v}, d.Vendors...)
	return d
}

func updateVendor(d models.CRMData, id string, v models.Vendor) models.CRMData {
	for i := range d.Vendors {
		if d.Vendors[i].ID == id {
			v.ID = id
			d.Vendors[i] = v
			break
		}
	}
	return d
}

func deleteVendor(d models.CRMData, id string) models.CRMData {
	out := d.Vendors[:0]
	for _, v := range d.Vendors {
		if v.ID != id {
			out = append(out, v)
		}
	}
	d.Vendors = out
	for i := range d.Events {
		d.Events[i] = normalizeEvent(d.Events[i], d.Vendors)
	}
	return d
}

func addEvent(d models.CRMData, e models.Event) models.CRMData {
	d.Events = append([]models.Event{normalizeEvent(e, d.Vendors)}, d.Events...)
	return d
}

func updateEvent(d models.CRMData, id string, e models.Event) models.CRMData {
	for i := range d.Events {
		if d.Events[i].ID == id {
			e.ID = id
			d.Events[i] = normalizeEvent(e, d.Vendors)
			break
		}
	}
	return d
}

func deleteEvent(d models.CRMData, id string) models.CRMData {
	out := d.Events[:0]
	for _, e := range d.Events {
		if e.ID != id {
			out = append(out, e)
		}
	}
	d.Events = out
	return d
}

func addInvoice(d models.CRMData, inv models.Invoice, newID func() string) models.CRMData {
	d.Invoices = append([]models.Invoice{normalizeInvoice(inv, newID)}, d.Invoices...)
	return d
}

func updateInvoice(d models.CRMData, id string, inv models.Invoice, newID func() string) models.CRMData {
	for i := range d.Invoices {
		if d.Invoices[i].ID == id {
			inv.ID = id
			d.Invoices[i] = normalizeInvoice(inv, newID)
			break
		}
	}
	return d
}

func deleteInvoice(d models.CRMData, id string) models.CRMData {
	out := d.Invoices[:0]
	for _, inv := range d.Invoices {
		if inv.ID != id {
			out = append(out, inv)
		}
	}
	d.Invoices = out
	return d
}
