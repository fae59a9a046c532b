package models

import "time"

// Client pipeline stages. A client moves lead -> booked -> planning -> completed,
// though nothing enforces forward-only movement.
type ClientStatus string

const (
	ClientStatusLead      ClientStatus = "lead"
	ClientStatusBooked    ClientStatus = "booked"
	ClientStatusPlanning  ClientStatus = "planning"
	ClientStatusCompleted ClientStatus = "completed"
)

// ClientStatuses lists the stages in dashboard display order.
var ClientStatuses = []ClientStatus{
	ClientStatusLead,
	ClientStatusBooked,
	ClientStatusPlanning,
	ClientStatusCompleted,
}

type EventStatus string

const (
	EventStatusContacted EventStatus = "contacted"
	EventStatusBid       EventStatus = "bid"
	EventStatusConfirmed EventStatus = "confirmed"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

type BillingStatus string

const (
	BillingStatusNotCreated BillingStatus = "not_created"
	BillingStatusGenerated  BillingStatus = "generated"
	BillingStatusSent       BillingStatus = "sent"
	BillingStatusPaid       BillingStatus = "paid"
)

type Client struct {
	ID        string       `json:"id" bson:"id"`
	Name      string       `json:"name" bson:"name"`
	Email     string       `json:"email" bson:"email"`
	Phone     string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Status    ClientStatus `json:"status" bson:"status"`
	EventDate string       `json:"event_date,omitempty" bson:"event_date,omitempty"`
	Budget    *float64     `json:"budget,omitempty" bson:"budget,omitempty"`
	Notes     string       `json:"notes,omitempty" bson:"notes,omitempty"`
}

type PreferredContact string

const (
	ContactEmail PreferredContact = "email"
	ContactPhone PreferredContact = "phone"
	ContactText  PreferredContact = "text"
)

type Vendor struct {
	ID               string           `json:"id" bson:"id"`
	Name             string           `json:"name" bson:"name"`
	Service          string           `json:"service" bson:"service"`
	Cost             *float64         `json:"cost,omitempty" bson:"cost,omitempty"`
	Email            string           `json:"email,omitempty" bson:"email,omitempty"`
	Phone            string           `json:"phone,omitempty" bson:"phone,omitempty"`
	Website          string           `json:"website,omitempty" bson:"website,omitempty"`
	PreferredContact PreferredContact `json:"preferred_contact,omitempty" bson:"preferred_contact,omitempty"`
	Notes            string           `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Event references its client and vendors by id only. A dangling ClientID is
// tolerated; VendorIDs and VendorCosts are kept consistent with the vendor
// collection by the store.
type Event struct {
	ID          string             `json:"id" bson:"id"`
	Name        string             `json:"name" bson:"name"`
	Date        string             `json:"date" bson:"date"`
	ClientID    string             `json:"client_id" bson:"client_id"`
	Venue       string             `json:"venue" bson:"venue"`
	VenueCost   *float64           `json:"venue_cost,omitempty" bson:"venue_cost,omitempty"`
	Coordinator string             `json:"coordinator" bson:"coordinator"`
	Timeline    string             `json:"timeline,omitempty" bson:"timeline,omitempty"`
	Status      EventStatus        `json:"status" bson:"status"`
	VendorIDs   []string           `json:"vendor_ids,omitempty" bson:"vendor_ids,omitempty"`
	VendorCosts map[string]float64 `json:"vendor_costs,omitempty" bson:"vendor_costs,omitempty"`
	Estimate    *float64           `json:"estimate,omitempty" bson:"estimate,omitempty"`
	Deposit     *float64           `json:"deposit,omitempty" bson:"deposit,omitempty"`
	DepositPaid *bool              `json:"deposit_paid,omitempty" bson:"deposit_paid,omitempty"`
}

// DepositHeld reports whether a paid deposit amount exists. DepositPaid is
// meaningless without a Deposit amount.
func (e Event) DepositHeld() bool {
	return e.Deposit != nil && e.DepositPaid != nil && *e.DepositPaid
}

type InvoiceItem struct {
	ID          string  `json:"id" bson:"id"`
	Description string  `json:"description" bson:"description"`
	Amount      float64 `json:"amount" bson:"amount"`
}

// BillingSync is the one-way mirror of an invoice into an external billing
// system, advanced only by explicit generate/send/collect calls.
type BillingSync struct {
	Status       BillingStatus `json:"status" bson:"status"`
	ExternalID   string        `json:"external_id,omitempty" bson:"external_id,omitempty"`
	ExternalURL  string        `json:"external_url,omitempty" bson:"external_url,omitempty"`
	LastActionAt *time.Time    `json:"last_action_at,omitempty" bson:"last_action_at,omitempty"`
}

type Invoice struct {
	ID        string        `json:"id" bson:"id"`
	ClientID  string        `json:"client_id" bson:"client_id"`
	IssueDate string        `json:"issue_date" bson:"issue_date"`
	DueDate   string        `json:"due_date" bson:"due_date"`
	Status    InvoiceStatus `json:"status" bson:"status"`
	Total     float64       `json:"total" bson:"total"`
	Items     []InvoiceItem `json:"items" bson:"items"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
	Billing   *BillingSync  `json:"billing,omitempty" bson:"billing,omitempty"`
}

// CRMData is the whole aggregate. It is replaced wholesale on every mutation
// and serialized as a single JSON document.
type CRMData struct {
	Clients  []Client  `json:"clients" bson:"clients"`
	Vendors  []Vendor  `json:"vendors" bson:"vendors"`
	Events   []Event   `json:"events" bson:"events"`
	Invoices []Invoice `json:"invoices" bson:"invoices"`
}

// Clone returns a deep copy so callers can hand snapshots across goroutines
// without sharing slices or maps.
func (d CRMData) Clone() CRMData {
	out := CRMData{
		Clients:  make([]Client, len(d.Clients)),
		Vendors:  make([]Vendor, len(d.Vendors)),
		Events:   make([]Event, len(d.Events)),
		Invoices: make([]Invoice, len(d.Invoices)),
	}
	copy(out.Clients, d.Clients)
	copy(out.Vendors, d.Vendors)
	for i, ev := range d.Events {
		out.Events[i] = ev
		if ev.VendorIDs != nil {
			out.Events[i].VendorIDs = append([]string(nil), ev.VendorIDs...)
		}
		if ev.VendorCosts != nil {
			costs := make(map[string]float64, len(ev.VendorCosts))
			for k, v := range ev.VendorCosts {
				costs[k] = v
			}
			out.Events[i].VendorCosts = costs
		}
	}
	for i, inv := range d.Invoices {
		out.Invoices[i] = inv
		if inv.Items != nil {
			out.Invoices[i].Items = append([]InvoiceItem(nil), inv.Items...)
		}
		if inv.Billing != nil {
			b := *inv.Billing
			out.Invoices[i].Billing = &b
		}
	}
	return out
}
