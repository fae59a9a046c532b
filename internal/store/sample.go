package store

import "studio-crm/internal/common/models"

func f(v float64) *float64 { return &v }
func b(v bool) *bool       { return &v }

// SampleData is the starter dataset used when no snapshot exists yet or the
// stored one cannot be parsed.
func SampleData() models.CRMData {
	return models.CRMData{
		Clients: []models.Client{
			{ID: "cl-sample-1", Name: "Maya & Jordan Reyes", Email: "maya.reyes@example.com", Phone: "555-0141", Status: models.ClientStatusBooked, EventDate: "2026-10-17", Budget: f(28000)},
			{ID: "cl-sample-2", Name: "Priya Natarajan", Email: "priya.n@example.com", Status: models.ClientStatusPlanning, EventDate: "2026-11-07", Budget: f(15500), Notes: "Corporate holiday gala"},
			{ID: "cl-sample-3", Name: "Sam Okafor", Email: "sam.okafor@example.com", Phone: "555-0173", Status: models.ClientStatusLead},
		},
		Vendors: []models.Vendor{
			{ID: "vn-sample-1", Name: "Bloom & Stem", Service: "Florist", Cost: f(1800), Email: "hello@bloomstem.example.com", PreferredContact: models.ContactEmail},
			{ID: "vn-sample-2", Name: "Golden Hour Photo", Service: "Photography", Cost: f(3200), Phone: "555-0199", PreferredContact: models.ContactText},
			{ID: "vn-sample-3", Name: "Harvest Table Catering", Service: "Catering", Cost: f(6500), Email: "events@harvesttable.example.com", PreferredContact: models.ContactPhone},
		},
		Events: []models.Event{
			{
				ID: "ev-sample-1", Name: "Reyes Wedding", Date: "2026-10-17", ClientID: "cl-sample-1",
				Venue: "Fernwood Barn", VenueCost: f(4500), Coordinator: "Dana",
				Status: models.EventStatusConfirmed, VendorIDs: []string{"vn-sample-1", "vn-sample-2"},
				VendorCosts: map[string]float64{"vn-sample-1": 1800, "vn-sample-2": 3200},
				Estimate:    f(26000), Deposit: f(5000), DepositPaid: b(true),
			},
			{
				ID: "ev-sample-2", Name: "Natarajan Holiday Gala", Date: "2026-12-12", ClientID: "cl-sample-2",
				Venue: "The Glasshouse", Coordinator: "Dana", Status: models.EventStatusBid,
				Estimate: f(15500),
			},
		},
		Invoices: []models.Invoice{
			{
				ID: "in-sample-1", ClientID: "cl-sample-1", IssueDate: "2026-08-01", DueDate: "2026-09-01",
				Status: models.InvoiceStatusSent, Total: 5000,
				Items: []models.InvoiceItem{{ID: "it-sample-1", Description: "Booking deposit", Amount: 5000}},
			},
		},
	}
}
