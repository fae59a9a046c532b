package dashboard

import "studio-crm/internal/common/models"

// Summary is the derived dashboard view, recomputed from the current
// aggregate on every read.
type Summary struct {
	Pipeline map[models.ClientStatus][]models.Client `json:"pipeline"`

	ConfirmedValue      float64 `json:"confirmed_value"`
	ConfirmedAfterCosts float64 `json:"confirmed_after_costs"`
	ProposedValue       float64 `json:"proposed_value"`
	HeldDeposits        float64 `json:"held_deposits"`
	HeldDepositCount    int     `json:"held_deposit_count"`

	UpcomingEvents []models.Event   `json:"upcoming_events"`
	RecentInvoices []models.Invoice `json:"recent_invoices"`
}
