package dashboard

import (
	"context"
	"sort"
	"time"

	"studio-crm/internal/common/models"
	"studio-crm/internal/config"
	"studio-crm/internal/store"
)

const listLimit = 4

type DashboardService interface {
	Summarize(ctx context.Context) Summary
}

type DashboardServiceImpl struct {
	Store *store.Store

	// includePast keeps past-dated events in the upcoming list. Both behaviors
	// exist in the field; which one applies is deployment policy.
	includePast bool
	now         func() time.Time
}

func NewDashboardService(s *store.Store, cfg *config.Config) DashboardService {
	return &DashboardServiceImpl{
		Store:       s,
		includePast: cfg.UpcomingIncludePast,
		now:         time.Now,
	}
}

func (s *DashboardServiceImpl) Summarize(ctx context.Context) Summary {
	return Summarize(s.Store.Snapshot(), s.includePast, s.now())
}

// Summarize derives every dashboard figure from one snapshot. It is a total
// function: empty collections produce zeros and empty lists, never an error.
func Summarize(data models.CRMData, includePast bool, now time.Time) Summary {
	return Summary{
		Pipeline:            pipelineByStatus(data.Clients),
		ConfirmedValue:      ConfirmedValue(data.Events),
		ConfirmedAfterCosts: ConfirmedAfterCosts(data.Events, data.Vendors),
		ProposedValue:       ProposedValue(data.Events),
		HeldDeposits:        heldTotal(data.Events),
		HeldDepositCount:    heldCount(data.Events),
		UpcomingEvents:      UpcomingEvents(data.Events, includePast, now),
		RecentInvoices:      RecentInvoices(data.Invoices),
	}
}

// pipelineByStatus partitions clients into the fixed status buckets,
// preserving insertion order within each bucket.
func pipelineByStatus(clients []models.Client) map[models.ClientStatus][]models.Client {
	buckets := make(map[models.ClientStatus][]models.Client, len(models.ClientStatuses))
	for _, status := range models.ClientStatuses {
		buckets[status] = []models.Client{}
	}
	for _, c := range clients {
		if _, ok := buckets[c.Status]; ok {
			buckets[c.Status] = append(buckets[c.Status], c)
		}
	}
	return buckets
}

// ConfirmedValue is estimates minus deposits over confirmed events, floored
// at zero.
func ConfirmedValue(events []models.Event) float64 {
	var total float64
	for _, e := range events {
		if e.Status != models.EventStatusConfirmed {
			continue
		}
		if e.Estimate != nil {
			total += *e.Estimate
		}
		if e.Deposit != nil {
			total -= *e.Deposit
		}
	}
	if total < 0 {
		return 0
	}
	return total
}

// ConfirmedAfterCosts subtracts the cost of every vendor assigned to a
// confirmed event from the confirmed pipeline value, floored at zero. A
// missing vendor record contributes zero cost.
func ConfirmedAfterCosts(events []models.Event, vendors []models.Vendor) float64 {
	costs := make(map[string]float64, len(vendors))
	for _, v := range vendors {
		if v.Cost != nil {
			costs[v.ID] = *v.Cost
		}
	}

	total := ConfirmedValue(events)
	for _, e := range events {
		if e.Status != models.EventStatusConfirmed {
			continue
		}
		for _, id := range e.VendorIDs {
			total -= costs[id]
		}
	}
	if total < 0 {
		return 0
	}
	return total
}

// ProposedValue sums estimates over every non-confirmed event. Finer-grained
// statuses (contacted, bid) all feed the same aggregate.
func ProposedValue(events []models.Event) float64 {
	var total float64
	for _, e := range events {
		if e.Status == models.EventStatusConfirmed {
			continue
		}
		if e.Estimate != nil {
			total += *e.Estimate
		}
	}
	return total
}

func heldTotal(events []models.Event) float64 {
	var total float64
	for _, e := range events {
		if e.DepositHeld() {
			total += *e.Deposit
		}
	}
	return total
}

func heldCount(events []models.Event) int {
	count := 0
	for _, e := range events {
		if e.DepositHeld() {
			count++
		}
	}
	return count
}

// UpcomingEvents returns the next four events by ascending date. When
// includePast is false, events before today are dropped first.
func UpcomingEvents(events []models.Event, includePast bool, now time.Time) []models.Event {
	today := now.Format("2006-01-02")

	upcoming := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !includePast && e.Date < today {
			continue
		}
		upcoming = append(upcoming, e)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})

	if len(upcoming) > listLimit {
		upcoming = upcoming[:listLimit]
	}
	return upcoming
}

// RecentInvoices returns the four most recently issued invoices.
func RecentInvoices(invoices []models.Invoice) []models.Invoice {
	recent := make([]models.Invoice, 0, len(invoices))
	recent = append(recent, invoices...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].IssueDate > recent[j].IssueDate
	})
	if len(recent) > listLimit {
		recent = recent[:listLimit]
	}
	return recent
}
