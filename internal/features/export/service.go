package export

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"studio-crm/internal/common/models"
	"studio-crm/internal/store"
)

type ExportService interface {
	ExportCollection(ctx context.Context, collection string) (string, error)
}

type ExportServiceImpl struct {
	Store *store.Store
}

func NewExportService(s *store.Store) ExportService {
	return &ExportServiceImpl{Store: s}
}

func (s *ExportServiceImpl) ExportCollection(ctx context.Context, collection string) (string, error) {
	data := s.Store.Snapshot()
	switch collection {
	case "clients":
		return ClientsCSV(data.Clients), nil
	case "vendors":
		return VendorsCSV(data.Vendors), nil
	case "events":
		return EventsCSV(data.Events), nil
	case "invoices":
		return InvoicesCSV(data.Invoices), nil
	default:
		return "", fmt.Errorf("unknown collection: %s", collection)
	}
}

// Field wraps a value in quotes only when it contains a comma, quote or
// newline, doubling internal quotes. This quoting is the bit-exact contract
// consumers of the export rely on.
func Field(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

func number(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func row(values ...string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Field(v)
	}
	return strings.Join(quoted, ",")
}

func ClientsCSV(clients []models.Client) string {
	lines := []string{row("Name", "Email", "Phone", "Status", "Event Date", "Budget", "Notes")}
	for _, c := range clients {
		lines = append(lines, row(c.Name, c.Email, c.Phone, string(c.Status), c.EventDate, number(c.Budget), c.Notes))
	}
	return strings.Join(lines, "\n")
}

func VendorsCSV(vendors []models.Vendor) string {
	lines := []string{row("Name", "Service", "Cost", "Email", "Phone", "Website", "Preferred Contact", "Notes")}
	for _, v := range vendors {
		lines = append(lines, row(v.Name, v.Service, number(v.Cost), v.Email, v.Phone, v.Website, string(v.PreferredContact), v.Notes))
	}
	return strings.Join(lines, "\n")
}

func EventsCSV(events []models.Event) string {
	lines := []string{row("Name", "Date", "Client ID", "Venue", "Venue Cost", "Coordinator", "Status", "Estimate", "Deposit", "Deposit Paid")}
	for _, e := range events {
		paid := ""
		if e.DepositPaid != nil {
			paid = strconv.FormatBool(*e.DepositPaid)
		}
		lines = append(lines, row(e.Name, e.Date, e.ClientID, e.Venue, number(e.VenueCost), e.Coordinator, string(e.Status), number(e.Estimate), number(e.Deposit), paid))
	}
	return strings.Join(lines, "\n")
}

func InvoicesCSV(invoices []models.Invoice) string {
	lines := []string{row("Client ID", "Issue Date", "Due Date", "Status", "Total", "Items", "Notes")}
	for _, inv := range invoices {
		items := make([]string, len(inv.Items))
		for i, item := range inv.Items {
			items[i] = fmt.Sprintf("%s (%s)", item.Description, strconv.FormatFloat(item.Amount, 'f', -1, 64))
		}
		lines = append(lines, row(inv.ClientID, inv.IssueDate, inv.DueDate, string(inv.Status), strconv.FormatFloat(inv.Total, 'f', -1, 64), strings.Join(items, "; "), inv.Notes))
	}
	return strings.Join(lines, "\n")
}
