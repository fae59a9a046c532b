package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"studio-crm/internal/common/models"
	"studio-crm/internal/store"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type ImportService interface {
	ImportText(ctx context.Context, text string) ImportResult
	ImportFile(ctx context.Context, file io.Reader, filename string) (ImportResult, error)
}

type ImportServiceImpl struct {
	Store  *store.Store
	Logger *zap.Logger
}

func NewImportService(s *store.Store, logger *zap.Logger) ImportService {
	return &ImportServiceImpl{Store: s, Logger: logger}
}

// ImportText turns pasted text into clients, one per non-empty line. Lines
// that fail to yield a name are skipped and counted in the summary.
func (s *ImportServiceImpl) ImportText(ctx context.Context, text string) ImportResult {
	var result ImportResult
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		client, ok := parseLine(line)
		if !ok {
			result.Skipped++
			continue
		}
		s.Store.AddClient(client)
		result.Imported++
	}

	s.Logger.Info("text import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result
}

// parseLine splits on "|", else ",", else " - ", else treats the whole line
// as the name. Fields map positionally to name, email, phone, status, event
// date and budget; anything left over becomes the notes.
func parseLine(line string) (models.Client, bool) {
	var fields []string
	switch {
	case strings.Contains(line, "|"):
		fields = strings.Split(line, "|")
	case strings.Contains(line, ","):
		fields = strings.Split(line, ",")
	case strings.Contains(line, " - "):
		fields = strings.Split(line, " - ")
	default:
		fields = []string{line}
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return clientFromFields(fields)
}

func clientFromFields(fields []string) (models.Client, bool) {
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	name := field(0)
	if name == "" {
		return models.Client{}, false
	}

	c := models.Client{
		Name:      name,
		Email:     field(1),
		Phone:     field(2),
		Status:    normalizeStatus(field(3)),
		EventDate: normalizeDate(field(4)),
		Budget:    parseBudget(field(5)),
	}
	if len(fields) > 6 {
		c.Notes = strings.Join(fields[6:], ", ")
	}
	return c, true
}

// normalizeStatus fuzzy-matches free-form pipeline labels; anything
// unrecognized lands in "lead".
func normalizeStatus(raw string) models.ClientStatus {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "book"):
		return models.ClientStatusBooked
	case strings.Contains(lower, "plan"):
		return models.ClientStatusPlanning
	case strings.Contains(lower, "wrap"), strings.Contains(lower, "complete"):
		return models.ClientStatusCompleted
	default:
		return models.ClientStatusLead
	}
}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// normalizeDate reparses the value into YYYY-MM-DD; unparseable dates pass
// through unchanged so no user input is silently lost.
func normalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}

// parseBudget strips everything but digits, dot, comma and minus, then
// parses with separators removed. "$12,500" becomes 12500.
func parseBudget(raw string) *float64 {
	var sb strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			sb.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(sb.String(), ",", "")
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ImportFile imports clients from a CSV or XLSX file with a header row.
func (s *ImportServiceImpl) ImportFile(ctx context.Context, file io.Reader, filename string) (ImportResult, error) {
	var rows [][]string
	var err error

	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		rows, err = parseCSV(file)
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xls"):
		rows, err = parseExcel(file)
	default:
		return ImportResult{}, fmt.Errorf("unsupported file format")
	}
	if err != nil {
		return ImportResult{}, err
	}
	if len(rows) == 0 {
		return ImportResult{}, nil
	}

	order := columnOrder(rows[0])

	var result ImportResult
	for _, row := range rows[1:] {
		fields := make([]string, 7)
		for col, pos := range order {
			if col < len(row) && pos >= 0 {
				fields[pos] = strings.TrimSpace(row[col])
			}
		}
		client, ok := clientFromFields(fields)
		if !ok {
			result.Skipped++
			continue
		}
		s.Store.AddClient(client)
		result.Imported++
	}

	s.Logger.Info("file import finished",
		zap.String("filename", filename),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// columnOrder maps each file column to its positional client field, matching
// headers loosely. Unrecognized columns are ignored.
func columnOrder(headers []string) map[int]int {
	order := make(map[int]int, len(headers))
	for i, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "client", "client name":
			order[i] = 0
		case "email", "e-mail":
			order[i] = 1
		case "phone", "phone number":
			order[i] = 2
		case "status", "stage":
			order[i] = 3
		case "event date", "event_date", "date":
			order[i] = 4
		case "budget":
			order[i] = 5
		case "notes", "note":
			order[i] = 6
		default:
			order[i] = -1
		}
	}
	return order
}

func parseCSV(file io.Reader) ([][]string, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func parseExcel(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}
	return rows, nil
}
