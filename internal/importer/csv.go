// Package importer reads transactions from external bill files.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LightDevCoder/iPurseLight/internal/model"
)

// Accepted date layouts for the CSV date column, tried in order.
var csvDateLayouts = []string{
	"2006年01月02日 15:04",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02",
	"20060102",
}

// Kind labels accepted in the CSV kind column. Exported bills from the
// original app use the Chinese labels.
var csvKindLabels = map[string]model.Kind{
	"Expense": model.KindExpense,
	"Income":  model.KindIncome,
	"支出":      model.KindExpense,
	"收入":      model.KindIncome,
}

// PeriodOverride pins every imported row to a fixed year and month.
type PeriodOverride struct {
	Year  int
	Month time.Month
}

var billFilenamePattern = regexp.MustCompile(`PersonalBill-([A-Za-z]+)\.(\d{4})`)

// ParseBillFilename extracts a period override from filenames shaped like
// PersonalBill-Jan.2026.csv. Monthly exports carry their period in the name
// and the rows' own year and month are not trustworthy.
func ParseBillFilename(name string) (*PeriodOverride, bool) {
	match := billFilenamePattern.FindStringSubmatch(name)
	if match == nil {
		return nil, false
	}

	year, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, false
	}

	monthTime, err := time.Parse("Jan", match[1])
	if err != nil {
		monthTime, err = time.Parse("January", match[1])
		if err != nil {
			return nil, false
		}
	}

	return &PeriodOverride{Year: year, Month: monthTime.Month()}, true
}

// ParseCSV reads a six-column bill export (date, kind, category, channel,
// amount, note). The header row is skipped, as are rows with unparseable
// dates or amounts. Row timestamps are interpreted in loc.
func ParseCSV(r io.Reader, override *PeriodOverride, loc *time.Location) ([]model.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) > 0 {
		records = records[1:] // header
	}

	var transactions []model.Transaction
	var skipped int

	for i, cols := range records {
		if len(cols) < 6 {
			skipped++
			continue
		}

		date, ok := parseCSVDate(strings.TrimSpace(cols[0]), loc)
		if !ok {
			slog.Warn("Skipping CSV row with unparseable date", "row", i+2, "date", cols[0])
			skipped++
			continue
		}
		if override != nil {
			date = time.Date(override.Year, override.Month, date.Day(),
				date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), loc)
		}

		amount, ok := parseCSVAmount(cols[4])
		if !ok || amount == 0 {
			slog.Warn("Skipping CSV row with unparseable or zero amount", "row", i+2, "amount", cols[4])
			skipped++
			continue
		}

		kind, ok := csvKindLabels[strings.TrimSpace(cols[1])]
		if !ok {
			// Unknown label, let the amount's sign decide.
			kind, _ = model.KindOf(amount)
		}
		if kind == model.KindExpense && amount > 0 {
			amount = -amount
		}
		if kind == model.KindIncome && amount < 0 {
			amount = -amount
		}

		transactions = append(transactions, model.Transaction{
			ID:       uuid.New().String(),
			Date:     date,
			Category: strings.TrimSpace(cols[2]),
			Channel:  strings.TrimSpace(cols[3]),
			Amount:   amount,
			Note:     strings.Trim(strings.TrimSpace(cols[5]), `"`),
		})
	}

	if skipped > 0 {
		slog.Info("Imported CSV with skipped rows", "imported", len(transactions), "skipped", skipped)
	}
	return transactions, nil
}

func parseCSVDate(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range csvDateLayouts {
		if date, err := time.ParseInLocation(layout, value, loc); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

// parseCSVAmount cleans quoted amounts with thousands separators, e.g.
// "1,234.50".
func parseCSVAmount(value string) (float64, bool) {
	cleaned := strings.NewReplacer(`"`, "", ",", "", " ", "").Replace(value)
	amount, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
