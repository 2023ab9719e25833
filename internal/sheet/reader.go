// Package sheet reads expense ledgers from and writes settlement plans to
// Excel workbooks. It is a thin I/O adapter: file and format problems are
// reported here, before or after the settlement engine runs, and never reach
// the engine itself.
package sheet

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/settle/internal/models"
)

// Required columns in the expense workbook's first sheet.
const (
	colDescription = "Description"
	colPaidBy      = "Paid By"
	colAmount      = "Amount"
	colSharedWith  = "Shared With"
)

var requiredColumns = []string{colDescription, colPaidBy, colAmount, colSharedWith}

// ReadExpenses loads expense records from the first sheet of an Excel
// workbook. Rows are cleaned the way the engine expects: rows missing a
// description, payer, or parsable positive amount are dropped, strings are
// trimmed, and a blank "Shared With" becomes "All".
func ReadExpenses(path string) ([]models.Expense, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	dropped := 0
	for _, row := range rows[1:] {
		expense, ok := parseRow(row, columns)
		if !ok {
			dropped++
			continue
		}
		expenses = append(expenses, expense)
	}

	if dropped > 0 {
		slog.Warn("Dropped rows with missing or invalid data", "path", path, "dropped", dropped)
	}
	slog.Info("Loaded expense records", "path", path, "count", len(expenses))

	return expenses, nil
}

// mapColumns resolves header names to column positions and verifies all
// required columns are present.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return columns, nil
}

func parseRow(row []string, columns map[string]int) (models.Expense, bool) {
	description := strings.TrimSpace(cell(row, columns[colDescription]))
	paidBy := strings.TrimSpace(cell(row, columns[colPaidBy]))
	rawAmount := strings.TrimSpace(cell(row, columns[colAmount]))
	if description == "" || paidBy == "" || rawAmount == "" {
		return models.Expense{}, false
	}

	amount, err := parseAmount(rawAmount)
	if err != nil || amount <= 0 {
		return models.Expense{}, false
	}

	sharedWith := strings.TrimSpace(cell(row, columns[colSharedWith]))
	if sharedWith == "" {
		sharedWith = models.SharedWithAll
	}

	return models.Expense{
		Description: description,
		PaidBy:      paidBy,
		Amount:      amount,
		SharedWith:  sharedWith,
	}, true
}

// parseAmount tolerates currency formatting like "$1,234.50".
func parseAmount(raw string) (float64, error) {
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")
	return strconv.ParseFloat(raw, 64)
}

// cell returns row[i] or "" when the row is short; excelize trims trailing
// empty cells from rows.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
