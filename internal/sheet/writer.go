package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/settle/internal/splitter"
)

// Output sheet names.
const (
	DetailedSheet = "Detailed_Settlements"
	SimpleSheet   = "Simple_Settlements"
)

// WriteSettlements saves the settlement plan to an Excel workbook with two
// sheets: the full bilateral transfer ledger and the optimized per-person
// payment sheet. Empty results still produce both sheets with headers, so a
// balanced ledger yields a well-formed (if boring) workbook.
func WriteSettlements(path string, res *splitter.Result, summaries []splitter.PaymentSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DetailedSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", DetailedSheet, err)
	}
	if _, err := f.NewSheet(SimpleSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SimpleSheet, err)
	}

	if err := writeDetailed(f, res.Detailed); err != nil {
		return err
	}
	if err := writeSimple(f, summaries); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	return nil
}

func writeDetailed(f *excelize.File, transfers []splitter.Transfer) error {
	if err := setRow(f, DetailedSheet, 1, "From", "To", "Amount"); err != nil {
		return err
	}
	for i, t := range transfers {
		if err := setRow(f, DetailedSheet, i+2, t.From, t.To, Money(t.Amount)); err != nil {
			return err
		}
	}
	return nil
}

func writeSimple(f *excelize.File, summaries []splitter.PaymentSummary) error {
	if err := setRow(f, SimpleSheet, 1, "Person", "Pays_To", "Amount", "Net_Balance"); err != nil {
		return err
	}
	for i, s := range summaries {
		err := setRow(f, SimpleSheet, i+2, s.Person, PaysTo(s), Money(s.Amount), NetBalance(s.NetBalance))
		if err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, v := range values {
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(sheet, name, v); err != nil {
			return fmt.Errorf("failed to write cell %s!%s: %w", sheet, name, err)
		}
	}
	return nil
}

// Money formats an amount as dollars and cents.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// PaysTo renders the recipient column: "Nobody" for non-payers, and a
// "(+others)" suffix when a person pays more than one recipient.
func PaysTo(s splitter.PaymentSummary) string {
	if s.PaysTo == "" {
		return "Nobody"
	}
	if s.Others > 0 {
		return fmt.Sprintf("%s (+others)", s.PaysTo)
	}
	return s.PaysTo
}

// NetBalance renders a signed net position: "+$8.33", "-$11.66", or "$0.00".
func NetBalance(net float64) string {
	switch {
	case net > splitter.Epsilon:
		return fmt.Sprintf("+$%.2f", net)
	case net < -splitter.Epsilon:
		return fmt.Sprintf("-$%.2f", -net)
	default:
		return "$0.00"
	}
}
