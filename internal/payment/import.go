package payment

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/zulandar/trestle/internal/models"
	"github.com/zulandar/trestle/internal/project"
	"gorm.io/gorm"
)

// cellDateLayouts covers the formats a spreadsheet date cell renders to,
// besides the canonical YYYY-MM-DD.
var cellDateLayouts = []string{
	"2006-01-02",
	"01-02-06",
	"1/2/06",
	"1/2/2006",
	"2006/01/02",
}

// Import reads an .xlsx payment schedule (header row, then rows of
// deliverable, phase, plan date, planned amount, remarks) and creates one
// "Not Paid" payment per non-empty row. All rows commit in a single
// transaction: a failure anywhere leaves nothing imported. Returns the number
// of rows imported.
func Import(db *gorm.DB, projectID uint, filename string, r io.Reader) (int, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return 0, models.NewValidationError("invalid file format, upload an Excel file (.xlsx)")
	}
	if _, err := project.Get(db, projectID); err != nil {
		return 0, err
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("payment: open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("payment: read sheet %q: %w", sheet, err)
	}

	var payments []models.PaymentSchedule
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		deliverable := cell(row, 0)
		if deliverable == "" {
			continue
		}

		amount, err := parseCellAmount(cell(row, 3))
		if err != nil {
			return 0, models.NewValidationError(fmt.Sprintf("row %d: %v", i+1, err))
		}

		p := models.PaymentSchedule{
			ProjectID:     projectID,
			Category:      DefaultCategory,
			Deliverable:   deliverable,
			PlanDate:      parseCellDate(cell(row, 2)),
			PlannedAmount: amount,
			Status:        "Not Paid",
		}
		if phase := cell(row, 1); phase != "" {
			p.Phase = &phase
		}
		if remark := cell(row, 4); remark != "" {
			p.Remark = &remark
		}
		payments = append(payments, p)
	}

	if len(payments) == 0 {
		return 0, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range payments {
			if err := tx.Create(&payments[i]).Error; err != nil {
				return fmt.Errorf("payment: import row %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(payments), nil
}

// cell returns the trimmed cell at index i, or "" when the row is short.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseCellDate accepts a date cell in any known rendering; anything else
// degrades to nil rather than rejecting the row.
func parseCellDate(s string) *models.Date {
	if s == "" {
		return nil
	}
	for _, layout := range cellDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			date := models.NewDate(y, m, d)
			return &date
		}
	}
	return nil
}

// parseCellAmount parses an amount cell to a float. An absent cell defaults
// to 0; a non-numeric one rejects the row.
func parseCellAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid planned amount %q", s)
	}
	return amount, nil
}
