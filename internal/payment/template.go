package payment

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TemplateFilename is the suggested download name for the import template.
const TemplateFilename = "payment_schedule_template.xlsx"

// templateColumns is the import column order. Import reads cells by this
// position, header text is informational.
var templateColumns = []interface{}{
	"Deliverable", "Phase", "Plan Date (YYYY-MM-DD)", "Planned Amount", "Remarks",
}

var templateSample = []interface{}{
	"Milestone 1", "Phase 1", "2026-01-31", 5000.00, "Initial payment",
}

// Template renders the bulk-import workbook: header row plus one sample row.
func Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payment Schedule Template"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("payment: template sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &templateColumns); err != nil {
		return nil, fmt.Errorf("payment: template header: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &templateSample); err != nil {
		return nil, fmt.Errorf("payment: template sample: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("payment: render template: %w", err)
	}
	return buf.Bytes(), nil
}
