package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
)

// SheetName is the worksheet holding exported history rows.
const SheetName = "History"

// ContentType of WriteHistory output.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{"ID", "Date", "Type", "Risk", "Score", "Text"}

// WriteHistory writes records, in the given order, as an xlsx workbook.
func WriteHistory(w io.Writer, records []domain.ScanRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.ID,
			r.Date.UTC().Format(time.RFC3339),
			string(r.Type),
			r.RiskLevel.Label(),
			r.Score,
			r.Text,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(SheetName, "F", "F", 80); err != nil {
		return err
	}
	return f.Write(w)
}
