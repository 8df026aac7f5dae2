// internal/utils/excel_export.go

package utils

import (
	"fmt"
	"io"

	"solarhub/internal/db"
	"solarhub/internal/load"

	"github.com/xuri/excelize/v2"
)

const QuotationSheet = "Quotations"

var quotationColumns = []string{
	"Reference", "Created", "Customer", "Phone", "City", "Status",
	"Total load (W)", "System size (kW)", "Panels", "Inverter (kW)",
	"Battery (kWh)", "Estimated cost (PKR)", "Amount (PKR)", "Other (W)",
}

// ExportQuotations writes quotations as an xlsx workbook with one row per
// quotation and one column per appliance category.
func ExportQuotations(w io.Writer, quotations []db.Quotation) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(QuotationSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(quotationColumns)+len(load.Appliances()))
	for _, col := range quotationColumns {
		header = append(header, col)
	}
	for _, a := range load.Appliances() {
		header = append(header, load.Label(a))
	}
	if err := f.SetSheetRow(QuotationSheet, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"F0F0F0"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(QuotationSheet, "A1", lastCol+"1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(QuotationSheet, "A", lastCol, 16); err != nil {
		return err
	}

	for i, q := range quotations {
		row := []interface{}{
			q.Reference,
			q.CreatedAt.Format("2006-01-02 15:04"),
			q.CustomerName,
			q.Phone,
			q.City,
			q.Status,
			q.TotalLoad,
			q.SystemSize,
			q.PanelsRequired,
			q.InverterSize,
			q.BatteryCapacityCalc,
			q.EstimatedCost,
			q.Amount,
			q.OtherWatts,
		}
		for _, a := range load.Appliances() {
			row = append(row, q.Appliances[string(a)])
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(QuotationSheet, cell, &row); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}
