package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter writes report rows to an Excel workbook
type ExcelExporter struct {
	file    *excelize.File
	options ExcelOptions
}

// ExcelOptions configures Excel export behavior
type ExcelOptions struct {
	SheetName     string `json:"sheet_name"`
	IncludeHeader bool   `json:"include_header"`
	FreezeHeader  bool   `json:"freeze_header"`
	HeaderFill    string `json:"header_fill"`
	HeaderFont    string `json:"header_font"`
}

// DefaultExcelOptions returns default Excel export options
func DefaultExcelOptions() ExcelOptions {
	return ExcelOptions{
		SheetName:     "Report",
		IncludeHeader: true,
		FreezeHeader:  true,
		HeaderFill:    "4472C4",
		HeaderFont:    "FFFFFF",
	}
}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter(options ExcelOptions) *ExcelExporter {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", options.SheetName)

	return &ExcelExporter{
		file:    file,
		options: options,
	}
}

// Export writes a complete report into the workbook
func (e *ExcelExporter) Export(report *Report) error {
	sheet := e.options.SheetName
	startRow := 1

	if e.options.IncludeHeader {
		if err := e.writeHeader(report.Columns); err != nil {
			return err
		}
		startRow = 2
	}

	for i, row := range report.Rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, startRow+i)
			if err != nil {
				return fmt.Errorf("failed to resolve cell name: %w", err)
			}
			if err := e.file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	return nil
}

// WriteTo serializes the workbook to the given writer
func (e *ExcelExporter) WriteTo(w io.Writer) error {
	if _, err := e.file.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return e.file.Close()
}

func (e *ExcelExporter) writeHeader(columns []string) error {
	sheet := e.options.SheetName

	styleID, err := e.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: e.options.HeaderFont},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{e.options.HeaderFill}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve cell name: %w", err)
		}
		if err := e.file.SetCellValue(sheet, cell, column); err != nil {
			return fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
		if err := e.file.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return fmt.Errorf("failed to style header cell %s: %w", cell, err)
		}
	}

	if e.options.FreezeHeader {
		if err := e.file.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("failed to freeze header: %w", err)
		}
	}

	return nil
}
