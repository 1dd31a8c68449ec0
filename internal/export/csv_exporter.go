package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// CSVExporter writes report rows to CSV format
type CSVExporter struct {
	writer        *csv.Writer
	options       CSVOptions
	headerWritten bool
}

// CSVOptions configures CSV export behavior
type CSVOptions struct {
	Delimiter       rune   `json:"delimiter"`        // Field delimiter (default: comma)
	UseCRLF         bool   `json:"use_crlf"`         // Use \r\n for line terminator
	IncludeHeader   bool   `json:"include_header"`   // Include column headers
	DateFormat      string `json:"date_format"`      // Format for date fields
	NumberPrecision int    `json:"number_precision"` // Decimal places for floats
	NullValue       string `json:"null_value"`       // String to use for null values
}

// DefaultCSVOptions returns default CSV export options
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:       ',',
		UseCRLF:         false,
		IncludeHeader:   true,
		DateFormat:      "2006-01-02",
		NumberPrecision: 2,
		NullValue:       "",
	}
}

// NewCSVExporter creates a new CSV exporter
func NewCSVExporter(w io.Writer, options CSVOptions) *CSVExporter {
	writer := csv.NewWriter(w)
	writer.Comma = options.Delimiter
	writer.UseCRLF = options.UseCRLF

	return &CSVExporter{
		writer:  writer,
		options: options,
	}
}

// Export writes a complete report and flushes the underlying writer
func (e *CSVExporter) Export(report *Report) error {
	if e.options.IncludeHeader && !e.headerWritten {
		if err := e.writer.Write(report.Columns); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		e.headerWritten = true
	}

	for _, row := range report.Rows {
		record := make([]string, len(row))
		for i, value := range row {
			record[i] = e.formatValue(value)
		}
		if err := e.writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	e.writer.Flush()
	return e.writer.Error()
}

// formatValue converts a report cell to its CSV string representation
func (e *CSVExporter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return e.options.NullValue
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', e.options.NumberPrecision, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(e.options.DateFormat)
	default:
		return fmt.Sprintf("%v", v)
	}
}
