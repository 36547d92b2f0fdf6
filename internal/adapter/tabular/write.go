package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Write encodes t in the given format.
func Write(w io.Writer, f Format, t Table) error {
	if f == FormatXLSX {
		return writeXLSX(w, t)
	}
	return writeCSV(w, t)
}

// writeCSV emits UTF-8 with a leading BOM so spreadsheet tools detect the encoding.
func writeCSV(w io.Writer, t Table) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bw)

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	rec := make([]string, len(t.Header))
	for _, row := range t.Rows {
		for i := range rec {
			rec[i] = ""
			if i < len(row) {
				rec[i] = CellString(row[i])
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return bw.Close()
}

func writeXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx sheet name: %w", err)
	}

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}

	for r, row := range t.Rows {
		cells := make([]any, len(t.Header))
		for i := range cells {
			if i < len(row) {
				cells[i] = xlsxValue(row[i])
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("xlsx row %d: %w", r+2, err)
		}
	}

	if len(t.Header) > 0 {
		style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("xlsx style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(t.Header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return fmt.Errorf("xlsx header style: %w", err)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(t.Header))
		if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
			return fmt.Errorf("xlsx col width: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// xlsxValue keeps integers numeric and renders everything else as text.
func xlsxValue(v any) any {
	switch x := v.(type) {
	case int, int64:
		return x
	case *int64:
		if x == nil {
			return nil
		}
		return *x
	default:
		s := CellString(v)
		if s == "" {
			return nil
		}
		return s
	}
}
