// Package tabular reads and writes simple header-plus-rows tables as CSV
// (UTF-8 with BOM) or XLSX workbooks.
package tabular

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Format is an export/import file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a query value to a Format. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

// FormatFromFilename picks XLSX for Excel workbook extensions and CSV otherwise.
func FormatFromFilename(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// Ext is the file extension without a dot.
func (f Format) Ext() string { return string(f) }

// ContentType is the HTTP media type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Table is a header row followed by data rows. Cells may be string, integer,
// decimal.Decimal, time.Time, bool, pointers to those, or nil.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]any
}

// Filename builds "<prefix>_YYYYMMDD_HHMMSS.<ext>".
func Filename(prefix string, f Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("20060102_150405"), f.Ext())
}

// CellString renders one cell the same way for both formats.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case *int64:
		if x == nil {
			return ""
		}
		return strconv.FormatInt(*x, 10)
	case decimal.Decimal:
		return x.StringFixed(2)
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.StringFixed(2)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(DateTimeLayout)
	case *time.Time:
		if x == nil || x.IsZero() {
			return ""
		}
		return x.Format(DateTimeLayout)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
