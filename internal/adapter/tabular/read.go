package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrEmptyFile   = errors.New("导入文件没有数据")
	ErrEmptyHeader = errors.New("表头为空")
	ErrNotUTF8     = errors.New("文件编码必须为UTF-8")
)

// DateTimeLayout is the canonical export layout for timestamps.
const DateTimeLayout = "2006-01-02 15:04:05"

// Sheet is a decoded file: one header row and its data rows. Fully empty
// rows are skipped; Line records the 1-based line of each row in the file.
type Sheet struct {
	Header []string
	Rows   []Row
}

// Row is one data line keyed by canonical column name.
type Row struct {
	Line   int
	Values map[string]string
}

// Get returns the trimmed value of a column, or "".
func (r Row) Get(col string) string {
	return strings.TrimSpace(r.Values[col])
}

// Read decodes the whole file. Header cells are mapped through aliases to
// canonical column names; unknown headers keep their normalized form.
func Read(r io.Reader, f Format, aliases map[string]string) (*Sheet, error) {
	var (
		raw [][]string
		err error
	)
	if f == FormatXLSX {
		raw, err = readXLSX(r)
	} else {
		raw, err = readCSV(r)
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyFile
	}

	header := make([]string, len(raw[0]))
	var named bool
	for i, h := range raw[0] {
		header[i] = Canonical(h, aliases)
		named = named || header[i] != ""
	}
	if !named {
		return nil, ErrEmptyHeader
	}

	s := &Sheet{Header: header}
	for i, rec := range raw[1:] {
		row := Row{Line: i + 2, Values: make(map[string]string, len(header))}
		var filled bool
		for c, name := range header {
			if name == "" || c >= len(rec) {
				continue
			}
			row.Values[name] = rec[c]
			filled = filled || strings.TrimSpace(rec[c]) != ""
		}
		if filled {
			s.Rows = append(s.Rows, row)
		}
	}
	if len(s.Rows) == 0 {
		return nil, ErrEmptyFile
	}
	return s, nil
}

// Missing returns the required columns absent from the header, sorted as given.
func (s *Sheet) Missing(required []string) []string {
	have := make(map[string]bool, len(s.Header))
	for _, h := range s.Header {
		have[h] = true
	}
	var out []string
	for _, c := range required {
		if !have[c] {
			out = append(out, c)
		}
	}
	return out
}

// Canonical normalizes a header cell (case, surrounding and inner spacing)
// and resolves it through aliases.
func Canonical(h string, aliases map[string]string) string {
	n := normalize(h)
	if c, ok := aliases[n]; ok {
		return c
	}
	return n
}

func normalize(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.Join(strings.FieldsFunc(strings.ToLower(h), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-'
	}), "_")
}

// Aliases builds an alias table keyed by normalized alias.
func Aliases(m map[string][]string) map[string]string {
	out := make(map[string]string)
	for canonical, names := range m {
		out[normalize(canonical)] = canonical
		for _, n := range names {
			out[normalize(n)] = canonical
		}
	}
	return out
}

func readCSV(r io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if !utf8.Valid(raw) {
		return nil, ErrNotUTF8
	}
	data, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return records, nil
}

// readXLSX returns raw cell values of the first sheet, so dates arrive as
// Excel serial numbers.
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	idx := f.GetActiveSheetIndex()
	if idx < 0 || idx >= len(sheets) {
		idx = 0
	}
	rows, err := f.GetRows(sheets[idx], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	return rows, nil
}

// excelEpoch is day zero of the 1900 date system as used by spreadsheets.
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

var dateTimeLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02",
	"2006/01/02",
}

// maxExcelSerial is the day after 9999-12-31, the last date a spreadsheet
// can hold.
const maxExcelSerial = 2958466

// maxExactFloatID is the largest integer a float64 cell holds exactly.
const maxExactFloatID = 1 << 53

// ParseTime accepts the export layout, ISO variants with optional fractional
// seconds, a bare date, or an Excel serial number. Values without a zone are
// interpreted in loc.
func ParseTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("日期为空")
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 && serial < maxExcelSerial {
		whole, frac := math.Modf(serial)
		base := excelEpoch.AddDate(0, 0, int(whole))
		t := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, loc)
		return t.Add(time.Duration(math.Round(frac*86400)) * time.Second), nil
	}
	return time.Time{}, fmt.Errorf("无法解析日期时间: %s", raw)
}

// ParseDecimal parses a score or amount; empty means zero.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("无效的数字: %s", raw)
	}
	return d, nil
}

// ParseID parses an optional positive integer id; empty yields 0.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if i > 0 {
			return i, nil
		}
		return 0, fmt.Errorf("无效的ID: %s", raw)
	}
	// Spreadsheets hand integers over as "12" or "12.0".
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f > 0 && f <= maxExactFloatID && f == math.Trunc(f) {
		return int64(f), nil
	}
	return 0, fmt.Errorf("无效的ID: %s", raw)
}
