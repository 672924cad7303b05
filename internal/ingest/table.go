package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/segmentation"
)

// Table is a parsed tabular input: a header row plus data records. Records
// may be ragged; cells past the end of a record read as empty.
type Table struct {
	Header  []string
	Records [][]string

	cols map[string]int
}

func newTable(header []string, records [][]string) *Table {
	cols := make(map[string]int, len(header))
	for i, col := range header {
		cols[strings.TrimSpace(col)] = i
	}
	return &Table{Header: header, Records: records, cols: cols}
}

// ReadCSV parses a CSV stream. The first record is the header.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}
		records = append(records, record)
	}

	return newTable(header, records), nil
}

// ReadXLSX parses the first sheet of an XLSX stream. The first row is the
// header.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	return newTable(rows[0], rows[1:]), nil
}

// ReadFile parses path as XLSX when it has an .xlsx extension and as CSV
// otherwise.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(f)
	}
	return ReadCSV(f)
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// RequireColumns fails with MissingColumnError listing every absent column.
func (t *Table) RequireColumns(names ...string) error {
	var missing []string
	for _, name := range names {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{Columns: missing}
	}
	return nil
}

// Rows converts the table into segmentation rows keyed by keyCol, reading
// each listed column as a numeric attribute under the same name. Malformed
// or empty numeric cells coerce to zero; that is the documented
// silent-default policy, not an error. keyCol and every numeric column must
// be present.
func (t *Table) Rows(keyCol string, numericCols ...string) ([]segmentation.Row, error) {
	required := append([]string{keyCol}, numericCols...)
	if err := t.RequireColumns(required...); err != nil {
		return nil, err
	}

	keyIdx := t.cols[keyCol]
	rows := make([]segmentation.Row, 0, len(t.Records))
	for _, record := range t.Records {
		row := segmentation.Row{
			Key:   strings.TrimSpace(cell(record, keyIdx)),
			Attrs: make(map[string]float64, len(numericCols)),
		}
		for _, col := range numericCols {
			row.Attrs[col] = coerceNumeric(cell(record, t.cols[col]))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// coerceNumeric parses s as a float, mapping malformed and non-finite
// values to zero.
func coerceNumeric(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
