package dataio

import (
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/jetplot/jetplot/pkg/errors"
)

// ReadCSV decodes a delimited table from r. comma is the field separator.
//
// Every record must have the same number of fields. A first record with a
// non-numeric field is taken as the header. ReadCSV does not close r.
func ReadCSV(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if stderrors.As(err, &pe) && stderrors.Is(pe.Err, csv.ErrFieldCount) {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "ragged rows")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no data")
	}

	var columns []string
	if isHeader(records[0]) {
		columns = make([]string, len(records[0]))
		for i, f := range records[0] {
			columns[i] = strings.TrimSpace(f)
		}
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "header but no rows")
	}

	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		for j, f := range rec {
			v, err := parseField(f)
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "row %d column %d: %q is not a number", i+1, j+1, f)
			}
			data = append(data, v)
		}
	}
	return &Table{Columns: columns, Data: mat.NewDense(rows, cols, data)}, nil
}

func isHeader(rec []string) bool {
	for _, f := range rec {
		if _, err := parseField(f); err != nil {
			return true
		}
	}
	return false
}

func parseField(f string) (float64, error) {
	f = strings.TrimSpace(f)
	if f == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(f, 64)
}

type jsonTable struct {
	Columns []string    `json:"columns,omitempty"`
	Data    [][]float64 `json:"data"`
}

// ReadJSON decodes a table of the form {"columns": [...], "data": [[...]]}.
// Null cells are not allowed; the column list, when present, must match the
// row width.
func ReadJSON(r io.Reader) (*Table, error) {
	var jt jsonTable
	if err := json.NewDecoder(r).Decode(&jt); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}
	if len(jt.Data) == 0 || len(jt.Data[0]) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no data")
	}

	rows, cols := len(jt.Data), len(jt.Data[0])
	if jt.Columns != nil && len(jt.Columns) != cols {
		return nil, errors.New(errors.ErrCodeInvalidShape, "%d column names for %d columns", len(jt.Columns), cols)
	}
	m := mat.NewDense(rows, cols, nil)
	for i, row := range jt.Data {
		if len(row) != cols {
			return nil, errors.New(errors.ErrCodeInvalidShape, "row %d has %d values, want %d", i+1, len(row), cols)
		}
		m.SetRow(i, row)
	}
	return &Table{Columns: jt.Columns, Data: m}, nil
}

// Import reads the table at path, choosing the decoder by extension.
func Import(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads a table from r in the given format.
func Decode(r io.Reader, format Format) (*Table, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r, ',')
	case FormatTSV:
		return ReadCSV(r, '\t')
	case FormatJSON:
		return ReadJSON(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported data format %q", format)
	}
}
