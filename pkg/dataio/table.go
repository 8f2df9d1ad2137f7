package dataio

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/jetplot/jetplot/pkg/errors"
)

// Table is a matrix with optional column names.
type Table struct {
	Columns []string
	Data    *mat.Dense
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (rows, cols int) { return t.Data.Dims() }

// Column returns a copy of column j.
func (t *Table) Column(j int) []float64 { return mat.Col(nil, j, t.Data) }

// ColumnName returns the name of column j, or "col<j>" when the table has
// no header.
func (t *Table) ColumnName(j int) string {
	if j < len(t.Columns) && t.Columns[j] != "" {
		return t.Columns[j]
	}
	return fmt.Sprintf("col%d", j)
}

// Format names an on-disk encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
)

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "csv":
		return FormatCSV, nil
	case "tsv", "tab":
		return FormatTSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported data file extension %q (want .csv, .tsv or .json)", filepath.Ext(path))
	}
}
