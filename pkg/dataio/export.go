package dataio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/jetplot/jetplot/pkg/errors"
)

// WriteCSV encodes t with the given separator. A header row is written when
// t has column names. NaN cells are written as empty fields.
func WriteCSV(w io.Writer, t *Table, comma rune) error {
	rows, cols := t.Dims()
	if t.Columns != nil && len(t.Columns) != cols {
		return errors.New(errors.ErrCodeInvalidShape, "%d column names for %d columns", len(t.Columns), cols)
	}

	cw := csv.NewWriter(w)
	cw.Comma = comma
	if t.Columns != nil {
		if err := cw.Write(t.Columns); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	rec := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rec[j] = formatCell(t.Data.At(i, j))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteJSON encodes t in the {"columns", "data"} form read by ReadJSON.
func WriteJSON(w io.Writer, t *Table) error {
	rows, _ := t.Dims()
	out := jsonTable{Columns: t.Columns, Data: make([][]float64, rows)}
	for i := range out.Data {
		out.Data[i] = mat.Row(nil, i, t.Data)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes t to path, choosing the encoder by extension.
func Export(t *Table, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatTSV:
		return WriteCSV(f, t, '\t')
	case FormatJSON:
		return WriteJSON(f, t)
	default:
		return WriteCSV(f, t, ',')
	}
}
