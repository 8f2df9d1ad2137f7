package signals

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/jetplot/jetplot/pkg/errors"
)

// Axis selects the direction along which vectors are taken.
type Axis int

const (
	// Columns treats each column as a vector.
	Columns Axis = iota
	// Rows treats each row as a vector.
	Rows
)

// String returns "rows" or "columns".
func (a Axis) String() string {
	if a == Rows {
		return "rows"
	}
	return "columns"
}

// ParseAxis converts "rows"/"row"/"1" or "columns"/"cols"/"col"/"0" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "rows", "row", "1":
		return Rows, nil
	case "columns", "cols", "col", "0":
		return Columns, nil
	default:
		return Rows, errors.New(errors.ErrCodeInvalidInput, "invalid axis %q (must be 'rows' or 'columns')", s)
	}
}

// StableRank returns sum(s^2)/max(s^2) over the singular values s of X.
func StableRank(X mat.Matrix) (float64, error) {
	r, c := X.Dims()
	if err := errors.ValidateShape(r, c); err != nil {
		return 0, err
	}

	if err := checkFinite(X); err != nil {
		return 0, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDNone); !ok {
		return 0, errors.New(errors.ErrCodeNumeric, "singular value decomposition failed for %dx%d matrix", r, c)
	}
	s := svd.Values(nil)

	var sum, peak float64
	for _, v := range s {
		sq := v * v
		sum += sq
		peak = math.Max(peak, sq)
	}
	if peak == 0 {
		return 0, errors.New(errors.ErrCodeNumeric, "stable rank is undefined for a zero matrix")
	}
	return finite("stable rank", sum/peak)
}

// ParticipationRatio returns (tr C)^2 / Σλ² for the eigenvalues λ of the
// covariance matrix C. C must be square; a non-symmetric input is replaced
// by its symmetric part (C + Cᵀ)/2.
func ParticipationRatio(C mat.Matrix) (float64, error) {
	r, c := C.Dims()
	if err := errors.ValidateShape(r, c); err != nil {
		return 0, err
	}
	if r != c {
		return 0, errors.New(errors.ErrCodeInvalidShape, "covariance must be square, got %dx%d", r, c)
	}

	if err := checkFinite(C); err != nil {
		return 0, err
	}
	sym := symmetric(C)

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return 0, errors.New(errors.ErrCodeNumeric, "eigendecomposition failed for %dx%d covariance", r, c)
	}
	vals := eig.Values(nil)

	var sumsq float64
	for _, v := range vals {
		sumsq += v * v
	}
	if sumsq == 0 {
		return 0, errors.New(errors.ErrCodeNumeric, "participation ratio is undefined for a zero covariance")
	}

	tr := mat.Trace(sym)
	return finite("participation ratio", tr*tr/sumsq)
}

// checkFinite reports a NUMERIC error for the first NaN or infinite entry.
func checkFinite(X mat.Matrix) error {
	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := X.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.New(errors.ErrCodeNumeric, "non-finite value %g at (%d, %d)", v, i, j)
			}
		}
	}
	return nil
}

func finite(what string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeNumeric, "%s is not finite (%g)", what, v)
	}
	return v, nil
}

// symmetric returns C as a mat.Symmetric, averaging mirrored entries when C
// does not already implement the interface.
func symmetric(C mat.Matrix) mat.Symmetric {
	if s, ok := C.(mat.Symmetric); ok {
		return s
	}
	n, _ := C.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, (C.At(i, j)+C.At(j, i))/2)
		}
	}
	return sym
}

// Normalize returns a copy of X with every vector along axis divided by its
// Euclidean norm. Vectors with zero norm are left as zeros.
func Normalize(X mat.Matrix, axis Axis) (*mat.Dense, error) {
	r, c := X.Dims()
	if err := errors.ValidateShape(r, c); err != nil {
		return nil, err
	}

	out := mat.DenseCopyOf(X)
	switch axis {
	case Rows:
		for i := 0; i < r; i++ {
			row := out.RawRowView(i)
			if n := floats.Norm(row, 2); n > 0 {
				floats.Scale(1/n, row)
			}
		}
	case Columns:
		col := make([]float64, r)
		for j := 0; j < c; j++ {
			mat.Col(col, j, out)
			n := floats.Norm(col, 2)
			if n == 0 {
				continue
			}
			floats.Scale(1/n, col)
			out.SetCol(j, col)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid axis %d", int(axis))
	}
	return out, nil
}

// Smooth returns the moving average of x over a box window of the given
// width. Only fully overlapping positions are kept, so the result has
// len(x)-window+1 samples.
func Smooth(x []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "window must be positive, got %d", window)
	}
	if window > len(x) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "window %d exceeds series length %d", window, len(x))
	}

	out := make([]float64, len(x)-window+1)
	sum := floats.Sum(x[:window])
	out[0] = sum / float64(window)
	for i := 1; i < len(out); i++ {
		sum += x[i+window-1] - x[i-1]
		out[i] = sum / float64(window)
	}
	return out, nil
}

// CanonCorr returns the canonical correlations between the columns of X and
// the columns of Y, in descending order. Rows are observations; X and Y must
// have the same number of rows, more rows than xc+yc columns combined, and
// no constant column.
func CanonCorr(X, Y mat.Matrix) ([]float64, error) {
	xr, xc := X.Dims()
	yr, yc := Y.Dims()
	if err := errors.ValidateShape(xr, xc); err != nil {
		return nil, err
	}
	if err := errors.ValidateShape(yr, yc); err != nil {
		return nil, err
	}
	if xr != yr {
		return nil, errors.New(errors.ErrCodeInvalidShape, "observation counts differ: %d vs %d rows", xr, yr)
	}
	if xr <= xc+yc {
		return nil, errors.New(errors.ErrCodeInvalidShape, "need more than %d observations for %d+%d variables, got %d", xc+yc, xc, yc, xr)
	}
	if err := checkFinite(X); err != nil {
		return nil, err
	}
	if err := checkFinite(Y); err != nil {
		return nil, err
	}
	if err := checkVariance("X", X); err != nil {
		return nil, err
	}
	if err := checkVariance("Y", Y); err != nil {
		return nil, err
	}

	var cc stat.CC
	if err := cc.CanonicalCorrelations(X, Y, nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNumeric, err, "canonical correlation")
	}
	return cc.CorrsTo(nil), nil
}

// checkVariance reports a NUMERIC error for the first constant column of m.
func checkVariance(name string, m mat.Matrix) error {
	r, c := m.Dims()
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		if stat.Variance(col, nil) == 0 {
			return errors.New(errors.ErrCodeNumeric, "column %d of %s has zero variance", j, name)
		}
	}
	return nil
}
