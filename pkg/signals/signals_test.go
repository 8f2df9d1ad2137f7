package signals

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/jetplot/jetplot/pkg/errors"
)

const tol = 1e-9

func randn(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return mat.NewDense(r, c, data)
}

func orthogonal(rng *rand.Rand, n int) *mat.Dense {
	var qr mat.QR
	qr.Factorize(randn(rng, n, n))
	var q mat.Dense
	qr.QTo(&q)
	return &q
}

// withSpectrum returns Q diag(evals) Qᵀ for a random orthogonal Q.
func withSpectrum(rng *rand.Rand, evals []float64) *mat.Dense {
	q := orthogonal(rng, len(evals))
	var c mat.Dense
	c.Product(q, mat.NewDiagDense(len(evals), evals), q.T())
	return &c
}

func TestStableRank(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	u := orthogonal(rng, 32)
	v := orthogonal(rng, 32)
	s := make([]float64, 32)
	for i := range s {
		s[i] = rng.NormFloat64()
	}

	var x mat.Dense
	x.Product(u, mat.NewDiagDense(32, s), v.T())

	var sum, peak float64
	for _, si := range s {
		sum += si * si
		peak = math.Max(peak, si*si)
	}

	got, err := StableRank(&x)
	require.NoError(t, err)
	assert.InDelta(t, sum/peak, got, 1e-8)
}

func TestStableRankEqualSingularValues(t *testing.T) {
	got, err := StableRank(mat.NewDiagDense(4, []float64{2, 2, 2, 0}))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, tol)
}

func TestStableRankErrors(t *testing.T) {
	_, err := StableRank(mat.NewDense(2, 3, nil))
	assert.True(t, errors.Is(err, errors.ErrCodeNumeric), "zero matrix: got %v", err)

	_, err = StableRank(&mat.Dense{})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidShape), "empty matrix: got %v", err)
}

func TestParticipationRatio(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	tests := []struct {
		name  string
		evals []float64
		want  float64
	}{
		{"rank one", []float64{1, 0, 0}, 1.0},
		{"isotropic", []float64{1, 1, 1}, 3.0},
		{"scaled isotropic", []float64{5, 5, 5, 5}, 4.0},
		{"two equal", []float64{2, 2, 0}, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParticipationRatio(withSpectrum(rng, tt.evals))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-8)
		})
	}
}

func TestParticipationRatioSymDense(t *testing.T) {
	c := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	got, err := ParticipationRatio(c)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, tol)
}

func TestParticipationRatioErrors(t *testing.T) {
	_, err := ParticipationRatio(mat.NewDense(2, 3, nil))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidShape), "non-square: got %v", err)

	_, err = ParticipationRatio(mat.NewDense(3, 3, nil))
	assert.True(t, errors.Is(err, errors.ErrCodeNumeric), "zero covariance: got %v", err)
}

func TestNormalizeRows(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	x := randn(rng, 10, 3)

	got, err := Normalize(x, Rows)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		row := mat.Row(nil, i, x)
		n := floats.Norm(row, 2)
		for j := 0; j < 3; j++ {
			assert.InDelta(t, row[j]/n, got.At(i, j), tol)
		}
	}
}

func TestNormalizeColumns(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]float64, 4*6)
	for i := range data {
		data[i] = rng.Float64()
	}
	x := mat.NewDense(4, 6, data)

	got, err := Normalize(x, Columns)
	require.NoError(t, err)

	for j := 0; j < 6; j++ {
		col := mat.Col(nil, j, x)
		n := floats.Norm(col, 2)
		for i := 0; i < 4; i++ {
			assert.InDelta(t, col[i]/n, got.At(i, j), tol)
		}
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{3, 4, 0, 2})
	got, err := Normalize(x, Rows)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 4, 0, 2}, x.RawMatrix().Data)
	assert.InDelta(t, 0.6, got.At(0, 0), tol)
	assert.InDelta(t, 0.8, got.At(0, 1), tol)
	assert.InDelta(t, 1.0, got.At(1, 1), tol)
}

func TestNormalizeZeroVector(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{0, 0, 1, 1})
	got, err := Normalize(x, Rows)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.At(0, 0))
	assert.Equal(t, 0.0, got.At(0, 1))
	assert.False(t, math.IsNaN(got.At(0, 0)))
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		input   string
		want    Axis
		wantErr bool
	}{
		{"rows", Rows, false},
		{"1", Rows, false},
		{"columns", Columns, false},
		{"cols", Columns, false},
		{"0", Columns, false},
		{"diagonal", Rows, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAxis(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSmooth(t *testing.T) {
	got, err := Smooth([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, 4}, got, tol)

	got, err = Smooth([]float64{4, 8}, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 8}, got, tol)

	_, err = Smooth([]float64{1, 2}, 3)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = Smooth([]float64{1, 2}, 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestCanonCorr(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	const n = 200

	x := randn(rng, n, 2)
	y := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		// First column of Y is an exact linear function of X.
		y.Set(i, 0, 2*x.At(i, 0)-x.At(i, 1))
		y.Set(i, 1, rng.NormFloat64())
	}

	corrs, err := CanonCorr(x, y)
	require.NoError(t, err)
	require.Len(t, corrs, 2)
	assert.InDelta(t, 1.0, corrs[0], 1e-6)
	assert.Less(t, corrs[1], 0.5)
}

func TestCanonCorrRowMismatch(t *testing.T) {
	_, err := CanonCorr(mat.NewDense(4, 2, nil), mat.NewDense(5, 2, nil))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidShape))
}

func TestCanonCorrTooFewObservations(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	_, err := CanonCorr(randn(rng, 2, 3), randn(rng, 2, 2))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidShape), "got %v", err)

	_, err = CanonCorr(randn(rng, 5, 3), randn(rng, 5, 2))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidShape), "rows == xc+yc: got %v", err)
}

func TestCanonCorrConstantColumn(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{3, 3, 3, 3})
	y := mat.NewDense(4, 1, []float64{1, 2, 4, 3})

	_, err := CanonCorr(x, y)
	assert.True(t, errors.Is(err, errors.ErrCodeNumeric), "got %v", err)

	_, err = CanonCorr(y, x)
	assert.True(t, errors.Is(err, errors.ErrCodeNumeric), "got %v", err)
}

func TestNonFiniteInput(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, math.NaN(), 0, 1})

	_, err := StableRank(m)
	assert.True(t, errors.Is(err, errors.ErrCodeNumeric), "StableRank: got %v", err)

	_, err = ParticipationRatio(m)
	assert.True(t, errors.Is(err, errors.ErrCodeNumeric), "ParticipationRatio: got %v", err)

	inf := mat.NewDense(2, 2, []float64{math.Inf(1), 0, 0, 1})
	_, err = StableRank(inf)
	assert.True(t, errors.Is(err, errors.ErrCodeNumeric), "StableRank inf: got %v", err)
}
