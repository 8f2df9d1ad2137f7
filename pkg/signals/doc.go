// Package signals provides small numeric summaries of dense matrices.
//
// # Overview
//
// The functions in this package are pure: they read their inputs through the
// gonum [mat.Matrix] interface and never modify them. Malformed input (empty
// or non-square matrices where a square one is required) is reported with a
// coded error from pkg/errors rather than a panic.
//
// # Dimensionality
//
// [StableRank] is a smooth surrogate for matrix rank: the sum of squared
// singular values divided by the largest squared singular value. It equals
// the rank when all non-zero singular values are equal and is smaller
// otherwise.
//
// [ParticipationRatio] measures the effective dimensionality of a
// distribution from its covariance matrix C:
//
//	PR = (tr C)^2 / Σ λ_i^2
//
// A covariance concentrated on one direction has PR = 1; an isotropic
// covariance in n dimensions has PR = n.
//
// # Vectors and series
//
// [Normalize] scales each row (or column) to unit Euclidean norm. [Smooth]
// applies a box-filter moving average, and [CanonCorr] returns the canonical
// correlations between two sets of variables.
//
//	X := mat.NewDense(2, 2, []float64{3, 4, 0, 2})
//	Y, _ := signals.Normalize(X, signals.Rows)
//	// Y = [[0.6 0.8] [0 1]]
//
// [mat.Matrix]: https://pkg.go.dev/gonum.org/v1/gonum/mat#Matrix
package signals
