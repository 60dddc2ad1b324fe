// Package matrix provides a dense matrix type and the linear-algebra
// kernels the smooth package assembles mesh-operator pipelines on top of:
// element-wise arithmetic, matrix-vector products, Jacobi eigendecomposition,
// LU/QR factorization, and Floyd-Warshall all-pairs shortest paths.
//
// Dense is a flat row-major float64 buffer with bounds-checked At/Set and an
// optional NaN/Inf ingestion policy. Every algorithm validates its operands
// through ValidateNotNil/ValidateSameShape/ValidateSquare and returns the
// package's sentinel errors (errors.go) rather than panicking on bad input.
//
// See matrix/ops for the solvers (BiCGSTAB, Eigen) built on top of Matrix.
package matrix
