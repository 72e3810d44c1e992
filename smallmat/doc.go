// Package smallmat provides fixed-size float32 vector and matrix values for
// 2×2 and 3×3 linear algebra.
//
// All types are plain arrays with value semantics: they live on the stack,
// copy on assignment and never allocate. Matrices are column-major, so m[c][r]
// is the element in column c and row r, and m[c] is the c'th column vector.
//
// The package covers only what the decomposition kernels in package decomp
// need: products, transposes, determinants, outer products, column
// permutations, tolerance comparisons and a debug formatter.
package smallmat
