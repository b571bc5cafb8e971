// SPDX-License-Identifier: MIT
// Package: tricks/grid

// Package grid stores small result tables as a row-major float64 matrix and
// renders them for the console.
//
// Dense keeps r*c values in one flat slice; every accessor bounds-checks and
// reports ErrIndexOutOfBounds rather than panicking. Render prints the grid
// as an aligned table with row and column labels.
package grid
