// Package matrix provides square 2D grid helpers used to reduce every board
// move to a single rightward shift. All operations return fresh values and
// never alias or mutate their inputs.
package matrix

import "fmt"

// Matrix is a square grid stored as rows.
type Matrix[T any] [][]T

// FromFlat reshapes a row-major slice of length n*n into n rows of n cells.
// Panics if the length does not match; callers own that invariant.
func FromFlat[T any](flat []T, n int) Matrix[T] {
	if n < 0 || len(flat) != n*n {
		panic(fmt.Sprintf("matrix: cannot reshape %d cells into %dx%d", len(flat), n, n))
	}

	m := make(Matrix[T], n)
	for i := range n {
		row := make([]T, n)
		copy(row, flat[i*n:(i+1)*n])
		m[i] = row
	}
	return m
}

// Flatten concatenates the rows of m in order.
func Flatten[T any](m Matrix[T]) []T {
	flat := make([]T, 0, len(m)*len(m))
	for _, row := range m {
		flat = append(flat, row...)
	}
	return flat
}

// Copy returns a deep copy of m.
func Copy[T any](m Matrix[T]) Matrix[T] {
	c := make(Matrix[T], len(m))
	for i, row := range m {
		c[i] = append([]T(nil), row...)
	}
	return c
}

// RotateRight returns m rotated 90 degrees clockwise.
func RotateRight[T any](m Matrix[T]) Matrix[T] {
	n := len(m)
	r := Copy(m)
	for i, row := range m {
		for j, v := range row {
			r[j][n-1-i] = v
		}
	}
	return r
}

// RotateLeft returns m rotated 90 degrees counter-clockwise.
func RotateLeft[T any](m Matrix[T]) Matrix[T] {
	n := len(m)
	r := Copy(m)
	for i, row := range m {
		for j, v := range row {
			r[n-1-j][i] = v
		}
	}
	return r
}

// Rotate applies RotateRight turns times. Negative turns rotate left.
func Rotate[T any](m Matrix[T], turns int) Matrix[T] {
	turns %= 4
	if turns < 0 {
		turns += 4
	}

	r := Copy(m)
	for range turns {
		r = RotateRight(r)
	}
	return r
}

// Equal reports whether a and b have the same shape and cells.
func Equal[T comparable](a, b Matrix[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
