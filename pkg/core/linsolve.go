package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingularMatrix is returned when elimination meets an all-zero pivot column
var ErrSingularMatrix = errors.New("singular matrix")

// SolveEquation solves the dense n×n system a·x = b by Gaussian elimination with
// partial pivoting. The rows of a and the entries of b are overwritten; the returned
// solution shares storage with b.
func SolveEquation(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(a) != n {
		return nil, fmt.Errorf("matrix has %d rows but right-hand side has %d entries", len(a), n)
	}
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", i, len(row), n)
		}
	}

	for step := 0; step < n; step++ {
		// Pick the row with the largest magnitude in this column
		pivot := step
		for row := step + 1; row < n; row++ {
			if math.Abs(a[row][step]) > math.Abs(a[pivot][step]) {
				pivot = row
			}
		}
		if a[pivot][step] == 0 {
			return nil, ErrSingularMatrix
		}
		a[step], a[pivot] = a[pivot], a[step]
		b[step], b[pivot] = b[pivot], b[step]

		for row := step + 1; row < n; row++ {
			factor := a[row][step] / a[step][step]
			if factor == 0 {
				continue
			}
			for col := step; col < n; col++ {
				a[row][col] -= factor * a[step][col]
			}
			b[row] -= factor * b[step]
		}
	}

	// Back-substitute from the last row upward
	for row := n - 1; row >= 0; row-- {
		sum := b[row]
		for col := row + 1; col < n; col++ {
			sum -= a[row][col] * b[col]
		}
		b[row] = sum / a[row][row]
	}

	return b, nil
}
