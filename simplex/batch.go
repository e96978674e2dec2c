package simplex

import "gonum.org/v1/gonum/mat"

// LinkBatch applies Link independently to every column of the K×N matrix m,
// returning a fresh K×N matrix of unconstrained columns. Column j of the
// result is exactly Link(column j of m, opts).
//
// Columns share no state: the per-column recursions are independent, so the
// loop order carries no semantic weight and callers needing throughput can
// shard columns across goroutines with their own copies.
//
// Returns ErrNilMatrix for a nil input and ErrEmptyVector for an empty one.
func LinkBatch(m *mat.Dense, opts Options) (*mat.Dense, error) {
	return overColumns(m, opts, Link)
}

// InvlinkBatch applies Invlink independently to every column of the K×N
// matrix m, returning a fresh K×N matrix of simplex columns. It is the
// exact inverse of LinkBatch column by column.
//
// Returns ErrNilMatrix for a nil input and ErrEmptyVector for an empty one.
func InvlinkBatch(m *mat.Dense, opts Options) (*mat.Dense, error) {
	return overColumns(m, opts, Invlink)
}

// overColumns runs the given per-vector transform over each column of m,
// reusing a single scratch slice for column extraction.
func overColumns(m *mat.Dense, opts Options, fn func([]float64, Options) ([]float64, error)) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyVector
	}

	out := mat.NewDense(rows, cols, nil)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		v, err := fn(col, opts)
		if err != nil {
			return nil, err
		}
		out.SetCol(j, v)
	}

	return out, nil
}
