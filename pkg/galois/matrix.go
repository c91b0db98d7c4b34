package galois

import "errors"

// ErrSingular is returned by Solve when elimination finds no pivot: the
// system has no unique solution. A singular system is distinct from one
// whose unique solution happens to be the zero vector.
var ErrSingular = errors.New("galois: singular matrix")

// Matrix is a dense rows-by-cols matrix over GF(2^m), stored row-major.
type Matrix struct {
	rows, cols int
	data       []Elem
}

// NewMatrix builds a matrix from a flat row-major coefficient slice. The
// slice is copied. Panics if the dimensions do not match the slice length;
// that is a programmer error, not a data error.
func NewMatrix(rows, cols int, data []Elem) Matrix {
	if len(data) != rows*cols {
		panic("galois: matrix dimensions do not match data length")
	}
	out := make([]Elem, len(data))
	copy(out, data)
	return Matrix{rows: rows, cols: cols, data: out}
}

// ZeroMatrix returns a rows-by-cols matrix of GF(2^m) zeros.
func ZeroMatrix(rows, cols int, m uint) Matrix {
	data := make([]Elem, rows*cols)
	for i := range data {
		data[i] = Zero(m)
	}
	return Matrix{rows: rows, cols: cols, data: data}
}

// Rows returns the row count.
func (a Matrix) Rows() int { return a.rows }

// Cols returns the column count.
func (a Matrix) Cols() int { return a.cols }

// At returns the element at row i, column j.
func (a Matrix) At(i, j int) Elem {
	return a.data[i*a.cols+j]
}

// Set stores v at row i, column j.
func (a Matrix) Set(i, j int, v Elem) {
	a.data[i*a.cols+j] = v
}

func (a Matrix) clone() Matrix {
	return NewMatrix(a.rows, a.cols, a.data)
}

// Determinant computes the determinant by Gaussian elimination with
// partial pivoting. Row swaps negate the running sign; negation is the
// identity in characteristic 2, but the bookkeeping is kept so the
// algorithm reads the same over any field. Panics if the matrix is not
// square.
func (a Matrix) Determinant() Elem {
	if a.rows != a.cols {
		panic("galois: determinant of a non-square matrix")
	}
	m := a.data[0].FieldDegree()
	w := a.clone()
	det := One(m)
	for col := 0; col < w.cols; col++ {
		pivot := -1
		for r := col; r < w.rows; r++ {
			if !w.At(r, col).IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return Zero(m)
		}
		if pivot != col {
			w.swapRows(pivot, col)
			det = det.Neg()
		}
		pivotInv, err := w.At(col, col).Inv()
		if err != nil {
			return Zero(m)
		}
		for r := col + 1; r < w.rows; r++ {
			factor := w.At(r, col).Mul(pivotInv)
			for c := col; c < w.cols; c++ {
				w.Set(r, c, w.At(r, c).Sub(w.At(col, c).Mul(factor)))
			}
		}
		det = det.Mul(w.At(col, col))
	}
	return det
}

// Solve returns the unique x with a*x = rhs, or ErrSingular when forward
// elimination finds a column with no pivot. Panics if the matrix is not
// square or rhs has the wrong length.
func (a Matrix) Solve(rhs []Elem) ([]Elem, error) {
	if a.rows != a.cols {
		panic("galois: solving a non-square system")
	}
	if len(rhs) != a.rows {
		panic("galois: right-hand side length does not match matrix")
	}
	w := a.clone()
	b := make([]Elem, len(rhs))
	copy(b, rhs)

	for col := 0; col < w.cols; col++ {
		pivot := -1
		for r := col; r < w.rows; r++ {
			if !w.At(r, col).IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, ErrSingular
		}
		if pivot != col {
			w.swapRows(pivot, col)
			b[pivot], b[col] = b[col], b[pivot]
		}
		pivotInv, err := w.At(col, col).Inv()
		if err != nil {
			return nil, ErrSingular
		}
		for r := col + 1; r < w.rows; r++ {
			factor := w.At(r, col).Mul(pivotInv)
			for c := col; c < w.cols; c++ {
				w.Set(r, c, w.At(r, c).Sub(w.At(col, c).Mul(factor)))
			}
			b[r] = b[r].Sub(b[col].Mul(factor))
		}
	}

	x := make([]Elem, w.rows)
	for i := w.rows - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < w.cols; j++ {
			sum = sum.Sub(w.At(i, j).Mul(x[j]))
		}
		xi, err := sum.Div(w.At(i, i))
		if err != nil {
			return nil, ErrSingular
		}
		x[i] = xi
	}
	return x, nil
}

func (a Matrix) swapRows(i, j int) {
	for c := 0; c < a.cols; c++ {
		vi, vj := a.At(i, c), a.At(j, c)
		a.Set(i, c, vj)
		a.Set(j, c, vi)
	}
}
