package quantum

import (
	"errors"
	"fmt"
	"math/cmplx"
)

var (
	// ErrDimensionMismatch is returned when operand shapes are incompatible
	ErrDimensionMismatch = errors.New("quantum: dimension mismatch")
	// ErrNonSquare is returned when a square matrix was required
	ErrNonSquare = errors.New("quantum: matrix is not square")
)

// Matrix is a dense complex matrix stored in row-major order
type Matrix struct {
	rows int
	cols int
	data []complex128
}

// NewMatrix allocates a zero matrix with the given shape
func NewMatrix(rows, cols int) Matrix {
	return Matrix{
		rows: rows,
		cols: cols,
		data: make([]complex128, rows*cols),
	}
}

// NewMatrixFromRows builds a matrix from a row-major element list
func NewMatrixFromRows(rows, cols int, elems ...complex128) Matrix {
	if len(elems) != rows*cols {
		panic(fmt.Sprintf("quantum: %d elements for a %dx%d matrix", len(elems), rows, cols))
	}
	m := NewMatrix(rows, cols)
	copy(m.data, elems)
	return m
}

// IdentityMatrix returns the dim×dim identity
func IdentityMatrix(dim int) Matrix {
	m := NewMatrix(dim, dim)
	for i := 0; i < dim; i++ {
		m.data[i*dim+i] = 1
	}
	return m
}

// Rows returns the number of rows
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns
func (m Matrix) Cols() int { return m.cols }

// At returns the element at (i, j)
func (m Matrix) At(i, j int) complex128 {
	return m.data[i*m.cols+j]
}

// Set stores v at (i, j)
func (m Matrix) Set(i, j int, v complex128) {
	m.data[i*m.cols+j] = v
}

// Clone returns a deep copy
func (m Matrix) Clone() Matrix {
	c := NewMatrix(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Mul returns the product m·b
func (m Matrix) Mul(b Matrix) (Matrix, error) {
	if m.cols != b.rows {
		return Matrix{}, fmt.Errorf("%w: %dx%d · %dx%d", ErrDimensionMismatch, m.rows, m.cols, b.rows, b.cols)
	}

	out := NewMatrix(m.rows, b.cols)
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		dst := out.data[i*b.cols : (i+1)*b.cols]
		for k, a := range row {
			if a == 0 {
				continue
			}
			bRow := b.data[k*b.cols : (k+1)*b.cols]
			for j, v := range bRow {
				dst[j] += a * v
			}
		}
	}

	return out, nil
}

// Adjoint returns the conjugate transpose m†
func (m Matrix) Adjoint() Matrix {
	out := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = cmplx.Conj(m.data[i*m.cols+j])
		}
	}
	return out
}

// Scale returns s·m
func (m Matrix) Scale(s complex128) Matrix {
	out := NewMatrix(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = s * v
	}
	return out
}

// AddInPlace accumulates b into m
func (m Matrix) AddInPlace(b Matrix) error {
	if m.rows != b.rows || m.cols != b.cols {
		return fmt.Errorf("%w: %dx%d + %dx%d", ErrDimensionMismatch, m.rows, m.cols, b.rows, b.cols)
	}
	for i, v := range b.data {
		m.data[i] += v
	}
	return nil
}

// Trace returns the sum of the diagonal entries
func (m Matrix) Trace() complex128 {
	var t complex128
	n := min(m.rows, m.cols)
	for i := 0; i < n; i++ {
		t += m.data[i*m.cols+i]
	}
	return t
}

// ApproxEqual reports whether every element of m and b differs by at most tol
func (m Matrix) ApproxEqual(b Matrix, tol float64) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i := range m.data {
		if cmplx.Abs(m.data[i]-b.data[i]) > tol {
			return false
		}
	}
	return true
}

// Kron returns the Kronecker product a⊗b.
// Entry (i·rowsB+k, j·colsB+l) equals a(i,j)·b(k,l).
func Kron(a, b Matrix) Matrix {
	out := NewMatrix(a.rows*b.rows, a.cols*b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			av := a.data[i*a.cols+j]
			if av == 0 {
				continue
			}
			for k := 0; k < b.rows; k++ {
				for l := 0; l < b.cols; l++ {
					out.data[(i*b.rows+k)*out.cols+j*b.cols+l] = av * b.data[k*b.cols+l]
				}
			}
		}
	}
	return out
}
