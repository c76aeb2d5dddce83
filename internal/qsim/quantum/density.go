package quantum

import "fmt"

// DensityMatrix holds the mixed state ρ of an n-qubit register
type DensityMatrix struct {
	matrix    Matrix
	numQubits int
}

// NewDensityMatrix creates the ground state |0…0⟩⟨0…0| for numQubits qubits
func NewDensityMatrix(numQubits int) *DensityMatrix {
	dim := 1 << numQubits
	m := NewMatrix(dim, dim)
	m.Set(0, 0, 1)

	return &DensityMatrix{
		matrix:    m,
		numQubits: numQubits,
	}
}

// NumQubits returns the register size
func (d *DensityMatrix) NumQubits() int {
	return d.numQubits
}

// Dim returns the Hilbert space dimension 2^n
func (d *DensityMatrix) Dim() int {
	return 1 << d.numQubits
}

// At returns ρ(i, j)
func (d *DensityMatrix) At(i, j int) complex128 {
	return d.matrix.At(i, j)
}

// Matrix returns a copy of ρ
func (d *DensityMatrix) Matrix() Matrix {
	return d.matrix.Clone()
}

// Clone returns an independent copy of the state
func (d *DensityMatrix) Clone() *DensityMatrix {
	return &DensityMatrix{
		matrix:    d.matrix.Clone(),
		numQubits: d.numQubits,
	}
}

// Trace returns Tr(ρ)
func (d *DensityMatrix) Trace() complex128 {
	return d.matrix.Trace()
}

// Purity returns Re Tr(ρ²), summing ρ(i,k)·ρ(k,i) without materialising ρ²
func (d *DensityMatrix) Purity() float64 {
	dim := d.Dim()
	var tr complex128
	for i := 0; i < dim; i++ {
		for k := 0; k < dim; k++ {
			tr += d.matrix.At(i, k) * d.matrix.At(k, i)
		}
	}
	return real(tr)
}

// ApplyUnitary evolves ρ → U·ρ·U†
func (d *DensityMatrix) ApplyUnitary(u Matrix) error {
	if err := d.checkOperator(u); err != nil {
		return err
	}

	left, err := u.Mul(d.matrix)
	if err != nil {
		return err
	}
	next, err := left.Mul(u.Adjoint())
	if err != nil {
		return err
	}

	d.matrix = next
	return nil
}

// ApplyKraus evolves ρ → Σᵢ Kᵢ·ρ·Kᵢ†. Completeness of the set is the
// caller's responsibility.
func (d *DensityMatrix) ApplyKraus(ops []Matrix) error {
	for _, k := range ops {
		if err := d.checkOperator(k); err != nil {
			return err
		}
	}

	next := NewMatrix(d.Dim(), d.Dim())
	for _, k := range ops {
		left, err := k.Mul(d.matrix)
		if err != nil {
			return err
		}
		term, err := left.Mul(k.Adjoint())
		if err != nil {
			return err
		}
		if err := next.AddInPlace(term); err != nil {
			return err
		}
	}

	d.matrix = next
	return nil
}

// Probabilities returns the computational-basis distribution: the real part
// of each diagonal entry clamped at zero, indexed by basis integer.
func (d *DensityMatrix) Probabilities() []float64 {
	dim := d.Dim()
	probs := make([]float64, dim)
	for i := 0; i < dim; i++ {
		p := real(d.matrix.At(i, i))
		if p < 0 {
			p = 0
		}
		probs[i] = p
	}
	return probs
}

// Flatten returns the real and imaginary parts of ρ in row-major order
func (d *DensityMatrix) Flatten() (re, im []float64) {
	re = make([]float64, len(d.matrix.data))
	im = make([]float64, len(d.matrix.data))
	for i, v := range d.matrix.data {
		re[i] = real(v)
		im[i] = imag(v)
	}
	return re, im
}

func (d *DensityMatrix) checkOperator(op Matrix) error {
	if op.rows != op.cols {
		return fmt.Errorf("%w: operator is %dx%d", ErrNonSquare, op.rows, op.cols)
	}
	if op.rows != d.Dim() {
		return fmt.Errorf("%w: operator is %dx%d, state is %dx%d",
			ErrDimensionMismatch, op.rows, op.cols, d.Dim(), d.Dim())
	}
	return nil
}
