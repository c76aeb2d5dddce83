package quantum

import (
	"math"
	"math/cmplx"
)

// PauliX returns the bit-flip gate
func PauliX() Matrix {
	return NewMatrixFromRows(2, 2,
		0, 1,
		1, 0,
	)
}

// PauliY returns the Pauli Y gate
func PauliY() Matrix {
	return NewMatrixFromRows(2, 2,
		0, -1i,
		1i, 0,
	)
}

// PauliZ returns the phase-flip gate
func PauliZ() Matrix {
	return NewMatrixFromRows(2, 2,
		1, 0,
		0, -1,
	)
}

// Hadamard returns H = 1/√2 [[1, 1], [1, -1]]
func Hadamard() Matrix {
	f := complex(1/math.Sqrt2, 0)
	return NewMatrixFromRows(2, 2,
		f, f,
		f, -f,
	)
}

// Identity returns the single-qubit identity
func Identity() Matrix {
	return IdentityMatrix(2)
}

// RX returns cos(θ/2)·I − i·sin(θ/2)·X
func RX(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return NewMatrixFromRows(2, 2,
		c, s,
		s, c,
	)
}

// RY returns cos(θ/2)·I − i·sin(θ/2)·Y
func RY(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return NewMatrixFromRows(2, 2,
		c, -s,
		s, c,
	)
}

// RZ returns diag(e^(−iθ/2), e^(iθ/2))
func RZ(theta float64) Matrix {
	return NewMatrixFromRows(2, 2,
		cmplx.Exp(complex(0, -theta/2)), 0,
		0, cmplx.Exp(complex(0, theta/2)),
	)
}

// CNOT returns the two-qubit controlled-NOT on basis order |00⟩,|01⟩,|10⟩,|11⟩
// with the first qubit as control
func CNOT() Matrix {
	return NewMatrixFromRows(4, 4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	)
}

// CZ returns the two-qubit controlled-Z
func CZ() Matrix {
	return NewMatrixFromRows(4, 4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	)
}

// EmbedSingleQubit lifts a 2×2 gate acting on wire into the full n-qubit space.
// Wire 0 is the leftmost (most significant) tensor factor.
func EmbedSingleQubit(gate Matrix, wire, numQubits int) Matrix {
	result := Identity()
	if wire == 0 {
		result = gate.Clone()
	}

	for i := 1; i < numQubits; i++ {
		next := Identity()
		if i == wire {
			next = gate
		}
		result = Kron(result, next)
	}

	return result
}

// EmbedCNOT builds the 2^n permutation that flips the target bit of every
// basis index whose control bit is set. Control and target need not be adjacent.
func EmbedCNOT(control, target, numQubits int) Matrix {
	dim := 1 << numQubits
	controlMask := wireMask(control, numQubits)
	targetMask := wireMask(target, numQubits)

	result := NewMatrix(dim, dim)
	for i := 0; i < dim; i++ {
		j := i
		if i&controlMask != 0 {
			j = i ^ targetMask
		}
		result.Set(j, i, 1)
	}

	return result
}

// EmbedCZ builds the 2^n diagonal that negates every basis index with both
// wire bits set
func EmbedCZ(a, b, numQubits int) Matrix {
	dim := 1 << numQubits
	mask := wireMask(a, numQubits) | wireMask(b, numQubits)

	result := NewMatrix(dim, dim)
	for i := 0; i < dim; i++ {
		if i&mask == mask {
			result.Set(i, i, -1)
		} else {
			result.Set(i, i, 1)
		}
	}

	return result
}

// wireMask returns the basis-index bit owned by wire (wire 0 is the MSB)
func wireMask(wire, numQubits int) int {
	return 1 << (numQubits - 1 - wire)
}
