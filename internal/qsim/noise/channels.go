// Package noise builds Kraus operator sets for single-qubit decoherence
// channels and applies them to a density matrix.
//
// Every constructor takes a rate in [0, 1] and returns a set satisfying
// Σ Kᵢ†Kᵢ = I for that range. Rates outside [0, 1] are not validated.
package noise

import (
	"math"

	"github.com/jaskrrish/Go-QSim/internal/qsim/quantum"
)

// AmplitudeDamping returns the T1 relaxation channel: |1⟩ decays to |0⟩ with
// probability gamma
func AmplitudeDamping(gamma float64) []quantum.Matrix {
	k0 := quantum.NewMatrixFromRows(2, 2,
		1, 0,
		0, complex(math.Sqrt(1-gamma), 0),
	)
	k1 := quantum.NewMatrixFromRows(2, 2,
		0, complex(math.Sqrt(gamma), 0),
		0, 0,
	)
	return []quantum.Matrix{k0, k1}
}

// Dephasing returns the T2 channel: coherences shrink without energy loss
func Dephasing(lambda float64) []quantum.Matrix {
	k0 := quantum.Identity().Scale(complex(math.Sqrt(1-lambda), 0))
	k1 := quantum.PauliZ().Scale(complex(math.Sqrt(lambda), 0))
	return []quantum.Matrix{k0, k1}
}

// Depolarizing returns the symmetric channel ρ → (1−p)ρ + p·I/2
func Depolarizing(p float64) []quantum.Matrix {
	s0 := complex(math.Sqrt(1-3*p/4), 0)
	s := complex(math.Sqrt(p/4), 0)
	return []quantum.Matrix{
		quantum.Identity().Scale(s0),
		quantum.PauliX().Scale(s),
		quantum.PauliY().Scale(s),
		quantum.PauliZ().Scale(s),
	}
}

// Expand lifts every operator of a single-qubit Kraus set onto wire of an
// n-qubit register
func Expand(ops []quantum.Matrix, wire, numQubits int) []quantum.Matrix {
	full := make([]quantum.Matrix, len(ops))
	for i, k := range ops {
		full[i] = quantum.EmbedSingleQubit(k, wire, numQubits)
	}
	return full
}

// ApplyAmplitudeDamping applies amplitude damping to wire. A rate ≤ 0 leaves
// the state untouched.
func ApplyAmplitudeDamping(rho *quantum.DensityMatrix, wire int, gamma float64) error {
	if gamma <= 0 {
		return nil
	}
	return rho.ApplyKraus(Expand(AmplitudeDamping(gamma), wire, rho.NumQubits()))
}

// ApplyDephasing applies dephasing to wire. A rate ≤ 0 leaves the state untouched.
func ApplyDephasing(rho *quantum.DensityMatrix, wire int, lambda float64) error {
	if lambda <= 0 {
		return nil
	}
	return rho.ApplyKraus(Expand(Dephasing(lambda), wire, rho.NumQubits()))
}

// ApplyDepolarizing applies depolarizing noise to wire. A rate ≤ 0 leaves the
// state untouched.
func ApplyDepolarizing(rho *quantum.DensityMatrix, wire int, p float64) error {
	if p <= 0 {
		return nil
	}
	return rho.ApplyKraus(Expand(Depolarizing(p), wire, rho.NumQubits()))
}
