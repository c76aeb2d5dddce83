package noise

import (
	"fmt"
	"math"
	"testing"

	"github.com/jaskrrish/Go-QSim/internal/qsim/quantum"
)

const tol = 1e-10

// completeness returns Σ Kᵢ†Kᵢ
func completeness(t *testing.T, ops []quantum.Matrix) quantum.Matrix {
	t.Helper()

	sum := quantum.NewMatrix(ops[0].Rows(), ops[0].Cols())
	for _, k := range ops {
		term, err := k.Adjoint().Mul(k)
		if err != nil {
			t.Fatalf("Mul failed: %v", err)
		}
		if err := sum.AddInPlace(term); err != nil {
			t.Fatalf("AddInPlace failed: %v", err)
		}
	}
	return sum
}

func TestKrausCompleteness(t *testing.T) {
	channels := []struct {
		name  string
		build func(float64) []quantum.Matrix
	}{
		{"AmplitudeDamping", AmplitudeDamping},
		{"Dephasing", Dephasing},
		{"Depolarizing", Depolarizing},
	}
	rates := []float64{0, 0.01, 0.25, 0.5, 0.9, 1}

	for _, ch := range channels {
		for _, rate := range rates {
			t.Run(fmt.Sprintf("%s(%g)", ch.name, rate), func(t *testing.T) {
				ops := ch.build(rate)
				if !completeness(t, ops).ApproxEqual(quantum.Identity(), tol) {
					t.Errorf("single-qubit set is not trace preserving")
				}

				for wire := 0; wire < 3; wire++ {
					full := Expand(ops, wire, 3)
					if !completeness(t, full).ApproxEqual(quantum.IdentityMatrix(8), tol) {
						t.Errorf("set expanded onto wire %d is not trace preserving", wire)
					}
				}
			})
		}
	}
}

func TestAmplitudeDampingDecaysExcitedState(t *testing.T) {
	rho := quantum.NewDensityMatrix(1)
	if err := rho.ApplyUnitary(quantum.PauliX()); err != nil {
		t.Fatalf("ApplyUnitary failed: %v", err)
	}

	if err := ApplyAmplitudeDamping(rho, 0, 0.3); err != nil {
		t.Fatalf("ApplyAmplitudeDamping failed: %v", err)
	}

	probs := rho.Probabilities()
	if math.Abs(probs[0]-0.3) > tol || math.Abs(probs[1]-0.7) > tol {
		t.Errorf("expected [0.3 0.7], got %v", probs)
	}
}

func TestDephasingShrinksCoherence(t *testing.T) {
	rho := quantum.NewDensityMatrix(1)
	if err := rho.ApplyUnitary(quantum.Hadamard()); err != nil {
		t.Fatalf("ApplyUnitary failed: %v", err)
	}

	if err := ApplyDephasing(rho, 0, 0.25); err != nil {
		t.Fatalf("ApplyDephasing failed: %v", err)
	}

	// off-diagonals scale by (1 − 2λ)
	if math.Abs(real(rho.At(0, 1))-0.25) > tol {
		t.Errorf("expected ρ(0,1)=0.25, got %v", rho.At(0, 1))
	}
	if math.Abs(real(rho.At(0, 0))-0.5) > tol {
		t.Errorf("dephasing changed populations: %v", rho.Probabilities())
	}
}

func TestDepolarizingFullyMixes(t *testing.T) {
	rho := quantum.NewDensityMatrix(1)
	if err := ApplyDepolarizing(rho, 0, 1); err != nil {
		t.Fatalf("ApplyDepolarizing failed: %v", err)
	}

	if math.Abs(rho.Purity()-0.5) > tol {
		t.Errorf("expected maximally mixed state, purity %f", rho.Purity())
	}
}

func TestZeroRateIsNoOp(t *testing.T) {
	apply := []struct {
		name string
		fn   func(*quantum.DensityMatrix, int, float64) error
	}{
		{"AmplitudeDamping", ApplyAmplitudeDamping},
		{"Dephasing", ApplyDephasing},
		{"Depolarizing", ApplyDepolarizing},
	}

	for _, a := range apply {
		for _, rate := range []float64{0, -0.5} {
			t.Run(fmt.Sprintf("%s(%g)", a.name, rate), func(t *testing.T) {
				rho := quantum.NewDensityMatrix(2)
				if err := rho.ApplyUnitary(quantum.EmbedSingleQubit(quantum.Hadamard(), 1, 2)); err != nil {
					t.Fatalf("ApplyUnitary failed: %v", err)
				}
				before := rho.Matrix()

				if err := a.fn(rho, 1, rate); err != nil {
					t.Fatalf("apply failed: %v", err)
				}
				if !rho.Matrix().ApproxEqual(before, 0) {
					t.Error("state changed for a non-positive rate")
				}
			})
		}
	}
}

func TestIdleNoise(t *testing.T) {
	t.Run("Rates", func(t *testing.T) {
		gamma, lambda := IdleRates(false)
		if gamma != IdleGamma || lambda != IdleLambda {
			t.Errorf("unexpected unprotected rates %g, %g", gamma, lambda)
		}
		gamma, lambda = IdleRates(true)
		if math.Abs(gamma-0.01) > tol || math.Abs(lambda-0.004) > tol {
			t.Errorf("unexpected protected rates %g, %g", gamma, lambda)
		}
	})

	t.Run("Protection preserves purity", func(t *testing.T) {
		purity := make(map[bool]float64)
		for _, protected := range []bool{false, true} {
			rho := quantum.NewDensityMatrix(1)
			if err := rho.ApplyUnitary(quantum.Hadamard()); err != nil {
				t.Fatalf("ApplyUnitary failed: %v", err)
			}
			for i := 0; i < 10; i++ {
				if err := ApplyIdleNoise(rho, 0, protected); err != nil {
					t.Fatalf("ApplyIdleNoise failed: %v", err)
				}
			}
			if math.Abs(real(rho.Trace())-1) > tol {
				t.Errorf("protected=%v: trace drifted to %v", protected, rho.Trace())
			}
			purity[protected] = rho.Purity()
		}

		if purity[true] <= purity[false] {
			t.Errorf("expected protected purity %f > unprotected %f", purity[true], purity[false])
		}
	})

	t.Run("Equals amplitude damping composed with dephasing", func(t *testing.T) {
		// |−⟩ has both excited population and coherence, so each channel acts
		rho := quantum.NewDensityMatrix(1)
		for _, u := range []quantum.Matrix{quantum.PauliX(), quantum.Hadamard()} {
			if err := rho.ApplyUnitary(u); err != nil {
				t.Fatalf("ApplyUnitary failed: %v", err)
			}
		}

		manual := rho.Clone()
		if err := ApplyAmplitudeDamping(manual, 0, IdleGamma); err != nil {
			t.Fatal(err)
		}
		if err := ApplyDephasing(manual, 0, IdleLambda); err != nil {
			t.Fatal(err)
		}

		if err := ApplyIdleNoise(rho, 0, false); err != nil {
			t.Fatal(err)
		}
		if !rho.Matrix().ApproxEqual(manual.Matrix(), tol) {
			t.Error("idle noise does not match amplitude damping composed with dephasing")
		}
	})
}
