package qsim

import (
	"fmt"
	"time"

	"github.com/jaskrrish/Go-QSim/internal/qsim/noise"
	"github.com/jaskrrish/Go-QSim/internal/qsim/quantum"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// MaxQubits caps the register size; the dense 2^n×2^n representation grows
// as 4^n. It matches the OpenQASM import limit.
const MaxQubits = quantum.MaxProgramQubits

// Simulator evolves one density matrix under gates and noise channels.
// It holds no locks: concurrent callers need one Simulator per circuit.
type Simulator struct {
	state     *quantum.DensityMatrix
	numQubits int
	src       rand.Source
}

// NewSimulator creates a simulator in |0…0⟩ with a time-seeded entropy source
func NewSimulator(numQubits int) (*Simulator, error) {
	return NewSimulatorWithSource(numQubits, rand.NewSource(uint64(time.Now().UnixNano())))
}

// NewSimulatorWithSource creates a simulator whose measurements draw from src
func NewSimulatorWithSource(numQubits int, src rand.Source) (*Simulator, error) {
	if numQubits < 1 || numQubits > MaxQubits {
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidQubitCount, numQubits, MaxQubits)
	}

	return &Simulator{
		state:     quantum.NewDensityMatrix(numQubits),
		numQubits: numQubits,
		src:       src,
	}, nil
}

// NumQubits returns the register size
func (s *Simulator) NumQubits() int {
	return s.numQubits
}

// SetSource replaces the entropy source used by Measure
func (s *Simulator) SetSource(src rand.Source) {
	s.src = src
}

// Reset discards the current state and returns to |0…0⟩
func (s *Simulator) Reset() {
	s.state = quantum.NewDensityMatrix(s.numQubits)
}

// State returns a copy of the density matrix
func (s *Simulator) State() *quantum.DensityMatrix {
	return s.state.Clone()
}

// ApplyGate applies a catalog gate. The request is fully validated before any
// matrix is built, so on error the state is unchanged.
func (s *Simulator) ApplyGate(name string, wires []int, params []float64) error {
	kind, err := ResolveGate(name)
	if err != nil {
		return err
	}
	return s.ApplyGateKind(kind, wires, params)
}

// ApplyGateKind applies an already resolved gate
func (s *Simulator) ApplyGateKind(kind GateKind, wires []int, params []float64) error {
	if err := kind.Validate(wires, params, s.numQubits); err != nil {
		return err
	}
	if kind == GateI {
		return nil
	}
	return s.state.ApplyUnitary(kind.Unitary(wires, params, s.numQubits))
}

// ApplyNoise applies the idle-window policy to wire. An out-of-range wire is
// ignored, as for every noise operation.
func (s *Simulator) ApplyNoise(wire int, protected bool) error {
	if !s.validWire(wire) {
		return nil
	}
	return noise.ApplyIdleNoise(s.state, wire, protected)
}

// ApplyAmplitudeDamping applies T1 relaxation with rate gamma to wire
func (s *Simulator) ApplyAmplitudeDamping(wire int, gamma float64) error {
	if !s.validWire(wire) {
		return nil
	}
	return noise.ApplyAmplitudeDamping(s.state, wire, gamma)
}

// ApplyPhaseDamping applies T2 dephasing with rate lambda to wire
func (s *Simulator) ApplyPhaseDamping(wire int, lambda float64) error {
	if !s.validWire(wire) {
		return nil
	}
	return noise.ApplyDephasing(s.state, wire, lambda)
}

// ApplyDepolarizing applies depolarizing noise with rate p to wire
func (s *Simulator) ApplyDepolarizing(wire int, p float64) error {
	if !s.validWire(wire) {
		return nil
	}
	return noise.ApplyDepolarizing(s.state, wire, p)
}

// Measure samples one bitstring from the diagonal distribution. The state is
// not collapsed: repeated calls resample the same ensemble.
func (s *Simulator) Measure() quantum.Outcome {
	return s.sampler()()
}

// MeasureShots draws n independent samples
func (s *Simulator) MeasureShots(n int) []quantum.Outcome {
	if n <= 0 {
		return []quantum.Outcome{}
	}

	draw := s.sampler()
	shots := make([]quantum.Outcome, n)
	for i := range shots {
		shots[i] = draw()
	}
	return shots
}

// sampler freezes the current distribution into a categorical draw
func (s *Simulator) sampler() func() quantum.Outcome {
	probs := s.state.Probabilities()

	// renormalise against floating drift in the trace
	total := floats.Sum(probs)
	if total <= 0 {
		ground := quantum.DecodeOutcome(0, s.numQubits)
		return func() quantum.Outcome { return ground }
	}
	floats.Scale(1/total, probs)

	dist := distuv.NewCategorical(probs, s.src)
	return func() quantum.Outcome {
		return quantum.DecodeOutcome(int(dist.Rand()), s.numQubits)
	}
}

// Probabilities returns the computational-basis distribution
func (s *Simulator) Probabilities() []float64 {
	return s.state.Probabilities()
}

// MarginalProbabilities returns the distribution over the given wires, the
// first listed wire being the most significant bit of the result index
func (s *Simulator) MarginalProbabilities(wires []int) ([]float64, error) {
	for i, w := range wires {
		if !s.validWire(w) {
			return nil, &WireError{Gate: "marginal", Wire: w, NumQubits: s.numQubits}
		}
		for _, prev := range wires[:i] {
			if prev == w {
				return nil, &WireError{Gate: "marginal", Wire: w, NumQubits: s.numQubits, Duplicate: true}
			}
		}
	}

	full := s.state.Probabilities()
	marginal := make([]float64, 1<<len(wires))
	for idx, p := range full {
		sub := 0
		for _, w := range wires {
			sub = sub<<1 | (idx>>(s.numQubits-1-w))&1
		}
		marginal[sub] += p
	}
	return marginal, nil
}

// ExpectationValue returns Re Tr(O·ρ) for a full-register observable.
// Hermiticity of O is assumed.
func (s *Simulator) ExpectationValue(observable quantum.Matrix) (float64, error) {
	dim := s.state.Dim()
	if observable.Rows() != dim || observable.Cols() != dim {
		return 0, fmt.Errorf("%w: observable is %dx%d, state is %dx%d",
			quantum.ErrDimensionMismatch, observable.Rows(), observable.Cols(), dim, dim)
	}

	var tr complex128
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			tr += observable.At(i, j) * s.state.At(j, i)
		}
	}
	return real(tr), nil
}

// ExpectationPauli returns the expectation of a Pauli word such as "ZZ",
// one letter per wire
func (s *Simulator) ExpectationPauli(word string) (float64, error) {
	if len(word) != s.numQubits {
		return 0, fmt.Errorf("%w: Pauli word %q has %d letters for %d qubits",
			quantum.ErrDimensionMismatch, word, len(word), s.numQubits)
	}

	obs, err := quantum.PauliString(word)
	if err != nil {
		return 0, err
	}
	return s.ExpectationValue(obs)
}

// GetMetrics returns (Re Tr ρ, purity) for diagnostics
func (s *Simulator) GetMetrics() (trace, purity float64) {
	return real(s.state.Trace()), s.state.Purity()
}

// DensityMatrix returns ρ flattened row-major as parallel real/imaginary slices
func (s *Simulator) DensityMatrix() (re, im []float64) {
	return s.state.Flatten()
}

func (s *Simulator) validWire(wire int) bool {
	return wire >= 0 && wire < s.numQubits
}
