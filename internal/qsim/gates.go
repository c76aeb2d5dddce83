package qsim

import "github.com/jaskrrish/Go-QSim/internal/qsim/quantum"

// GateKind enumerates the fixed gate catalog
type GateKind int

const (
	GateX GateKind = iota
	GateY
	GateZ
	GateH
	GateI
	GateRX
	GateRY
	GateRZ
	GateCNOT
	GateCZ
)

type gateSpec struct {
	name   string
	wires  int
	params int
}

var gateSpecs = [...]gateSpec{
	GateX:    {"PauliX", 1, 0},
	GateY:    {"PauliY", 1, 0},
	GateZ:    {"PauliZ", 1, 0},
	GateH:    {"Hadamard", 1, 0},
	GateI:    {"Identity", 1, 0},
	GateRX:   {"RX", 1, 1},
	GateRY:   {"RY", 1, 1},
	GateRZ:   {"RZ", 1, 1},
	GateCNOT: {"CNOT", 2, 0},
	GateCZ:   {"CZ", 2, 0},
}

var gateAliases = map[string]GateKind{
	"PauliX":   GateX,
	"X":        GateX,
	"PauliY":   GateY,
	"Y":        GateY,
	"PauliZ":   GateZ,
	"Z":        GateZ,
	"Hadamard": GateH,
	"H":        GateH,
	"Identity": GateI,
	"I":        GateI,
	"RX":       GateRX,
	"RY":       GateRY,
	"RZ":       GateRZ,
	"CNOT":     GateCNOT,
	"CX":       GateCNOT,
	"CZ":       GateCZ,
}

// ResolveGate maps a gate name or alias onto its kind
func ResolveGate(name string) (GateKind, error) {
	kind, ok := gateAliases[name]
	if !ok {
		return 0, &UnknownGateError{Name: name}
	}
	return kind, nil
}

// String returns the canonical gate name
func (k GateKind) String() string {
	if k < 0 || int(k) >= len(gateSpecs) {
		return "Unknown"
	}
	return gateSpecs[k].name
}

// NumWires returns the number of wires the gate acts on
func (k GateKind) NumWires() int {
	return gateSpecs[k].wires
}

// NumParams returns the number of real parameters the gate takes
func (k GateKind) NumParams() int {
	return gateSpecs[k].params
}

// Validate checks a request against the gate's arity and the register size
func (k GateKind) Validate(wires []int, params []float64, numQubits int) error {
	if len(wires) != k.NumWires() {
		return &ArityMismatchError{Gate: k.String(), Operand: "wires", Expected: k.NumWires(), Actual: len(wires)}
	}
	if len(params) != k.NumParams() {
		return &ArityMismatchError{Gate: k.String(), Operand: "params", Expected: k.NumParams(), Actual: len(params)}
	}

	for i, w := range wires {
		if w < 0 || w >= numQubits {
			return &WireError{Gate: k.String(), Wire: w, NumQubits: numQubits}
		}
		for _, prev := range wires[:i] {
			if prev == w {
				return &WireError{Gate: k.String(), Wire: w, NumQubits: numQubits, Duplicate: true}
			}
		}
	}

	return nil
}

// Unitary builds the full-register unitary. The request must have passed Validate.
func (k GateKind) Unitary(wires []int, params []float64, numQubits int) quantum.Matrix {
	switch k {
	case GateX:
		return quantum.EmbedSingleQubit(quantum.PauliX(), wires[0], numQubits)
	case GateY:
		return quantum.EmbedSingleQubit(quantum.PauliY(), wires[0], numQubits)
	case GateZ:
		return quantum.EmbedSingleQubit(quantum.PauliZ(), wires[0], numQubits)
	case GateH:
		return quantum.EmbedSingleQubit(quantum.Hadamard(), wires[0], numQubits)
	case GateRX:
		return quantum.EmbedSingleQubit(quantum.RX(params[0]), wires[0], numQubits)
	case GateRY:
		return quantum.EmbedSingleQubit(quantum.RY(params[0]), wires[0], numQubits)
	case GateRZ:
		return quantum.EmbedSingleQubit(quantum.RZ(params[0]), wires[0], numQubits)
	case GateCNOT:
		return quantum.EmbedCNOT(wires[0], wires[1], numQubits)
	case GateCZ:
		return quantum.EmbedCZ(wires[0], wires[1], numQubits)
	default:
		return quantum.IdentityMatrix(1 << numQubits)
	}
}
