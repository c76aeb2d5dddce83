package qsim

import (
	"fmt"

	"github.com/jaskrrish/Go-QSim/internal/qsim/quantum"
)

// DDSequence marks an idle window protected by dynamical decoupling. It is
// not a unitary: a Device applies protected idle noise to its wires.
const DDSequence = "DDSequence"

// Circuit is an ordered list of operations on a fixed register
type Circuit struct {
	NumQubits  int                   `json:"num_qubits"`
	Operations []quantum.Instruction `json:"operations"`
}

// Telemetry summarises the structure of a circuit
type Telemetry struct {
	NumQubits     int `json:"num_qubits"`
	GateCount     int `json:"gate_count"`
	TwoQubitCount int `json:"two_qubit_count"`
	CNOTCount     int `json:"cnot_count"`
	ProtectedIdle int `json:"protected_idle"`
	Depth         int `json:"depth"`
}

// NewCircuit creates an empty circuit
func NewCircuit(numQubits int) *Circuit {
	return &Circuit{
		NumQubits:  numQubits,
		Operations: make([]quantum.Instruction, 0),
	}
}

// CircuitFromQASM converts an OpenQASM 2.0 program into a circuit
func CircuitFromQASM(src string) (*Circuit, error) {
	prog, err := quantum.ParseQASM(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse QASM: %w", err)
	}

	return &Circuit{
		NumQubits:  prog.NumQubits,
		Operations: prog.Instructions,
	}, nil
}

// Append adds an operation and returns the circuit for chaining
func (c *Circuit) Append(name string, wires []int, params ...float64) *Circuit {
	c.Operations = append(c.Operations, quantum.Instruction{
		Name:   name,
		Wires:  wires,
		Params: params,
	})
	return c
}

// Validate resolves every operation against the catalog and the register size
func (c *Circuit) Validate() error {
	if c.NumQubits < 1 || c.NumQubits > MaxQubits {
		return fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidQubitCount, c.NumQubits, MaxQubits)
	}

	for i, op := range c.Operations {
		if op.Name == DDSequence {
			if len(op.Wires) == 0 {
				return fmt.Errorf("operation %d: %w", i, &ArityMismatchError{Gate: DDSequence, Operand: "wires", Expected: 1, Actual: 0})
			}
			for _, w := range op.Wires {
				if w < 0 || w >= c.NumQubits {
					return fmt.Errorf("operation %d: %w", i, &WireError{Gate: DDSequence, Wire: w, NumQubits: c.NumQubits})
				}
			}
			continue
		}

		kind, err := ResolveGate(op.Name)
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		if err := kind.Validate(op.Wires, op.Params, c.NumQubits); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}

	return nil
}

// Telemetry counts gates and computes the depth by per-wire layering
func (c *Circuit) Telemetry() Telemetry {
	t := Telemetry{NumQubits: c.NumQubits}
	layer := make(map[int]int)

	for _, op := range c.Operations {
		if op.Name == DDSequence {
			t.ProtectedIdle++
			continue
		}

		t.GateCount++
		if len(op.Wires) == 2 {
			t.TwoQubitCount++
		}
		if kind, err := ResolveGate(op.Name); err == nil && kind == GateCNOT {
			t.CNOTCount++
		}

		next := 0
		for _, w := range op.Wires {
			next = max(next, layer[w])
		}
		next++
		for _, w := range op.Wires {
			layer[w] = next
		}
		t.Depth = max(t.Depth, next)
	}

	return t
}

// ToQASM renders the circuit as OpenQASM 2.0 with a final measurement of
// every wire
func (c *Circuit) ToQASM() (string, error) {
	builder := quantum.NewQASMBuilder(c.NumQubits, c.NumQubits)
	for i, op := range c.Operations {
		if err := builder.AddInstruction(op); err != nil {
			return "", fmt.Errorf("operation %d: %w", i, err)
		}
	}
	for w := 0; w < c.NumQubits; w++ {
		builder.AddMeasurement(w, w)
	}
	return builder.Build(), nil
}
