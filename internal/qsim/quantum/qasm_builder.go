package quantum

import (
	"fmt"
	"strconv"
	"strings"
)

// Instruction is one gate application in catalog naming
type Instruction struct {
	Name   string    `json:"name"`
	Wires  []int     `json:"wires"`
	Params []float64 `json:"params,omitempty"`
}

// QASMBuilder builds OpenQASM 2.0 circuits
type QASMBuilder struct {
	version      string
	includeStmt  string
	registers    []string
	gates        []string
	measurements []string
}

// qasmNames maps catalog names to their qelib1.inc spelling
var qasmNames = map[string]string{
	"X":          "x",
	"PauliX":     "x",
	"Y":          "y",
	"PauliY":     "y",
	"Z":          "z",
	"PauliZ":     "z",
	"H":          "h",
	"Hadamard":   "h",
	"I":          "id",
	"Identity":   "id",
	"RX":         "rx",
	"RY":         "ry",
	"RZ":         "rz",
	"CNOT":       "cx",
	"CX":         "cx",
	"CZ":         "cz",
	"DDSequence": "dd",
}

// NewQASMBuilder creates a new OpenQASM circuit builder
func NewQASMBuilder(numQubits int, numClassical int) *QASMBuilder {
	builder := &QASMBuilder{
		version:      "OPENQASM 2.0;",
		includeStmt:  "include \"qelib1.inc\";",
		registers:    make([]string, 0),
		gates:        make([]string, 0),
		measurements: make([]string, 0),
	}

	builder.registers = append(builder.registers,
		fmt.Sprintf("qreg q[%d];", numQubits),
		fmt.Sprintf("creg c[%d];", numClassical),
	)

	return builder
}

// AddGate adds a raw QASM gate statement
func (b *QASMBuilder) AddGate(gate string) {
	b.gates = append(b.gates, gate)
}

// AddInstruction renders a catalog instruction as a QASM statement
func (b *QASMBuilder) AddInstruction(inst Instruction) error {
	name, ok := qasmNames[inst.Name]
	if !ok {
		return fmt.Errorf("gate %q has no OpenQASM form", inst.Name)
	}

	var stmt strings.Builder
	stmt.WriteString(name)
	if len(inst.Params) > 0 {
		params := make([]string, len(inst.Params))
		for i, p := range inst.Params {
			params[i] = strconv.FormatFloat(p, 'g', -1, 64)
		}
		stmt.WriteString("(" + strings.Join(params, ",") + ")")
	}

	args := make([]string, len(inst.Wires))
	for i, w := range inst.Wires {
		args[i] = fmt.Sprintf("q[%d]", w)
	}
	stmt.WriteString(" " + strings.Join(args, ",") + ";")

	b.AddGate(stmt.String())
	return nil
}

// AddMeasurement adds a measurement operation
func (b *QASMBuilder) AddMeasurement(qubit int, classical int) {
	b.measurements = append(b.measurements,
		fmt.Sprintf("measure q[%d] -> c[%d];", qubit, classical))
}

// Build generates the complete QASM circuit string
func (b *QASMBuilder) Build() string {
	var circuit strings.Builder

	circuit.WriteString(b.version + "\n")
	circuit.WriteString(b.includeStmt + "\n")
	circuit.WriteString("\n")

	for _, reg := range b.registers {
		circuit.WriteString(reg + "\n")
	}
	circuit.WriteString("\n")

	for _, gate := range b.gates {
		circuit.WriteString(gate + "\n")
	}
	circuit.WriteString("\n")

	for _, meas := range b.measurements {
		circuit.WriteString(meas + "\n")
	}

	return circuit.String()
}

// BuildBellPairCircuit creates a Bell pair circuit |Φ+⟩ = (|00⟩ + |11⟩)/√2
func BuildBellPairCircuit() string {
	builder := NewQASMBuilder(2, 2)

	builder.AddGate("h q[0];")
	builder.AddGate("cx q[0],q[1];")

	builder.AddMeasurement(0, 0)
	builder.AddMeasurement(1, 1)

	return builder.Build()
}

// BuildGHZStateCircuit creates a GHZ state (|0...0⟩ + |1...1⟩)/√2
func BuildGHZStateCircuit(numQubits int) (string, error) {
	if numQubits < 2 {
		return "", fmt.Errorf("GHZ state requires at least 2 qubits")
	}

	builder := NewQASMBuilder(numQubits, numQubits)

	builder.AddGate("h q[0];")
	for i := 1; i < numQubits; i++ {
		builder.AddGate(fmt.Sprintf("cx q[0],q[%d];", i))
	}

	for i := 0; i < numQubits; i++ {
		builder.AddMeasurement(i, i)
	}

	return builder.Build(), nil
}
