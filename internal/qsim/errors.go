package qsim

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownGate matches every *UnknownGateError via errors.Is
	ErrUnknownGate = errors.New("qsim: unknown gate")
	// ErrArityMismatch matches every *ArityMismatchError via errors.Is
	ErrArityMismatch = errors.New("qsim: arity mismatch")
	// ErrInvalidWire matches every *WireError via errors.Is
	ErrInvalidWire = errors.New("qsim: invalid wire")
	// ErrInvalidQubitCount is returned for a register size outside [1, MaxQubits]
	// or a circuit sized for a different register
	ErrInvalidQubitCount = errors.New("qsim: invalid qubit count")
)

// UnknownGateError reports a gate name outside the catalog
type UnknownGateError struct {
	Name string
}

func (e *UnknownGateError) Error() string {
	return fmt.Sprintf("unknown gate: %s", e.Name)
}

// Is lets errors.Is(err, ErrUnknownGate) match
func (e *UnknownGateError) Is(target error) bool {
	return target == ErrUnknownGate
}

// ArityMismatchError reports a wrong number of wires or parameters for a gate
type ArityMismatchError struct {
	Gate string
	// Operand is "wires" or "params"
	Operand  string
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s requires %d %s, got %d", e.Gate, e.Expected, e.Operand, e.Actual)
}

// Is lets errors.Is(err, ErrArityMismatch) match
func (e *ArityMismatchError) Is(target error) bool {
	return target == ErrArityMismatch
}

// WireError reports a gate wire outside the register or a wire used twice
type WireError struct {
	Gate      string
	Wire      int
	NumQubits int
	Duplicate bool
}

func (e *WireError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("%s uses wire %d more than once", e.Gate, e.Wire)
	}
	return fmt.Sprintf("%s wire %d out of range for %d qubits", e.Gate, e.Wire, e.NumQubits)
}

// Is lets errors.Is(err, ErrInvalidWire) match
func (e *WireError) Is(target error) bool {
	return target == ErrInvalidWire
}
