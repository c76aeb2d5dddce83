package qsim

import (
	"errors"
	"testing"
)

// TestResolveGate tests alias resolution against the catalog
func TestResolveGate(t *testing.T) {
	tests := []struct {
		name     string
		expected GateKind
		wires    int
		params   int
	}{
		{"PauliX", GateX, 1, 0},
		{"X", GateX, 1, 0},
		{"PauliY", GateY, 1, 0},
		{"Y", GateY, 1, 0},
		{"PauliZ", GateZ, 1, 0},
		{"Z", GateZ, 1, 0},
		{"Hadamard", GateH, 1, 0},
		{"H", GateH, 1, 0},
		{"Identity", GateI, 1, 0},
		{"I", GateI, 1, 0},
		{"RX", GateRX, 1, 1},
		{"RY", GateRY, 1, 1},
		{"RZ", GateRZ, 1, 1},
		{"CNOT", GateCNOT, 2, 0},
		{"CX", GateCNOT, 2, 0},
		{"CZ", GateCZ, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ResolveGate(tt.name)
			if err != nil {
				t.Fatalf("ResolveGate failed: %v", err)
			}
			if kind != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, kind)
			}
			if kind.NumWires() != tt.wires || kind.NumParams() != tt.params {
				t.Errorf("expected arity (%d,%d), got (%d,%d)", tt.wires, tt.params, kind.NumWires(), kind.NumParams())
			}
		})
	}
}

func TestResolveUnknownGate(t *testing.T) {
	for _, name := range []string{"", "cx", "SWAP", "Toffoli", "rx"} {
		_, err := ResolveGate(name)
		if !errors.Is(err, ErrUnknownGate) {
			t.Errorf("%q: expected ErrUnknownGate, got %v", name, err)
		}

		var unknown *UnknownGateError
		if !errors.As(err, &unknown) || unknown.Name != name {
			t.Errorf("%q: expected UnknownGateError carrying the name, got %v", name, err)
		}
	}
}

func TestGateKindString(t *testing.T) {
	tests := []struct {
		kind     GateKind
		expected string
	}{
		{GateX, "PauliX"},
		{GateH, "Hadamard"},
		{GateCNOT, "CNOT"},
		{GateKind(99), "Unknown"},
		{GateKind(-1), "Unknown"},
	}

	for _, tt := range tests {
		if tt.kind.String() != tt.expected {
			t.Errorf("expected %s, got %s", tt.expected, tt.kind.String())
		}
	}
}

func TestErrorsDoNotCrossMatch(t *testing.T) {
	errs := []struct {
		err error
		own error
	}{
		{&UnknownGateError{Name: "Q"}, ErrUnknownGate},
		{&ArityMismatchError{Gate: "RX", Operand: "params", Expected: 1}, ErrArityMismatch},
		{&WireError{Gate: "X", Wire: 3, NumQubits: 2}, ErrInvalidWire},
	}
	sentinels := []error{ErrUnknownGate, ErrArityMismatch, ErrInvalidWire}

	for _, e := range errs {
		for _, s := range sentinels {
			if got := errors.Is(e.err, s); got != (s == e.own) {
				t.Errorf("errors.Is(%v, %v) = %v", e.err, s, got)
			}
		}
	}
}

func TestWireErrorMessages(t *testing.T) {
	dup := &WireError{Gate: "CZ", Wire: 1, NumQubits: 2, Duplicate: true}
	if dup.Error() != "CZ uses wire 1 more than once" {
		t.Errorf("unexpected message %q", dup.Error())
	}

	rng := &WireError{Gate: "X", Wire: 3, NumQubits: 2}
	if rng.Error() != "X wire 3 out of range for 2 qubits" {
		t.Errorf("unexpected message %q", rng.Error())
	}
}
