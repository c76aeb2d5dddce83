package quantum

import (
	"math"
	"testing"
)

func TestGatesAreUnitary(t *testing.T) {
	tests := []struct {
		name string
		gate Matrix
	}{
		{"PauliX", PauliX()},
		{"PauliY", PauliY()},
		{"PauliZ", PauliZ()},
		{"Hadamard", Hadamard()},
		{"Identity", Identity()},
		{"RX(0.7)", RX(0.7)},
		{"RY(-1.3)", RY(-1.3)},
		{"RZ(2.1)", RZ(2.1)},
		{"CNOT", CNOT()},
		{"CZ", CZ()},
		{"EmbedCNOT(2,0,3)", EmbedCNOT(2, 0, 3)},
		{"EmbedCZ(0,2,3)", EmbedCZ(0, 2, 3)},
		{"EmbedSingleQubit(RY,1,3)", EmbedSingleQubit(RY(0.4), 1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prod, err := tt.gate.Mul(tt.gate.Adjoint())
			if err != nil {
				t.Fatalf("Mul failed: %v", err)
			}
			if !prod.ApproxEqual(IdentityMatrix(tt.gate.Rows()), tol) {
				t.Errorf("%s·%s† is not the identity", tt.name, tt.name)
			}
		})
	}
}

func TestRotationsAtPi(t *testing.T) {
	// RX(π) = −i·X, RY(π) = −i·Y; equal to X and Y up to global phase
	if !RX(math.Pi).ApproxEqual(PauliX().Scale(-1i), tol) {
		t.Error("RX(π) should equal −i·X")
	}
	if !RY(math.Pi).ApproxEqual(PauliY().Scale(-1i), tol) {
		t.Error("RY(π) should equal −i·Y")
	}
	if !RZ(0).ApproxEqual(Identity(), tol) {
		t.Error("RZ(0) should be the identity")
	}
}

func TestEmbedSingleQubitWireOrder(t *testing.T) {
	// X on wire 0 of 2 qubits maps |00⟩ to |10⟩ (index 2)
	u := EmbedSingleQubit(PauliX(), 0, 2)
	if u.At(2, 0) != 1 {
		t.Error("X on wire 0 should map index 0 to index 2")
	}

	u = EmbedSingleQubit(PauliX(), 1, 2)
	if u.At(1, 0) != 1 {
		t.Error("X on wire 1 should map index 0 to index 1")
	}
}

func TestEmbedCNOTMatchesKron(t *testing.T) {
	if !EmbedCNOT(0, 1, 2).ApproxEqual(CNOT(), tol) {
		t.Error("EmbedCNOT(0,1,2) should equal the 4x4 CNOT")
	}
	if !EmbedCZ(0, 1, 2).ApproxEqual(CZ(), tol) {
		t.Error("EmbedCZ(0,1,2) should equal the 4x4 CZ")
	}
	if !EmbedCNOT(0, 1, 3).ApproxEqual(Kron(CNOT(), Identity()), tol) {
		t.Error("EmbedCNOT(0,1,3) should equal CNOT⊗I")
	}
}

func TestEmbedCNOTNonAdjacent(t *testing.T) {
	// control 0, target 2 on 3 qubits: |100⟩ (4) → |101⟩ (5)
	u := EmbedCNOT(0, 2, 3)
	tests := []struct {
		in, out int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{4, 5},
		{5, 4},
		{6, 7},
	}

	for _, tt := range tests {
		if u.At(tt.out, tt.in) != 1 {
			t.Errorf("expected |%03b⟩ → |%03b⟩", tt.in, tt.out)
		}
	}

	// reversed roles: control 2, target 0
	u = EmbedCNOT(2, 0, 3)
	if u.At(5, 1) != 1 {
		t.Error("expected |001⟩ → |101⟩ with control on wire 2")
	}
}

func TestEmbedCZSymmetric(t *testing.T) {
	if !EmbedCZ(0, 2, 3).ApproxEqual(EmbedCZ(2, 0, 3), tol) {
		t.Error("CZ should be symmetric in its wires")
	}
	u := EmbedCZ(0, 2, 3)
	if u.At(5, 5) != -1 || u.At(7, 7) != -1 || u.At(6, 6) != 1 {
		t.Error("CZ(0,2) should negate only indices with bits 0 and 2 set")
	}
}
