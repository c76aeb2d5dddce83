package quantum

import (
	"errors"
	"testing"
)

const tol = 1e-10

func TestKron(t *testing.T) {
	t.Run("I⊗X flips the low bit", func(t *testing.T) {
		got := Kron(Identity(), PauliX())
		want := NewMatrixFromRows(4, 4,
			0, 1, 0, 0,
			1, 0, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
		)
		if !got.ApproxEqual(want, tol) {
			t.Errorf("I⊗X mismatch")
		}
	})

	t.Run("X⊗I flips the high bit", func(t *testing.T) {
		got := Kron(PauliX(), Identity())
		want := NewMatrixFromRows(4, 4,
			0, 0, 1, 0,
			0, 0, 0, 1,
			1, 0, 0, 0,
			0, 1, 0, 0,
		)
		if !got.ApproxEqual(want, tol) {
			t.Errorf("X⊗I mismatch")
		}
	})

	t.Run("Non-square operands", func(t *testing.T) {
		a := NewMatrixFromRows(1, 2, 1, 2)
		b := NewMatrixFromRows(2, 1, 3, 4)
		got := Kron(a, b)
		if got.Rows() != 2 || got.Cols() != 2 {
			t.Fatalf("expected 2x2, got %dx%d", got.Rows(), got.Cols())
		}
		want := NewMatrixFromRows(2, 2,
			3, 6,
			4, 8,
		)
		if !got.ApproxEqual(want, tol) {
			t.Errorf("Kron of row and column vectors mismatch")
		}
	})
}

func TestMatrixMul(t *testing.T) {
	x := PauliX()
	sq, err := x.Mul(x)
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	if !sq.ApproxEqual(Identity(), tol) {
		t.Error("X·X should be the identity")
	}

	_, err = x.Mul(IdentityMatrix(4))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestMatrixAdjoint(t *testing.T) {
	m := NewMatrixFromRows(2, 3,
		1, 2i, 3,
		4, 5, 6-1i,
	)
	adj := m.Adjoint()

	if adj.Rows() != 3 || adj.Cols() != 2 {
		t.Fatalf("expected 3x2, got %dx%d", adj.Rows(), adj.Cols())
	}
	if adj.At(1, 0) != -2i {
		t.Errorf("expected -2i at (1,0), got %v", adj.At(1, 0))
	}
	if adj.At(2, 1) != 6+1i {
		t.Errorf("expected 6+1i at (2,1), got %v", adj.At(2, 1))
	}
}

func TestMatrixAddAndScale(t *testing.T) {
	m := IdentityMatrix(2)
	if err := m.AddInPlace(PauliZ()); err != nil {
		t.Fatalf("AddInPlace failed: %v", err)
	}
	want := NewMatrixFromRows(2, 2,
		2, 0,
		0, 0,
	)
	if !m.ApproxEqual(want, tol) {
		t.Error("I+Z should be diag(2,0)")
	}

	if !m.Scale(0.5).ApproxEqual(NewMatrixFromRows(2, 2, 1, 0, 0, 0), tol) {
		t.Error("0.5·diag(2,0) should be diag(1,0)")
	}

	if err := m.AddInPlace(IdentityMatrix(4)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestMatrixCloneIsIndependent(t *testing.T) {
	m := IdentityMatrix(2)
	c := m.Clone()
	c.Set(0, 0, 5)

	if m.At(0, 0) != 1 {
		t.Error("modifying a clone changed the original")
	}
}

func TestNewMatrixFromRowsPanicsOnBadCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for wrong element count")
		}
	}()
	NewMatrixFromRows(2, 2, 1, 2, 3)
}
