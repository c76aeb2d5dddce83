package quantum

import (
	"fmt"
	"strings"
)

// PauliString builds the full-system observable for a Pauli word such as "ZZI".
// Character i acts on wire i; accepted letters are I, X, Y, Z and H.
func PauliString(word string) (Matrix, error) {
	if word == "" {
		return Matrix{}, fmt.Errorf("empty Pauli word")
	}

	var result Matrix
	for i, r := range strings.ToUpper(word) {
		factor, err := pauliFactor(r)
		if err != nil {
			return Matrix{}, fmt.Errorf("position %d: %w", i, err)
		}
		if i == 0 {
			result = factor
			continue
		}
		result = Kron(result, factor)
	}

	return result, nil
}

// SingleWireObservable lifts a named single-qubit observable onto wire
func SingleWireObservable(name string, wire, numQubits int) (Matrix, error) {
	var op Matrix
	switch name {
	case "PauliX", "X":
		op = PauliX()
	case "PauliY", "Y":
		op = PauliY()
	case "PauliZ", "Z":
		op = PauliZ()
	case "Hadamard", "H":
		op = Hadamard()
	case "Identity", "I":
		op = Identity()
	default:
		return Matrix{}, fmt.Errorf("unknown observable %q", name)
	}

	if wire < 0 || wire >= numQubits {
		return Matrix{}, fmt.Errorf("wire %d out of range for %d qubits", wire, numQubits)
	}

	return EmbedSingleQubit(op, wire, numQubits), nil
}

func pauliFactor(r rune) (Matrix, error) {
	switch r {
	case 'I':
		return Identity(), nil
	case 'X':
		return PauliX(), nil
	case 'Y':
		return PauliY(), nil
	case 'Z':
		return PauliZ(), nil
	case 'H':
		return Hadamard(), nil
	default:
		return Matrix{}, fmt.Errorf("unknown Pauli letter %q", r)
	}
}
