package quantum

import "strings"

// Bit represents a classical measurement bit (0 or 1)
type Bit int

const (
	Zero Bit = 0
	One  Bit = 1
)

// Outcome is one measured bitstring; index 0 holds wire 0
type Outcome []Bit

// DecodeOutcome converts a basis index into its bitstring, wire 0 being the
// most significant bit
func DecodeOutcome(index, numQubits int) Outcome {
	out := make(Outcome, numQubits)
	for w := 0; w < numQubits; w++ {
		out[w] = Bit((index >> (numQubits - 1 - w)) & 1)
	}
	return out
}

// Index returns the basis integer encoded by the outcome
func (o Outcome) Index() int {
	idx := 0
	for _, b := range o {
		idx = idx<<1 | int(b)
	}
	return idx
}

// String renders the outcome as a bitstring such as "011"
func (o Outcome) String() string {
	var sb strings.Builder
	sb.Grow(len(o))
	for _, b := range o {
		if b == One {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Ints returns the outcome as plain integers
func (o Outcome) Ints() []int {
	out := make([]int, len(o))
	for i, b := range o {
		out[i] = int(b)
	}
	return out
}

// CountOutcomes tallies shots by bitstring, in the "counts" shape returned by
// hardware backends
func CountOutcomes(shots []Outcome) map[string]int {
	counts := make(map[string]int)
	for _, s := range shots {
		counts[s.String()]++
	}
	return counts
}

// OutcomeFrequencies converts counts into relative frequencies
func OutcomeFrequencies(counts map[string]int) map[string]float64 {
	total := 0
	for _, c := range counts {
		total += c
	}

	freqs := make(map[string]float64, len(counts))
	if total == 0 {
		return freqs
	}
	for outcome, c := range counts {
		freqs[outcome] = float64(c) / float64(total)
	}
	return freqs
}
