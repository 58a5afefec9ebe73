package human

import "math/bits"

// Candidates is a bitmask of possible digits for one cell: bit d (1-9) set
// means digit d is still a candidate. Bit 0 is always unused.
type Candidates uint16

// AllCandidates is the full {1..9} set.
const AllCandidates Candidates = 0b1111111110

// Has reports whether digit is a candidate.
func (c Candidates) Has(digit int) bool {
	return c&(1<<uint(digit)) != 0
}

// Set returns c with digit added.
func (c Candidates) Set(digit int) Candidates {
	return c | (1 << uint(digit))
}

// Clear returns c with digit removed.
func (c Candidates) Clear(digit int) Candidates {
	return c &^ (1 << uint(digit))
}

// Count returns the number of candidates set.
func (c Candidates) Count() int {
	return bits.OnesCount16(uint16(c))
}

// Only returns the single candidate digit and true, if exactly one is set.
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for d := 1; d <= 9; d++ {
		if c.Has(d) {
			return d, true
		}
	}
	return 0, false
}

// ToSlice returns the candidates in ascending digit order.
func (c Candidates) ToSlice() []int {
	out := make([]int, 0, c.Count())
	for d := 1; d <= 9; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (c Candidates) IsEmpty() bool { return c == 0 }

func (c Candidates) Intersect(o Candidates) Candidates { return c & o }
func (c Candidates) Union(o Candidates) Candidates     { return c | o }
func (c Candidates) Subtract(o Candidates) Candidates  { return c &^ o }
func (c Candidates) Equals(o Candidates) bool          { return c == o }

// NewCandidates builds a Candidates set from a slice of digits.
func NewCandidates(digits []int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}
