// Package solver enumerates block placements and drives the ray tracer
// until an arrangement satisfies every target.
package solver

import "github.com/vovakirdan/lazor/internal/core"

// Permuter lazily enumerates every distinct arrangement of the movable
// block multiset over a number of open slots. Arrangements are produced in
// lexicographic order and equal symbols are indistinguishable, so each
// distinct placement appears exactly once.
type Permuter struct {
	current []core.Block
	done    bool
}

// NewPermuter creates an enumerator for the given block counts and slot
// count. Slots not covered by the counts stay empty.
func NewPermuter(counts core.Counts, slots int) *Permuter {
	if counts.Total() > slots {
		return &Permuter{done: true}
	}

	// Ascending block order makes the initial sequence the lexicographic
	// minimum: empties first, then A, B, C.
	seq := make([]core.Block, 0, slots)
	for i := 0; i < slots-counts.Total(); i++ {
		seq = append(seq, core.BlockEmpty)
	}
	for i := 0; i < counts.Reflect; i++ {
		seq = append(seq, core.BlockReflect)
	}
	for i := 0; i < counts.Opaque; i++ {
		seq = append(seq, core.BlockOpaque)
	}
	for i := 0; i < counts.Refract; i++ {
		seq = append(seq, core.BlockRefract)
	}
	return &Permuter{current: seq}
}

// Next returns the next placement, or false when the space is exhausted.
// The returned slice is owned by the caller.
func (p *Permuter) Next() ([]core.Block, bool) {
	if p.done {
		return nil, false
	}
	out := make([]core.Block, len(p.current))
	copy(out, p.current)
	if !nextPermutation(p.current) {
		p.done = true
	}
	return out, true
}

// nextPermutation rearranges s into its lexicographic successor, skipping
// duplicates. Returns false once s is fully descending (the last one).
func nextPermutation(s []core.Block) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	for l, r := i+1, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
	return true
}

// Permutations returns the size of the placement space:
// slots! / (reflect! * opaque! * refract! * empties!).
func Permutations(counts core.Counts, slots int) uint64 {
	if counts.Total() > slots {
		return 0
	}
	n := uint64(slots)
	total := uint64(1)
	remaining := n
	for _, k := range []int{counts.Reflect, counts.Opaque, counts.Refract} {
		total *= binomial(remaining, uint64(k))
		remaining -= uint64(k)
	}
	return total
}

// binomial computes n choose k; intermediate products stay exact because
// every prefix product is divisible by the running factorial.
func binomial(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	res := uint64(1)
	for i := uint64(1); i <= k; i++ {
		res = res * (n - k + i) / i
	}
	return res
}
