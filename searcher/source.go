package searcher

import "golang.org/x/exp/rand"

// Source is the random stream of one search. It is consumed in a fixed order
// (selection tie-breaks, expansion picks, rollout moves, final tie-break), so a
// seed reproduces the whole run.
type Source struct {
	rng *rand.Rand
}

func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform number in [0, n), n must be positive.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *Source) Float64() float64 {
	return s.rng.Float64()
}
