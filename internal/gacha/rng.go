package gacha

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// RandomSource abstract

type RandomSource interface {
	Float64() float64 // [0, 1)
}

// crypto random : default generation method
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	// Read 53bit random => [0, 1)
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// back to math/rand/v2
		return rand.Float64()
	}

	// max 53
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG (e.g. Monte Carlo, tests).
// Safe for concurrent use: team members can roll from the same source.
type seededRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// SequenceRNG replays a fixed list of values, wrapping around at the end.
// Useful to drive an exact path through the generators.
type SequenceRNG struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func NewSequenceRNG(values ...float64) *SequenceRNG {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &SequenceRNG{values: values}
}

func (s *SequenceRNG) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Calls reports how many values have been consumed so far.
func (s *SequenceRNG) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// orDefault returns rng, or the crypto source when rng is nil.
func orDefault(rng RandomSource) RandomSource {
	if rng == nil {
		return DefaultRNG()
	}
	return rng
}
