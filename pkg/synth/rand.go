package synth

import (
	"encoding/binary"
	mathrand "math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

// source is where a Synthesizer draws randomness from. With a nil rng it
// falls back to the global math/rand/v2 source, which is safe for
// concurrent use. A seeded rng is shared, so draws from it are serialized.
type source struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

func newSeededSource(seed uint64) *source {
	return &source{rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// intN returns a random int in [0, n). n <= 0 returns 0.
func (s *source) intN(n int) int {
	if n <= 0 {
		return 0
	}
	if s.rng == nil {
		return mathrand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// float64 returns a random float64 in [0, 1).
func (s *source) float64() float64 {
	if s.rng == nil {
		return mathrand.Float64()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *source) uint64() uint64 {
	if s.rng == nil {
		return mathrand.Uint64()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64()
}

// Read fills p from the source so it can feed uuid.NewRandomFromReader.
func (s *source) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], s.uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// uuid returns a version 4 UUID. Unseeded sources use crypto/rand; seeded
// sources draw the bytes from the PRNG so fixtures are reproducible.
func (s *source) uuid() string {
	if s.rng == nil {
		return uuid.NewString()
	}
	id, err := uuid.NewRandomFromReader(s)
	if err != nil {
		// Read never fails.
		return uuid.NewString()
	}
	return id.String()
}

// pick returns a random element of list.
func pick[T any](s *source, list []T) T {
	return list[s.intN(len(list))]
}

func (s *source) digits(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + s.intN(10))
	}
	return string(buf)
}
