package tinyid

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
)

// Source supplies the random bytes behind new IDs. Any io.Reader will do;
// implementations shared between goroutines must be safe for concurrent use.
type Source interface {
	io.Reader
}

// Generator produces random IDs from a Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator reading from src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Random fills all 8 bytes of a new ID from the generator's source.
//
// The null ID is not excluded: it comes up with probability 1 in 2^64, the
// same as any other pattern. Callers that must never see it should check
// IsNull and draw again.
//
// A failing or short source yields an error matching both ErrRandomSource and
// the source's own error, with the null ID, which must not be used.
func (g *Generator) Random() (ID, error) {
	var id ID

	if _, err := io.ReadFull(g.src, id[:]); err != nil {
		return ID{}, fmt.Errorf("%w: read %d bytes: %w", ErrRandomSource, Size, err)
	}

	return id, nil
}

// MustRandom is like Random but panics if the source fails.
func (g *Generator) MustRandom() ID {
	id, err := g.Random()
	if err != nil {
		panic(err)
	}

	return id
}

var defaultGenerator = NewGenerator(globalSource{}) //nolint:gochecknoglobals

// Random returns a new ID from the process-wide non-cryptographic source.
// See Generator.Random for the null caveat.
func Random() (ID, error) {
	return defaultGenerator.Random()
}

// MustRandom returns a new ID from the process-wide source and panics if the
// source fails.
func MustRandom() ID {
	return defaultGenerator.MustRandom()
}

// globalSource reads from the math/rand/v2 top-level generator, which is safe
// for concurrent use.
type globalSource struct{}

func (globalSource) Read(p []byte) (int, error) {
	return fill(p, rand.Uint64), nil
}

// SeededSource is a deterministic Source backed by a PCG generator. It is
// safe for concurrent use.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a SeededSource whose output depends only on seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))} //nolint:gosec
}

func (s *SeededSource) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fill(p, s.rng.Uint64), nil
}

// fill writes next() into p eight bytes at a time.
func fill(p []byte, next func() uint64) int {
	var word [8]byte

	for i := 0; i < len(p); i += len(word) {
		binary.BigEndian.PutUint64(word[:], next())
		copy(p[i:], word[:])
	}

	return len(p)
}
