// Package pool hands out identifiers that are unique within one process.
// It keeps every ID it has issued or been told about and draws again on a
// repeat or on the null ID.
package pool

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tinyid-go/tinyid/tinyid"
)

// DefaultMaxAttempts bounds the draws spent on a single Next call.
const DefaultMaxAttempts = 64

// Generator is the part of *tinyid.Generator the pool needs.
type Generator interface {
	Random() (tinyid.ID, error)
}

// Pool issues IDs not seen before. It is safe for concurrent use.
type Pool struct {
	mu          sync.Mutex
	gen         Generator
	seen        map[tinyid.ID]struct{}
	maxAttempts int
	rerolls     uint64
}

// New returns an empty pool drawing from gen.
func New(gen Generator) *Pool {
	return &Pool{
		gen:         gen,
		seen:        make(map[tinyid.ID]struct{}),
		maxAttempts: DefaultMaxAttempts,
	}
}

// SetMaxAttempts changes the per-call draw limit. Values below 1 are ignored.
func (p *Pool) SetMaxAttempts(n int) {
	if n < 1 {
		return
	}

	p.mu.Lock()
	p.maxAttempts = n
	p.mu.Unlock()
}

// Reserve marks ids as taken so Next never returns them. Null IDs are skipped.
func (p *Pool) Reserve(ids ...tinyid.ID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range ids {
		if id.IsValid() {
			p.seen[id] = struct{}{}
		}
	}
}

// ReserveStrings decodes and reserves each entry.
func (p *Pool) ReserveStrings(texts ...string) error {
	ids := make([]tinyid.ID, 0, len(texts))

	for _, s := range texts {
		id, err := tinyid.Decode(s)
		if err != nil {
			return errors.Wrap(err, "reserve")
		}

		ids = append(ids, id)
	}

	p.Reserve(ids...)

	return nil
}

// Contains reports whether id was issued or reserved.
func (p *Pool) Contains(id tinyid.ID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.seen[id]

	return ok
}

// Len returns the number of issued and reserved IDs.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.seen)
}

// Rerolls returns how many draws were thrown away so far.
func (p *Pool) Rerolls() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.rerolls
}

// Next returns a valid ID the pool has not handed out or reserved before.
func (p *Pool) Next() (tinyid.ID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for range p.maxAttempts {
		id, err := p.gen.Random()
		if err != nil {
			return tinyid.ID{}, errors.Wrap(err, "pool draw")
		}

		if id.IsNull() {
			p.rerolls++
			log.Debug().Msg("drew the null id, drawing again")

			continue
		}

		if _, dup := p.seen[id]; dup {
			p.rerolls++
			log.Debug().Str("id", id.String()).Int("size", len(p.seen)).Msg("collision, drawing again")

			continue
		}

		p.seen[id] = struct{}{}

		return id, nil
	}

	return tinyid.ID{}, errors.Wrapf(ErrExhausted, "after %d draws", p.maxAttempts)
}
