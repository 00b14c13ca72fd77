package hash

import (
	"errors"
	"fmt"
	"log/slog"
)

// Algorithm is implemented by every hashing scheme. Implementations must be
// safe for concurrent use and must compare digests in constant time.
type Algorithm interface {
	// ID returns the identifier tagged onto every record this algorithm produces.
	ID() string

	// Hash produces a record from plaintext with a fresh salt per call.
	Hash(plaintext string, cost int) (Record, error)

	// Verify reports whether plaintext matches rec. A mismatch is (false, nil);
	// an error means verification could not be attempted.
	Verify(plaintext string, rec Record) (bool, error)
}

// Config carries the hashing work factor. A zero Cost selects DefaultCost.
type Config struct {
	Cost int
}

// Provider selects a hashing algorithm for new records and dispatches
// verification by the algorithm id stored in each record.
//
// The primary algorithm is chosen once at construction by probing the
// candidates in order; the field is never written afterwards, so a Provider
// is safe for concurrent use without locking.
type Provider struct {
	cost       int
	primary    Algorithm
	algorithms map[string]Algorithm
}

// NewProvider probes candidates in preference order and caches the first one
// that passes its self-test as the producer of new records. All candidates,
// healthy or not as producers, stay registered for verification by id.
//
// With no explicit candidates the default preference is bcrypt then argon2id.
// Returns ErrInvalidCost for a work factor outside [MinCost, MaxCost] and
// ErrNoBackend when every candidate fails its probe.
func NewProvider(cfg Config, candidates ...Algorithm) (*Provider, error) {
	cost := cfg.Cost
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < MinCost || cost > MaxCost {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidCost, cost, MinCost, MaxCost)
	}

	if len(candidates) == 0 {
		candidates = []Algorithm{NewBcrypt(), NewArgon2id()}
	}

	p := &Provider{cost: cost, algorithms: make(map[string]Algorithm, len(candidates))}
	for _, alg := range candidates {
		p.algorithms[alg.ID()] = alg

		if p.primary != nil {
			continue
		}
		if err := probe(alg); err != nil {
			slog.Warn("hashing algorithm failed self-test, trying next candidate", "algorithm", alg.ID(), "error", err)
			continue
		}
		p.primary = alg
	}

	if p.primary == nil {
		return nil, ErrNoBackend
	}

	return p, nil
}

// Primary returns the id of the algorithm producing new records.
func (p *Provider) Primary() string {
	return p.primary.ID()
}

// Cost returns the configured work factor for new records.
func (p *Provider) Cost() int {
	return p.cost
}

// Hash produces a record for plaintext using the primary algorithm.
func (p *Provider) Hash(plaintext string) (Record, error) {
	if plaintext == "" {
		return Record{}, ErrEmptyPlaintext
	}

	return p.primary.Hash(plaintext, p.cost)
}

// Verify checks plaintext against rec using the algorithm the record names,
// not the cached primary. A record tagged with an id no registered algorithm
// handles yields ErrUnknownAlgorithm; it is never treated as a match.
func (p *Provider) Verify(plaintext string, rec Record) (bool, error) {
	alg, ok := p.algorithms[rec.AlgorithmID]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, rec.AlgorithmID)
	}

	return alg.Verify(plaintext, rec)
}

// probe exercises a full hash/verify round trip at minimum cost so a broken
// implementation is ruled out before it can produce unverifiable records.
func probe(alg Algorithm) error {
	const sample = "probe-sample"

	rec, err := alg.Hash(sample, MinCost)
	if err != nil {
		return err
	}

	ok, err := alg.Verify(sample, rec)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("self-test round trip did not verify")
	}

	return nil
}
