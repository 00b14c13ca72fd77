package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const argon2idID = "argon2id"

// Memory, parallelism and output length are fixed properties of this
// algorithm id. Changing any of them would break verification of existing
// records, so a parameter change must ship under a new id.
const (
	argon2idMemoryKB   uint32 = 19 * 1024
	argon2idThreads    uint8  = 1
	argon2idSaltLength        = 16
	argon2idKeyLength  uint32 = 32
)

// Argon2id implements Algorithm using golang.org/x/crypto/argon2. It serves
// as the fallback producer when bcrypt is unavailable, and keeps old argon2id
// records verifiable regardless of which algorithm is currently primary.
//
// The shared cost value maps to the argon2 time parameter.
type Argon2id struct{}

// NewArgon2id returns the argon2id algorithm implementation.
func NewArgon2id() *Argon2id {
	return &Argon2id{}
}

// ID returns the algorithm identifier stored in records.
func (*Argon2id) ID() string {
	return argon2idID
}

// Hash hashes plaintext at the given cost with a fresh random salt.
func (a *Argon2id) Hash(plaintext string, cost int) (Record, error) {
	salt := make([]byte, argon2idSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return Record{}, fmt.Errorf("argon2id salt: %w", err)
	}

	digest := argon2.IDKey([]byte(plaintext), salt, uint32(cost), argon2idMemoryKB, argon2idThreads, argon2idKeyLength)

	return Record{AlgorithmID: argon2idID, Cost: cost, Salt: salt, Digest: digest}, nil
}

// Verify recomputes the digest from the record's stored salt and cost and
// compares in constant time.
func (a *Argon2id) Verify(plaintext string, rec Record) (bool, error) {
	if rec.Cost < MinCost || rec.Cost > MaxCost {
		return false, fmt.Errorf("%w: bad argon2id cost %d", ErrMalformedRecord, rec.Cost)
	}
	if len(rec.Salt) == 0 || len(rec.Digest) == 0 {
		return false, fmt.Errorf("%w: empty argon2id salt or digest", ErrMalformedRecord)
	}

	computed := argon2.IDKey([]byte(plaintext), rec.Salt, uint32(rec.Cost), argon2idMemoryKB, argon2idThreads, uint32(len(rec.Digest)))

	return subtle.ConstantTimeCompare(computed, rec.Digest) == 1, nil
}
