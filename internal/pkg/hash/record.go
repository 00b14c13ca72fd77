package hash

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Work factor bounds shared by all algorithms. Each algorithm interprets the
// cost its own way (bcrypt rounds, argon2id iterations).
const (
	MinCost     = 4
	MaxCost     = 31
	DefaultCost = 12
)

// Sentinel errors returned by hashing operations. Compare with errors.Is.
var (
	// ErrEmptyPlaintext is returned when an empty password is offered for hashing.
	ErrEmptyPlaintext = errors.New("hash: plaintext must not be empty")

	// ErrInvalidCost is returned when the configured work factor is outside [MinCost, MaxCost].
	ErrInvalidCost = errors.New("hash: cost out of range")

	// ErrUnknownAlgorithm is returned when a record names an algorithm no
	// registered implementation can handle. Verification fails closed.
	ErrUnknownAlgorithm = errors.New("hash: unknown algorithm")

	// ErrNoBackend is returned when no hashing implementation passes its
	// self-test. There is no safe degradation from this state.
	ErrNoBackend = errors.New("hash: no hashing backend available")

	// ErrMalformedRecord is returned when an encoded record cannot be parsed.
	ErrMalformedRecord = errors.New("hash: malformed record")
)

// Record is the persisted, non-reversible representation of a password.
//
// The four fields fully determine verifiability; no plaintext is retained.
// Salt and Digest are opaque to everything outside the producing algorithm.
type Record struct {
	AlgorithmID string
	Cost        int
	Salt        []byte
	Digest      []byte
}

// Encode serialises the record as "algorithmId$cost$salt$digest" with salt and
// digest in unpadded base64. The format is stable and round-trips losslessly.
func (r Record) Encode() string {
	return fmt.Sprintf("%s$%d$%s$%s",
		r.AlgorithmID,
		r.Cost,
		base64.RawStdEncoding.EncodeToString(r.Salt),
		base64.RawStdEncoding.EncodeToString(r.Digest),
	)
}

// ParseRecord decodes the string form produced by Encode.
func ParseRecord(s string) (Record, error) {
	parts := strings.Split(s, "$")
	if len(parts) != 4 {
		return Record{}, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformedRecord, len(parts))
	}

	if parts[0] == "" {
		return Record{}, fmt.Errorf("%w: empty algorithm id", ErrMalformedRecord)
	}

	cost, err := strconv.Atoi(parts[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad cost %q", ErrMalformedRecord, parts[1])
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad salt encoding", ErrMalformedRecord)
	}

	digest, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad digest encoding", ErrMalformedRecord)
	}

	if len(digest) == 0 {
		return Record{}, fmt.Errorf("%w: empty digest", ErrMalformedRecord)
	}

	return Record{AlgorithmID: parts[0], Cost: cost, Salt: salt, Digest: digest}, nil
}
