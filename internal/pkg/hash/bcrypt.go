package hash

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptID = "bcrypt"

// bcrypt modular-crypt output is "$2a$NN$" followed by a 22-char salt and a
// 31-char checksum, both in bcrypt's own base64 alphabet.
const (
	bcryptSaltChars   = 22
	bcryptDigestChars = 31
)

// Bcrypt implements Algorithm using golang.org/x/crypto/bcrypt. It is the
// preferred producer of new records.
//
// The library generates its own salt and emits a single modular-crypt string;
// Hash splits that string so the Record carries salt and digest as separate
// opaque fields, and Verify reassembles it before delegating the comparison
// (which bcrypt performs in constant time).
type Bcrypt struct{}

// NewBcrypt returns the bcrypt algorithm implementation.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{}
}

// ID returns the algorithm identifier stored in records.
func (*Bcrypt) ID() string {
	return bcryptID
}

// Hash hashes plaintext at the given cost with a fresh random salt.
func (b *Bcrypt) Hash(plaintext string, cost int) (Record, error) {
	enc, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return Record{}, fmt.Errorf("bcrypt hash: %w", err)
	}

	salt, digest, err := splitBcrypt(string(enc))
	if err != nil {
		return Record{}, err
	}

	return Record{AlgorithmID: bcryptID, Cost: cost, Salt: salt, Digest: digest}, nil
}

// Verify reports whether plaintext matches the record. A malformed record is
// an error, not a mismatch.
func (b *Bcrypt) Verify(plaintext string, rec Record) (bool, error) {
	if len(rec.Salt) != bcryptSaltChars || len(rec.Digest) != bcryptDigestChars {
		return false, fmt.Errorf("%w: bad bcrypt salt/digest length", ErrMalformedRecord)
	}

	enc := fmt.Sprintf("$2a$%02d$%s%s", rec.Cost, rec.Salt, rec.Digest)

	err := bcrypt.CompareHashAndPassword([]byte(enc), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
}

func splitBcrypt(enc string) ([]byte, []byte, error) {
	parts := strings.SplitN(enc, "$", 4)
	if len(parts) != 4 || parts[0] != "" {
		return nil, nil, fmt.Errorf("%w: unexpected bcrypt output", ErrMalformedRecord)
	}

	body := parts[3]
	if len(body) != bcryptSaltChars+bcryptDigestChars {
		return nil, nil, fmt.Errorf("%w: unexpected bcrypt output length %d", ErrMalformedRecord, len(body))
	}

	return []byte(body[:bcryptSaltChars]), []byte(body[bcryptSaltChars:]), nil
}
