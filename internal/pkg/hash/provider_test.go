package hash

import (
	"bytes"
	"errors"
	"testing"
)

// brokenAlgorithm fails its self-test so provider probing must skip it.
type brokenAlgorithm struct{}

func (brokenAlgorithm) ID() string { return "broken" }

func (brokenAlgorithm) Hash(string, int) (Record, error) {
	return Record{}, errors.New("library not functional")
}

func (brokenAlgorithm) Verify(string, Record) (bool, error) {
	return false, errors.New("library not functional")
}

func newTestProvider(t *testing.T) *Provider {
	t.Helper()

	p, err := NewProvider(Config{Cost: MinCost})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func TestProviderHashVerifyRoundTrip(t *testing.T) {
	p := newTestProvider(t)

	rec, err := p.Hash("Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if rec.AlgorithmID != p.Primary() {
		t.Fatalf("record algorithm = %q, want primary %q", rec.AlgorithmID, p.Primary())
	}

	ok, err := p.Verify("Tr0ub4dor&3", rec)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("correct password did not verify")
	}

	ok, err = p.Verify("wrong", rec)
	if err != nil {
		t.Fatalf("verify wrong password: %v", err)
	}
	if ok {
		t.Fatal("wrong password verified")
	}
}

func TestProviderSaltsDifferPerCall(t *testing.T) {
	p := newTestProvider(t)

	first, err := p.Hash("same-password")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	second, err := p.Hash("same-password")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}

	if bytes.Equal(first.Salt, second.Salt) {
		t.Fatal("two hashes of the same password reused a salt")
	}

	for _, rec := range []Record{first, second} {
		ok, err := p.Verify("same-password", rec)
		if err != nil || !ok {
			t.Fatalf("record did not verify: ok=%v err=%v", ok, err)
		}
	}
}

func TestProviderRejectsEmptyPlaintext(t *testing.T) {
	p := newTestProvider(t)

	if _, err := p.Hash(""); !errors.Is(err, ErrEmptyPlaintext) {
		t.Fatalf("err = %v, want ErrEmptyPlaintext", err)
	}
}

func TestProviderRejectsCostOutOfRange(t *testing.T) {
	for _, cost := range []int{-1, MinCost - 1, MaxCost + 1} {
		if _, err := NewProvider(Config{Cost: cost}); !errors.Is(err, ErrInvalidCost) {
			t.Fatalf("cost %d: err = %v, want ErrInvalidCost", cost, err)
		}
	}

	// Zero means "use the default", not an invalid cost.
	p, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("zero cost: %v", err)
	}
	if p.Cost() != DefaultCost {
		t.Fatalf("zero cost resolved to %d, want %d", p.Cost(), DefaultCost)
	}
}

func TestProviderUnknownAlgorithmFailsClosed(t *testing.T) {
	p := newTestProvider(t)

	rec, err := p.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	rec.AlgorithmID = "unknown-v9"

	ok, err := p.Verify("secret", rec)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("err = %v, want ErrUnknownAlgorithm", err)
	}
	if ok {
		t.Fatal("unknown algorithm reported a match")
	}
}

func TestProviderFallsBackWhenPrimaryProbeFails(t *testing.T) {
	p, err := NewProvider(Config{Cost: MinCost}, brokenAlgorithm{}, NewArgon2id())
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	if p.Primary() != argon2idID {
		t.Fatalf("primary = %q, want %q", p.Primary(), argon2idID)
	}

	rec, err := p.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if rec.AlgorithmID != argon2idID {
		t.Fatalf("record algorithm = %q, want %q", rec.AlgorithmID, argon2idID)
	}
}

func TestProviderNoBackend(t *testing.T) {
	if _, err := NewProvider(Config{Cost: MinCost}, brokenAlgorithm{}); !errors.Is(err, ErrNoBackend) {
		t.Fatalf("err = %v, want ErrNoBackend", err)
	}
}

func TestProviderVerifiesFallbackRecordsAfterPrimaryChange(t *testing.T) {
	// A record produced while argon2id was primary must keep verifying on a
	// provider whose primary is bcrypt.
	fallbackOnly, err := NewProvider(Config{Cost: MinCost}, NewArgon2id())
	if err != nil {
		t.Fatalf("new argon2id-only provider: %v", err)
	}
	rec, err := fallbackOnly.Hash("old-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	p := newTestProvider(t)
	if p.Primary() != bcryptID {
		t.Fatalf("primary = %q, want %q", p.Primary(), bcryptID)
	}

	ok, err := p.Verify("old-password", rec)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("fallback-produced record no longer verifies")
	}
}

func TestBcryptVerifyMalformedRecord(t *testing.T) {
	b := NewBcrypt()

	ok, err := b.Verify("secret", Record{AlgorithmID: bcryptID, Cost: MinCost, Salt: []byte("short"), Digest: []byte("short")})
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("err = %v, want ErrMalformedRecord", err)
	}
	if ok {
		t.Fatal("malformed record reported a match")
	}
}
