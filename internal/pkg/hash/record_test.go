package hash

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRecordEncodeParseRoundTrip(t *testing.T) {
	p := newTestProvider(t)

	rec, err := p.Hash("round-trip")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	parsed, err := ParseRecord(rec.Encode())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if parsed.AlgorithmID != rec.AlgorithmID || parsed.Cost != rec.Cost ||
		!bytes.Equal(parsed.Salt, rec.Salt) || !bytes.Equal(parsed.Digest, rec.Digest) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", parsed, rec)
	}

	ok, err := p.Verify("round-trip", parsed)
	if err != nil || !ok {
		t.Fatalf("parsed record did not verify: ok=%v err=%v", ok, err)
	}
}

func TestParseRecordMalformed(t *testing.T) {
	cases := map[string]string{
		"too few fields":     "bcrypt$12$c2FsdA",
		"empty algorithm id": "$12$c2FsdA$ZGlnZXN0",
		"non-numeric cost":   "bcrypt$twelve$c2FsdA$ZGlnZXN0",
		"bad salt base64":    "bcrypt$12$!!!$ZGlnZXN0",
		"bad digest base64":  "bcrypt$12$c2FsdA$!!!",
		"empty digest":       "bcrypt$12$c2FsdA$",
	}

	for name, in := range cases {
		if _, err := ParseRecord(in); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("%s: err = %v, want ErrMalformedRecord", name, err)
		}
	}
}

func TestRecordEncodeIsPrintable(t *testing.T) {
	p := newTestProvider(t)

	rec, err := p.Hash("printable")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	encoded := rec.Encode()
	if strings.Count(encoded, "$") != 3 {
		t.Fatalf("encoded record %q does not have 4 fields", encoded)
	}
	for _, r := range encoded {
		if r < '!' || r > '~' {
			t.Fatalf("encoded record contains non-printable rune %q", r)
		}
	}
}
