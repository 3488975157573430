package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestRandBytes_LengthAndUniqueness(t *testing.T) {
	t.Parallel()

	const n = 64
	a, err := RandBytes(n)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	if len(a) != n {
		t.Fatalf("len=%d, want=%d", len(a), n)
	}
	b, err := RandBytes(n)
	if err != nil {
		t.Fatalf("RandBytes(2): %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two subsequent RandBytes(%d) are equal", n)
	}
}

func TestEncodePassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	e1, err := EncodePassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("EncodePassword: %v", err)
	}
	e2, err := EncodePassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("EncodePassword(2): %v", err)
	}
	if e1 == e2 {
		t.Fatalf("same encoding for two calls, salt not fresh")
	}
	if !strings.Contains(e1, "$") {
		t.Fatalf("encoded form %q lacks salt separator", e1)
	}
}

func TestMatchesPassword(t *testing.T) {
	t.Parallel()

	encoded, err := EncodePassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("EncodePassword: %v", err)
	}

	if !MatchesPassword("correct horse battery staple", encoded) {
		t.Fatalf("expected match for correct password")
	}
	if MatchesPassword("wrong", encoded) {
		t.Fatalf("expected mismatch for wrong password")
	}
	if MatchesPassword("anything", "not-an-encoded-value") {
		t.Fatalf("expected mismatch for malformed encoding")
	}
	if MatchesPassword("anything", "!!$!!") {
		t.Fatalf("expected mismatch for undecodable parts")
	}
}
