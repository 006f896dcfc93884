package token

import (
	"strings"
	"testing"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestIssueVerifyRoundTrip(t *testing.T) {
	c := NewCodec(testKey, "sealgate")

	tok, err := c.Issue("signer-1", "env-1")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	claims, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if claims.SignerID != "signer-1" || claims.EnvelopeID != "env-1" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	c := NewCodec(testKey, "sealgate")
	tok, err := c.Issue("signer-1", "env-1")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	// Flip a character in the payload segment.
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape %q", tok)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := c.Verify(tampered); err != ErrInvalid {
		t.Errorf("Verify(tampered) = %v, want ErrInvalid", err)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issuer := NewCodec(testKey, "sealgate")
	verifier := NewCodec([]byte("ffffffffffffffffffffffffffffffff"), "sealgate")

	tok, _ := issuer.Issue("signer-1", "env-1")
	if _, err := verifier.Verify(tok); err != ErrInvalid {
		t.Errorf("Verify(wrong key) = %v, want ErrInvalid", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	c := NewCodec(testKey, "sealgate")
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := c.Verify(tok); err != ErrInvalid {
			t.Errorf("Verify(%q) = %v, want ErrInvalid", tok, err)
		}
	}
}

func TestVerifyRejectsEmptyClaims(t *testing.T) {
	c := NewCodec(testKey, "sealgate")
	tok, err := c.Issue("", "")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := c.Verify(tok); err != ErrInvalid {
		t.Errorf("Verify(empty claims) = %v, want ErrInvalid", err)
	}
}

func TestMissingKey(t *testing.T) {
	c := NewCodec(nil, "sealgate")
	if _, err := c.Issue("s", "e"); err != ErrSigningKeyMissing {
		t.Errorf("Issue() = %v, want ErrSigningKeyMissing", err)
	}
	if _, err := c.Verify("x"); err != ErrSigningKeyMissing {
		t.Errorf("Verify() = %v, want ErrSigningKeyMissing", err)
	}
}
