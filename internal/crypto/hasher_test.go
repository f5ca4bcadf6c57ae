package crypto

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "secret1" || !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("unexpected hash format: %q", hash)
	}

	if err = h.Compare(hash, "secret1"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err = h.Compare(hash, "secret2"); err != ErrPasswordMismatch {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, _ := h.Hash("secret1")
	second, _ := h.Hash("secret1")
	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasherWithCost(bcrypt.MinCost)

	err := h.Compare("not-a-hash", "secret1")
	if err == nil || err == ErrPasswordMismatch {
		t.Errorf("expected a comparison error, got %v", err)
	}
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := NewBcryptHasherWithCost(bcrypt.MinCost)

	if _, err := h.Hash(strings.Repeat("x", 73)); err == nil {
		t.Error("expected error for password longer than 72 bytes")
	}
}
