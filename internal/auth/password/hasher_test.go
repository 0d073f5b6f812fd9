package password

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// testHasher uses the minimum cost so the suite stays fast.
func testHasher() *BcryptHasher {
	return NewBcryptHasher(WithCost(bcrypt.MinCost))
}

func TestHashAndVerify(t *testing.T) {
	h := testHasher()

	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if err := h.Verify("secret123", hash); err != nil {
		t.Errorf("Verify failed for correct password: %v", err)
	}
	if err := h.Verify("wrong", hash); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestHashEmptyPassword(t *testing.T) {
	h := testHasher()
	if _, err := h.Hash(""); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestHashIsSalted(t *testing.T) {
	h := testHasher()

	h1, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	h2, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if h1 == h2 {
		t.Error("expected distinct salts to produce distinct hashes")
	}
	if err := h.Verify("secret123", h1); err != nil {
		t.Errorf("Verify failed against first hash: %v", err)
	}
	if err := h.Verify("secret123", h2); err != nil {
		t.Errorf("Verify failed against second hash: %v", err)
	}
}

func TestTruncationAtLimit(t *testing.T) {
	h := testHasher()

	base := strings.Repeat("a", MaxPasswordBytes)
	hash, err := h.Hash(base + "tail-one")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	// Same first 72 bytes, different tail: treated as identical.
	if err := h.Verify(base+"different-tail", hash); err != nil {
		t.Errorf("expected passwords sharing the first %d bytes to verify, got %v", MaxPasswordBytes, err)
	}

	// Difference inside the 72-byte window must fail.
	within := strings.Repeat("a", MaxPasswordBytes-1) + "b"
	if err := h.Verify(within, hash); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected mismatch for difference within truncation window, got %v", err)
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	h := testHasher()

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2b$garbage"} {
		if err := h.Verify("secret123", malformed); !errors.Is(err, ErrPasswordMismatch) {
			t.Errorf("malformed hash %q: expected ErrPasswordMismatch, got %v", malformed, err)
		}
	}
}

func TestWithCostIgnoresOutOfRange(t *testing.T) {
	h := NewBcryptHasher(WithCost(99))
	if h.cost != DefaultBcryptCost {
		t.Errorf("expected out-of-range cost to be ignored, got %d", h.cost)
	}
}

func TestConfig(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.BcryptCost != DefaultBcryptCost {
		t.Errorf("expected default cost %d, got %d", DefaultBcryptCost, cfg.BcryptCost)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	bad := Config{BcryptCost: 99}
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error for cost 99")
	}
}
