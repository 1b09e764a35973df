package password_test

import (
	"testing"

	"github.com/taskdeck/taskdeck/internal/password"
	"golang.org/x/crypto/bcrypt"
)

// MinCost keeps the tests fast; correctness does not depend on cost.
func newHasher() *password.Hasher {
	return password.NewHasher(bcrypt.MinCost)
}

func TestHash_NeverStoresPlaintext(t *testing.T) {
	const plain = "secret1"

	hash, err := newHasher().Hash(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == plain {
		t.Fatal("hash equals the plaintext")
	}
	if hash == "" {
		t.Fatal("hash is empty")
	}
}

func TestHash_SaltsEachCall(t *testing.T) {
	h := newHasher()

	a, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same input are identical; salt is not random")
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	h := newHasher()

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !h.Verify("secret1", hash) {
		t.Error("correct password did not verify")
	}
	if h.Verify("wrong-password", hash) {
		t.Error("wrong password verified")
	}
}

func TestVerify_MalformedHash_IsNonMatch(t *testing.T) {
	h := newHasher()

	if h.Verify("secret1", "not-a-bcrypt-hash") {
		t.Error("malformed stored hash verified")
	}
	if h.Verify("secret1", "") {
		t.Error("empty stored hash verified")
	}
}

func TestNewHasher_OutOfRangeCost_FallsBackToDefault(t *testing.T) {
	h := password.NewHasher(99)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.Verify("secret1", hash) {
		t.Error("round trip failed with fallback cost")
	}
}
