package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	h := HashPassword("s3cret-pass")
	if h == "s3cret-pass" || h == "" {
		t.Fatalf("hash must not be empty or the plaintext, got %q", h)
	}
	if !CheckPassword("s3cret-pass", h) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong-pass", h) {
		t.Fatal("wrong password accepted")
	}
}

func TestPasswordHashIsSalted(t *testing.T) {
	if HashPassword("same") == HashPassword("same") {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestNewIDUnique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Fatalf("ids must be unique and non-empty: %q %q", a, b)
	}
}
