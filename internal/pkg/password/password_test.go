package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !Verify("secret123", hash) {
		t.Error("expected password to verify")
	}
	if Verify("wrong", hash) {
		t.Error("wrong password must not verify")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := map[string]bool{
		"":                false,
		"abc":             false,
		"12345":           false,
		"123456":          true,
		"longer-password": true,
	}
	for pw, want := range cases {
		if got := ValidatePassword(pw); got != want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", pw, got, want)
		}
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("some-refresh-token")
	b := HashToken("some-refresh-token")
	c := HashToken("other-token")

	if a != b {
		t.Error("same input must produce the same hash")
	}
	if a == c {
		t.Error("different inputs must produce different hashes")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
