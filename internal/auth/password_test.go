package auth

import (
	"strings"
	"testing"
)

// testParams keeps the mutation loops fast; DefaultParams gets its own
// roundtrip test below.
var testParams = Params{
	Memory:      16 * 1024,
	Iterations:  1,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

func TestHasherRoundtrip(t *testing.T) {
	h := NewHasher(testParams)

	encoded, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("encoded hash = %q, want argon2id PHC format", encoded)
	}

	ok, err := h.Verify(encoded, "correct horse battery staple")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("Verify rejected the original password")
	}
}

func TestHasherDefaultParamsRoundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("64 MiB hash in -short mode")
	}
	h := NewHasher(DefaultParams)

	encoded, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	ok, err := h.Verify(encoded, "pw")
	if err != nil || !ok {
		t.Fatalf("Verify = (%v, %v), want (true, nil)", ok, err)
	}
}

func TestHasherRejectsSingleCharacterMutations(t *testing.T) {
	h := NewHasher(testParams)
	const password = "s3cret-pass"

	encoded, err := h.Hash(password)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	for i := range password {
		mutated := []byte(password)
		mutated[i] ^= 0x01
		ok, err := h.Verify(encoded, string(mutated))
		if err != nil {
			t.Fatalf("Verify(mutated at %d): %v", i, err)
		}
		if ok {
			t.Fatalf("Verify accepted password mutated at position %d", i)
		}
	}
}

func TestHasherSaltsPerCall(t *testing.T) {
	h := NewHasher(testParams)

	first, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("first Hash: %v", err)
	}
	second, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("second Hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password are identical; salt not fresh")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher(testParams)

	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "password"},
		{"wrong variant", "$argon2i$v=19$m=16384,t=1,p=2$c2FsdA$aGFzaA"},
		{"truncated", "$argon2id$v=19$m=16384,t=1,p=2$c2FsdA"},
		{"bad base64 salt", "$argon2id$v=19$m=16384,t=1,p=2$???$aGFzaA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := h.Verify(tc.encoded, "pw"); err == nil {
				t.Fatalf("Verify(%q) succeeded, want error", tc.encoded)
			}
		})
	}
}
