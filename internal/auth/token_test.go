package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundtrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	username, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if username != "alice" {
		t.Fatalf("username = %q, want alice", username)
	}
}

func TestTokenTamperingRejected(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}

	for segment := 1; segment < 3; segment++ {
		mutated := []byte(parts[segment])
		if mutated[0] == 'A' {
			mutated[0] = 'B'
		} else {
			mutated[0] = 'A'
		}
		altered := append([]string{}, parts...)
		altered[segment] = string(mutated)

		if _, err := m.Verify(strings.Join(altered, ".")); err == nil {
			t.Fatalf("tampered segment %d verified", segment)
		}
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatalf("token signed with another secret verified")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Fatalf("expired token verified")
	}
}

func TestEmptyUsernameClaimRejected(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	// A validly signed token without a username claim must not resolve.
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign bare token: %v", err)
	}
	if _, err := m.Verify(signed); err == nil {
		t.Fatalf("token without username claim verified")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Verify(token); err == nil {
			t.Fatalf("Verify(%q) succeeded", token)
		}
	}
}
