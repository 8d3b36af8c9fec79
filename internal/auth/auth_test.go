package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignParseRoundTrip(t *testing.T) {
	v := NewVerifier("s3cret")
	tok, err := v.Sign(Identity{UserID: "u1", Email: "ana@example.com", Role: RoleStaff}, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	id, err := v.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.UserID != "u1" || id.Email != "ana@example.com" || id.Role != RoleStaff {
		t.Errorf("identity = %+v", id)
	}
}

func TestParseTopLevelRole(t *testing.T) {
	secret := []byte("s3cret")
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u2", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Role:             "authenticated",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	id, err := NewVerifier("s3cret").Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if id.Role != "authenticated" {
		t.Errorf("role = %q", id.Role)
	}
}

func TestParseRejects(t *testing.T) {
	good := NewVerifier("s3cret")
	expired := NewVerifier("s3cret")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	expiredTok, _ := expired.Sign(Identity{UserID: "u1"}, time.Hour)
	otherTok, _ := NewVerifier("other").Sign(Identity{UserID: "u1"}, time.Hour)
	noSubject, _ := good.Sign(Identity{}, time.Hour)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		v     *Verifier
		token string
	}{
		{"garbage", good, "not-a-token"},
		{"expired", good, expiredTok},
		{"wrong secret", good, otherTok},
		{"no subject", good, noSubject},
		{"alg none", good, none},
		{"no secret", NewVerifier(""), otherTok},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.v.Parse(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	if FromContext(ctx) != nil {
		t.Fatal("expected no identity")
	}
	ctx = WithIdentity(ctx, &Identity{UserID: "u1"})
	if id := FromContext(ctx); id == nil || id.UserID != "u1" {
		t.Errorf("identity = %+v", id)
	}
}
