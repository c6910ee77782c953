package auth

import (
	"testing"
	"time"

	"github.com/erazemk/freebies/internal/model"
)

var testUser = &model.User{ID: 1, Username: "admin", Role: model.RoleAdmin}

func TestIssueAndVerify(t *testing.T) {
	signer := NewSigner("test-secret-key")

	token, err := signer.Issue(testUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 1 || claims.Username != "admin" || claims.Role != model.RoleAdmin {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != Issuer {
		t.Errorf("expected issuer %q, got %q", Issuer, claims.Issuer)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, _ := NewSigner("secret1").Issue(testUser)

	if _, err := NewSigner("secret2").Verify(token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestVerifyInvalid(t *testing.T) {
	if _, err := NewSigner("secret").Verify("not-a-token"); err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestTokenExpiry(t *testing.T) {
	signer := NewSigner("test")
	issued := time.Now()
	signer.now = func() time.Time { return issued }

	token, _ := signer.Issue(testUser)
	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !claims.ExpiresAt.Time.Equal(issued.Add(TokenExpiry).Truncate(time.Second)) {
		t.Errorf("expected expiry %v, got %v", issued.Add(TokenExpiry), claims.ExpiresAt.Time)
	}

	signer.now = func() time.Time { return issued.Add(TokenExpiry + time.Minute) }
	if _, err := signer.Verify(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}
