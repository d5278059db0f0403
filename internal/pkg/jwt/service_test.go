package jwt

import (
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/ids"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	cid, _ := ids.NewCitizenID()

	token, err := svc.Generate(cid, "Jane Q. Citizen")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.Subject != cid.String() {
		t.Fatalf("subject mismatch: %q vs %q", claims.Subject, cid)
	}
	if claims.CitizenName != "Jane Q. Citizen" {
		t.Fatalf("name mismatch: %q", claims.CitizenName)
	}
}

func TestValidate_Expired(t *testing.T) {
	svc := NewHMACService("test-secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	cid, _ := ids.NewCitizenID()

	token, err := svc.Generate(cid, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	cid, _ := ids.NewCitizenID()
	token, err := NewHMACService("secret-a", time.Hour).Generate(cid, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).Validate(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
