package authactor

import (
	"context"
	"testing"
	"time"

	"github.com/fluxorio/actorcell/pkg/kvstore"
)

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	store := kvstore.NewMem()
	client := Start(store, []byte("test-secret"), time.Hour, nil)
	ctx := context.Background()

	token, err := client.Register(ctx, "alice", "hunter2")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if token == "" {
		t.Fatal("Register() returned empty token")
	}

	claims, err := ValidateToken([]byte("test-secret"), token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("claims.Username = %q, want alice", claims.Username)
	}

	loginToken, err := client.Login(ctx, "alice", "hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loginToken == "" {
		t.Fatal("Login() returned empty token")
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	store := kvstore.NewMem()
	client := Start(store, []byte("test-secret"), time.Hour, nil)
	ctx := context.Background()

	if _, err := client.Register(ctx, "bob", "pw1"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if _, err := client.Register(ctx, "bob", "pw2"); err != ErrUsernameTaken {
		t.Fatalf("second Register() error = %v, want ErrUsernameTaken", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	store := kvstore.NewMem()
	client := Start(store, []byte("test-secret"), time.Hour, nil)
	ctx := context.Background()

	if _, err := client.Register(ctx, "carol", "correct"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := client.Login(ctx, "carol", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	store := kvstore.NewMem()
	client := Start(store, []byte("test-secret"), -time.Hour, nil)
	ctx := context.Background()

	token, err := client.Register(ctx, "dave", "pw")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := ValidateToken([]byte("test-secret"), token); err == nil {
		t.Fatal("expected error validating expired token, got nil")
	}
}
