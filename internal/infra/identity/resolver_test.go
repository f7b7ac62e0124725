package identity

import (
	"context"
	"testing"
)

func TestResolveConfigUser(t *testing.T) {
	r := NewResolver("alice")

	id, ok := r.Resolve(context.Background())
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if id != "alice" {
		t.Errorf("Resolve() = %q, want %q", id, "alice")
	}
}

func TestResolveContextOverride(t *testing.T) {
	r := NewResolver("alice")
	ctx := WithIdentity(context.Background(), "bob")

	id, ok := r.Resolve(ctx)
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if id != "bob" {
		t.Errorf("Resolve() = %q, want %q", id, "bob")
	}
}

func TestResolveEnvFallback(t *testing.T) {
	t.Setenv(EnvUser, "carol")
	r := NewResolver("")

	id, ok := r.Resolve(context.Background())
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if id != "carol" {
		t.Errorf("Resolve() = %q, want %q", id, "carol")
	}
}

func TestResolveNone(t *testing.T) {
	t.Setenv(EnvUser, "")
	r := NewResolver("")

	id, ok := r.Resolve(context.Background())
	if ok {
		t.Fatal("Resolve() ok = true, want false")
	}
	if !id.IsNone() {
		t.Errorf("Resolve() = %q, want none", id)
	}
}
