package state

import (
	"context"
	"testing"
)

func TestEnvFromContext(t *testing.T) {
	ctx := ContextWithEnv(context.Background())

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.Uptime() < 0 {
		t.Errorf("Uptime() = %v, want non-negative", env.Uptime())
	}

	// same context always resolves to the same environment
	if EnvFromContext(ctx) != env {
		t.Error("EnvFromContext() returned a different environment")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for context without environment")
		}
	}()
	EnvFromContext(context.Background())
}
