// SPDX-License-Identifier: MPL-2.0

package target

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRegistryResolveApp(t *testing.T) {
	r := NewRegistry()
	app := http.HandlerFunc(okHandler)
	r.RegisterApp("main.app", app)

	got, err := r.ResolveApp("main.app")
	if err != nil {
		t.Fatalf("ResolveApp unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("ResolveApp returned nil handler")
	}
}

func TestRegistryResolveDistinguishesContainerFromMember(t *testing.T) {
	r := NewRegistry()
	r.RegisterApp("main.app", http.HandlerFunc(okHandler))

	tests := []struct {
		name     string
		path     string
		wantPart string
	}{
		{
			name:     "unknown container",
			path:     "other.app",
			wantPart: `no container "other"`,
		},
		{
			name:     "unknown member in known container",
			path:     "main.missing",
			wantPart: `has no app member "missing"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.ResolveApp(tt.path)
			if err == nil {
				t.Fatalf("ResolveApp(%q) expected error", tt.path)
			}
			if !errors.Is(err, ErrNotRegistered) {
				t.Errorf("error should wrap ErrNotRegistered, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantPart)
			}
		})
	}
}

func TestRegistryKindsAreSeparate(t *testing.T) {
	r := NewRegistry()
	r.RegisterFunc("main.main", okHandler)

	// The func registration must not satisfy app or event resolution.
	if _, err := r.ResolveApp("main.main"); err == nil {
		t.Error("ResolveApp should not find a func registration")
	}
	if _, err := r.ResolveEvent("main.main"); err == nil {
		t.Error("ResolveEvent should not find a func registration")
	}
	if _, err := r.ResolveFunc("main.main"); err != nil {
		t.Errorf("ResolveFunc unexpected error: %v", err)
	}
}

func TestRegistryResolveEvent(t *testing.T) {
	r := NewRegistry()
	r.RegisterEvent("main.main", func(_ context.Context, _ Envelope, _ Metadata) (any, error) {
		return "done", nil
	})

	fn, err := r.ResolveEvent("main.main")
	if err != nil {
		t.Fatalf("ResolveEvent unexpected error: %v", err)
	}
	out, err := fn(context.Background(), Envelope{}, Metadata{})
	if err != nil {
		t.Fatalf("entrypoint unexpected error: %v", err)
	}
	if out != "done" {
		t.Errorf("entrypoint returned %v, want %q", out, "done")
	}
}

func TestRegistryDuplicateRegistrationPanics(t *testing.T) {
	r := NewRegistry()
	r.RegisterApp("main.app", http.HandlerFunc(okHandler))

	defer func() {
		if recover() == nil {
			t.Error("duplicate RegisterApp should panic")
		}
	}()
	r.RegisterApp("main.app", http.HandlerFunc(okHandler))
}

func TestRegistryInvalidPathPanicsOnRegister(t *testing.T) {
	r := NewRegistry()

	defer func() {
		if recover() == nil {
			t.Error("RegisterApp with undotted path should panic")
		}
	}()
	r.RegisterApp("nodots", http.HandlerFunc(okHandler))
}

func TestEnvelopeDecodePayload(t *testing.T) {
	env := Envelope{Data: "eyJhIjoxfQ=="} // {"a":1}
	raw, err := env.DecodePayload()
	if err != nil {
		t.Fatalf("DecodePayload unexpected error: %v", err)
	}
	if string(raw) != `{"a":1}` {
		t.Errorf("DecodePayload = %q, want %q", raw, `{"a":1}`)
	}

	bad := Envelope{Data: "not base64!"}
	if _, err := bad.DecodePayload(); err == nil {
		t.Error("DecodePayload should fail on invalid base64")
	}
}
