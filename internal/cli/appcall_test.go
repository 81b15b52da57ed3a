// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localcall/internal/config"
	"localcall/internal/testutil"
	"localcall/pkg/target"
)

// newTestApp builds an App with buffers and a private registry.
func newTestApp(t *testing.T, registry *target.Registry, settings *config.Settings) (*App, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	app, err := NewApp(Dependencies{
		Settings: settings,
		Registry: registry,
		Stdout:   stdout,
		Stderr:   &bytes.Buffer{},
	}, "test")
	require.NoError(t, err)
	return app, stdout
}

// runCommand executes a built command with args, silencing cobra's own
// writers, and returns the RunE error.
func runCommand(cmd *cobra.Command, args ...string) error {
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func okRouter() chi.Router {
	r := chi.NewRouter()
	ok := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	}
	r.Get("/", ok)
	r.Post("/", ok)
	return r
}

func appSettings() *config.Settings {
	return &config.Settings{AppTarget: "main.app", FuncTarget: "main.main"}
}

func TestAppCommandSuccess(t *testing.T) {
	registry := target.NewRegistry()
	registry.RegisterApp("main.app", okRouter())
	app, stdout := newTestApp(t, registry, appSettings())

	err := runCommand(NewAppCommand(app))
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Finished successfully with mock status code 200")
	assert.Contains(t, out, "ok")
}

func TestAppCommandNonOKStatusExitsNonZero(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/missing", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nothing here", http.StatusNotFound)
	})
	registry := target.NewRegistry()
	registry.RegisterApp("main.app", r)
	app, stdout := newTestApp(t, registry, appSettings())

	err := runCommand(NewAppCommand(app), "--endpoint", "/missing")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, stdout.String(), "nothing here")
	assert.Contains(t, stdout.String(), "404")
}

func TestAppCommandResolveFailure(t *testing.T) {
	app, stdout := newTestApp(t, target.NewRegistry(), appSettings())

	err := runCommand(NewAppCommand(app))
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)

	out := stdout.String()
	assert.Contains(t, out, "ERROR: ")
	assert.Contains(t, out, "main.app")
	assert.Contains(t, out, config.AppTargetEnvVar)
}

func TestAppCommandRejectsUndiscoveredEndpoint(t *testing.T) {
	called := false
	r := chi.NewRouter()
	r.Post("/", func(w http.ResponseWriter, _ *http.Request) { called = true })
	r.Post("/users", func(w http.ResponseWriter, _ *http.Request) { called = true })
	r.Get("/static/app.js", func(w http.ResponseWriter, _ *http.Request) { called = true })
	registry := target.NewRegistry()
	registry.RegisterApp("main.app", r)
	app, _ := newTestApp(t, registry, appSettings())

	tests := []struct {
		name     string
		endpoint string
	}{
		{name: "unregistered path", endpoint: "/nope"},
		{name: "static path is excluded from choices", endpoint: "/static/app.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCommand(NewAppCommand(app), "--endpoint", tt.endpoint)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown endpoint")
			assert.Contains(t, err.Error(), "/users")
			assert.False(t, called, "application must not be invoked for a rejected endpoint")
		})
	}
}

func TestAppCommandRejectsUnsupportedMethod(t *testing.T) {
	registry := target.NewRegistry()
	registry.RegisterApp("main.app", okRouter())
	app, _ := newTestApp(t, registry, appSettings())

	err := runCommand(NewAppCommand(app), "--http-method", "PATCH")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --http-method")
}

func TestAppCommandDeliversPayloadFromFile(t *testing.T) {
	var gotBody string
	// A plain handler (not a router) leaves --endpoint unrestricted.
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusOK)
	})
	registry := target.NewRegistry()
	registry.RegisterApp("main.app", h)
	app, _ := newTestApp(t, registry, appSettings())

	path := testutil.MustWriteFile(t, "payload.json", `{"a":1}`)
	err := runCommand(NewAppCommand(app), "--json", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, gotBody)
}

func TestAppCommandMalformedJSONFails(t *testing.T) {
	registry := target.NewRegistry()
	registry.RegisterApp("main.app", okRouter())
	app, _ := newTestApp(t, registry, appSettings())

	err := runCommand(NewAppCommand(app), "--json", `{"a":`)
	require.Error(t, err)
	require.False(t, errors.As(err, new(*ExitError)), "parse failures are plain errors, not ExitError")
}
