// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"localcall/internal/config"
	"localcall/pkg/target"
)

type (
	// App wires the shared dependencies of the CLI layer. All command
	// handlers receive an App reference: settings resolved from the
	// environment, the target registry to resolve against, and the output
	// streams to render to.
	App struct {
		Settings *config.Settings
		Registry *target.Registry
		Stdout   io.Writer
		Stderr   io.Writer
		Logger   *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp; tests supply
	// buffers and a private registry.
	Dependencies struct {
		Settings *config.Settings
		Registry *target.Registry
		Stdout   io.Writer
		Stderr   io.Writer
		Logger   *log.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies. The logger
// prefix identifies which binary is talking when several are driven from one
// shell session.
func NewApp(deps Dependencies, loggerPrefix string) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Settings == nil {
		settings, err := config.Load()
		if err != nil {
			return nil, err
		}
		deps.Settings = settings
	}
	if deps.Registry == nil {
		deps.Registry = target.Default()
	}
	if deps.Logger == nil {
		deps.Logger = log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: loggerPrefix,
			Level:  log.WarnLevel,
		})
	}

	return &App{
		Settings: deps.Settings,
		Registry: deps.Registry,
		Stdout:   deps.Stdout,
		Stderr:   deps.Stderr,
		Logger:   deps.Logger,
	}, nil
}
