// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"localcall/internal/config"
	"localcall/internal/invoke"
	"localcall/internal/issue"
	"localcall/internal/payload"
)

// NewEventCommand creates the root command of the eventcall binary: a CLI
// wrapper around a message-triggered entrypoint function. The payload is
// base64-encoded into a delivery envelope and handed to the entrypoint with
// generated mock metadata.
func NewEventCommand(app *App) *cobra.Command {
	var (
		dataInput    string
		contextInput string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "eventcall",
		Short: "Invoke a registered message entrypoint locally",
		Long: `Invoke a registered message-triggered entrypoint function locally.

The function is resolved from the build-time target registry using the
dotted path in ` + config.FuncTargetEnvVar + ` (default "` + config.DefaultFuncTarget + `",
format "container.member"). The --data payload is base64-encoded into a
single-field delivery envelope and the entrypoint is called once with it
and a generated metadata record (message id, timestamp, event type), whose
fields --context can override individually.

The exit code is 0 when the entrypoint returns without error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				app.Logger.SetLevel(log.DebugLevel)
			}
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			path := app.Settings.FuncTarget
			app.Logger.Debug("resolving event target", "path", path)

			fn, err := app.Registry.ResolveEvent(path)
			if err != nil {
				renderResolveFailure(app.Stdout, issue.NewErrorContext().
					WithOperation("resolve event target").
					WithResource(path).
					WithSuggestion("Entrypoints are compiled in: register one with target.RegisterEvent in the package that builds this binary.").
					WithSuggestion(fmt.Sprintf("Set %s to pick a different registered path (ex. export %s=handlers.consume)", config.FuncTargetEnvVar, config.FuncTargetEnvVar)).
					Wrap(err).
					Build())
				return &ExitError{Code: 1, Err: err}
			}

			data, err := payload.Load(dataInput)
			if err != nil {
				return err
			}

			overrides, err := payload.LoadObject(contextInput)
			if err != nil {
				return fmt.Errorf("invalid --context: %w", err)
			}

			app.Logger.Debug("invoking event entrypoint", "overrides", len(overrides))
			out, invokeErr := invoke.Event(cmd.Context(), fn, data, overrides)

			return renderEventOutcome(app.Stdout, out, invokeErr)
		},
	}

	cmd.Flags().StringVar(&dataInput, "data", "", "JSON payload for the message, inline or a path to a JSON file")
	cmd.Flags().StringVar(&contextInput, "context", "{}", "JSON object overriding fields of the mock delivery metadata (event_id, timestamp, event_type)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
