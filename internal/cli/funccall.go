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

// NewFuncCommand creates the root command of the funccall binary: a CLI
// wrapper around a bare HTTP-triggered entrypoint function. A synthetic
// request context exists only for the duration of the single call.
func NewFuncCommand(app *App) *cobra.Command {
	var (
		endpoint   string
		httpMethod string
		jsonInput  string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "funccall",
		Short: "Invoke a registered HTTP entrypoint function locally",
		Long: `Invoke a registered HTTP-triggered entrypoint function locally.

The function is resolved from the build-time target registry using the
dotted path in ` + config.FuncTargetEnvVar + ` (default "` + config.DefaultFuncTarget + `",
format "container.member"). It is called once with a synthetic request and
the mock status code and body are printed; the exit code is 0 for a 2xx
status and 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				app.Logger.SetLevel(log.DebugLevel)
			}
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			path := app.Settings.FuncTarget
			app.Logger.Debug("resolving func target", "path", path)

			fn, err := app.Registry.ResolveFunc(path)
			if err != nil {
				renderResolveFailure(app.Stdout, issue.NewErrorContext().
					WithOperation("resolve entrypoint target").
					WithResource(path).
					WithSuggestion("Entrypoints are compiled in: register one with target.RegisterFunc in the package that builds this binary.").
					WithSuggestion(fmt.Sprintf("Set %s to pick a different registered path (ex. export %s=handlers.notify)", config.FuncTargetEnvVar, config.FuncTargetEnvVar)).
					Wrap(err).
					Build())
				return &ExitError{Code: 1, Err: err}
			}

			if err := validateMethod(httpMethod); err != nil {
				return err
			}

			body, err := payload.Load(jsonInput)
			if err != nil {
				return err
			}

			app.Logger.Debug("invoking entrypoint", "method", httpMethod, "endpoint", endpoint)
			res, err := invoke.Func(fn, httpMethod, endpoint, body)
			if err != nil {
				return err
			}

			return renderHTTPOutcome(app.Stdout, res)
		},
	}

	cmd.Flags().StringVar(&httpMethod, "http-method", "POST", "HTTP method to mock when calling the entrypoint (GET, POST, PUT, DELETE)")
	cmd.Flags().StringVar(&jsonInput, "json", "", "JSON to include as the request payload, inline or a path to a JSON file")
	cmd.Flags().StringVar(&endpoint, "endpoint", "/", "endpoint path of the synthetic request")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	return cmd
}
