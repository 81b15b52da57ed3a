// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"localcall/internal/config"
	"localcall/internal/invoke"
	"localcall/internal/issue"
	"localcall/internal/payload"
)

// NewAppCommand creates the root command of the appcall binary: a CLI
// wrapper around a registered HTTP application, invoked once through a
// synthetic in-process request.
func NewAppCommand(app *App) *cobra.Command {
	var (
		endpoint   string
		httpMethod string
		jsonInput  string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "appcall",
		Short: "Invoke a registered HTTP application locally",
		Long: `Invoke a registered HTTP application locally, without deploying it.

The application is resolved from the build-time target registry using the
dotted path in ` + config.AppTargetEnvVar + ` (default "` + config.DefaultAppTarget + `",
format "container.member"). A single synthetic request is made against it
and the mock status code and body are printed; the exit code is 0 for a 2xx
status and 1 otherwise.

When the application's routes can be enumerated (a chi router), --endpoint
is restricted to the discovered paths, excluding /apidoc and /static.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				app.Logger.SetLevel(log.DebugLevel)
			}
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			path := app.Settings.AppTarget
			app.Logger.Debug("resolving app target", "path", path)

			handler, err := app.Registry.ResolveApp(path)
			if err != nil {
				renderResolveFailure(app.Stdout, issue.NewErrorContext().
					WithOperation("resolve app target").
					WithResource(path).
					WithSuggestion("Apps are compiled in: register one with target.RegisterApp in the package that builds this binary.").
					WithSuggestion(fmt.Sprintf("Set %s to pick a different registered path (ex. export %s=api.router)", config.AppTargetEnvVar, config.AppTargetEnvVar)).
					Wrap(err).
					Build())
				return &ExitError{Code: 1, Err: err}
			}

			if err := validateMethod(httpMethod); err != nil {
				return err
			}

			if endpoints := discoverEndpoints(handler); len(endpoints) > 0 && !containsEndpoint(endpoints, endpoint) {
				return fmt.Errorf("unknown endpoint %q (discovered endpoints: %s)", endpoint, strings.Join(endpoints, ", "))
			}

			body, err := payload.Load(jsonInput)
			if err != nil {
				return err
			}

			app.Logger.Debug("invoking application", "method", httpMethod, "endpoint", endpoint)
			res, err := invoke.App(handler, httpMethod, endpoint, body)
			if err != nil {
				return err
			}

			return renderHTTPOutcome(app.Stdout, res)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "/", "endpoint to call")
	cmd.Flags().StringVar(&httpMethod, "http-method", "POST", "HTTP method to mock when calling the endpoint (GET, POST, PUT, DELETE)")
	cmd.Flags().StringVar(&jsonInput, "json", "", "JSON to include as the request payload, inline or a path to a JSON file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	return cmd
}

// validateMethod enforces the enumerated verb set at the CLI layer, before
// any synthetic interaction is constructed.
func validateMethod(method string) error {
	for _, m := range invoke.Methods {
		if m == method {
			return nil
		}
	}
	return fmt.Errorf("invalid --http-method %q (choose from %s)", method, strings.Join(invoke.Methods, ", "))
}
