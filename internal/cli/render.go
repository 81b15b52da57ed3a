// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"io"
	"strings"

	"localcall/internal/invoke"
	"localcall/internal/issue"
)

// errorPrefix marks resolve-failure diagnostic lines on stdout.
const errorPrefix = "ERROR: "

// renderSeparator prints the blank line + dash rule that precedes every
// outcome report.
func renderSeparator(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, MutedStyle.Render(strings.Repeat("-", 100)))
}

// renderHTTPOutcome reports a synthetic HTTP result and returns the error
// that carries the exit code: nil for 2xx, ExitError otherwise.
func renderHTTPOutcome(w io.Writer, res invoke.Result) error {
	renderSeparator(w)

	if res.OK() {
		fmt.Fprintf(w, "%s\n%s\n",
			SuccessStyle.Render(fmt.Sprintf("Finished successfully with mock status code %d", res.StatusCode)),
			res.Body,
		)
		return nil
	}

	fmt.Fprintf(w, "%s\n%s\n",
		ErrorStyle.Render(fmt.Sprintf("Endpoint invocation failed with mock status code %d", res.StatusCode)),
		res.Body,
	)
	return &ExitError{Code: 1, Err: fmt.Errorf("mock status code %d", res.StatusCode)}
}

// renderEventOutcome reports a message-style invocation: the entrypoint's
// return value on success, the stringified error on failure.
func renderEventOutcome(w io.Writer, out any, err error) error {
	renderSeparator(w)

	if err != nil {
		fmt.Fprintf(w, "%s\n", ErrorStyle.Render(fmt.Sprintf("Command failed: %v", err)))
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintf(w, "%s\n", SuccessStyle.Render(fmt.Sprintf("Finished successfully with output: %v", out)))
	return nil
}

// renderResolveFailure prints the ERROR-prefixed diagnostic block for a
// target that could not be resolved: the underlying error first, then the
// attempted path, then every remediation suggestion. Diagnostics go to
// stdout, matching where the outcome report goes.
func renderResolveFailure(w io.Writer, ae *issue.ActionableError) {
	fmt.Fprintf(w, "%s%v\n", errorPrefix, ae.Cause)
	fmt.Fprintf(w, "%sAttempt to %s %s failed.\n", errorPrefix, ae.Operation, TargetStyle.Render(ae.Resource))
	for _, s := range ae.Suggestions {
		fmt.Fprintf(w, "%s%s\n", errorPrefix, s)
	}
}
