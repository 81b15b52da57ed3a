// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Execute runs a command through fang for styled help/version output and
// maps an ExitError returned by RunE to the process exit code. Called by the
// binaries' main functions.
func Execute(cmd *cobra.Command) {
	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
