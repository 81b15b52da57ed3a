// SPDX-License-Identifier: MPL-2.0

// Command eventcall invokes a registered message-triggered entrypoint
// function locally with a base64 payload envelope and mock delivery
// metadata.
//
// Targets are compiled into the binary: link this package together with code
// that calls target.RegisterEvent, then select the target path via
// LOCALCALL_FUNC_TARGET.
package main

import (
	"fmt"
	"os"

	"localcall/internal/cli"
)

func main() {
	app, err := cli.NewApp(cli.Dependencies{}, "eventcall")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cli.Execute(cli.NewEventCommand(app))
}
