// SPDX-License-Identifier: MPL-2.0

// Command appcall invokes a registered HTTP application locally through a
// synthetic in-process request.
//
// Targets are compiled into the binary: link this package (or your own main
// that mirrors it) together with code that calls target.RegisterApp, then
// select the target path via LOCALCALL_APP_TARGET.
package main

import (
	"fmt"
	"os"

	"localcall/internal/cli"
)

func main() {
	app, err := cli.NewApp(cli.Dependencies{}, "appcall")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cli.Execute(cli.NewAppCommand(app))
}
