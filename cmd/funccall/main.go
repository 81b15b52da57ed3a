// SPDX-License-Identifier: MPL-2.0

// Command funccall invokes a registered HTTP-triggered entrypoint function
// locally through a synthetic request context.
//
// Targets are compiled into the binary: link this package together with code
// that calls target.RegisterFunc, then select the target path via
// LOCALCALL_FUNC_TARGET.
package main

import (
	"fmt"
	"os"

	"localcall/internal/cli"
)

func main() {
	app, err := cli.NewApp(cli.Dependencies{}, "funccall")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cli.Execute(cli.NewFuncCommand(app))
}
