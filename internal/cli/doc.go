// SPDX-License-Identifier: MPL-2.0

// Package cli contains the Cobra commands behind the three localcall
// binaries: appcall, funccall and eventcall.
package cli
