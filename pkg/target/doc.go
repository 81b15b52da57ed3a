// SPDX-License-Identifier: MPL-2.0

// Package target holds the build-time registry of invocable entrypoints.
//
// Go binaries cannot import code by name at runtime, so the registry is the
// static equivalent of a dotted import path: user code registers its
// application or entrypoint function under a "container.member" key in an
// init() and links the localcall commands into its own binary. The CLI then
// resolves the key supplied via environment variables the same way the
// dynamic original resolved "module.attribute".
package target
