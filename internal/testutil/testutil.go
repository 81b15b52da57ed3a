// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate in the package test suites.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MustWriteFile writes content to name inside a fresh temp directory and
// returns the full path. The test fails immediately if the write fails; the
// directory is cleaned up with the test.
func MustWriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
