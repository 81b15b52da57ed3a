// SPDX-License-Identifier: MPL-2.0

// Package payload loads a JSON value from either an inline string or a file
// path, the way the invoker flags (--json, --data, --context) accept both.
package payload

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load interprets input as a filesystem path when a regular file exists
// there, otherwise as literal JSON text. An empty input yields a nil value
// with no error (no payload supplied).
func Load(input string) (any, error) {
	if input == "" {
		return nil, nil
	}

	data := []byte(input)
	source := "inline JSON"
	if fileExists(input) {
		read, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("read payload file %s: %w", input, err)
		}
		data = read
		source = input
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	return value, nil
}

// LoadObject is Load restricted to a JSON object, for inputs that must be a
// mapping (e.g. metadata overrides).
func LoadObject(input string) (map[string]any, error) {
	value, err := Load(input)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", value)
	}
	return obj, nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
