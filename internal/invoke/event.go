// SPDX-License-Identifier: MPL-2.0

package invoke

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"localcall/pkg/target"
)

const (
	// eventIDPrefix marks generated identifiers as synthetic.
	eventIDPrefix = "mock_"
	// defaultEventType labels synthetic deliveries.
	defaultEventType = "mock_event"
	// timestampLayout is the delivery timestamp format, microsecond
	// precision with a literal Z suffix.
	timestampLayout = "2006-01-02T15:04:05.000000Z"
)

// NewMetadata generates a fresh synthetic delivery record. Each call
// produces a new identifier and timestamp; nothing is cached across
// invocations.
func NewMetadata() target.Metadata {
	return target.Metadata{
		EventID:   eventIDPrefix + uuid.NewString(),
		Timestamp: time.Now().UTC().Format(timestampLayout),
		EventType: defaultEventType,
	}
}

// applyOverrides copies caller-supplied values over the generated metadata,
// field by field. Keys are the JSON names; an unknown key or a non-string
// value is an error so typos do not silently invoke with defaults.
func applyOverrides(meta target.Metadata, overrides map[string]any) (target.Metadata, error) {
	for key, value := range overrides {
		s, ok := value.(string)
		if !ok {
			return target.Metadata{}, fmt.Errorf("metadata field %q must be a string, got %T", key, value)
		}
		switch key {
		case "event_id":
			meta.EventID = s
		case "timestamp":
			meta.Timestamp = s
		case "event_type":
			meta.EventType = s
		default:
			return target.Metadata{}, fmt.Errorf("unknown metadata field %q", key)
		}
	}
	return meta, nil
}

// Event invokes a message-triggered entrypoint once with a base64 payload
// envelope and synthetic metadata. String payloads are used verbatim; any
// other value is serialized to JSON first. The entrypoint's return value and
// error pass through; a panic is recovered into an error.
func Event(ctx context.Context, fn target.EventFunc, payload any, overrides map[string]any) (out any, err error) {
	meta, err := applyOverrides(NewMetadata(), overrides)
	if err != nil {
		return nil, err
	}

	var raw []byte
	switch p := payload.(type) {
	case string:
		raw = []byte(p)
	default:
		raw, err = json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
	}

	env := target.Envelope{Data: base64.StdEncoding.EncodeToString(raw)}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("entrypoint panicked: %v", r)
		}
	}()

	return fn(ctx, env, meta)
}
