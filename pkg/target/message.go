// SPDX-License-Identifier: MPL-2.0

package target

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Envelope is the wrapper structure handed to a message-triggered
// entrypoint. Data carries the base64-encoded payload, matching the wire
// shape a queue delivery would have.
type Envelope struct {
	Data string `json:"data"`
}

// DecodePayload returns the raw payload bytes encoded in Data.
func (e Envelope) DecodePayload() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(e.Data)
	if err != nil {
		return nil, fmt.Errorf("decode envelope data: %w", err)
	}
	return raw, nil
}

// Metadata describes the synthetic delivery context passed alongside an
// Envelope: a unique message identifier, the delivery timestamp, and the
// event-type label.
type Metadata struct {
	EventID   string `json:"event_id"`
	Timestamp string `json:"timestamp"`
	EventType string `json:"event_type"`
}

// EventFunc is the signature of a message-triggered entrypoint. The returned
// value is reported on success; a non-nil error is the failure signal.
type EventFunc func(ctx context.Context, env Envelope, meta Metadata) (any, error)
