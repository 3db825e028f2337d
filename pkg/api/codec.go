// Package api holds the wire messages of the haleway.v1 Connect services.
//
// Messages are plain Go structs carried as JSON. Both the handlers and the
// clients in package apiconnect install Codec, so no protobuf runtime is
// involved.
package api

import (
	"encoding/json"
	"fmt"
)

// CodecName is the Connect codec name, matching Content-Type application/json.
const CodecName = "json"

// Codec marshals messages with encoding/json.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return CodecName }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
