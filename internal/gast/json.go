package gast

import (
	"bytes"
	"encoding/json"
)

// tagged marshals v and splices the stable union tag in front of its
// fields, producing {"tag":"...", ...}. Every variant's MarshalJSON goes
// through here so the tag convention lives in one place; decoding is the
// business of the wire package.
func tagged(tag string, v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	head := []byte(`{"tag":`)
	name, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}
	head = append(head, name...)
	if bytes.Equal(payload, []byte("{}")) {
		return append(head, '}'), nil
	}
	head = append(head, ',')
	return append(head, payload[1:]...), nil
}
