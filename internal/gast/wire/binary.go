package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"uast/internal/gast"
)

// EncodeBinary writes a program as msgpack. The binary form is a direct
// transcoding of the JSON form, so both share one schema version and one
// set of wire tags; a tree that survives one codec survives the other.
func EncodeBinary(p *gast.Program) ([]byte, error) {
	jb, err := EncodeJSON(p)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(jb))
	// Numbers stay json.Number so offsets and symbol ids never pass
	// through float64.
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("wire: transcode to binary: %w", err)
	}
	return msgpack.Marshal(widenNumbers(v))
}

// widenNumbers rewrites every json.Number in the value tree into int64,
// or float64 for fractional values. json.Number is a string kind, and
// msgpack would otherwise serialize offsets and symbol ids as strings,
// which the JSON decoder on the way back refuses.
func widenNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, e := range t {
			t[k] = widenNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = widenNumbers(e)
		}
		return t
	default:
		return v
	}
}

// DecodeBinary reads a program written by EncodeBinary.
func DecodeBinary(data []byte) (*gast.Program, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("wire: decode binary: %w", err)
	}
	jb, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("wire: transcode from binary: %w", err)
	}
	return DecodeJSON(jb)
}
