// Package wire is the interchange codec for generic syntax trees: a JSON
// tagged-union encoding and a msgpack binary form of the same model.
//
// Contract highlights:
//   - every union value carries a stable string "tag"; adding a tag is
//     backward compatible because decoders map unrecognized tags to the
//     hierarchy's catch-all variant, while renaming or removing one bumps
//     SchemaVersion;
//   - genuinely-optional fields round-trip all three presence states
//     (value, explicitly empty, absent): absent keys decode to absent
//     Opt values, empty lists stay empty lists;
//   - convenience defaults (the schema field itself) decode to a
//     well-defined value when omitted, never to an error.
package wire

import (
	"encoding/json"
	"fmt"

	"uast/internal/gast"
	"uast/internal/source"
)

// SchemaVersion is the major version of the wire schema. Decoders refuse
// payloads from a newer major version; a missing schema field reads as
// version 1.
const SchemaVersion uint16 = 1

type envelope struct {
	Schema  uint16        `json:"schema"`
	File    source.FileID `json:"file"`
	Stmts   []gast.Stmt   `json:"stmts"`
	Skipped []source.Span `json:"skipped,omitempty"`
}

// EncodeJSON serializes one source unit's tree.
func EncodeJSON(p *gast.Program) ([]byte, error) {
	return json.Marshal(envelope{
		Schema:  SchemaVersion,
		File:    p.File,
		Stmts:   p.Stmts,
		Skipped: p.Skipped,
	})
}

// DecodeJSON reconstructs a tree from its JSON form.
func DecodeJSON(data []byte) (*gast.Program, error) {
	var env struct {
		Schema  uint16            `json:"schema"`
		File    source.FileID     `json:"file"`
		Stmts   []json.RawMessage `json:"stmts"`
		Skipped []source.Span     `json:"skipped"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("wire: bad envelope: %w", err)
	}
	if env.Schema == 0 {
		env.Schema = 1
	}
	if env.Schema > SchemaVersion {
		return nil, fmt.Errorf("wire: schema version %d is newer than supported %d", env.Schema, SchemaVersion)
	}
	stmts, err := decodeList(rawListData(env.Stmts), decodeStmt)
	if err != nil {
		return nil, err
	}
	return &gast.Program{File: env.File, Stmts: stmts, Skipped: env.Skipped}, nil
}

// rawListData re-wraps an already-split raw list so decodeList sees the
// original null/empty/populated distinction.
func rawListData(raws []json.RawMessage) []byte {
	if raws == nil {
		return nil
	}
	out := []byte{'['}
	for i, r := range raws {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, r...)
	}
	return append(out, ']')
}
