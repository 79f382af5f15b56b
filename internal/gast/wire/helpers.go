package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"uast/internal/gast"
	"uast/internal/symbols"
	"uast/internal/token"
)

var null = []byte("null")

func isAbsent(data []byte) bool {
	return len(data) == 0 || bytes.Equal(data, null)
}

// peekTag reads the union tag without committing to a payload shape.
func peekTag(data []byte) (string, error) {
	var head struct {
		Tag string `json:"tag"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", fmt.Errorf("wire: not a tagged object: %w", err)
	}
	if head.Tag == "" {
		return "", fmt.Errorf("wire: missing tag in %.60s", data)
	}
	return head.Tag, nil
}

// decodeList applies dec to every element. null (or an omitted key)
// decodes to a nil slice, [] to an empty one, preserving the
// explicitly-empty versus absent distinction.
func decodeList[T any](data []byte, dec func([]byte) (T, error)) ([]T, error) {
	if isAbsent(data) {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, r := range raws {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeOpt turns an absent or null raw field into None, anything else
// into Some of the decoded value.
func decodeOpt[T any](data []byte, dec func([]byte) (T, error)) (gast.Opt[T], error) {
	if isAbsent(data) {
		return gast.None[T](), nil
	}
	v, err := dec(data)
	if err != nil {
		return gast.None[T](), err
	}
	return gast.Some(v), nil
}

type bracketRaw struct {
	Open  token.Token     `json:"open"`
	V     json.RawMessage `json:"v"`
	Close token.Token     `json:"close"`
}

// decodeBracketed decodes the two delimiter tokens with stdlib machinery
// and delegates the payload to dec.
func decodeBracketed[T any](data []byte, dec func([]byte) (T, error)) (gast.Bracketed[T], error) {
	var br bracketRaw
	if err := json.Unmarshal(data, &br); err != nil {
		return gast.Bracketed[T]{}, err
	}
	v, err := dec(br.V)
	if err != nil {
		return gast.Bracketed[T]{}, err
	}
	return gast.Bracketed[T]{Open: br.Open, V: v, Close: br.Close}, nil
}

// decodePlain is decodeBracketed's dec for payloads with no interface
// fields, which stdlib json can handle directly.
func decodePlain[T any](data []byte) (T, error) {
	var v T
	if isAbsent(data) {
		return v, nil
	}
	err := json.Unmarshal(data, &v)
	return v, err
}

// decodeName handles the one struct outside the unions that carries a
// mutable annotation slot.
func decodeName(data []byte) (gast.Name, error) {
	var raw struct {
		Ident     gast.Ident      `json:"ident"`
		Qualifier json.RawMessage `json:"qualifier"`
		Info      json.RawMessage `json:"info"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.Name{}, err
	}
	qual, err := decodeOpt(raw.Qualifier, decodePlain[gast.DottedIdent])
	if err != nil {
		return gast.Name{}, err
	}
	info, err := decodeIDInfo(raw.Info)
	if err != nil {
		return gast.Name{}, err
	}
	return gast.Name{Ident: raw.Ident, Qualifier: qual, Info: info}, nil
}

func decodeIDInfo(data []byte) (*gast.IDInfo, error) {
	if isAbsent(data) {
		return nil, nil
	}
	var raw struct {
		Resolved json.RawMessage `json:"resolved"`
		Type     json.RawMessage `json:"type"`
		Const    json.RawMessage `json:"const"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	info := &gast.IDInfo{}
	resolved, err := decodeOpt(raw.Resolved, decodeResolvedName)
	if err != nil {
		return nil, err
	}
	info.Resolved = resolved
	ty, err := decodeOpt(raw.Type, decodeType)
	if err != nil {
		return nil, err
	}
	info.Type = ty
	cv, err := decodeOpt(raw.Const, decodeLiteral)
	if err != nil {
		return nil, err
	}
	info.Const = cv
	return info, nil
}

func decodeResolvedName(data []byte) (gast.ResolvedName, error) {
	var raw struct {
		Kind gast.ResolvedNameKind `json:"kind"`
		Sym  symbols.SymbolID      `json:"sym"`
		Name json.RawMessage       `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.ResolvedName{}, err
	}
	name, err := decodeOpt(raw.Name, decodePlain[gast.DottedIdent])
	if err != nil {
		return gast.ResolvedName{}, err
	}
	return gast.ResolvedName{Kind: raw.Kind, Sym: raw.Sym, Name: name}, nil
}
