package token

import (
	"encoding/json"
	"fmt"

	"uast/internal/source"
)

// Wire forms. A token encodes under a disjoint tag per origin so a real
// token at offset 0 can never be confused with a synthetic one.
type locWire struct {
	Tag    string        `json:"tag"`
	File   source.FileID `json:"file"`
	Offset uint32        `json:"offset"`
	Line   uint32        `json:"line"`
	Col    uint32        `json:"col"`
	Text   string        `json:"text"`
}

type fakeWire struct {
	Tag    string `json:"tag"`
	Reason string `json:"reason"`
}

const (
	tagLoc  = "loc"
	tagFake = "fake"
)

func (t Token) MarshalJSON() ([]byte, error) {
	if t.IsSynthetic() {
		return json.Marshal(fakeWire{Tag: tagFake, Reason: t.Reason})
	}
	return json.Marshal(locWire{
		Tag:    tagLoc,
		File:   t.Loc.File,
		Offset: t.Loc.Offset,
		Line:   t.Loc.Line,
		Col:    t.Loc.Col,
		Text:   t.Loc.Text,
	})
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var head struct {
		Tag string `json:"tag"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	switch head.Tag {
	case tagLoc:
		var w locWire
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		*t = Real(Loc{File: w.File, Offset: w.Offset, Line: w.Line, Col: w.Col, Text: w.Text})
		return nil
	case tagFake:
		var w fakeWire
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		*t = Fake(w.Reason)
		return nil
	default:
		return fmt.Errorf("token: unknown origin tag %q", head.Tag)
	}
}
