package wire

import (
	"encoding/json"

	"uast/internal/gast"
	"uast/internal/token"
)

func decodeStmt(data []byte) (gast.Stmt, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagExprStmt:
		var raw struct {
			X    json.RawMessage `json:"x"`
			Semi token.Token     `json:"semi"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		return gast.ExprStmt{X: x, Semi: raw.Semi}, nil

	case gast.TagBlock:
		var raw struct {
			Stmts json.RawMessage `json:"stmts"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		stmts, err := decodeBracketed(raw.Stmts, func(d []byte) ([]gast.Stmt, error) {
			return decodeList(d, decodeStmt)
		})
		if err != nil {
			return nil, err
		}
		return gast.Block{Stmts: stmts}, nil

	case gast.TagIf:
		var raw struct {
			Tok  token.Token     `json:"tok"`
			Cond json.RawMessage `json:"cond"`
			Then json.RawMessage `json:"then"`
			Else json.RawMessage `json:"else"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(raw.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeStmt(raw.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeOpt(raw.Else, decodeStmt)
		if err != nil {
			return nil, err
		}
		return gast.If{Tok: raw.Tok, Cond: cond, Then: then, Else: els}, nil

	case gast.TagWhile:
		var raw struct {
			Tok  token.Token     `json:"tok"`
			Cond json.RawMessage `json:"cond"`
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(raw.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(raw.Body)
		if err != nil {
			return nil, err
		}
		return gast.While{Tok: raw.Tok, Cond: cond, Body: body}, nil

	case gast.TagDoWhile:
		var raw struct {
			Tok  token.Token     `json:"tok"`
			Body json.RawMessage `json:"body"`
			Cond json.RawMessage `json:"cond"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		body, err := decodeStmt(raw.Body)
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpr(raw.Cond)
		if err != nil {
			return nil, err
		}
		return gast.DoWhile{Tok: raw.Tok, Body: body, Cond: cond}, nil

	case gast.TagFor:
		var raw struct {
			Tok    token.Token     `json:"tok"`
			Header json.RawMessage `json:"header"`
			Body   json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		header, err := decodeForHeader(raw.Header)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(raw.Body)
		if err != nil {
			return nil, err
		}
		return gast.For{Tok: raw.Tok, Header: header, Body: body}, nil

	case gast.TagReturn:
		var raw struct {
			Tok   token.Token     `json:"tok"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		value, err := decodeOpt(raw.Value, decodeExpr)
		if err != nil {
			return nil, err
		}
		return gast.Return{Tok: raw.Tok, Value: value}, nil

	case gast.TagBreak:
		var raw struct {
			Tok   token.Token          `json:"tok"`
			Label gast.Opt[gast.Ident] `json:"label"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return gast.Break{Tok: raw.Tok, Label: raw.Label}, nil

	case gast.TagContinue:
		var raw struct {
			Tok   token.Token          `json:"tok"`
			Label gast.Opt[gast.Ident] `json:"label"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return gast.Continue{Tok: raw.Tok, Label: raw.Label}, nil

	case gast.TagLabeled:
		var raw struct {
			Ident gast.Ident      `json:"ident"`
			S     json.RawMessage `json:"s"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		s, err := decodeStmt(raw.S)
		if err != nil {
			return nil, err
		}
		return gast.Labeled{Ident: raw.Ident, S: s}, nil

	case gast.TagGoto:
		return decodePlain[gast.Goto](data)

	case gast.TagSwitch:
		var raw struct {
			Tok     token.Token     `json:"tok"`
			Subject json.RawMessage `json:"subject"`
			Cases   json.RawMessage `json:"cases"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		subject, err := decodeOpt(raw.Subject, decodeExpr)
		if err != nil {
			return nil, err
		}
		cases, err := decodeList(raw.Cases, decodeCaseClause)
		if err != nil {
			return nil, err
		}
		return gast.Switch{Tok: raw.Tok, Subject: subject, Cases: cases}, nil

	case gast.TagTry:
		var raw struct {
			Tok     token.Token     `json:"tok"`
			Body    json.RawMessage `json:"body"`
			Catches json.RawMessage `json:"catches"`
			Finally json.RawMessage `json:"finally"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		body, err := decodeStmt(raw.Body)
		if err != nil {
			return nil, err
		}
		catches, err := decodeList(raw.Catches, decodeCatchArm)
		if err != nil {
			return nil, err
		}
		finally, err := decodeOpt(raw.Finally, decodeStmt)
		if err != nil {
			return nil, err
		}
		return gast.Try{Tok: raw.Tok, Body: body, Catches: catches, Finally: finally}, nil

	case gast.TagThrow:
		var raw struct {
			Tok token.Token     `json:"tok"`
			X   json.RawMessage `json:"x"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		return gast.Throw{Tok: raw.Tok, X: x}, nil

	case gast.TagAssert:
		var raw struct {
			Tok  token.Token     `json:"tok"`
			Cond json.RawMessage `json:"cond"`
			Msg  json.RawMessage `json:"msg"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(raw.Cond)
		if err != nil {
			return nil, err
		}
		msg, err := decodeOpt(raw.Msg, decodeExpr)
		if err != nil {
			return nil, err
		}
		return gast.Assert{Tok: raw.Tok, Cond: cond, Msg: msg}, nil

	case gast.TagWith:
		var raw struct {
			Tok       token.Token     `json:"tok"`
			Resources json.RawMessage `json:"resources"`
			Body      json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		resources, err := decodeList(raw.Resources, decodeStmt)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(raw.Body)
		if err != nil {
			return nil, err
		}
		return gast.With{Tok: raw.Tok, Resources: resources, Body: body}, nil

	case gast.TagDefStmt:
		var raw struct {
			Def json.RawMessage `json:"def"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		def, err := decodeDef(raw.Def)
		if err != nil {
			return nil, err
		}
		return gast.DefStmt{Def: def}, nil

	case gast.TagDirectiveStmt:
		var raw struct {
			Dir json.RawMessage `json:"dir"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		dir, err := decodeDirective(raw.Dir)
		if err != nil {
			return nil, err
		}
		return gast.DirectiveStmt{Dir: dir}, nil

	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherStmt{Todo: todo, Parts: parts}, nil
	}
}

func decodeForHeader(data []byte) (gast.ForHeader, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagForClassic:
		var raw struct {
			Init json.RawMessage `json:"init"`
			Cond json.RawMessage `json:"cond"`
			Step json.RawMessage `json:"step"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		init, err := decodeList(raw.Init, decodeStmt)
		if err != nil {
			return nil, err
		}
		cond, err := decodeOpt(raw.Cond, decodeExpr)
		if err != nil {
			return nil, err
		}
		step, err := decodeOpt(raw.Step, decodeExpr)
		if err != nil {
			return nil, err
		}
		return gast.ForClassic{Init: init, Cond: cond, Step: step}, nil
	case gast.TagForEach:
		var raw struct {
			Pat  json.RawMessage `json:"pat"`
			Tok  token.Token     `json:"tok"`
			Iter json.RawMessage `json:"iter"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		pat, err := decodePattern(raw.Pat)
		if err != nil {
			return nil, err
		}
		iter, err := decodeExpr(raw.Iter)
		if err != nil {
			return nil, err
		}
		return gast.ForEach{Pat: pat, Tok: raw.Tok, Iter: iter}, nil
	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherForHeader{Todo: todo, Parts: parts}, nil
	}
}

func decodeCaseClause(data []byte) (gast.CaseClause, error) {
	var raw struct {
		Cases json.RawMessage `json:"cases"`
		Body  json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.CaseClause{}, err
	}
	cases, err := decodeList(raw.Cases, decodeCase)
	if err != nil {
		return gast.CaseClause{}, err
	}
	body, err := decodeStmt(raw.Body)
	if err != nil {
		return gast.CaseClause{}, err
	}
	return gast.CaseClause{Cases: cases, Body: body}, nil
}

func decodeCase(data []byte) (gast.Case, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagCaseEq:
		var raw struct {
			Tok token.Token     `json:"tok"`
			X   json.RawMessage `json:"x"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		return gast.CaseEq{Tok: raw.Tok, X: x}, nil
	case gast.TagCasePat:
		var raw struct {
			Tok token.Token     `json:"tok"`
			Pat json.RawMessage `json:"pat"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		pat, err := decodePattern(raw.Pat)
		if err != nil {
			return nil, err
		}
		return gast.CasePat{Tok: raw.Tok, Pat: pat}, nil
	case gast.TagCaseDefault:
		return decodePlain[gast.CaseDefault](data)
	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherCase{Todo: todo, Parts: parts}, nil
	}
}

func decodeCatchArm(data []byte) (gast.Catch, error) {
	var raw struct {
		Tok  token.Token     `json:"tok"`
		Pat  json.RawMessage `json:"pat"`
		Body json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.Catch{}, err
	}
	pat, err := decodePattern(raw.Pat)
	if err != nil {
		return gast.Catch{}, err
	}
	body, err := decodeStmt(raw.Body)
	if err != nil {
		return gast.Catch{}, err
	}
	return gast.Catch{Tok: raw.Tok, Pat: pat, Body: body}, nil
}
