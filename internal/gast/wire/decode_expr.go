package wire

import (
	"encoding/json"

	"uast/internal/gast"
	"uast/internal/token"
)

func decodeExpr(data []byte) (gast.Expr, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagLit:
		var raw struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		lit, err := decodeLiteral(raw.Value)
		if err != nil {
			return nil, err
		}
		return gast.Lit{Value: lit}, nil

	case gast.TagNameRef:
		var raw struct {
			Name json.RawMessage `json:"name"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		name, err := decodeName(raw.Name)
		if err != nil {
			return nil, err
		}
		return gast.NameRef{Name: name}, nil

	case gast.TagContainer:
		var raw struct {
			Kind  gast.ContainerKind `json:"kind"`
			Elems json.RawMessage    `json:"elems"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		elems, err := decodeBracketed(raw.Elems, func(d []byte) ([]gast.Expr, error) {
			return decodeList(d, decodeExpr)
		})
		if err != nil {
			return nil, err
		}
		return gast.Container{Kind: raw.Kind, Elems: elems}, nil

	case gast.TagComprehension:
		var raw struct {
			Kind    gast.ContainerKind `json:"kind"`
			Body    json.RawMessage    `json:"body"`
			Clauses json.RawMessage    `json:"clauses"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		body, err := decodeExpr(raw.Body)
		if err != nil {
			return nil, err
		}
		clauses, err := decodeList(raw.Clauses, decodeCompClause)
		if err != nil {
			return nil, err
		}
		return gast.Comprehension{Kind: raw.Kind, Body: body, Clauses: clauses}, nil

	case gast.TagRecordLit:
		var raw struct {
			Fields json.RawMessage `json:"fields"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		fields, err := decodeBracketed(raw.Fields, func(d []byte) ([]gast.Definition, error) {
			return decodeList(d, decodeDef)
		})
		if err != nil {
			return nil, err
		}
		return gast.RecordLit{Fields: fields}, nil

	case gast.TagConstructor:
		var raw struct {
			Name json.RawMessage `json:"name"`
			Args json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		name, err := decodeName(raw.Name)
		if err != nil {
			return nil, err
		}
		args, err := decodeList(raw.Args, decodeExpr)
		if err != nil {
			return nil, err
		}
		return gast.Constructor{Name: name, Args: args}, nil

	case gast.TagLambda:
		var raw struct {
			Def json.RawMessage `json:"def"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		def, err := decodeFuncDef(raw.Def)
		if err != nil {
			return nil, err
		}
		return gast.Lambda{Def: def}, nil

	case gast.TagCall:
		var raw struct {
			Fn   json.RawMessage `json:"fn"`
			Args json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		fn, err := decodeExpr(raw.Fn)
		if err != nil {
			return nil, err
		}
		args, err := decodeArgList(raw.Args)
		if err != nil {
			return nil, err
		}
		return gast.Call{Fn: fn, Args: args}, nil

	case gast.TagNew:
		var raw struct {
			Tok  token.Token     `json:"tok"`
			Ty   json.RawMessage `json:"ty"`
			Args json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		ty, err := decodeType(raw.Ty)
		if err != nil {
			return nil, err
		}
		args, err := decodeArgList(raw.Args)
		if err != nil {
			return nil, err
		}
		return gast.New{Tok: raw.Tok, Ty: ty, Args: args}, nil

	case gast.TagDotAccess:
		var raw struct {
			Obj   json.RawMessage `json:"obj"`
			Op    token.Token     `json:"op"`
			Field json.RawMessage `json:"field"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		obj, err := decodeExpr(raw.Obj)
		if err != nil {
			return nil, err
		}
		field, err := decodeName(raw.Field)
		if err != nil {
			return nil, err
		}
		return gast.DotAccess{Obj: obj, Op: raw.Op, Field: field}, nil

	case gast.TagArrayAccess:
		var raw struct {
			Obj   json.RawMessage `json:"obj"`
			Index json.RawMessage `json:"index"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		obj, err := decodeExpr(raw.Obj)
		if err != nil {
			return nil, err
		}
		index, err := decodeBracketed(raw.Index, decodeExpr)
		if err != nil {
			return nil, err
		}
		return gast.ArrayAccess{Obj: obj, Index: index}, nil

	case gast.TagSliceAccess:
		var raw struct {
			Obj    json.RawMessage `json:"obj"`
			Bounds json.RawMessage `json:"bounds"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		obj, err := decodeExpr(raw.Obj)
		if err != nil {
			return nil, err
		}
		bounds, err := decodeBracketed(raw.Bounds, decodeSliceBounds)
		if err != nil {
			return nil, err
		}
		return gast.SliceAccess{Obj: obj, Bounds: bounds}, nil

	case gast.TagAssign:
		var raw struct {
			LHS json.RawMessage `json:"lhs"`
			Op  token.Token     `json:"op"`
			RHS json.RawMessage `json:"rhs"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		lhs, err := decodeExpr(raw.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeExpr(raw.RHS)
		if err != nil {
			return nil, err
		}
		return gast.Assign{LHS: lhs, Op: raw.Op, RHS: rhs}, nil

	case gast.TagAssignOp:
		var raw struct {
			LHS json.RawMessage             `json:"lhs"`
			Op  gast.Wrapped[gast.Operator] `json:"op"`
			RHS json.RawMessage             `json:"rhs"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		lhs, err := decodeExpr(raw.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeExpr(raw.RHS)
		if err != nil {
			return nil, err
		}
		return gast.AssignOp{LHS: lhs, Op: raw.Op, RHS: rhs}, nil

	case gast.TagLetPattern:
		var raw struct {
			Pat json.RawMessage `json:"pat"`
			Tok token.Token     `json:"tok"`
			RHS json.RawMessage `json:"rhs"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		pat, err := decodePattern(raw.Pat)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeExpr(raw.RHS)
		if err != nil {
			return nil, err
		}
		return gast.LetPattern{Pat: pat, Tok: raw.Tok, RHS: rhs}, nil

	case gast.TagUnary:
		var raw struct {
			Op gast.Wrapped[gast.Operator] `json:"op"`
			X  json.RawMessage             `json:"x"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		return gast.Unary{Op: raw.Op, X: x}, nil

	case gast.TagBinary:
		var raw struct {
			Op gast.Wrapped[gast.Operator] `json:"op"`
			X  json.RawMessage             `json:"x"`
			Y  json.RawMessage             `json:"y"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		y, err := decodeExpr(raw.Y)
		if err != nil {
			return nil, err
		}
		return gast.Binary{Op: raw.Op, X: x, Y: y}, nil

	case gast.TagConditional:
		var raw struct {
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
		then, err := decodeExpr(raw.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeExpr(raw.Else)
		if err != nil {
			return nil, err
		}
		return gast.Conditional{Cond: cond, Then: then, Else: els}, nil

	case gast.TagYield:
		var raw struct {
			Tok   token.Token     `json:"tok"`
			Value json.RawMessage `json:"value"`
			From  bool            `json:"from"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		value, err := decodeOpt(raw.Value, decodeExpr)
		if err != nil {
			return nil, err
		}
		return gast.Yield{Tok: raw.Tok, Value: value, From: raw.From}, nil

	case gast.TagAwait:
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
		return gast.Await{Tok: raw.Tok, X: x}, nil

	case gast.TagCast:
		var raw struct {
			X  json.RawMessage `json:"x"`
			Ty json.RawMessage `json:"ty"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		ty, err := decodeType(raw.Ty)
		if err != nil {
			return nil, err
		}
		return gast.Cast{X: x, Ty: ty}, nil

	case gast.TagRef:
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
		return gast.Ref{Tok: raw.Tok, X: x}, nil

	case gast.TagDeref:
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
		return gast.Deref{Tok: raw.Tok, X: x}, nil

	case gast.TagSeq:
		var raw struct {
			Items json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		items, err := decodeList(raw.Items, decodeExpr)
		if err != nil {
			return nil, err
		}
		return gast.Seq{Items: items}, nil

	case gast.TagStmtExpr:
		var raw struct {
			S json.RawMessage `json:"s"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		s, err := decodeStmt(raw.S)
		if err != nil {
			return nil, err
		}
		return gast.StmtExpr{S: s}, nil

	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherExpr{Todo: todo, Parts: parts}, nil
	}
}

// decodeCatchAll handles both an explicit catch-all payload (todo+parts)
// and a tag this decoder has never seen, which degrades to the catch-all
// with the unknown tag preserved as the todo string.
func decodeCatchAll(tag string, data []byte) (string, []gast.Any, error) {
	var raw struct {
		Todo  string          `json:"todo"`
		Parts json.RawMessage `json:"parts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", nil, err
	}
	parts, err := decodeList(raw.Parts, decodeAny)
	if err != nil {
		return "", nil, err
	}
	todo := raw.Todo
	if !isCatchAllTag(tag) {
		todo = tag
	}
	return todo, parts, nil
}

func isCatchAllTag(tag string) bool {
	switch tag {
	case gast.TagOtherExpr, gast.TagOtherStmt, gast.TagOtherPat, gast.TagOtherType,
		gast.TagOtherDef, gast.TagOtherDirective, gast.TagOtherAttr, gast.TagOtherArg,
		gast.TagOtherParam, gast.TagOtherLit, gast.TagOtherComp, gast.TagOtherCase,
		gast.TagOtherForHeader, gast.TagOtherModule:
		return true
	}
	return false
}

func decodeSliceBounds(data []byte) (gast.SliceBounds, error) {
	var raw struct {
		Lo   json.RawMessage `json:"lo"`
		Hi   json.RawMessage `json:"hi"`
		Step json.RawMessage `json:"step"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.SliceBounds{}, err
	}
	lo, err := decodeOpt(raw.Lo, decodeExpr)
	if err != nil {
		return gast.SliceBounds{}, err
	}
	hi, err := decodeOpt(raw.Hi, decodeExpr)
	if err != nil {
		return gast.SliceBounds{}, err
	}
	step, err := decodeOpt(raw.Step, decodeExpr)
	if err != nil {
		return gast.SliceBounds{}, err
	}
	return gast.SliceBounds{Lo: lo, Hi: hi, Step: step}, nil
}

func decodeCompClause(data []byte) (gast.CompClause, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagCompFor:
		var raw struct {
			Tok  token.Token     `json:"tok"`
			Pat  json.RawMessage `json:"pat"`
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
		return gast.CompFor{Tok: raw.Tok, Pat: pat, Iter: iter}, nil
	case gast.TagCompIf:
		var raw struct {
			Tok  token.Token     `json:"tok"`
			Cond json.RawMessage `json:"cond"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(raw.Cond)
		if err != nil {
			return nil, err
		}
		return gast.CompIf{Tok: raw.Tok, Cond: cond}, nil
	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherComp{Todo: todo, Parts: parts}, nil
	}
}

func decodeLiteral(data []byte) (gast.Literal, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagBoolLit:
		return decodePlain[gast.BoolLit](data)
	case gast.TagIntLit:
		return decodePlain[gast.IntLit](data)
	case gast.TagFloatLit:
		return decodePlain[gast.FloatLit](data)
	case gast.TagCharLit:
		return decodePlain[gast.CharLit](data)
	case gast.TagStringLit:
		return decodePlain[gast.StringLit](data)
	case gast.TagRegexpLit:
		return decodePlain[gast.RegexpLit](data)
	case gast.TagNullLit:
		return decodePlain[gast.NullLit](data)
	case gast.TagUndefinedLit:
		return decodePlain[gast.UndefinedLit](data)
	case gast.TagUnitLit:
		return decodePlain[gast.UnitLit](data)
	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherLit{Todo: todo, Parts: parts}, nil
	}
}
