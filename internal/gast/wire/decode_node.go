package wire

import (
	"encoding/json"
	"fmt"

	"uast/internal/gast"
	"uast/internal/token"
)

func decodePattern(data []byte) (gast.Pattern, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagPatLit:
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
		return gast.PatLit{Value: lit}, nil

	case gast.TagPatID:
		var raw struct {
			Ident gast.Ident      `json:"ident"`
			Info  json.RawMessage `json:"info"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		info, err := decodeIDInfo(raw.Info)
		if err != nil {
			return nil, err
		}
		return gast.PatID{Ident: raw.Ident, Info: info}, nil

	case gast.TagPatWildcard:
		return decodePlain[gast.PatWildcard](data)

	case gast.TagPatConstructor:
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
		args, err := decodeList(raw.Args, decodePattern)
		if err != nil {
			return nil, err
		}
		return gast.PatConstructor{Name: name, Args: args}, nil

	case gast.TagPatTuple:
		var raw struct {
			Elems json.RawMessage `json:"elems"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		elems, err := decodeBracketed(raw.Elems, func(d []byte) ([]gast.Pattern, error) {
			return decodeList(d, decodePattern)
		})
		if err != nil {
			return nil, err
		}
		return gast.PatTuple{Elems: elems}, nil

	case gast.TagPatList:
		var raw struct {
			Elems json.RawMessage `json:"elems"`
			Rest  json.RawMessage `json:"rest"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		elems, err := decodeBracketed(raw.Elems, func(d []byte) ([]gast.Pattern, error) {
			return decodeList(d, decodePattern)
		})
		if err != nil {
			return nil, err
		}
		rest, err := decodeOpt(raw.Rest, decodePattern)
		if err != nil {
			return nil, err
		}
		return gast.PatList{Elems: elems, Rest: rest}, nil

	case gast.TagPatRecord:
		var raw struct {
			Fields json.RawMessage `json:"fields"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		fields, err := decodeBracketed(raw.Fields, func(d []byte) ([]gast.PatField, error) {
			return decodeList(d, decodePatField)
		})
		if err != nil {
			return nil, err
		}
		return gast.PatRecord{Fields: fields}, nil

	case gast.TagPatTyped:
		var raw struct {
			Pat json.RawMessage `json:"pat"`
			Ty  json.RawMessage `json:"ty"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		pat, err := decodePattern(raw.Pat)
		if err != nil {
			return nil, err
		}
		ty, err := decodeType(raw.Ty)
		if err != nil {
			return nil, err
		}
		return gast.PatTyped{Pat: pat, Ty: ty}, nil

	case gast.TagPatOr:
		var raw struct {
			Alts json.RawMessage `json:"alts"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		alts, err := decodeList(raw.Alts, decodePattern)
		if err != nil {
			return nil, err
		}
		return gast.PatOr{Alts: alts}, nil

	case gast.TagPatAs:
		var raw struct {
			Pat   json.RawMessage `json:"pat"`
			Ident gast.Ident      `json:"ident"`
			Info  json.RawMessage `json:"info"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		pat, err := decodePattern(raw.Pat)
		if err != nil {
			return nil, err
		}
		info, err := decodeIDInfo(raw.Info)
		if err != nil {
			return nil, err
		}
		return gast.PatAs{Pat: pat, Ident: raw.Ident, Info: info}, nil

	case gast.TagPatExpr:
		var raw struct {
			X json.RawMessage `json:"x"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		return gast.PatExpr{X: x}, nil

	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherPat{Todo: todo, Parts: parts}, nil
	}
}

func decodePatField(data []byte) (gast.PatField, error) {
	var raw struct {
		Name gast.DottedIdent `json:"name"`
		Pat  json.RawMessage  `json:"pat"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.PatField{}, err
	}
	pat, err := decodePattern(raw.Pat)
	if err != nil {
		return gast.PatField{}, err
	}
	return gast.PatField{Name: raw.Name, Pat: pat}, nil
}

func decodeType(data []byte) (gast.TypeExpr, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagTyName:
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
		return gast.TyName{Name: name}, nil

	case gast.TagTyApply:
		var raw struct {
			Base json.RawMessage `json:"base"`
			Args json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		base, err := decodeType(raw.Base)
		if err != nil {
			return nil, err
		}
		args, err := decodeBracketed(raw.Args, func(d []byte) ([]gast.TypeExpr, error) {
			return decodeList(d, decodeType)
		})
		if err != nil {
			return nil, err
		}
		return gast.TyApply{Base: base, Args: args}, nil

	case gast.TagTyFunc:
		var raw struct {
			Params json.RawMessage `json:"params"`
			Ret    json.RawMessage `json:"ret"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		params, err := decodeList(raw.Params, decodeParam)
		if err != nil {
			return nil, err
		}
		ret, err := decodeType(raw.Ret)
		if err != nil {
			return nil, err
		}
		return gast.TyFunc{Params: params, Ret: ret}, nil

	case gast.TagTyTuple:
		var raw struct {
			Elems json.RawMessage `json:"elems"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		elems, err := decodeBracketed(raw.Elems, func(d []byte) ([]gast.TypeExpr, error) {
			return decodeList(d, decodeType)
		})
		if err != nil {
			return nil, err
		}
		return gast.TyTuple{Elems: elems}, nil

	case gast.TagTyArray:
		var raw struct {
			Size json.RawMessage `json:"size"`
			Elem json.RawMessage `json:"elem"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		size, err := decodeOpt(raw.Size, decodeExpr)
		if err != nil {
			return nil, err
		}
		elem, err := decodeType(raw.Elem)
		if err != nil {
			return nil, err
		}
		return gast.TyArray{Size: size, Elem: elem}, nil

	case gast.TagTyPointer:
		var raw struct {
			Tok  token.Token     `json:"tok"`
			Elem json.RawMessage `json:"elem"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		elem, err := decodeType(raw.Elem)
		if err != nil {
			return nil, err
		}
		return gast.TyPointer{Tok: raw.Tok, Elem: elem}, nil

	case gast.TagTyRef:
		var raw struct {
			Tok  token.Token     `json:"tok"`
			Elem json.RawMessage `json:"elem"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		elem, err := decodeType(raw.Elem)
		if err != nil {
			return nil, err
		}
		return gast.TyRef{Tok: raw.Tok, Elem: elem}, nil

	case gast.TagTyOr:
		var raw struct {
			Alts json.RawMessage `json:"alts"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		alts, err := decodeList(raw.Alts, decodeType)
		if err != nil {
			return nil, err
		}
		return gast.TyOr{Alts: alts}, nil

	case gast.TagTyAnd:
		var raw struct {
			Alts json.RawMessage `json:"alts"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		alts, err := decodeList(raw.Alts, decodeType)
		if err != nil {
			return nil, err
		}
		return gast.TyAnd{Alts: alts}, nil

	case gast.TagTyRecord:
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
		return gast.TyRecord{Fields: fields}, nil

	case gast.TagTyExpr:
		var raw struct {
			X json.RawMessage `json:"x"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		return gast.TyExpr{X: x}, nil

	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherType{Todo: todo, Parts: parts}, nil
	}
}

func decodeDef(data []byte) (gast.Definition, error) {
	var raw struct {
		Entity json.RawMessage `json:"entity"`
		Kind   json.RawMessage `json:"kind"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.Definition{}, err
	}
	entity, err := decodeEntity(raw.Entity)
	if err != nil {
		return gast.Definition{}, err
	}
	kind, err := decodeDefKind(raw.Kind)
	if err != nil {
		return gast.Definition{}, err
	}
	return gast.Definition{Entity: entity, Kind: kind}, nil
}

func decodeEntity(data []byte) (gast.Entity, error) {
	var raw struct {
		Name    json.RawMessage `json:"name"`
		Attrs   json.RawMessage `json:"attrs"`
		TParams json.RawMessage `json:"tparams"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.Entity{}, err
	}
	name, err := decodeName(raw.Name)
	if err != nil {
		return gast.Entity{}, err
	}
	attrs, err := decodeList(raw.Attrs, decodeAttr)
	if err != nil {
		return gast.Entity{}, err
	}
	tparams, err := decodeList(raw.TParams, decodeTypeParam)
	if err != nil {
		return gast.Entity{}, err
	}
	return gast.Entity{Name: name, Attrs: attrs, TParams: tparams}, nil
}

func decodeTypeParam(data []byte) (gast.TypeParam, error) {
	var raw struct {
		Ident   gast.Ident      `json:"ident"`
		Bounds  json.RawMessage `json:"bounds"`
		Default json.RawMessage `json:"default"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.TypeParam{}, err
	}
	bounds, err := decodeList(raw.Bounds, decodeType)
	if err != nil {
		return gast.TypeParam{}, err
	}
	def, err := decodeOpt(raw.Default, decodeType)
	if err != nil {
		return gast.TypeParam{}, err
	}
	return gast.TypeParam{Ident: raw.Ident, Bounds: bounds, Default: def}, nil
}

func decodeDefKind(data []byte) (gast.DefKind, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagFuncDef:
		return decodeFuncDef(data)

	case gast.TagVarDef:
		var raw struct {
			Init json.RawMessage `json:"init"`
			Ty   json.RawMessage `json:"ty"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		init, err := decodeOpt(raw.Init, decodeExpr)
		if err != nil {
			return nil, err
		}
		ty, err := decodeOpt(raw.Ty, decodeType)
		if err != nil {
			return nil, err
		}
		return gast.VarDef{Init: init, Ty: ty}, nil

	case gast.TagClassDef:
		var raw struct {
			CKind      gast.Wrapped[gast.ClassKind] `json:"ckind"`
			Extends    json.RawMessage              `json:"extends"`
			Implements json.RawMessage              `json:"implements"`
			Body       json.RawMessage              `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		extends, err := decodeList(raw.Extends, decodeType)
		if err != nil {
			return nil, err
		}
		implements, err := decodeList(raw.Implements, decodeType)
		if err != nil {
			return nil, err
		}
		body, err := decodeBracketed(raw.Body, func(d []byte) ([]gast.Definition, error) {
			return decodeList(d, decodeDef)
		})
		if err != nil {
			return nil, err
		}
		return gast.ClassDef{CKind: raw.CKind, Extends: extends, Implements: implements, Body: body}, nil

	case gast.TagEnumDef:
		var raw struct {
			Cases json.RawMessage `json:"cases"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		cases, err := decodeList(raw.Cases, decodeEnumCase)
		if err != nil {
			return nil, err
		}
		return gast.EnumDef{Cases: cases}, nil

	case gast.TagModuleDef:
		var raw struct {
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		body, err := decodeModuleBody(raw.Body)
		if err != nil {
			return nil, err
		}
		return gast.ModuleDef{Body: body}, nil

	case gast.TagMacroDef:
		var raw struct {
			Params []gast.Ident    `json:"params"`
			Body   json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		body, err := decodeList(raw.Body, decodeAny)
		if err != nil {
			return nil, err
		}
		return gast.MacroDef{Params: raw.Params, Body: body}, nil

	case gast.TagTypeAliasDef:
		var raw struct {
			Ty json.RawMessage `json:"ty"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		ty, err := decodeType(raw.Ty)
		if err != nil {
			return nil, err
		}
		return gast.TypeAliasDef{Ty: ty}, nil

	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherDef{Todo: todo, Parts: parts}, nil
	}
}

func decodeFuncDef(data []byte) (gast.FuncDef, error) {
	var raw struct {
		FKind  gast.Wrapped[gast.FuncKind] `json:"fkind"`
		Params json.RawMessage             `json:"params"`
		Ret    json.RawMessage             `json:"ret"`
		Body   json.RawMessage             `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.FuncDef{}, err
	}
	params, err := decodeBracketed(raw.Params, func(d []byte) ([]gast.Parameter, error) {
		return decodeList(d, decodeParam)
	})
	if err != nil {
		return gast.FuncDef{}, err
	}
	ret, err := decodeOpt(raw.Ret, decodeType)
	if err != nil {
		return gast.FuncDef{}, err
	}
	body, err := decodeFuncBody(raw.Body)
	if err != nil {
		return gast.FuncDef{}, err
	}
	return gast.FuncDef{FKind: raw.FKind, Params: params, Ret: ret, Body: body}, nil
}

func decodeFuncBody(data []byte) (gast.FuncBody, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagBlockBody:
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
		return gast.BlockBody{S: s}, nil
	case gast.TagExprBody:
		var raw struct {
			X json.RawMessage `json:"x"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		return gast.ExprBody{X: x}, nil
	case gast.TagNoBody:
		return decodePlain[gast.NoBody](data)
	default:
		return nil, fmt.Errorf("wire: unknown function body tag %q", tag)
	}
}

func decodeModuleBody(data []byte) (gast.ModuleBody, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagModuleAlias:
		return decodePlain[gast.ModuleAlias](data)
	case gast.TagModuleStmts:
		var raw struct {
			Stmts json.RawMessage `json:"stmts"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		stmts, err := decodeList(raw.Stmts, decodeStmt)
		if err != nil {
			return nil, err
		}
		return gast.ModuleStmts{Stmts: stmts}, nil
	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherModule{Todo: todo, Parts: parts}, nil
	}
}

func decodeEnumCase(data []byte) (gast.EnumCase, error) {
	var raw struct {
		Ident gast.Ident      `json:"ident"`
		Args  json.RawMessage `json:"args"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.EnumCase{}, err
	}
	args, err := decodeList(raw.Args, decodeType)
	if err != nil {
		return gast.EnumCase{}, err
	}
	value, err := decodeOpt(raw.Value, decodeExpr)
	if err != nil {
		return gast.EnumCase{}, err
	}
	return gast.EnumCase{Ident: raw.Ident, Args: args, Value: value}, nil
}

func decodeDirective(data []byte) (gast.Directive, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagImportFrom:
		return decodePlain[gast.ImportFrom](data)
	case gast.TagImportModule:
		return decodePlain[gast.ImportModule](data)
	case gast.TagImportAll:
		return decodePlain[gast.ImportAll](data)
	case gast.TagExport:
		return decodePlain[gast.Export](data)
	case gast.TagPackage:
		return decodePlain[gast.Package](data)
	case gast.TagPragma:
		var raw struct {
			Tok   token.Token     `json:"tok"`
			Ident gast.Ident      `json:"ident"`
			Args  json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		args, err := decodeList(raw.Args, decodeAny)
		if err != nil {
			return nil, err
		}
		return gast.Pragma{Tok: raw.Tok, Ident: raw.Ident, Args: args}, nil
	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherDirective{Todo: todo, Parts: parts}, nil
	}
}

func decodeAttr(data []byte) (gast.Attribute, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagKeywordAttr:
		return decodePlain[gast.KeywordAttr](data)
	case gast.TagNamedAttr:
		var raw struct {
			Tok  token.Token     `json:"tok"`
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
		args, err := decodeArgList(raw.Args)
		if err != nil {
			return nil, err
		}
		return gast.NamedAttr{Tok: raw.Tok, Name: name, Args: args}, nil
	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherAttr{Todo: todo, Parts: parts}, nil
	}
}

func decodeArgList(data []byte) (gast.Bracketed[[]gast.Argument], error) {
	return decodeBracketed(data, func(d []byte) ([]gast.Argument, error) {
		return decodeList(d, decodeArg)
	})
}

func decodeArg(data []byte) (gast.Argument, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagArg:
		var raw struct {
			X json.RawMessage `json:"x"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		return gast.Arg{X: x}, nil
	case gast.TagArgKwd:
		var raw struct {
			Ident gast.Ident      `json:"ident"`
			X     json.RawMessage `json:"x"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		return gast.ArgKwd{Ident: raw.Ident, X: x}, nil
	case gast.TagArgType:
		var raw struct {
			Ty json.RawMessage `json:"ty"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		ty, err := decodeType(raw.Ty)
		if err != nil {
			return nil, err
		}
		return gast.ArgType{Ty: ty}, nil
	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherArg{Todo: todo, Parts: parts}, nil
	}
}

func decodeParam(data []byte) (gast.Parameter, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagParamClassic:
		return decodeParamClassic(data)
	case gast.TagParamPattern:
		var raw struct {
			Pat json.RawMessage `json:"pat"`
			Ty  json.RawMessage `json:"ty"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		pat, err := decodePattern(raw.Pat)
		if err != nil {
			return nil, err
		}
		ty, err := decodeOpt(raw.Ty, decodeType)
		if err != nil {
			return nil, err
		}
		return gast.ParamPattern{Pat: pat, Ty: ty}, nil
	case gast.TagParamRest:
		var raw struct {
			Tok   token.Token     `json:"tok"`
			Inner json.RawMessage `json:"inner"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		inner, err := decodeParamClassic(raw.Inner)
		if err != nil {
			return nil, err
		}
		return gast.ParamRest{Tok: raw.Tok, Inner: inner}, nil
	default:
		todo, parts, err := decodeCatchAll(tag, data)
		if err != nil {
			return nil, err
		}
		return gast.OtherParam{Todo: todo, Parts: parts}, nil
	}
}

func decodeParamClassic(data []byte) (gast.ParamClassic, error) {
	var raw struct {
		Ident   gast.Ident      `json:"ident"`
		Info    json.RawMessage `json:"info"`
		Ty      json.RawMessage `json:"ty"`
		Default json.RawMessage `json:"default"`
		Attrs   json.RawMessage `json:"attrs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return gast.ParamClassic{}, err
	}
	info, err := decodeIDInfo(raw.Info)
	if err != nil {
		return gast.ParamClassic{}, err
	}
	ty, err := decodeOpt(raw.Ty, decodeType)
	if err != nil {
		return gast.ParamClassic{}, err
	}
	def, err := decodeOpt(raw.Default, decodeExpr)
	if err != nil {
		return gast.ParamClassic{}, err
	}
	attrs, err := decodeList(raw.Attrs, decodeAttr)
	if err != nil {
		return gast.ParamClassic{}, err
	}
	return gast.ParamClassic{Ident: raw.Ident, Info: info, Ty: ty, Default: def, Attrs: attrs}, nil
}

// decodeAny dispatches to the hierarchy named by the wrapper tag. Unlike
// the node hierarchies, Any is closed over the twelve wrapper kinds, so an
// unknown wrapper tag is a hard error rather than a catch-all.
func decodeAny(data []byte) (gast.Any, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case gast.TagAnyExpr:
		var raw struct {
			X json.RawMessage `json:"x"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		x, err := decodeExpr(raw.X)
		if err != nil {
			return nil, err
		}
		return gast.AnyExpr{X: x}, nil
	case gast.TagAnyStmt:
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
		return gast.AnyStmt{S: s}, nil
	case gast.TagAnyPat:
		var raw struct {
			P json.RawMessage `json:"p"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		p, err := decodePattern(raw.P)
		if err != nil {
			return nil, err
		}
		return gast.AnyPat{P: p}, nil
	case gast.TagAnyType:
		var raw struct {
			T json.RawMessage `json:"t"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		t, err := decodeType(raw.T)
		if err != nil {
			return nil, err
		}
		return gast.AnyType{T: t}, nil
	case gast.TagAnyDef:
		var raw struct {
			D json.RawMessage `json:"d"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		d, err := decodeDef(raw.D)
		if err != nil {
			return nil, err
		}
		return gast.AnyDef{D: d}, nil
	case gast.TagAnyDir:
		var raw struct {
			D json.RawMessage `json:"d"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		d, err := decodeDirective(raw.D)
		if err != nil {
			return nil, err
		}
		return gast.AnyDir{D: d}, nil
	case gast.TagAnyAttr:
		var raw struct {
			A json.RawMessage `json:"a"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		a, err := decodeAttr(raw.A)
		if err != nil {
			return nil, err
		}
		return gast.AnyAttr{A: a}, nil
	case gast.TagAnyArg:
		var raw struct {
			A json.RawMessage `json:"a"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		a, err := decodeArg(raw.A)
		if err != nil {
			return nil, err
		}
		return gast.AnyArg{A: a}, nil
	case gast.TagAnyParam:
		var raw struct {
			P json.RawMessage `json:"p"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		p, err := decodeParam(raw.P)
		if err != nil {
			return nil, err
		}
		return gast.AnyParam{P: p}, nil
	case gast.TagAnyName:
		var raw struct {
			N json.RawMessage `json:"n"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		n, err := decodeName(raw.N)
		if err != nil {
			return nil, err
		}
		return gast.AnyName{N: n}, nil
	case gast.TagAnyIdent:
		return decodePlain[gast.AnyIdent](data)
	case gast.TagAnyTok:
		return decodePlain[gast.AnyTok](data)
	default:
		return nil, fmt.Errorf("wire: unknown any wrapper tag %q", tag)
	}
}
