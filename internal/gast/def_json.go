package gast

func (d FuncDef) MarshalJSON() ([]byte, error) {
	type w FuncDef
	return tagged(TagFuncDef, w(d))
}

func (d VarDef) MarshalJSON() ([]byte, error) {
	type w VarDef
	return tagged(TagVarDef, w(d))
}

func (d ClassDef) MarshalJSON() ([]byte, error) {
	type w ClassDef
	return tagged(TagClassDef, w(d))
}

func (d EnumDef) MarshalJSON() ([]byte, error) {
	type w EnumDef
	return tagged(TagEnumDef, w(d))
}

func (d ModuleDef) MarshalJSON() ([]byte, error) {
	type w ModuleDef
	return tagged(TagModuleDef, w(d))
}

func (d MacroDef) MarshalJSON() ([]byte, error) {
	type w MacroDef
	return tagged(TagMacroDef, w(d))
}

func (d TypeAliasDef) MarshalJSON() ([]byte, error) {
	type w TypeAliasDef
	return tagged(TagTypeAliasDef, w(d))
}

func (d OtherDef) MarshalJSON() ([]byte, error) {
	type w OtherDef
	return tagged(TagOtherDef, w(d))
}

func (b BlockBody) MarshalJSON() ([]byte, error) {
	type w BlockBody
	return tagged(TagBlockBody, w(b))
}

func (b ExprBody) MarshalJSON() ([]byte, error) {
	type w ExprBody
	return tagged(TagExprBody, w(b))
}

func (b NoBody) MarshalJSON() ([]byte, error) {
	type w NoBody
	return tagged(TagNoBody, w(b))
}

func (m ModuleAlias) MarshalJSON() ([]byte, error) {
	type w ModuleAlias
	return tagged(TagModuleAlias, w(m))
}

func (m ModuleStmts) MarshalJSON() ([]byte, error) {
	type w ModuleStmts
	return tagged(TagModuleStmts, w(m))
}

func (m OtherModule) MarshalJSON() ([]byte, error) {
	type w OtherModule
	return tagged(TagOtherModule, w(m))
}

func (a KeywordAttr) MarshalJSON() ([]byte, error) {
	type w KeywordAttr
	return tagged(TagKeywordAttr, w(a))
}

func (a NamedAttr) MarshalJSON() ([]byte, error) {
	type w NamedAttr
	return tagged(TagNamedAttr, w(a))
}

func (a OtherAttr) MarshalJSON() ([]byte, error) {
	type w OtherAttr
	return tagged(TagOtherAttr, w(a))
}

func (p ParamClassic) MarshalJSON() ([]byte, error) {
	type w ParamClassic
	return tagged(TagParamClassic, w(p))
}

func (p ParamPattern) MarshalJSON() ([]byte, error) {
	type w ParamPattern
	return tagged(TagParamPattern, w(p))
}

func (p ParamRest) MarshalJSON() ([]byte, error) {
	type w ParamRest
	return tagged(TagParamRest, w(p))
}

func (p OtherParam) MarshalJSON() ([]byte, error) {
	type w OtherParam
	return tagged(TagOtherParam, w(p))
}

func (a Arg) MarshalJSON() ([]byte, error) {
	type w Arg
	return tagged(TagArg, w(a))
}

func (a ArgKwd) MarshalJSON() ([]byte, error) {
	type w ArgKwd
	return tagged(TagArgKwd, w(a))
}

func (a ArgType) MarshalJSON() ([]byte, error) {
	type w ArgType
	return tagged(TagArgType, w(a))
}

func (a OtherArg) MarshalJSON() ([]byte, error) {
	type w OtherArg
	return tagged(TagOtherArg, w(a))
}
