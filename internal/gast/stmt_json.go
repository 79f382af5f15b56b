package gast

func (s ExprStmt) MarshalJSON() ([]byte, error) {
	type w ExprStmt
	return tagged(TagExprStmt, w(s))
}

func (s Block) MarshalJSON() ([]byte, error) {
	type w Block
	return tagged(TagBlock, w(s))
}

func (s If) MarshalJSON() ([]byte, error) {
	type w If
	return tagged(TagIf, w(s))
}

func (s While) MarshalJSON() ([]byte, error) {
	type w While
	return tagged(TagWhile, w(s))
}

func (s DoWhile) MarshalJSON() ([]byte, error) {
	type w DoWhile
	return tagged(TagDoWhile, w(s))
}

func (s For) MarshalJSON() ([]byte, error) {
	type w For
	return tagged(TagFor, w(s))
}

func (s Return) MarshalJSON() ([]byte, error) {
	type w Return
	return tagged(TagReturn, w(s))
}

func (s Break) MarshalJSON() ([]byte, error) {
	type w Break
	return tagged(TagBreak, w(s))
}

func (s Continue) MarshalJSON() ([]byte, error) {
	type w Continue
	return tagged(TagContinue, w(s))
}

func (s Labeled) MarshalJSON() ([]byte, error) {
	type w Labeled
	return tagged(TagLabeled, w(s))
}

func (s Goto) MarshalJSON() ([]byte, error) {
	type w Goto
	return tagged(TagGoto, w(s))
}

func (s Switch) MarshalJSON() ([]byte, error) {
	type w Switch
	return tagged(TagSwitch, w(s))
}

func (s Try) MarshalJSON() ([]byte, error) {
	type w Try
	return tagged(TagTry, w(s))
}

func (s Throw) MarshalJSON() ([]byte, error) {
	type w Throw
	return tagged(TagThrow, w(s))
}

func (s Assert) MarshalJSON() ([]byte, error) {
	type w Assert
	return tagged(TagAssert, w(s))
}

func (s With) MarshalJSON() ([]byte, error) {
	type w With
	return tagged(TagWith, w(s))
}

func (s DefStmt) MarshalJSON() ([]byte, error) {
	type w DefStmt
	return tagged(TagDefStmt, w(s))
}

func (s DirectiveStmt) MarshalJSON() ([]byte, error) {
	type w DirectiveStmt
	return tagged(TagDirectiveStmt, w(s))
}

func (s OtherStmt) MarshalJSON() ([]byte, error) {
	type w OtherStmt
	return tagged(TagOtherStmt, w(s))
}

func (h ForClassic) MarshalJSON() ([]byte, error) {
	type w ForClassic
	return tagged(TagForClassic, w(h))
}

func (h ForEach) MarshalJSON() ([]byte, error) {
	type w ForEach
	return tagged(TagForEach, w(h))
}

func (h OtherForHeader) MarshalJSON() ([]byte, error) {
	type w OtherForHeader
	return tagged(TagOtherForHeader, w(h))
}

func (c CaseEq) MarshalJSON() ([]byte, error) {
	type w CaseEq
	return tagged(TagCaseEq, w(c))
}

func (c CasePat) MarshalJSON() ([]byte, error) {
	type w CasePat
	return tagged(TagCasePat, w(c))
}

func (c CaseDefault) MarshalJSON() ([]byte, error) {
	type w CaseDefault
	return tagged(TagCaseDefault, w(c))
}

func (c OtherCase) MarshalJSON() ([]byte, error) {
	type w OtherCase
	return tagged(TagOtherCase, w(c))
}
