package gast

func (e Lit) MarshalJSON() ([]byte, error) {
	type w Lit
	return tagged(TagLit, w(e))
}

func (e NameRef) MarshalJSON() ([]byte, error) {
	type w NameRef
	return tagged(TagNameRef, w(e))
}

func (e Container) MarshalJSON() ([]byte, error) {
	type w Container
	return tagged(TagContainer, w(e))
}

func (e Comprehension) MarshalJSON() ([]byte, error) {
	type w Comprehension
	return tagged(TagComprehension, w(e))
}

func (e RecordLit) MarshalJSON() ([]byte, error) {
	type w RecordLit
	return tagged(TagRecordLit, w(e))
}

func (e Constructor) MarshalJSON() ([]byte, error) {
	type w Constructor
	return tagged(TagConstructor, w(e))
}

func (e Lambda) MarshalJSON() ([]byte, error) {
	type w Lambda
	return tagged(TagLambda, w(e))
}

func (e Call) MarshalJSON() ([]byte, error) {
	type w Call
	return tagged(TagCall, w(e))
}

func (e New) MarshalJSON() ([]byte, error) {
	type w New
	return tagged(TagNew, w(e))
}

func (e DotAccess) MarshalJSON() ([]byte, error) {
	type w DotAccess
	return tagged(TagDotAccess, w(e))
}

func (e ArrayAccess) MarshalJSON() ([]byte, error) {
	type w ArrayAccess
	return tagged(TagArrayAccess, w(e))
}

func (e SliceAccess) MarshalJSON() ([]byte, error) {
	type w SliceAccess
	return tagged(TagSliceAccess, w(e))
}

func (e Assign) MarshalJSON() ([]byte, error) {
	type w Assign
	return tagged(TagAssign, w(e))
}

func (e AssignOp) MarshalJSON() ([]byte, error) {
	type w AssignOp
	return tagged(TagAssignOp, w(e))
}

func (e LetPattern) MarshalJSON() ([]byte, error) {
	type w LetPattern
	return tagged(TagLetPattern, w(e))
}

func (e Unary) MarshalJSON() ([]byte, error) {
	type w Unary
	return tagged(TagUnary, w(e))
}

func (e Binary) MarshalJSON() ([]byte, error) {
	type w Binary
	return tagged(TagBinary, w(e))
}

func (e Conditional) MarshalJSON() ([]byte, error) {
	type w Conditional
	return tagged(TagConditional, w(e))
}

func (e Yield) MarshalJSON() ([]byte, error) {
	type w Yield
	return tagged(TagYield, w(e))
}

func (e Await) MarshalJSON() ([]byte, error) {
	type w Await
	return tagged(TagAwait, w(e))
}

func (e Cast) MarshalJSON() ([]byte, error) {
	type w Cast
	return tagged(TagCast, w(e))
}

func (e Ref) MarshalJSON() ([]byte, error) {
	type w Ref
	return tagged(TagRef, w(e))
}

func (e Deref) MarshalJSON() ([]byte, error) {
	type w Deref
	return tagged(TagDeref, w(e))
}

func (e Seq) MarshalJSON() ([]byte, error) {
	type w Seq
	return tagged(TagSeq, w(e))
}

func (e StmtExpr) MarshalJSON() ([]byte, error) {
	type w StmtExpr
	return tagged(TagStmtExpr, w(e))
}

func (e OtherExpr) MarshalJSON() ([]byte, error) {
	type w OtherExpr
	return tagged(TagOtherExpr, w(e))
}

func (c CompFor) MarshalJSON() ([]byte, error) {
	type w CompFor
	return tagged(TagCompFor, w(c))
}

func (c CompIf) MarshalJSON() ([]byte, error) {
	type w CompIf
	return tagged(TagCompIf, w(c))
}

func (c OtherComp) MarshalJSON() ([]byte, error) {
	type w OtherComp
	return tagged(TagOtherComp, w(c))
}
