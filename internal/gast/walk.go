package gast

import "uast/internal/token"

// Children returns the direct sub-nodes of n, every hierarchy flattened
// into Any. Delimiter and keyword tokens appear as AnyTok entries, so a
// full traversal visits every provenance fact in the subtree. IDInfo
// annotations are not descended into: they are analysis results, not
// syntax, and may reference tokens from other occurrences.
func Children(n Any) []Any {
	switch v := n.(type) {
	case AnyTok:
		return nil
	case AnyIdent:
		return []Any{AnyTok{v.I.Tok}}
	case AnyName:
		return nameChildren(v.N)
	case AnyExpr:
		return exprChildren(v.X)
	case AnyStmt:
		return stmtChildren(v.S)
	case AnyPat:
		return patChildren(v.P)
	case AnyType:
		return typeChildren(v.T)
	case AnyDef:
		return defChildren(v.D)
	case AnyDir:
		return dirChildren(v.D)
	case AnyAttr:
		return attrChildren(v.A)
	case AnyArg:
		return argChildren(v.A)
	case AnyParam:
		return paramChildren(v.P)
	default:
		return nil
	}
}

// Walk visits n and its subtree in preorder. Returning false from f stops
// descent below the current node.
func Walk(n Any, f func(Any) bool) {
	if n == nil {
		return
	}
	if !f(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, f)
	}
}

// Tokens collects every token in the subtree of n, in visit order.
func Tokens(n Any) []token.Token {
	var out []token.Token
	Walk(n, func(c Any) bool {
		if tk, ok := c.(AnyTok); ok {
			out = append(out, tk.T)
		}
		return true
	})
	return out
}

func nameChildren(n Name) []Any {
	var out []Any
	if q, ok := n.Qualifier.Get(); ok {
		for _, id := range q {
			out = append(out, AnyIdent{id})
		}
	}
	return append(out, AnyIdent{n.Ident})
}

func litChildren(l Literal) []Any {
	switch v := l.(type) {
	case BoolLit:
		return []Any{AnyTok{v.Tok}}
	case IntLit:
		return []Any{AnyTok{v.Tok}}
	case FloatLit:
		return []Any{AnyTok{v.Tok}}
	case CharLit:
		return []Any{AnyTok{v.Tok}}
	case StringLit:
		return []Any{AnyTok{v.Tok}}
	case RegexpLit:
		out := []Any{AnyTok{v.Pattern.Open}, AnyTok{v.Pattern.V.Tok}, AnyTok{v.Pattern.Close}}
		if f, ok := v.Flags.Get(); ok {
			out = append(out, AnyTok{f.Tok})
		}
		return out
	case NullLit:
		return []Any{AnyTok{v.Tok}}
	case UndefinedLit:
		return []Any{AnyTok{v.Tok}}
	case UnitLit:
		return []Any{AnyTok{v.Tok}}
	case OtherLit:
		return v.Parts
	default:
		return nil
	}
}

func exprChildren(e Expr) []Any {
	switch v := e.(type) {
	case Lit:
		return litChildren(v.Value)
	case NameRef:
		return nameChildren(v.Name)
	case Container:
		out := []Any{AnyTok{v.Elems.Open}}
		for _, x := range v.Elems.V {
			out = append(out, AnyExpr{x})
		}
		return append(out, AnyTok{v.Elems.Close})
	case Comprehension:
		out := []Any{AnyExpr{v.Body}}
		for _, c := range v.Clauses {
			out = append(out, compChildren(c)...)
		}
		return out
	case RecordLit:
		out := []Any{AnyTok{v.Fields.Open}}
		for _, d := range v.Fields.V {
			out = append(out, AnyDef{d})
		}
		return append(out, AnyTok{v.Fields.Close})
	case Constructor:
		out := nameChildren(v.Name)
		for _, x := range v.Args {
			out = append(out, AnyExpr{x})
		}
		return out
	case Lambda:
		return funcDefChildren(v.Def)
	case Call:
		out := []Any{AnyExpr{v.Fn}, AnyTok{v.Args.Open}}
		for _, a := range v.Args.V {
			out = append(out, AnyArg{a})
		}
		return append(out, AnyTok{v.Args.Close})
	case New:
		out := []Any{AnyTok{v.Tok}, AnyType{v.Ty}, AnyTok{v.Args.Open}}
		for _, a := range v.Args.V {
			out = append(out, AnyArg{a})
		}
		return append(out, AnyTok{v.Args.Close})
	case DotAccess:
		out := []Any{AnyExpr{v.Obj}, AnyTok{v.Op}}
		return append(out, nameChildren(v.Field)...)
	case ArrayAccess:
		return []Any{AnyExpr{v.Obj}, AnyTok{v.Index.Open}, AnyExpr{v.Index.V}, AnyTok{v.Index.Close}}
	case SliceAccess:
		out := []Any{AnyExpr{v.Obj}, AnyTok{v.Bounds.Open}}
		if lo, ok := v.Bounds.V.Lo.Get(); ok {
			out = append(out, AnyExpr{lo})
		}
		if hi, ok := v.Bounds.V.Hi.Get(); ok {
			out = append(out, AnyExpr{hi})
		}
		if step, ok := v.Bounds.V.Step.Get(); ok {
			out = append(out, AnyExpr{step})
		}
		return append(out, AnyTok{v.Bounds.Close})
	case Assign:
		return []Any{AnyExpr{v.LHS}, AnyTok{v.Op}, AnyExpr{v.RHS}}
	case AssignOp:
		return []Any{AnyExpr{v.LHS}, AnyTok{v.Op.Tok}, AnyExpr{v.RHS}}
	case LetPattern:
		return []Any{AnyPat{v.Pat}, AnyTok{v.Tok}, AnyExpr{v.RHS}}
	case Unary:
		return []Any{AnyTok{v.Op.Tok}, AnyExpr{v.X}}
	case Binary:
		return []Any{AnyExpr{v.X}, AnyTok{v.Op.Tok}, AnyExpr{v.Y}}
	case Conditional:
		return []Any{AnyExpr{v.Cond}, AnyExpr{v.Then}, AnyExpr{v.Else}}
	case Yield:
		out := []Any{AnyTok{v.Tok}}
		if x, ok := v.Value.Get(); ok {
			out = append(out, AnyExpr{x})
		}
		return out
	case Await:
		return []Any{AnyTok{v.Tok}, AnyExpr{v.X}}
	case Cast:
		return []Any{AnyExpr{v.X}, AnyType{v.Ty}}
	case Ref:
		return []Any{AnyTok{v.Tok}, AnyExpr{v.X}}
	case Deref:
		return []Any{AnyTok{v.Tok}, AnyExpr{v.X}}
	case Seq:
		out := make([]Any, 0, len(v.Items))
		for _, x := range v.Items {
			out = append(out, AnyExpr{x})
		}
		return out
	case StmtExpr:
		return []Any{AnyStmt{v.S}}
	case OtherExpr:
		return v.Parts
	default:
		return nil
	}
}

func compChildren(c CompClause) []Any {
	switch v := c.(type) {
	case CompFor:
		return []Any{AnyTok{v.Tok}, AnyPat{v.Pat}, AnyExpr{v.Iter}}
	case CompIf:
		return []Any{AnyTok{v.Tok}, AnyExpr{v.Cond}}
	case OtherComp:
		return v.Parts
	default:
		return nil
	}
}

func stmtChildren(s Stmt) []Any {
	switch v := s.(type) {
	case ExprStmt:
		return []Any{AnyExpr{v.X}, AnyTok{v.Semi}}
	case Block:
		out := []Any{AnyTok{v.Stmts.Open}}
		for _, st := range v.Stmts.V {
			out = append(out, AnyStmt{st})
		}
		return append(out, AnyTok{v.Stmts.Close})
	case If:
		out := []Any{AnyTok{v.Tok}, AnyExpr{v.Cond}, AnyStmt{v.Then}}
		if e, ok := v.Else.Get(); ok {
			out = append(out, AnyStmt{e})
		}
		return out
	case While:
		return []Any{AnyTok{v.Tok}, AnyExpr{v.Cond}, AnyStmt{v.Body}}
	case DoWhile:
		return []Any{AnyTok{v.Tok}, AnyStmt{v.Body}, AnyExpr{v.Cond}}
	case For:
		out := []Any{AnyTok{v.Tok}}
		out = append(out, forHeaderChildren(v.Header)...)
		return append(out, AnyStmt{v.Body})
	case Return:
		out := []Any{AnyTok{v.Tok}}
		if x, ok := v.Value.Get(); ok {
			out = append(out, AnyExpr{x})
		}
		return out
	case Break:
		out := []Any{AnyTok{v.Tok}}
		if l, ok := v.Label.Get(); ok {
			out = append(out, AnyIdent{l})
		}
		return out
	case Continue:
		out := []Any{AnyTok{v.Tok}}
		if l, ok := v.Label.Get(); ok {
			out = append(out, AnyIdent{l})
		}
		return out
	case Labeled:
		return []Any{AnyIdent{v.Ident}, AnyStmt{v.S}}
	case Goto:
		return []Any{AnyTok{v.Tok}, AnyIdent{v.Label}}
	case Switch:
		out := []Any{AnyTok{v.Tok}}
		if x, ok := v.Subject.Get(); ok {
			out = append(out, AnyExpr{x})
		}
		for _, cc := range v.Cases {
			for _, c := range cc.Cases {
				out = append(out, caseChildren(c)...)
			}
			out = append(out, AnyStmt{cc.Body})
		}
		return out
	case Try:
		out := []Any{AnyTok{v.Tok}, AnyStmt{v.Body}}
		for _, c := range v.Catches {
			out = append(out, AnyTok{c.Tok}, AnyPat{c.Pat}, AnyStmt{c.Body})
		}
		if f, ok := v.Finally.Get(); ok {
			out = append(out, AnyStmt{f})
		}
		return out
	case Throw:
		return []Any{AnyTok{v.Tok}, AnyExpr{v.X}}
	case Assert:
		out := []Any{AnyTok{v.Tok}, AnyExpr{v.Cond}}
		if m, ok := v.Msg.Get(); ok {
			out = append(out, AnyExpr{m})
		}
		return out
	case With:
		out := []Any{AnyTok{v.Tok}}
		for _, r := range v.Resources {
			out = append(out, AnyStmt{r})
		}
		return append(out, AnyStmt{v.Body})
	case DefStmt:
		return []Any{AnyDef{v.Def}}
	case DirectiveStmt:
		return []Any{AnyDir{v.Dir}}
	case OtherStmt:
		return v.Parts
	default:
		return nil
	}
}

func forHeaderChildren(h ForHeader) []Any {
	switch v := h.(type) {
	case ForClassic:
		var out []Any
		for _, st := range v.Init {
			out = append(out, AnyStmt{st})
		}
		if c, ok := v.Cond.Get(); ok {
			out = append(out, AnyExpr{c})
		}
		if s, ok := v.Step.Get(); ok {
			out = append(out, AnyExpr{s})
		}
		return out
	case ForEach:
		return []Any{AnyPat{v.Pat}, AnyTok{v.Tok}, AnyExpr{v.Iter}}
	case OtherForHeader:
		return v.Parts
	default:
		return nil
	}
}

func caseChildren(c Case) []Any {
	switch v := c.(type) {
	case CaseEq:
		return []Any{AnyTok{v.Tok}, AnyExpr{v.X}}
	case CasePat:
		return []Any{AnyTok{v.Tok}, AnyPat{v.Pat}}
	case CaseDefault:
		return []Any{AnyTok{v.Tok}}
	case OtherCase:
		return v.Parts
	default:
		return nil
	}
}

func patChildren(p Pattern) []Any {
	switch v := p.(type) {
	case PatLit:
		return litChildren(v.Value)
	case PatID:
		return []Any{AnyIdent{v.Ident}}
	case PatWildcard:
		return []Any{AnyTok{v.Tok}}
	case PatConstructor:
		out := nameChildren(v.Name)
		for _, a := range v.Args {
			out = append(out, AnyPat{a})
		}
		return out
	case PatTuple:
		out := []Any{AnyTok{v.Elems.Open}}
		for _, e := range v.Elems.V {
			out = append(out, AnyPat{e})
		}
		return append(out, AnyTok{v.Elems.Close})
	case PatList:
		out := []Any{AnyTok{v.Elems.Open}}
		for _, e := range v.Elems.V {
			out = append(out, AnyPat{e})
		}
		if r, ok := v.Rest.Get(); ok {
			out = append(out, AnyPat{r})
		}
		return append(out, AnyTok{v.Elems.Close})
	case PatRecord:
		out := []Any{AnyTok{v.Fields.Open}}
		for _, f := range v.Fields.V {
			for _, id := range f.Name {
				out = append(out, AnyIdent{id})
			}
			out = append(out, AnyPat{f.Pat})
		}
		return append(out, AnyTok{v.Fields.Close})
	case PatTyped:
		return []Any{AnyPat{v.Pat}, AnyType{v.Ty}}
	case PatOr:
		out := make([]Any, 0, len(v.Alts))
		for _, a := range v.Alts {
			out = append(out, AnyPat{a})
		}
		return out
	case PatAs:
		return []Any{AnyPat{v.Pat}, AnyIdent{v.Ident}}
	case PatExpr:
		return []Any{AnyExpr{v.X}}
	case OtherPat:
		return v.Parts
	default:
		return nil
	}
}

func typeChildren(t TypeExpr) []Any {
	switch v := t.(type) {
	case TyName:
		return nameChildren(v.Name)
	case TyApply:
		out := []Any{AnyType{v.Base}, AnyTok{v.Args.Open}}
		for _, a := range v.Args.V {
			out = append(out, AnyType{a})
		}
		return append(out, AnyTok{v.Args.Close})
	case TyFunc:
		out := make([]Any, 0, len(v.Params)+1)
		for _, p := range v.Params {
			out = append(out, AnyParam{p})
		}
		return append(out, AnyType{v.Ret})
	case TyTuple:
		out := []Any{AnyTok{v.Elems.Open}}
		for _, e := range v.Elems.V {
			out = append(out, AnyType{e})
		}
		return append(out, AnyTok{v.Elems.Close})
	case TyArray:
		var out []Any
		if s, ok := v.Size.Get(); ok {
			out = append(out, AnyExpr{s})
		}
		return append(out, AnyType{v.Elem})
	case TyPointer:
		return []Any{AnyTok{v.Tok}, AnyType{v.Elem}}
	case TyRef:
		return []Any{AnyTok{v.Tok}, AnyType{v.Elem}}
	case TyOr:
		out := make([]Any, 0, len(v.Alts))
		for _, a := range v.Alts {
			out = append(out, AnyType{a})
		}
		return out
	case TyAnd:
		out := make([]Any, 0, len(v.Alts))
		for _, a := range v.Alts {
			out = append(out, AnyType{a})
		}
		return out
	case TyRecord:
		out := []Any{AnyTok{v.Fields.Open}}
		for _, d := range v.Fields.V {
			out = append(out, AnyDef{d})
		}
		return append(out, AnyTok{v.Fields.Close})
	case TyExpr:
		return []Any{AnyExpr{v.X}}
	case OtherType:
		return v.Parts
	default:
		return nil
	}
}

func entityChildren(e Entity) []Any {
	out := nameChildren(e.Name)
	for _, a := range e.Attrs {
		out = append(out, AnyAttr{a})
	}
	for _, tp := range e.TParams {
		out = append(out, AnyIdent{tp.Ident})
		for _, b := range tp.Bounds {
			out = append(out, AnyType{b})
		}
		if d, ok := tp.Default.Get(); ok {
			out = append(out, AnyType{d})
		}
	}
	return out
}

func funcDefChildren(d FuncDef) []Any {
	out := []Any{AnyTok{d.FKind.Tok}, AnyTok{d.Params.Open}}
	for _, p := range d.Params.V {
		out = append(out, AnyParam{p})
	}
	out = append(out, AnyTok{d.Params.Close})
	if r, ok := d.Ret.Get(); ok {
		out = append(out, AnyType{r})
	}
	switch b := d.Body.(type) {
	case BlockBody:
		out = append(out, AnyStmt{b.S})
	case ExprBody:
		out = append(out, AnyExpr{b.X})
	case NoBody:
		out = append(out, AnyTok{b.Tok})
	}
	return out
}

func defChildren(d Definition) []Any {
	out := entityChildren(d.Entity)
	switch v := d.Kind.(type) {
	case FuncDef:
		out = append(out, funcDefChildren(v)...)
	case VarDef:
		if x, ok := v.Init.Get(); ok {
			out = append(out, AnyExpr{x})
		}
		if t, ok := v.Ty.Get(); ok {
			out = append(out, AnyType{t})
		}
	case ClassDef:
		out = append(out, AnyTok{v.CKind.Tok})
		for _, t := range v.Extends {
			out = append(out, AnyType{t})
		}
		for _, t := range v.Implements {
			out = append(out, AnyType{t})
		}
		out = append(out, AnyTok{v.Body.Open})
		for _, m := range v.Body.V {
			out = append(out, AnyDef{m})
		}
		out = append(out, AnyTok{v.Body.Close})
	case EnumDef:
		for _, c := range v.Cases {
			out = append(out, AnyIdent{c.Ident})
			for _, t := range c.Args {
				out = append(out, AnyType{t})
			}
			if x, ok := c.Value.Get(); ok {
				out = append(out, AnyExpr{x})
			}
		}
	case ModuleDef:
		switch b := v.Body.(type) {
		case ModuleAlias:
			for _, id := range b.Name {
				out = append(out, AnyIdent{id})
			}
		case ModuleStmts:
			for _, st := range b.Stmts {
				out = append(out, AnyStmt{st})
			}
		case OtherModule:
			out = append(out, b.Parts...)
		}
	case MacroDef:
		for _, p := range v.Params {
			out = append(out, AnyIdent{p})
		}
		out = append(out, v.Body...)
	case TypeAliasDef:
		out = append(out, AnyType{v.Ty})
	case OtherDef:
		out = append(out, v.Parts...)
	}
	return out
}

func dirChildren(d Directive) []Any {
	switch v := d.(type) {
	case ImportFrom:
		out := []Any{AnyTok{v.Tok}}
		for _, id := range v.Module {
			out = append(out, AnyIdent{id})
		}
		for _, n := range v.Names {
			out = append(out, AnyIdent{n.Ident})
			if a, ok := n.Alias.Get(); ok {
				out = append(out, AnyIdent{a})
			}
		}
		return out
	case ImportModule:
		out := []Any{AnyTok{v.Tok}}
		for _, id := range v.Module {
			out = append(out, AnyIdent{id})
		}
		if a, ok := v.Alias.Get(); ok {
			out = append(out, AnyIdent{a})
		}
		return out
	case ImportAll:
		out := []Any{AnyTok{v.Tok}}
		for _, id := range v.Module {
			out = append(out, AnyIdent{id})
		}
		return append(out, AnyTok{v.Wildcard})
	case Export:
		out := []Any{AnyTok{v.Tok}}
		for _, id := range v.Names {
			out = append(out, AnyIdent{id})
		}
		return out
	case Package:
		out := []Any{AnyTok{v.Tok}}
		for _, id := range v.Name {
			out = append(out, AnyIdent{id})
		}
		return out
	case Pragma:
		out := []Any{AnyTok{v.Tok}, AnyIdent{v.Ident}}
		return append(out, v.Args...)
	case OtherDirective:
		return v.Parts
	default:
		return nil
	}
}

func attrChildren(a Attribute) []Any {
	switch v := a.(type) {
	case KeywordAttr:
		return []Any{AnyTok{v.Kw.Tok}}
	case NamedAttr:
		out := []Any{AnyTok{v.Tok}}
		out = append(out, nameChildren(v.Name)...)
		out = append(out, AnyTok{v.Args.Open})
		for _, arg := range v.Args.V {
			out = append(out, AnyArg{arg})
		}
		return append(out, AnyTok{v.Args.Close})
	case OtherAttr:
		return v.Parts
	default:
		return nil
	}
}

func argChildren(a Argument) []Any {
	switch v := a.(type) {
	case Arg:
		return []Any{AnyExpr{v.X}}
	case ArgKwd:
		return []Any{AnyIdent{v.Ident}, AnyExpr{v.X}}
	case ArgType:
		return []Any{AnyType{v.Ty}}
	case OtherArg:
		return v.Parts
	default:
		return nil
	}
}

func paramChildren(p Parameter) []Any {
	switch v := p.(type) {
	case ParamClassic:
		out := []Any{AnyIdent{v.Ident}}
		if t, ok := v.Ty.Get(); ok {
			out = append(out, AnyType{t})
		}
		if d, ok := v.Default.Get(); ok {
			out = append(out, AnyExpr{d})
		}
		for _, a := range v.Attrs {
			out = append(out, AnyAttr{a})
		}
		return out
	case ParamPattern:
		out := []Any{AnyPat{v.Pat}}
		if t, ok := v.Ty.Get(); ok {
			out = append(out, AnyType{t})
		}
		return out
	case ParamRest:
		return append([]Any{AnyTok{v.Tok}}, paramChildren(v.Inner)...)
	case OtherParam:
		return v.Parts
	default:
		return nil
	}
}
