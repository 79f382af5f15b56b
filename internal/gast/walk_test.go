package gast

import (
	"testing"

	"uast/internal/token"
)

func srcTok(text string, offset uint32) token.Token {
	return token.Real(token.Loc{File: 1, Offset: offset, Line: 1, Col: offset, Text: text})
}

func srcIdent(text string, offset uint32) Ident {
	return NewIdent(text, srcTok(text, offset))
}

func TestWalkVisitsEveryToken(t *testing.T) {
	// f(a, b[0]) with a real argument list.
	call := Call{
		Fn: NameRef{Name: SimpleName(srcIdent("f", 0))},
		Args: Bracket(srcTok("(", 1), []Argument{
			Arg{X: NameRef{Name: SimpleName(srcIdent("a", 2))}},
			Arg{X: ArrayAccess{
				Obj:   NameRef{Name: SimpleName(srcIdent("b", 5))},
				Index: Bracket(srcTok("[", 6), Expr(Lit{Value: IntLit{Text: "0", Tok: srcTok("0", 7)}}), srcTok("]", 8)),
			}},
		}, srcTok(")", 9)),
	}

	toks := Tokens(AnyExpr{X: call})
	want := []string{"f", "(", "a", "b", "[", "0", "]", ")"}
	if len(toks) != len(want) {
		t.Fatalf("token count = %d, want %d", len(toks), len(want))
	}
	for i, w := range want {
		loc, ok := toks[i].Location()
		if !ok {
			t.Fatalf("token %d is synthetic, want %q", i, w)
		}
		if loc.Text != w {
			t.Errorf("token %d = %q, want %q", i, loc.Text, w)
		}
	}
}

func TestWalkPrunes(t *testing.T) {
	stmt := If{
		Tok:  srcTok("if", 0),
		Cond: NameRef{Name: SimpleName(srcIdent("c", 3))},
		Then: Block{Stmts: Bracket(srcTok("{", 5), []Stmt{
			ExprStmt{X: NameRef{Name: SimpleName(srcIdent("x", 6))}, Semi: token.Fake("no-terminator")},
		}, srcTok("}", 7))},
	}

	var visited int
	Walk(AnyStmt{S: stmt}, func(n Any) bool {
		visited++
		// Stop at the block; nothing inside it should be counted.
		_, isStmt := n.(AnyStmt)
		if isStmt {
			if _, isBlock := n.(AnyStmt).S.(Block); isBlock {
				return false
			}
		}
		return true
	})

	var full int
	Walk(AnyStmt{S: stmt}, func(Any) bool {
		full++
		return true
	})
	if visited >= full {
		t.Errorf("pruned walk visited %d nodes, full walk %d", visited, full)
	}
}

func TestWalkSkipsAnnotations(t *testing.T) {
	name := SimpleName(srcIdent("x", 0))
	name.Info.SetType(TyName{Name: SimpleName(srcIdent("int", 10))})

	toks := Tokens(AnyExpr{X: NameRef{Name: name}})
	for _, tk := range toks {
		if loc, ok := tk.Location(); ok && loc.Text == "int" {
			t.Fatal("walk descended into an IDInfo annotation")
		}
	}
}

func TestRangeIgnoresSyntheticTokens(t *testing.T) {
	// A lowered block: synthetic delimiters around one real statement.
	block := Block{Stmts: FakeBracket("layout-block", []Stmt{
		ExprStmt{
			X:    NameRef{Name: SimpleName(srcIdent("work", 40))},
			Semi: token.Fake("no-terminator"),
		},
	})}

	span, ok := Range(AnyStmt{S: block})
	if !ok {
		t.Fatal("no span for a block with a real token inside")
	}
	if span.Start != 40 || span.End != 44 {
		t.Errorf("span = [%d,%d), want [40,44)", span.Start, span.End)
	}
}

func TestRangeCoversCatchAllParts(t *testing.T) {
	// An escape hatch keeps its span recoverable through its parts.
	other := OtherExpr{
		Todo: "pipe-forward",
		Parts: []Any{
			AnyExpr{X: NameRef{Name: SimpleName(srcIdent("x", 12))}},
			AnyTok{T: srcTok("|>", 14)},
			AnyExpr{X: NameRef{Name: SimpleName(srcIdent("f", 17))}},
		},
	}
	span, ok := Range(AnyExpr{X: other})
	if !ok {
		t.Fatal("no span recovered from catch-all parts")
	}
	if span.Start != 12 || span.End != 18 {
		t.Errorf("span = [%d,%d), want [12,18)", span.Start, span.End)
	}
}

func TestRangeAllSynthetic(t *testing.T) {
	ret := Return{Tok: token.Fake("desugared-return")}
	if _, ok := Range(AnyStmt{S: ret}); ok {
		t.Error("got a span from a fully synthetic subtree")
	}
}
