package testkit

import (
	"testing"

	"uast/internal/diag"
	"uast/internal/gast"
	"uast/internal/source"
	"uast/internal/token"
)

func file(t *testing.T, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.x", []byte(content)))
	if f == nil {
		t.Fatal("virtual file not registered")
	}
	return f
}

func realTok(f *source.File, text string, offset uint32) token.Token {
	return token.Real(token.Loc{File: f.ID, Offset: offset, Line: 1, Col: offset, Text: text})
}

func TestCheckTreeClean(t *testing.T) {
	f := file(t, "x = 1\n")
	p := &gast.Program{
		File: f.ID,
		Stmts: []gast.Stmt{
			gast.ExprStmt{
				X: gast.Assign{
					LHS: gast.NameRef{Name: gast.SimpleName(gast.NewIdent("x", realTok(f, "x", 0)))},
					Op:  realTok(f, "=", 2),
					RHS: gast.Lit{Value: gast.IntLit{Text: "1", Tok: realTok(f, "1", 4)}},
				},
				Semi: token.Fake("no-terminator"),
			},
		},
	}
	bag := diag.NewBag(16)
	if n := CheckTree(p, f, diag.BagReporter{Bag: bag}); n != 0 {
		t.Fatalf("violations = %d on a clean tree:\n%+v", n, bag.Items())
	}
}

func TestCheckTreeFindsViolations(t *testing.T) {
	f := file(t, "ab\n")

	tests := []struct {
		name string
		stmt gast.Stmt
	}{
		{
			"token beyond content",
			gast.ExprStmt{
				X:    gast.NameRef{Name: gast.SimpleName(gast.NewIdent("long", realTok(f, "longname", 40)))},
				Semi: token.Fake("no-terminator"),
			},
		},
		{
			"mixed token payloads",
			gast.ExprStmt{
				X: gast.NameRef{Name: gast.SimpleName(gast.NewIdent("a", token.Token{
					Origin: token.OriginSource,
					Loc:    token.Loc{File: f.ID, Text: "a", Line: 1},
					Reason: "should-be-empty",
				}))},
				Semi: token.Fake("no-terminator"),
			},
		},
		{
			"unlabeled catch-all",
			gast.ExprStmt{
				X:    gast.OtherExpr{Todo: ""},
				Semi: token.Fake("no-terminator"),
			},
		},
		{
			"wrong file id",
			gast.ExprStmt{
				X: gast.NameRef{Name: gast.SimpleName(gast.NewIdent("a", token.Real(token.Loc{
					File: f.ID + 9, Offset: 0, Line: 1, Col: 0, Text: "a",
				})))},
				Semi: token.Fake("no-terminator"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &gast.Program{File: f.ID, Stmts: []gast.Stmt{tt.stmt}}
			bag := diag.NewBag(16)
			if n := CheckTree(p, f, diag.BagReporter{Bag: bag}); n == 0 {
				t.Error("violation not detected")
			}
			if !bag.HasErrors() {
				t.Error("nothing reported")
			}
		})
	}
}

func TestCheckTreeSkippedBounds(t *testing.T) {
	f := file(t, "abc\n")
	p := &gast.Program{
		File:    f.ID,
		Skipped: []source.Span{{File: f.ID, Start: 2, End: 99}},
	}
	bag := diag.NewBag(4)
	if n := CheckTree(p, f, diag.BagReporter{Bag: bag}); n != 1 {
		t.Errorf("violations = %d, want 1 for the out-of-bounds skip", n)
	}
}
