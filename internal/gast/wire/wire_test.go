package wire

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"uast/internal/gast"
	"uast/internal/source"
	"uast/internal/symbols"
	"uast/internal/token"
)

func tok(text string, offset, line, col uint32) token.Token {
	return token.Real(token.Loc{File: 1, Offset: offset, Line: line, Col: col, Text: text})
}

func ident(text string, offset, line, col uint32) gast.Ident {
	return gast.NewIdent(text, tok(text, offset, line, col))
}

// sampleProgram covers every hierarchy: directives, definitions, control
// flow, patterns, types, literals, and an annotated name.
func sampleProgram() *gast.Program {
	printName := gast.SimpleName(ident("print", 30, 3, 4))
	printName.Info.SetResolved(gast.ResolvedName{
		Kind: gast.ResolvedImportedEntity,
		Sym:  symbols.SymbolID(7),
		Name: gast.Some(gast.DottedIdent{ident("io", 5, 1, 5), ident("print", 8, 1, 8)}),
	})

	body := gast.Block{Stmts: gast.Bracket(
		tok("{", 28, 2, 10),
		[]gast.Stmt{
			gast.ExprStmt{
				X: gast.Call{
					Fn: gast.NameRef{Name: printName},
					Args: gast.Bracket(tok("(", 35, 3, 9), []gast.Argument{
						gast.Arg{X: gast.Lit{Value: gast.StringLit{Text: `"hi"`, Tok: tok(`"hi"`, 36, 3, 10)}}},
						gast.ArgKwd{
							Ident: ident("end", 42, 3, 16),
							X:     gast.Lit{Value: gast.NullLit{Tok: tok("nil", 46, 3, 20)}},
						},
					}, tok(")", 49, 3, 23)),
				},
				Semi: token.Fake("no-terminator"),
			},
			gast.If{
				Tok:  tok("if", 52, 4, 4),
				Cond: gast.Binary{Op: gast.Wrap(gast.OpLt, tok("<", 57, 4, 9)), X: gast.NameRef{Name: gast.SimpleName(ident("n", 55, 4, 7))}, Y: gast.Lit{Value: gast.IntLit{Text: "2", Tok: tok("2", 59, 4, 11)}}},
				Then: gast.Return{Tok: tok("return", 62, 5, 8), Value: gast.Some[gast.Expr](gast.NameRef{Name: gast.SimpleName(ident("n", 69, 5, 15))})},
			},
			gast.For{
				Tok: tok("for", 75, 6, 4),
				Header: gast.ForEach{
					Pat:  gast.PatID{Ident: ident("x", 79, 6, 8), Info: &gast.IDInfo{}},
					Tok:  tok("in", 81, 6, 10),
					Iter: gast.NameRef{Name: gast.SimpleName(ident("xs", 84, 6, 13))},
				},
				Body: gast.Block{Stmts: gast.FakeBracket("layout-block", []gast.Stmt{
					gast.ExprStmt{
						X:    gast.Yield{Tok: tok("yield", 92, 7, 8), Value: gast.Some[gast.Expr](gast.NameRef{Name: gast.SimpleName(ident("x", 98, 7, 14))})},
						Semi: token.Fake("no-terminator"),
					},
				})},
			},
		},
		tok("}", 102, 8, 0),
	)}

	return &gast.Program{
		File: 1,
		Stmts: []gast.Stmt{
			gast.DirectiveStmt{Dir: gast.ImportFrom{
				Tok:    tok("from", 0, 1, 0),
				Module: gast.DottedIdent{ident("io", 5, 1, 5)},
				Names: []gast.ImportedName{
					{Ident: ident("print", 8, 1, 8), Alias: gast.None[gast.Ident]()},
				},
			}},
			gast.DefStmt{Def: gast.Definition{
				Entity: gast.Entity{Name: gast.SimpleName(ident("f", 18, 2, 4))},
				Kind: gast.FuncDef{
					FKind: gast.Wrap(gast.FuncFunction, tok("func", 13, 2, 0)),
					Params: gast.Bracket(tok("(", 19, 2, 5), []gast.Parameter{
						gast.ParamClassic{
							Ident: ident("n", 20, 2, 6),
							Info:  &gast.IDInfo{},
							Ty:    gast.Some[gast.TypeExpr](gast.TyName{Name: gast.SimpleName(ident("int", 22, 2, 8))}),
						},
					}, tok(")", 25, 2, 11)),
					Ret:  gast.None[gast.TypeExpr](),
					Body: gast.BlockBody{S: body},
				},
			}},
		},
		Skipped: []source.Span{{File: 1, Start: 104, End: 110}},
	}
}

func TestRoundTripJSON(t *testing.T) {
	p := sampleProgram()
	first, err := EncodeJSON(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := DecodeJSON(first)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	second, err := EncodeJSON(back)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("re-encoded JSON drifted (-first +second):\n%s", diff)
	}
}

func TestRoundTripBinary(t *testing.T) {
	p := sampleProgram()
	want, err := EncodeJSON(p)
	if err != nil {
		t.Fatalf("encode json: %v", err)
	}
	bin, err := EncodeBinary(p)
	if err != nil {
		t.Fatalf("encode binary: %v", err)
	}
	back, err := DecodeBinary(bin)
	if err != nil {
		t.Fatalf("decode binary: %v", err)
	}
	got, err := EncodeJSON(back)
	if err != nil {
		t.Fatalf("re-encode json: %v", err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("binary round trip drifted (-want +got):\n%s", diff)
	}
}

func TestBinaryKeepsNumericForm(t *testing.T) {
	// A symbol id beyond float64's exact-integer range corrupts if the
	// transcode routes numbers through strings or floats.
	bigSym := symbols.SymbolID(1<<60 + 3)
	name := gast.SimpleName(ident("big", 0, 1, 0))
	name.Info.SetResolved(gast.ResolvedName{Kind: gast.ResolvedGlobal, Sym: bigSym})
	p := &gast.Program{
		File: 1,
		Stmts: []gast.Stmt{
			gast.ExprStmt{X: gast.NameRef{Name: name}, Semi: token.Fake("no-terminator")},
		},
	}

	bin, err := EncodeBinary(p)
	if err != nil {
		t.Fatalf("encode binary: %v", err)
	}
	back, err := DecodeBinary(bin)
	if err != nil {
		t.Fatalf("decode binary: %v", err)
	}

	got := back.Stmts[0].(gast.ExprStmt).X.(gast.NameRef).Name
	loc, ok := got.Ident.Tok.Location()
	if !ok {
		t.Fatal("real token lost its location")
	}
	if loc.File != 1 || loc.Text != "big" {
		t.Errorf("token location drifted: %v", loc)
	}
	res, ok := got.Info.Resolved.Get()
	if !ok {
		t.Fatal("resolved binding dropped")
	}
	if res.Sym != bigSym {
		t.Errorf("sym = %d, want %d", res.Sym, bigSym)
	}
}

func TestUnknownTagBecomesCatchAll(t *testing.T) {
	raw := `{
		"schema": 1,
		"file": 1,
		"stmts": [{
			"tag": "ExprStmt",
			"x": {
				"tag": "PipeForward",
				"parts": [
					{"tag": "E", "x": {"tag": "N", "name": {"ident": {"text": "x", "tok": {"tag": "fake", "reason": "t"}}}}},
					{"tag": "Tk", "t": {"tag": "fake", "reason": "pipe"}}
				]
			},
			"semi": {"tag": "fake", "reason": "no-terminator"}
		}]
	}`
	p, err := DecodeJSON([]byte(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	es, ok := p.Stmts[0].(gast.ExprStmt)
	if !ok {
		t.Fatalf("stmt decoded as %T, want ExprStmt", p.Stmts[0])
	}
	other, ok := es.X.(gast.OtherExpr)
	if !ok {
		t.Fatalf("expr decoded as %T, want OtherExpr", es.X)
	}
	if other.Todo != "PipeForward" {
		t.Errorf("todo = %q, want the unrecognized tag", other.Todo)
	}
	if len(other.Parts) != 2 {
		t.Fatalf("parts length = %d, want 2", len(other.Parts))
	}
	if _, ok := other.Parts[1].(gast.AnyTok); !ok {
		t.Errorf("second part decoded as %T, want AnyTok", other.Parts[1])
	}

	// A catch-all must hold its todo and parts through a re-encode cycle.
	enc, err := EncodeJSON(p)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	back, err := DecodeJSON(enc)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	other2 := back.Stmts[0].(gast.ExprStmt).X.(gast.OtherExpr)
	if other2.Todo != "PipeForward" || len(other2.Parts) != 2 {
		t.Errorf("catch-all degraded on re-encode: todo=%q parts=%d", other2.Todo, len(other2.Parts))
	}
}

func TestPresenceStates(t *testing.T) {
	p := &gast.Program{
		File: 1,
		Stmts: []gast.Stmt{
			// Absent value: the key must vanish from the JSON.
			gast.Return{Tok: token.Fake("desugared-return"), Value: gast.None[gast.Expr]()},
			// Explicitly empty list behind synthetic brackets.
			gast.ExprStmt{
				X: gast.Container{
					Kind:  gast.ContainerList,
					Elems: gast.FakeBracket("implicit-list", []gast.Expr{}),
				},
				Semi: token.Fake("no-terminator"),
			},
		},
	}
	enc, err := EncodeJSON(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.Contains(string(enc), `"value"`) {
		t.Errorf("absent Opt leaked a value key: %s", enc)
	}

	back, err := DecodeJSON(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ret := back.Stmts[0].(gast.Return)
	if ret.Value.IsSet() {
		t.Errorf("absent return value decoded as present")
	}
	cont := back.Stmts[1].(gast.ExprStmt).X.(gast.Container)
	if cont.Elems.V == nil {
		t.Errorf("explicitly empty element list decoded as nil")
	}
	if len(cont.Elems.V) != 0 {
		t.Errorf("empty element list grew: %d elements", len(cont.Elems.V))
	}
	if !cont.Elems.Open.IsSynthetic() || !cont.Elems.Close.IsSynthetic() {
		t.Errorf("synthetic delimiters lost origin")
	}
}

func TestSchemaVersion(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"current", `{"schema": 1, "file": 0, "stmts": []}`, false},
		{"missing defaults to one", `{"file": 0, "stmts": []}`, false},
		{"newer is refused", `{"schema": 2, "file": 0, "stmts": []}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestAnnotationsSurviveRoundTrip(t *testing.T) {
	p := sampleProgram()
	enc, err := EncodeJSON(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := DecodeJSON(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	def := back.Stmts[1].(gast.DefStmt).Def
	fn := def.Kind.(gast.FuncDef)
	block := fn.Body.(gast.BlockBody).S.(gast.Block)
	call := block.Stmts.V[0].(gast.ExprStmt).X.(gast.Call)
	name := call.Fn.(gast.NameRef).Name
	if name.Info == nil {
		t.Fatal("resolution slot dropped")
	}
	res, ok := name.Info.Resolved.Get()
	if !ok {
		t.Fatal("resolved binding dropped")
	}
	if res.Kind != gast.ResolvedImportedEntity {
		t.Errorf("kind = %v, want imported-entity", res.Kind)
	}
	if res.Sym != symbols.SymbolID(7) {
		t.Errorf("sym = %v, want 7", res.Sym)
	}
	full, ok := res.Name.Get()
	if !ok || full.String() != "io.print" {
		t.Errorf("resolved name = %v, want io.print", full)
	}
}

func TestEnvelopeShape(t *testing.T) {
	enc, err := EncodeJSON(sampleProgram())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(enc, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	for _, key := range []string{"schema", "file", "stmts", "skipped"} {
		if _, ok := env[key]; !ok {
			t.Errorf("envelope missing %q", key)
		}
	}

	var skipped []map[string]json.RawMessage
	if err := json.Unmarshal(env["skipped"], &skipped); err != nil {
		t.Fatalf("unmarshal skipped: %v", err)
	}
	if len(skipped) == 0 {
		t.Fatal("sample has no skipped spans")
	}
	for _, key := range []string{"file", "start", "end"} {
		if _, ok := skipped[0][key]; !ok {
			t.Errorf("skipped span missing %q, got %v", key, skipped[0])
		}
	}
}
