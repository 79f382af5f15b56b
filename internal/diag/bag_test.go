package diag

import "testing"

func rng(file, startOff, endOff uint32) Range {
	return Range{
		File:  file,
		Start: Pos{Offset: startOff, Line: 1, Col: startOff},
		End:   Pos{Offset: endOff, Line: 1, Col: endOff},
	}
}

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 5; i++ {
		b.Add(Diagnostic{Severity: SevError, Kind: KindSyntax, Message: "boom", Primary: rng(1, uint32(i), uint32(i)+1)})
	}
	if b.Len() != 2 {
		t.Errorf("len = %d, want the cap", b.Len())
	}
	if b.Dropped() != 3 {
		t.Errorf("dropped = %d, want 3", b.Dropped())
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Severity: SevWarning, Kind: KindSyntax, Message: "late", Primary: rng(1, 20, 21)})
	b.Add(Diagnostic{Severity: SevError, Kind: KindLexical, Message: "early", Primary: rng(1, 3, 4)})
	b.Add(Diagnostic{Severity: SevError, Kind: KindSyntax, Message: "other file", Primary: rng(0, 50, 51)})
	// Same span as "early", lower severity: must sort after it.
	b.Add(Diagnostic{Severity: SevInfo, Kind: KindSyntax, Message: "early note", Primary: rng(1, 3, 4)})
	b.Sort()

	want := []string{"other file", "early", "early note", "late"}
	for i, d := range b.Items() {
		if d.Message != want[i] {
			t.Errorf("item %d = %q, want %q", i, d.Message, want[i])
		}
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	d := Diagnostic{Severity: SevError, Kind: KindSyntax, Message: "dup", Primary: rng(1, 3, 4)}
	b.Add(d)
	b.Add(d)
	b.Add(Diagnostic{Severity: SevError, Kind: KindLexical, Message: "dup", Primary: rng(1, 3, 4)})
	b.Dedup()
	if b.Len() != 2 {
		t.Errorf("len after dedup = %d, want 2 (kinds differ)", b.Len())
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Severity: SevError, Kind: KindSyntax, Message: "a", Primary: rng(1, 0, 1)})
	other := NewBag(2)
	other.Add(Diagnostic{Severity: SevWarning, Kind: KindConfig, Message: "b", Primary: rng(1, 5, 6)})
	other.Add(Diagnostic{Severity: SevInfo, Kind: KindConfig, Message: "c", Primary: rng(1, 7, 8)})

	a.Merge(other)
	if a.Len() != 3 {
		t.Errorf("len after merge = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("cap after merge = %d, want at least 3", a.Cap())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(4)
	if b.HasErrors() || b.HasWarnings() {
		t.Error("empty bag reports findings")
	}
	b.Add(Diagnostic{Severity: SevInfo, Kind: KindConfig, Message: "fyi", Primary: rng(1, 0, 1)})
	if b.HasWarnings() {
		t.Error("info counted as a warning")
	}
	b.Add(Diagnostic{Severity: SevWarning, Kind: KindConfig, Message: "eh", Primary: rng(1, 1, 2)})
	if !b.HasWarnings() || b.HasErrors() {
		t.Error("warning misclassified")
	}
	b.Add(Diagnostic{Severity: SevError, Kind: KindSyntax, Message: "no", Primary: rng(1, 2, 3)})
	if !b.HasErrors() {
		t.Error("error not reported")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(4)
	b := ReportError(BagReporter{Bag: bag}, KindRulePattern, rng(1, 2, 5), "bad pattern").
		WithNote(rng(1, 0, 1), "pattern started here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("len = %d, want exactly one emit", bag.Len())
	}
	got := bag.Items()[0]
	if got.Kind != KindRulePattern || len(got.Notes) != 1 {
		t.Errorf("diagnostic = %+v, want rule-pattern with one note", got)
	}
}
