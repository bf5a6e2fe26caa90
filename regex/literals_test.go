package regex

import "testing"

func literalStrings(t *testing.T, source string) []string {
	t.Helper()
	ast, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	seq := ExtractLiterals(ast)
	var out []string
	for _, l := range seq.Literals() {
		out = append(out, l.String())
	}
	return out
}

func TestExtractLiterals_PlainConcat(t *testing.T) {
	got := literalStrings(t, "abb")
	if len(got) != 1 || got[0] != "abb" {
		t.Errorf("literals = %v, want [abb]", got)
	}
}

func TestExtractLiterals_BreaksAroundStar(t *testing.T) {
	got := literalStrings(t, "(a|b)*abb")
	if len(got) != 1 || got[0] != "abb" {
		t.Errorf("literals = %v, want [abb] (the starred prefix is not mandatory)", got)
	}
}

func TestExtractLiterals_BreaksAroundCharclass(t *testing.T) {
	got := literalStrings(t, `ab\Acd`)
	want := []string{"ab", "cd"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("literals = %v, want %v (the multi-symbol class splits the run)", got, want)
	}
}

func TestExtractLiterals_NegationYieldsNothing(t *testing.T) {
	got := literalStrings(t, "~(abb)")
	if len(got) != 0 {
		t.Errorf("literals = %v, want none (nothing is guaranteed under negation)", got)
	}
}

func TestExtractLiterals_BinOpYieldsNothing(t *testing.T) {
	got := literalStrings(t, "abb|cde")
	if len(got) != 0 {
		t.Errorf("literals = %v, want none (neither branch is guaranteed)", got)
	}
}

func TestExtractLiterals_SingleSymbol(t *testing.T) {
	got := literalStrings(t, "a")
	if len(got) != 1 || got[0] != "a" {
		t.Errorf("literals = %v, want [a]", got)
	}
}
