package regex

import (
	"testing"

	"github.com/corefsm/automata/alphabet"
)

func TestInferAlphabet_Literals(t *testing.T) {
	a, err := InferAlphabet("(a|b)*abb")
	if err != nil {
		t.Fatalf("InferAlphabet: %v", err)
	}
	want := alphabet.New([]alphabet.Symbol{'a', 'b'})
	if !alphabet.Equal(a, want) {
		t.Errorf("got %s, want %s", a, want)
	}
}

func TestInferAlphabet_EscapeExpansion(t *testing.T) {
	a, err := InferAlphabet(`\0^[2-3]`)
	if err != nil {
		t.Fatalf("InferAlphabet: %v", err)
	}
	if a.Len() != 10 {
		t.Fatalf("Len() = %d, want 10 (digits 0-9)", a.Len())
	}
	if !a.Contains('0') || !a.Contains('9') {
		t.Error("expected the alphabet to contain 0 and 9")
	}
}

func TestInferAlphabet_CountDigitsExcluded(t *testing.T) {
	a, err := InferAlphabet("a^[1-2]")
	if err != nil {
		t.Fatalf("InferAlphabet: %v", err)
	}
	if a.Len() != 1 || !a.Contains('a') {
		t.Errorf("got %s, want just {a}: digits in the count must not be symbols", a)
	}
}

func TestInferAlphabet_BareDigitOutsideCountIsLiteral(t *testing.T) {
	a, err := InferAlphabet("5")
	if err != nil {
		t.Fatalf("InferAlphabet: %v", err)
	}
	if a.Len() != 1 || !a.Contains('5') {
		t.Errorf("got %s, want just {5}: a bare digit outside ^ is a literal symbol", a)
	}
}

func TestInferAlphabet_UnterminatedEscape(t *testing.T) {
	if _, err := InferAlphabet(`a\`); err == nil {
		t.Fatal("expected an error for a trailing backslash")
	}
}

func TestInferAlphabet_LetterClasses(t *testing.T) {
	a, err := InferAlphabet(`\A*&~(\a*)`)
	if err != nil {
		t.Fatalf("InferAlphabet: %v", err)
	}
	if a.Len() != 52 {
		t.Errorf("Len() = %d, want 52 (A-Z and a-z)", a.Len())
	}
}
