// Package regex implements the recursive-descent compiler that turns the
// extended regular-expression grammar into a dfa.DFA: alphabet inference,
// parsing, and NFA/DFA composition.
package regex

import "fmt"

// ParseError reports a syntax error at a specific rune position in the
// source, naming what the parser expected and what it actually found.
type ParseError struct {
	Position int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("regex: at position %d: expected %s, found %s", e.Position, e.Expected, e.Found)
}

// UnterminatedEscape reports a trailing '\' with no following rune.
type UnterminatedEscape struct {
	Position int
}

func (e *UnterminatedEscape) Error() string {
	return fmt.Sprintf("regex: unterminated escape at position %d", e.Position)
}

// UnclosedGroup reports a '(' with no matching ')'.
type UnclosedGroup struct {
	Position int
}

func (e *UnclosedGroup) Error() string {
	return fmt.Sprintf("regex: unclosed group opened at position %d", e.Position)
}

// UnclosedCount reports a malformed or unterminated '^[a-b]' repetition.
type UnclosedCount struct {
	Position int
}

func (e *UnclosedCount) Error() string {
	return fmt.Sprintf("regex: unclosed count starting at position %d", e.Position)
}

// DescendingRange reports a '^[a-b]' repetition where a > b.
type DescendingRange struct {
	Lo, Hi int
}

func (e *DescendingRange) Error() string {
	return fmt.Sprintf("regex: descending repetition range [%d-%d]", e.Lo, e.Hi)
}

// AlphabetMismatchDuringCombine reports that compiling a '|' '&' or '-' node
// produced two DFAs over different alphabets, which should only happen if
// the alphabet inference prepass disagreed with the parser about what the
// source contains.
type AlphabetMismatchDuringCombine struct {
	Err error
}

func (e *AlphabetMismatchDuringCombine) Error() string {
	return fmt.Sprintf("regex: alphabet mismatch during combine: %s", e.Err)
}

func (e *AlphabetMismatchDuringCombine) Unwrap() error { return e.Err }
