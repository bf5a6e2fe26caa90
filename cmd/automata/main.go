// Command automata compiles a regular expression given on the command line
// and prints every string it accepts, shortest first.
//
// Usage:
//
//	automata '(a|b)*abb'
//
// This is illustrative, not a supported tool: no flags, no streaming input,
// no bound on how long it runs for an infinite language (ctrl-C to stop).
// The words are printed as one comma-separated line once enumeration ends,
// so for an infinite language nothing is printed.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/corefsm/automata"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: automata <regex>")
		os.Exit(2)
	}

	re, err := automata.Compile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "automata: %v\n", err)
		os.Exit(1)
	}

	var words []string
	enum := re.Enumerator()
	for {
		word, ok := enum.Next()
		if !ok {
			break
		}
		words = append(words, word)
	}
	fmt.Println(strings.Join(words, ", "))
}
