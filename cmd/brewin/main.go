// Command brewin runs Brewin' programs: a small dynamically-typed
// imperative teaching language with closures, by-reference parameters,
// arity-based function overloading, and prototype-less objects.
package main

import (
	"fmt"
	"os"

	"github.com/brewin-lang/brewin/cmd/brewin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
