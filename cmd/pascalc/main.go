// Command pascalc is the CLI front end for the Pascal scanner and
// parser: it loads a source file, runs one of the pipeline stages, and
// prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/danirod-live/pascal2go/cmd/pascalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
