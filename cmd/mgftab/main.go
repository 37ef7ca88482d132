// mgftab - MGF fragment table converter
package main

import (
	"fmt"
	"os"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/cmd/mgftab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
