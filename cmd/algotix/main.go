// Command algotix serves the AlgotixAI marketing site and inspects its route
// table.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
