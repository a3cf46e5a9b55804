// Command duit checks, inspects and previews duit widget specs and
// stylesheets.
package main

import (
	"fmt"
	"os"

	"github.com/go-duit/duit/cmd/duit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
