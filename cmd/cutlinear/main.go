// Command cutlinear renders and inspects cut linear layout descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/cutlinear/cmd/cutlinear/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
