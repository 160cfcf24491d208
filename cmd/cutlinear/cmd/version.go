package cmd

import (
	"fmt"

	"github.com/go-drift/cutlinear/pkg/style"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the CLI version and the style document version it reads.",
		Usage: "cutlinear version",
		Run: func(args []string) error {
			printVersion()
			fmt.Fprintf(stdout, "style documents: %s.x\n", style.SupportedMajor)
			return nil
		},
	})
}
