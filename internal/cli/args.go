package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireAtMostOnePath validates that no more than one path argument is
// provided. The path is optional and defaults to the current directory.
func RequireAtMostOnePath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s ./src`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// pathArg returns the path argument, or "." when none was given.
func pathArg(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "."
	}
	return args[0]
}
