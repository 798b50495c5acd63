package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

var dirsCmd = &cobra.Command{
	Use:     "dirs [path]",
	Aliases: []string{"dir"},
	Short:   "List the directories under a path",
	Long: `List the directories directly under path (default ".").

With --recursive, every descendant directory is listed: each
subdirectory is followed by its entire subtree before its next sibling.
path itself is never part of the output.

Examples:
  # Directories in the current directory
  enumfiles dirs

  # The whole directory tree beneath ./src
  enumfiles dirs ./src -r

  # As YAML, without color
  enumfiles dirs ./src -r -o yaml --color never`,
	Args:              RequireAtMostOnePath,
	ValidArgsFunction: completeDirectories,
	RunE:              runDirs,
}

var dirsFlags struct {
	recursive bool
}

func init() {
	rootCmd.AddCommand(dirsCmd)
	dirsCmd.Flags().BoolVarP(&dirsFlags.recursive, "recursive", "r", false, "Include all descendant directories")
}

func runDirs(cmd *cobra.Command, args []string) error {
	return runEnumerate(cmd, pathArg(args), enumfiles.KindDirectory, dirsFlags.recursive)
}
