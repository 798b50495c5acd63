package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

var filesCmd = &cobra.Command{
	Use:   "files [path]",
	Short: "List the files under a path",
	Long: `List the regular files directly under path (default ".").

With --recursive, files in every descendant directory are listed too: first
the files of path itself, then the files of each subdirectory in
depth-first order. Directories, sockets, pipes and devices are never
listed.

Examples:
  # Files in the current directory
  enumfiles files

  # Every file beneath ./src, as JSON
  enumfiles files ./src -r -o json

  # Files inside a zip archive
  enumfiles files docs -r --archive site.zip`,
	Args:              RequireAtMostOnePath,
	ValidArgsFunction: completeDirectories,
	RunE:              runFiles,
}

var filesFlags struct {
	recursive bool
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.Flags().BoolVarP(&filesFlags.recursive, "recursive", "r", false, "Include files in all subdirectories")
}

func runFiles(cmd *cobra.Command, args []string) error {
	return runEnumerate(cmd, pathArg(args), enumfiles.KindFile, filesFlags.recursive)
}
