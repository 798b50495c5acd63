package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

// entryKinds contains the --kind values offered for shell completion.
var entryKinds = []string{"file", "dir"}

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List files or directories under a path, selected by --kind",
	Long: `List entries of one kind under path (default ".").

This is the general form of 'files' and 'dirs' for scripts that choose the
kind at run time. --kind accepts file, files, dir, dirs, directory or
directories.

Examples:
  # Same as 'enumfiles files ./src -r'
  enumfiles list ./src --kind file -r

  # Same as 'enumfiles dirs ./src'
  enumfiles list ./src -k dir`,
	Args:              RequireAtMostOnePath,
	ValidArgsFunction: completeDirectories,
	RunE:              runList,
}

var listFlags struct {
	kind      string
	recursive bool
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFlags.kind, "kind", "k", "file", "Entry kind to list: file or dir")
	listCmd.Flags().BoolVarP(&listFlags.recursive, "recursive", "r", false, "Descend into all subdirectories")
	_ = listCmd.RegisterFlagCompletionFunc("kind", completeKinds)
}

func runList(cmd *cobra.Command, args []string) error {
	kind, err := enumfiles.ParseKind(listFlags.kind)
	if err != nil {
		return err
	}
	return runEnumerate(cmd, pathArg(args), kind, listFlags.recursive)
}
