package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/enumfiles/internal/config"
	"github.com/vvka-141/enumfiles/internal/ui"
	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

var rootCmd = &cobra.Command{
	Use:   "enumfiles",
	Short: "List files and directories in a stable, sorted order",
	Long: `enumfiles lists the files or directories beneath a path.

Entries are sorted within each directory. Recursive directory listings put
every subdirectory's whole subtree before its next sibling; recursive file
listings start with the root's own files and then follow the same order.
A path that does not exist lists as empty.

Defaults for output format, color and concurrency are read from
enumfiles.yaml in the current directory, then .env, then ENUMFILES_*
environment variables, and finally command line flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration, output format or entry kind
  11 - Permission denied while listing
  12 - Path is not a directory`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var globalFlags struct {
	verbose     bool
	configPath  string
	format      string
	color       string
	concurrency int
	archive     string
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return run()
}

// run executes the command tree and reports a failure on the failing
// command's stderr.
func run() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		if cmd == nil {
			cmd = rootCmd
		}
		reportError(cmd, err)
	}
	return err
}

func reportError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	styles := ui.NewStyles(w, ui.DetectColor(globalFlags.color, w))
	fmt.Fprintf(w, "%s %v\n", styles.Error.Render("Error:"), err)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Bool("help", false, "Help for enumfiles")
	pf.BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	pf.StringVar(&globalFlags.configPath, "config", "",
		fmt.Sprintf("Path to a config file (default ./%s when present)", enumfiles.ConfigFileName))
	pf.StringVarP(&globalFlags.format, "format", "o", config.FormatPlain, "Output format: plain, json or yaml")
	pf.StringVar(&globalFlags.color, "color", config.ColorAuto, "Color output: auto, always or never")
	pf.IntVarP(&globalFlags.concurrency, "concurrency", "j", enumfiles.DefaultConcurrency,
		fmt.Sprintf("Directories listed in parallel when collecting files recursively (1-%d)", enumfiles.MaxConcurrency))
	pf.StringVar(&globalFlags.archive, "archive", "", "Enumerate inside a zip archive instead of the filesystem")

	_ = rootCmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)
	_ = rootCmd.MarkPersistentFlagFilename("archive", "zip")
	_ = rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")
}
