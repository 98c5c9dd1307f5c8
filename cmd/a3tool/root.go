package main

import (
	"fmt"

	"github.com/ZebulonRouseFrantzich/a3tool/internal/platform"
	"github.com/spf13/cobra"
)

// detector is replaced in tests.
var detector platform.Detector = platform.NewDetector()

type globalOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "a3tool",
		Short: "Locate the a³ analyzer binary for a build agent",
		Long: `a3tool resolves the a³ analyzer for a CI build agent.

It either unpacks the newest matching installer archive from a shared package
directory into the workspace, or points at a pre-installed alauncher. The
resolved binary path is printed on stdout; progress goes to stderr.

Examples:
  a3tool resolve --target arm --package-dir /srv/a3/packages
  a3tool resolve --launcher /opt/absint/a3/bin --os windows
  a3tool resolve --config a3.lua --output json
  a3tool detect`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("a3tool %s\n", Version))

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging and detailed errors")

	root.AddCommand(newResolveCmd(opts))
	root.AddCommand(newDetectCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}
