package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trim-graph <graph.gfa[.gz|.zst]>",
		Short: "Trim a GFA file down to what its paths and walks traverse",
		Long: `Trim-graph removes untraversed records from a GFA assembly graph.

It first scans the whole file to collect which segments, links and
jumps the retained path records and the walk records actually use,
then re-emits the file keeping only those, in original order. With
--paths_to_keep the retained paths are restricted to the listed
names; everything reachable only through other paths is trimmed too.

The trimmed graph goes to stdout (or --output), diagnostics to stderr.`,
		Args:         cobra.ExactArgs(1),
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			SetupLogging(verbosity)
		},
		RunE: RunTrim,
	}

	rootCmd.Flags().StringP("paths_to_keep", "p", "", "File with one path name per line; only these paths are kept")
	rootCmd.Flags().BoolP("ignore_segments", "S", false, "Emit all segments regardless of coverage")
	rootCmd.Flags().BoolP("ignore_links", "L", false, "Emit all links regardless of coverage")
	rootCmd.Flags().BoolP("ignore_jumps", "J", false, "Emit all jumps regardless of coverage")
	rootCmd.Flags().StringP("output", "o", "", "Write the trimmed graph to this file instead of stdout (.gz/.zst compress)")
	rootCmd.Flags().String("dot", "", "Also write a Graphviz rendering of the trimmed graph to this file")
	rootCmd.Flags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")

	return rootCmd
}
