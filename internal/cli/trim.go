package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/codialab/trim-graph/internal/fileutil"
	"github.com/codialab/trim-graph/internal/gfa"
	"github.com/codialab/trim-graph/internal/trim"
	"github.com/codialab/trim-graph/internal/viz"
)

func RunTrim(cmd *cobra.Command, args []string) error {
	started := time.Now()
	graphPath := args[0]

	keepPath, err := cmd.Flags().GetString("paths_to_keep")
	if err != nil {
		return fmt.Errorf("failed to read --paths_to_keep flag: %w", err)
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to read --output flag: %w", err)
	}
	dotPath, err := cmd.Flags().GetString("dot")
	if err != nil {
		return fmt.Errorf("failed to read --dot flag: %w", err)
	}
	opts, err := readFilterOptions(cmd)
	if err != nil {
		return err
	}

	var keep trim.KeepList
	if keepPath != "" {
		keep, err = trim.LoadKeepList(keepPath)
		if err != nil {
			return err
		}
		if len(keep) == 0 {
			slog.Warn("keep-list is empty, every path will be trimmed away", "file", keepPath)
		}
	}

	slog.Info("reading graph", "file", graphPath)
	records, err := readGraph(graphPath)
	if err != nil {
		return err
	}

	if keep != nil {
		if unmatched := keep.Unmatched(trim.PathNames(records)); len(unmatched) > 0 {
			slog.Debug("keep-list entries match no path", "names", unmatched)
		}
		if countKind(records, gfa.KindWalk) > 0 {
			slog.Warn("selective keep is not supported for walks, all walks are kept")
		}
	}

	slog.Info("collecting coverage", "records", len(records))
	cov := trim.CollectCoverage(records, keep)

	kept := trim.Apply(records, cov, keep, opts)

	if err := fileutil.WriteOutput(outputPath, renderLines(kept)); err != nil {
		return err
	}
	if dotPath != "" {
		if err := viz.WriteDOT(dotPath, kept); err != nil {
			return err
		}
	}

	LogTrimSummary(NewTrimSummary(records, kept, time.Since(started)))
	return nil
}

func readFilterOptions(cmd *cobra.Command) (trim.Options, error) {
	var opts trim.Options
	var err error
	if opts.IgnoreSegments, err = cmd.Flags().GetBool("ignore_segments"); err != nil {
		return opts, fmt.Errorf("failed to read --ignore_segments flag: %w", err)
	}
	if opts.IgnoreLinks, err = cmd.Flags().GetBool("ignore_links"); err != nil {
		return opts, fmt.Errorf("failed to read --ignore_links flag: %w", err)
	}
	if opts.IgnoreJumps, err = cmd.Flags().GetBool("ignore_jumps"); err != nil {
		return opts, fmt.Errorf("failed to read --ignore_jumps flag: %w", err)
	}
	return opts, nil
}

func readGraph(path string) ([]gfa.Record, error) {
	f, err := fileutil.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := gfa.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// renderLines rebuilds the output text from the retained records,
// each line exactly as it was read.
func renderLines(records []gfa.Record) []byte {
	var buf bytes.Buffer
	for _, rec := range records {
		buf.WriteString(rec.Line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
