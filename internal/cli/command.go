package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/renl/dirinfo/internal/dirinfo"
)

// flags holds the raw command-line configuration.
type flags struct {
	path        string
	extensions  []string
	bucket      string
	output      string
	concurrency int
	debug       bool
}

// allowedOutputs lists the accepted --output values.
//
//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

// NewCommand builds the dirinfo root command.
func NewCommand(version string) *cobra.Command {
	opts := &flags{}

	cmd := &cobra.Command{
		Use:   "dirinfo [flags] [path]",
		Short: "Profile a directory tree and report aggregate statistics",
		Long: heredoc.Doc(`
			dirinfo walks a directory tree once, classifies every entry as a
			directory, regular file, or symlink, and reports aggregate
			statistics: totals, hidden and per-extension breakdowns, depth
			distributions, and a size histogram.

			Unreadable entries never abort the walk; they are listed in the
			report instead. Symlinked directories are never followed.
		`),
		Example: heredoc.Doc(`
			# Profile the current directory
			dirinfo

			# Break out .go and .md files, 500 KB histogram buckets
			dirinfo --ext .go,.md --bucket 500kb /path/to/project

			# Machine-readable output with 4 MB buckets
			dirinfo --output json --bucket 4mb .
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.path = args[0]
			}

			if !slices.Contains(allowedOutputs, strings.ToLower(opts.output)) {
				return fmt.Errorf("invalid output format %q: must be one of %v", opts.output, allowedOutputs)
			}

			if opts.concurrency < 0 {
				return errors.New("concurrency cannot be negative")
			}

			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.extensions, "ext", "x", nil,
		"File suffixes to break out in the report (e.g., .go,.md)")
	cmd.Flags().StringVarP(&opts.bucket, "bucket", "b", "100kb",
		"Histogram bucket width: 100kb, 500kb, or <N>mb")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table",
		"Output format: json or table")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 0,
		"Number of walker goroutines (0 = automatic)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug output")
	cmd.Flags().SortFlags = false

	return cmd
}

// parseBucket maps a --bucket value onto a histogram width.
func parseBucket(value string) (dirinfo.BucketWidth, error) {
	switch strings.ToLower(value) {
	case "100kb":
		return dirinfo.Bucket100KB, nil
	case "500kb":
		return dirinfo.Bucket500KB, nil
	}

	if megs, found := strings.CutSuffix(strings.ToLower(value), "mb"); found {
		n, err := strconv.ParseUint(megs, 10, 64)
		if err == nil && n > 0 {
			return dirinfo.BucketMB(n), nil
		}
	}

	return 0, fmt.Errorf("invalid bucket width %q: must be 100kb, 500kb, or <N>mb", value)
}
