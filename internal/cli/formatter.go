package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report in human-readable table format.
func PrintTable(report *Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "\nRoot:\t%s\n", report.Root)

	fmt.Fprintln(w, "\nTotals:\t\t")
	fmt.Fprintf(w, "  Files:\t%d (%d hidden)\n", report.Files, report.HiddenFiles)
	fmt.Fprintf(w, "  Directories:\t%d (%d hidden)\n", report.Directories, report.HiddenDirectories)
	fmt.Fprintf(w, "  Symlinks:\t%d\n", report.Symlinks)
	fmt.Fprintf(w, "  Total size:\t%s (%d bytes)\n", humanize.IBytes(report.TotalSize), report.TotalSize)
	fmt.Fprintf(w, "  Hidden size:\t%s (%d bytes)\n", humanize.IBytes(report.HiddenSize), report.HiddenSize)
	fmt.Fprintf(w, "  Deepest file depth:\t%d\n", report.DeepestDepth)

	if len(report.Extensions) > 0 {
		fmt.Fprintln(w, "\nExtensions:\t\t")

		extList := make([]string, 0, len(report.Extensions))
		for ext := range report.Extensions {
			extList = append(extList, ext)
		}

		sort.Slice(extList, func(i, j int) bool {
			return report.Extensions[extList[i]].Size > report.Extensions[extList[j]].Size
		})

		for _, ext := range extList {
			stat := report.Extensions[ext]

			pct := 0.0
			if report.TotalSize > 0 {
				pct = 100.0 * float64(stat.Size) / float64(report.TotalSize)
			}

			fmt.Fprintf(w, "  %s:\t%d files, %s (%.1f%%)\n",
				ext, stat.Count, humanize.IBytes(stat.Size), pct)
		}
	}

	if len(report.FileDepths) > 0 || len(report.DirectoryDepths) > 0 || len(report.SymlinkDepths) > 0 {
		fmt.Fprintln(w, "\nEntries by depth:\t\t")

		levels := max(len(report.FileDepths), len(report.DirectoryDepths), len(report.SymlinkDepths))
		for level := 1; level <= levels; level++ {
			fmt.Fprintf(w, "  Level %d:\t%d files, %d directories, %d symlinks\n",
				level,
				depthCount(report.FileDepths, level),
				depthCount(report.DirectoryDepths, level),
				depthCount(report.SymlinkDepths, level),
			)
		}
	}

	fmt.Fprintln(w, "\nSize histogram:\t\t")

	for i, count := range report.SizeHistogram {
		if count == 0 && len(report.SizeHistogram) > 1 {
			continue
		}

		lo := uint64(i) * report.BucketWidth
		hi := uint64(i+1) * report.BucketWidth
		fmt.Fprintf(w, "  [%s, %s):\t%d files\n", humanize.IBytes(lo), humanize.IBytes(hi), count)
	}

	if len(report.WalkErrors) > 0 {
		fmt.Fprintln(w, "\nWalk errors:\t\t")

		for _, msg := range report.WalkErrors {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", report.Elapsed)

	return w.Flush()
}

// depthCount reads one level out of a depth distribution, 0 when the
// distribution is shorter than the requested level.
func depthCount(distribution []int, level int) int {
	if level < 1 || level > len(distribution) {
		return 0
	}

	return distribution[level-1]
}
