package cli

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renl/dirinfo/internal/dirinfo"
)

// ExtensionStat holds the per-extension breakdown of one report.
type ExtensionStat struct {
	// Count is the number of files matching the extension.
	Count int `json:"count"`
	// Size is the cumulative size in bytes.
	Size uint64 `json:"size"`
}

// Report is the aggregate view of one snapshot, shaped for output.
type Report struct {
	// Root is the walked root path.
	Root string `json:"root"`
	// Files is the total number of files.
	Files int `json:"files"`
	// HiddenFiles is the number of dot-prefixed files.
	HiddenFiles int `json:"hidden_files"`
	// Directories is the total number of directories.
	Directories int `json:"directories"`
	// HiddenDirectories is the number of dot-prefixed directories.
	HiddenDirectories int `json:"hidden_directories"`
	// Symlinks is the total number of symbolic links.
	Symlinks int `json:"symlinks"`
	// TotalSize is the cumulative size of all files in bytes.
	TotalSize uint64 `json:"total_size"`
	// HiddenSize is the cumulative size of hidden files in bytes.
	HiddenSize uint64 `json:"hidden_size"`
	// DeepestDepth is the maximum file depth below the root.
	DeepestDepth int `json:"deepest_depth"`
	// Extensions maps requested suffixes to their statistics.
	Extensions map[string]ExtensionStat `json:"extensions,omitempty"`
	// FileDepths counts files per depth level starting at level 1.
	FileDepths []int `json:"file_depths"`
	// DirectoryDepths counts directories per depth level starting at level 1.
	DirectoryDepths []int `json:"directory_depths"`
	// SymlinkDepths counts symlinks per depth level starting at level 1.
	SymlinkDepths []int `json:"symlink_depths"`
	// SizeHistogram counts files per size bucket.
	SizeHistogram []int `json:"size_histogram"`
	// BucketWidth is the histogram bucket span in bytes.
	BucketWidth uint64 `json:"bucket_width"`
	// WalkErrors lists the non-fatal errors met during the walk.
	WalkErrors []string `json:"walk_errors,omitempty"`
	// Elapsed is the total time taken for the walk and the report.
	Elapsed time.Duration `json:"elapsed"`
}

// buildReport evaluates the snapshot queries, fanning independent ones out
// across goroutines. Snapshots are immutable, so the queries need no
// coordination beyond the final wait.
func buildReport(
	ctx context.Context,
	snapshot *dirinfo.Snapshot,
	extensions []string,
	width dirinfo.BucketWidth,
) *Report {
	report := &Report{
		Root:        snapshot.Root(),
		BucketWidth: uint64(width),
	}

	group, _ := errgroup.WithContext(ctx)

	group.Go(func() error {
		report.Files = snapshot.FileCount()
		report.HiddenFiles = snapshot.HiddenFileCount()
		report.Directories = snapshot.DirectoryCount()
		report.HiddenDirectories = snapshot.HiddenDirectoryCount()
		report.Symlinks = snapshot.SymlinkCount()

		return nil
	})

	group.Go(func() error {
		report.TotalSize = snapshot.TotalFileSize()
		report.HiddenSize = snapshot.HiddenFileSize()
		report.DeepestDepth = snapshot.DeepestFileDepth()

		return nil
	})

	group.Go(func() error {
		report.FileDepths = snapshot.DepthDistribution(dirinfo.KindFile)
		report.DirectoryDepths = snapshot.DepthDistribution(dirinfo.KindDirectory)
		report.SymlinkDepths = snapshot.DepthDistribution(dirinfo.KindSymlink)

		return nil
	})

	group.Go(func() error {
		report.SizeHistogram = snapshot.SizeDistribution(width)

		return nil
	})

	group.Go(func() error {
		if len(extensions) == 0 {
			return nil
		}

		stats := make(map[string]ExtensionStat, len(extensions))
		for _, ext := range extensions {
			matching := dirinfo.WithExtension(ext)

			count := 0
			for _, entry := range snapshot.Files() {
				if matching(entry) {
					count++
				}
			}

			stats[ext] = ExtensionStat{
				Count: count,
				Size:  snapshot.FileSizeByExtension(ext),
			}
		}

		report.Extensions = stats

		return nil
	})

	group.Go(func() error {
		for _, walkErr := range snapshot.Errors() {
			report.WalkErrors = append(report.WalkErrors, walkErr.Error())
		}

		return nil
	})

	// Queries are total and never fail.
	_ = group.Wait()

	return report
}
