package dirinfo

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestScenarioStatistics(t *testing.T) {
	snapshot := mustWalk(t, scenarioTree(t))

	assert.Equal(t, 3, snapshot.FileCount())
	assert.Equal(t, uint64(35), snapshot.TotalFileSize())
	assert.Equal(t, uint64(5), snapshot.HiddenFileSize())
	assert.Equal(t, 1, snapshot.HiddenFileCount())
	assert.Equal(t, 1, snapshot.DirectoryCount())
	assert.Equal(t, 0, snapshot.HiddenDirectoryCount())
	assert.Equal(t, 1, snapshot.DeepestFileDepth())
	assert.Equal(t, uint64(10), snapshot.FileSizeByExtension(".txt"))
	assert.Equal(t, 1, countMatching(snapshot.Files(), WithExtension(".txt")))

	// Only c.log sits below depth 0, so the distribution has one level.
	assert.Equal(t, []int{1}, snapshot.DepthDistribution(KindFile))
}

func TestExtensionFilterIsExactSuffixMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "archive.tar.gz", 7)

	snapshot := mustWalk(t, root)

	assert.Equal(t, uint64(7), snapshot.FileSizeByExtension(".gz"))
	assert.Equal(t, uint64(7), snapshot.FileSizeByExtension(".tar.gz"))
	assert.Equal(t, uint64(0), snapshot.FileSizeByExtension(".tar"))
}

func TestDeepestFileDepth(t *testing.T) {
	t.Run("files only at the root", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "a.txt", 1)
		writeFile(t, root, "b.txt", 1)

		assert.Equal(t, 0, mustWalk(t, root).DeepestFileDepth())
	})

	t.Run("file two levels down", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
		writeFile(t, filepath.Join(root, "a", "b"), "file.txt", 1)

		assert.Equal(t, 2, mustWalk(t, root).DeepestFileDepth())
	})

	t.Run("no files at all", func(t *testing.T) {
		assert.Equal(t, 0, mustWalk(t, t.TempDir()).DeepestFileDepth())
	})
}

func TestDepthDistributionProperties(t *testing.T) {
	// All files below depth 0 so that the distribution accounts for every
	// one of them.
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b", "c"), 0o755))
	writeFile(t, filepath.Join(root, "a"), "one.txt", 1)
	writeFile(t, filepath.Join(root, "a", "b"), "two.txt", 1)
	writeFile(t, filepath.Join(root, "a", "b"), "three.txt", 1)
	writeFile(t, filepath.Join(root, "a", "b", "c"), "four.txt", 1)

	snapshot := mustWalk(t, root)

	distribution := snapshot.DepthDistribution(KindFile)
	require.Len(t, distribution, snapshot.DeepestFileDepth())
	assert.Equal(t, []int{1, 2, 1}, distribution)

	total := 0
	for _, count := range distribution {
		total += count
	}

	assert.Equal(t, snapshot.FileCount(), total)

	// Directories: a (depth 0), b (1), c (2) — a is excluded.
	assert.Equal(t, []int{1, 1}, snapshot.DepthDistribution(KindDirectory))

	// No symlinks anywhere.
	assert.Empty(t, snapshot.DepthDistribution(KindSymlink))
}

func TestFileCountAndSizeByDepth(t *testing.T) {
	snapshot := mustWalk(t, scenarioTree(t))

	assert.Equal(t, []int{1}, snapshot.FileCountByDepth())
	assert.Equal(t, []uint64{20}, snapshot.FileSizeByDepth())

	// Hidden files only exist at depth 0 in the scenario tree.
	assert.Empty(t, snapshot.FileCountByDepth(HiddenOnly()))
	assert.Empty(t, snapshot.FileSizeByDepth(HiddenOnly()))

	assert.Equal(t, []int{1}, snapshot.FileCountByDepth(WithExtension(".log")))
	assert.Equal(t, []uint64{20}, snapshot.FileSizeByDepth(WithExtension(".log")))
	assert.Empty(t, snapshot.FileCountByDepth(WithExtension(".txt")))
}

func TestSizeDistributionBucketsAreHalfOpen(t *testing.T) {
	width := Bucket100KB

	root := t.TempDir()
	writeFile(t, root, "under.bin", int(width)-1)
	writeFile(t, root, "exact.bin", int(width))

	snapshot := mustWalk(t, root)

	// A file of exactly width bytes falls into bucket 1, not 0.
	assert.Equal(t, []int{1, 1}, snapshot.SizeDistribution(width))
}

func TestSizeDistributionEmptyFileSet(t *testing.T) {
	snapshot := mustWalk(t, t.TempDir())

	assert.Equal(t, []int{0}, snapshot.SizeDistribution(Bucket100KB))
	assert.Equal(t, []int{0}, snapshot.SizeDistribution(Bucket500KB))
	assert.Equal(t, []int{0}, snapshot.SizeDistribution(BucketMB(2)))
}

func TestSizeDistributionZeroWidthNormalized(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.bin", 10)

	snapshot := mustWalk(t, root)

	assert.Equal(t, []int{1}, snapshot.SizeDistribution(0))
}

func TestSizeDistributionFiltered(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.log", int(Bucket100KB)+1)
	writeFile(t, root, "small.txt", 3)
	writeFile(t, root, ".hidden", 4)

	snapshot := mustWalk(t, root)

	assert.Equal(t, []int{0, 1}, snapshot.SizeDistribution(Bucket100KB, WithExtension(".log")))
	assert.Equal(t, []int{1}, snapshot.SizeDistribution(Bucket100KB, HiddenOnly()))
	assert.Equal(t, []int{2, 1}, snapshot.SizeDistribution(Bucket100KB))
}

func TestTotalFileSizeCrossCheck(t *testing.T) {
	root := scenarioTree(t)
	writeFile(t, root, "extra.dat", 123)

	snapshot := mustWalk(t, root)

	// Recompute the total over a fresh, independent walk.
	var independent uint64

	require.NoError(t, filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)

		if d.Type().IsRegular() {
			info, err := d.Info()
			require.NoError(t, err)
			independent += uint64(info.Size())
		}

		return nil
	}))

	assert.Equal(t, independent, snapshot.TotalFileSize())
}

func TestUnknownSizeEntriesAreSkippedBySizeQueries(t *testing.T) {
	snapshot := newSnapshot("root", []Entry{
		{Kind: KindFile, Name: "known.txt", Depth: 1, Size: 10, SizeKnown: true},
		{Kind: KindFile, Name: "vanished.txt", Depth: 1},
	}, nil)

	// The raced entry still counts but contributes no bytes.
	assert.Equal(t, 2, snapshot.FileCount())
	assert.Equal(t, uint64(10), snapshot.TotalFileSize())
	assert.Equal(t, uint64(10), snapshot.FileSizeByExtension(".txt"))
	assert.Equal(t, []uint64{10}, snapshot.FileSizeByDepth())
	assert.Equal(t, []int{2}, snapshot.FileCountByDepth())
	assert.Equal(t, []int{1}, snapshot.SizeDistribution(Bucket100KB))
}

func TestConcurrentQueries(t *testing.T) {
	snapshot := mustWalk(t, scenarioTree(t))

	var group errgroup.Group

	for i := 0; i < 16; i++ {
		group.Go(func() error {
			assert.Equal(t, uint64(35), snapshot.TotalFileSize())
			assert.Equal(t, 3, snapshot.FileCount())
			assert.Equal(t, []int{1}, snapshot.DepthDistribution(KindFile))
			assert.Equal(t, uint64(5), snapshot.HiddenFileSize())

			return nil
		})
	}

	require.NoError(t, group.Wait())
}
