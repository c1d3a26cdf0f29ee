package dirinfo

// The query methods below are pure, total, and side-effect free: absent
// or unreadable data reduces to zero or an empty slice, never an error.
// Entries whose metadata read raced with removal (SizeKnown false) are
// skipped by size aggregates but still count toward cardinalities.

// TotalFileSize returns the summed size in bytes of all file entries.
func (s *Snapshot) TotalFileSize() uint64 {
	return sumSizes(s.files)
}

// FileSizeByExtension returns the summed size of file entries whose name
// ends with ext (exact, case-sensitive suffix match).
func (s *Snapshot) FileSizeByExtension(ext string) uint64 {
	return sumSizes(s.files, WithExtension(ext))
}

// HiddenFileSize returns the summed size of hidden file entries.
func (s *Snapshot) HiddenFileSize() uint64 {
	return sumSizes(s.files, HiddenOnly())
}

// FileCount returns the number of file entries.
func (s *Snapshot) FileCount() int { return len(s.files) }

// HiddenFileCount returns the number of hidden file entries.
func (s *Snapshot) HiddenFileCount() int {
	return countMatching(s.files, HiddenOnly())
}

// DirectoryCount returns the number of directory entries.
func (s *Snapshot) DirectoryCount() int { return len(s.directories) }

// HiddenDirectoryCount returns the number of hidden directory entries.
func (s *Snapshot) HiddenDirectoryCount() int {
	return countMatching(s.directories, HiddenOnly())
}

// SymlinkCount returns the number of symlink entries.
func (s *Snapshot) SymlinkCount() int { return len(s.symlinks) }

// DeepestFileDepth returns the maximum depth among file entries, 0 when
// there are none.
func (s *Snapshot) DeepestFileDepth() int {
	return deepest(s.files)
}

// DepthDistribution returns per-level counts for one kind. Index i holds
// the number of entries at depth i+1; depth 0 is not represented. The
// slice spans levels 1 through the kind's deepest depth, so it is empty
// when no entry of the kind sits below depth 0.
func (s *Snapshot) DepthDistribution(kind Kind) []int {
	return countByDepth(s.byKind(kind))
}

// FileCountByDepth is DepthDistribution restricted to file entries
// matching every filter.
func (s *Snapshot) FileCountByDepth(filters ...Filter) []int {
	return countByDepth(s.files, filters...)
}

// FileSizeByDepth returns summed file sizes per level on the same axis as
// FileCountByDepth, restricted to file entries matching every filter.
func (s *Snapshot) FileSizeByDepth(filters ...Filter) []uint64 {
	sizes := make([]uint64, deepest(s.files, filters...))

	for _, entry := range s.files {
		if entry.Depth >= 1 && entry.SizeKnown && matches(entry, filters) {
			sizes[entry.Depth-1] += entry.Size
		}
	}

	return sizes
}

// SizeDistribution buckets file entries matching every filter by size.
// Bucket i counts files whose size falls in the half-open interval
// [i*width, (i+1)*width), so a file of exactly width bytes lands in
// bucket 1. The result always has at least one bucket, even for an empty
// file set.
func (s *Snapshot) SizeDistribution(width BucketWidth, filters ...Filter) []int {
	span := uint64(width.normalize())

	var maxSize uint64

	for _, entry := range s.files {
		if entry.SizeKnown && matches(entry, filters) && entry.Size > maxSize {
			maxSize = entry.Size
		}
	}

	buckets := make([]int, maxSize/span+1)

	for _, entry := range s.files {
		if entry.SizeKnown && matches(entry, filters) {
			buckets[entry.Size/span]++
		}
	}

	return buckets
}

// matches reports whether the entry satisfies every filter.
func matches(entry Entry, filters []Filter) bool {
	for _, filter := range filters {
		if !filter(entry) {
			return false
		}
	}

	return true
}

// sumSizes totals the sizes of entries with known sizes that satisfy
// every filter.
func sumSizes(entries []Entry, filters ...Filter) uint64 {
	var total uint64

	for _, entry := range entries {
		if entry.SizeKnown && matches(entry, filters) {
			total += entry.Size
		}
	}

	return total
}

// countMatching counts entries satisfying every filter.
func countMatching(entries []Entry, filters ...Filter) int {
	count := 0

	for _, entry := range entries {
		if matches(entry, filters) {
			count++
		}
	}

	return count
}

// deepest returns the maximum depth among entries satisfying every
// filter, 0 when none match.
func deepest(entries []Entry, filters ...Filter) int {
	depth := 0

	for _, entry := range entries {
		if matches(entry, filters) && entry.Depth > depth {
			depth = entry.Depth
		}
	}

	return depth
}

// countByDepth counts entries per level from depth 1 up to the deepest
// matching depth; index i corresponds to depth i+1.
func countByDepth(entries []Entry, filters ...Filter) []int {
	counts := make([]int, deepest(entries, filters...))

	for _, entry := range entries {
		if entry.Depth >= 1 && matches(entry, filters) {
			counts[entry.Depth-1]++
		}
	}

	return counts
}
