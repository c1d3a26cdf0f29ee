package dirinfo

import "slices"

// Snapshot is the immutable result of one completed walk: the classified
// entry sequence, the non-fatal errors collected along the way, and the
// root path. All statistics are pure functions of a Snapshot, so any
// number of goroutines may query one concurrently.
type Snapshot struct {
	root    string
	entries []Entry
	errs    []WalkError

	// Per-kind subsets; together they partition entries, each preserving
	// visit order.
	directories []Entry
	files       []Entry
	symlinks    []Entry
}

// newSnapshot classifies entries into per-kind subsets and freezes the
// result.
func newSnapshot(root string, entries []Entry, errs []WalkError) *Snapshot {
	snap := &Snapshot{
		root:    root,
		entries: entries,
		errs:    errs,
	}

	for _, entry := range entries {
		switch entry.Kind {
		case KindDirectory:
			snap.directories = append(snap.directories, entry)
		case KindFile:
			snap.files = append(snap.files, entry)
		case KindSymlink:
			snap.symlinks = append(snap.symlinks, entry)
		}
	}

	return snap
}

// Root returns the walked root path.
func (s *Snapshot) Root() string { return s.root }

// Entries returns a copy of every classified entry in visit order.
func (s *Snapshot) Entries() []Entry { return slices.Clone(s.entries) }

// Errors returns a copy of the non-fatal errors collected during the walk.
func (s *Snapshot) Errors() []WalkError { return slices.Clone(s.errs) }

// Directories returns a copy of the directory entries in visit order.
func (s *Snapshot) Directories() []Entry { return slices.Clone(s.directories) }

// Files returns a copy of the file entries in visit order.
func (s *Snapshot) Files() []Entry { return slices.Clone(s.files) }

// Symlinks returns a copy of the symlink entries in visit order.
func (s *Snapshot) Symlinks() []Entry { return slices.Clone(s.symlinks) }

// byKind returns the internal subset for one kind.
func (s *Snapshot) byKind(kind Kind) []Entry {
	switch kind {
	case KindDirectory:
		return s.directories
	case KindFile:
		return s.files
	case KindSymlink:
		return s.symlinks
	default:
		return nil
	}
}
