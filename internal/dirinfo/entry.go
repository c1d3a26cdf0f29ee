package dirinfo

import (
	"fmt"
	"strings"
)

// Kind identifies what a visited filesystem object is.
type Kind uint8

// The three entry kinds. Objects that are none of these (sockets,
// pipes, devices) are not recorded.
const (
	KindDirectory Kind = iota
	KindFile
	KindSymlink
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	case KindSymlink:
		return "symlink"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Entry is one filesystem object visited during a walk.
type Entry struct {
	// Kind is the object type as reported by the filesystem at visit time.
	Kind Kind
	// Name is the base name of the entry.
	Name string
	// Path is the entry path as produced by the walker.
	Path string
	// Depth is the number of directory levels below the walk root.
	// Direct children of the root are at depth 0.
	Depth int
	// Size is the entry size in bytes. Meaningful only for files and
	// only when SizeKnown is set.
	Size uint64
	// SizeKnown reports whether the size was read successfully. It is
	// false when the entry vanished or became unreadable between
	// enumeration and the metadata read; size aggregates skip such
	// entries.
	SizeKnown bool
}

// Hidden reports whether the entry base name begins with a dot.
func (e Entry) Hidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// WalkError records one non-fatal failure encountered during a walk.
type WalkError struct {
	// Path is the offending path.
	Path string
	// Depth is the depth at which the failure occurred.
	Depth int
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e WalkError) Error() string {
	return fmt.Sprintf("walking %q (depth %d): %v", e.Path, e.Depth, e.Err)
}

// Unwrap returns the underlying cause.
func (e WalkError) Unwrap() error { return e.Err }

// Filter narrows query results to entries matching a predicate.
type Filter func(Entry) bool

// WithExtension matches entries whose base name ends with ext,
// case-sensitively. ".gz" and ".tar.gz" both match "archive.tar.gz";
// ".tar" does not.
func WithExtension(ext string) Filter {
	return func(e Entry) bool { return strings.HasSuffix(e.Name, ext) }
}

// HiddenOnly matches entries whose base name begins with a dot.
func HiddenOnly() Filter {
	return Entry.Hidden
}
