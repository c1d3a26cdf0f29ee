package dirinfo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrNotDirectory reports that the walk root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Options configures a walk.
type Options struct {
	// Path is the directory to walk. Empty means the current directory.
	Path string
	// Concurrency caps the number of walker goroutines (0 = fastwalk default).
	Concurrency int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// calculateDepth returns the depth of a path relative to the root.
// Direct children of the root are at depth 0.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)
	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

	return strings.Count(relPath, string(filepath.Separator))
}

// collector aggregates entries and errors from concurrent fastwalk
// callbacks using a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	entries    []Entry
	errs       []WalkError
	totalBytes int64
	cancelled  bool
}

// addEntry records a visited entry. This operation is protected by a mutex
// since fastwalk calls the callback from multiple goroutines concurrently.
func (c *collector) addEntry(entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append(c.entries, entry)

	if entry.SizeKnown {
		c.totalBytes += int64(entry.Size) //nolint:gosec // Sizes fit in int64
	}
}

// addError records a non-fatal traversal failure.
func (c *collector) addError(walkErr WalkError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errs = append(c.errs, walkErr)
}

// markCancelled records exactly one cancellation error no matter how many
// in-flight callbacks observe the cancelled context. It reports whether
// this call was the first.
func (c *collector) markCancelled(walkErr WalkError) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelled {
		return false
	}

	c.cancelled = true
	c.errs = append(c.errs, walkErr)

	return true
}

// progress returns the current entry and byte counts.
func (c *collector) progress() (entries, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return int64(len(c.entries)), c.totalBytes
}

// startProgressReporter invokes hook(entries, bytes) on each tick until ctx
// is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Walk traverses the tree rooted at opts.Path and returns an immutable
// Snapshot of every reachable entry, classified by kind, together with the
// non-fatal errors met along the way.
//
// Traversal is depth-first per directory and never recurses into a
// directory reached through a symbolic link. A failure to read one entry
// is collected as a WalkError and never aborts the walk; the only fatal
// condition is a root that does not exist or is not a directory.
//
// Cancelling ctx stops further enumeration and returns the partial
// Snapshot with a cancellation WalkError appended. Progress updates are
// sent to progressHook if provided.
func Walk(ctx context.Context, opts Options, progressHook func(entries, bytes int64)) (*Snapshot, error) {
	log := logger{enabled: opts.Debug}

	if opts.Path == "" {
		opts.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opts.Path = filepath.Clean(opts.Path)

	// The root itself failing is the single fatal condition.
	if statInfo, err := os.Stat(opts.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opts.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q: %w", opts.Path, ErrNotDirectory)
	}

	col := &collector{}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, col, progressHook, opts.ProgressInterval)

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: opts.Concurrency,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opts.Path, func(path string, d fs.DirEntry, err error) error {
		depth := calculateDepth(path, opts.Path)

		select {
		case <-ctx.Done():
			if col.markCancelled(WalkError{Path: path, Depth: depth, Err: ctx.Err()}) {
				log.printf("[debug]: walk cancelled at %s\n", path)
			}

			return filepath.SkipAll
		default:
		}

		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)
			col.addError(WalkError{Path: path, Depth: depth, Err: err})

			return nil
		}

		// The root is the traversal origin, not one of its own entries.
		if path == opts.Path {
			return nil
		}

		entry := Entry{
			Name:  filepath.Base(path),
			Path:  path,
			Depth: depth,
		}

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			entry.Kind = KindSymlink
		case d.IsDir():
			entry.Kind = KindDirectory
		case d.Type().IsRegular():
			entry.Kind = KindFile

			fileInfo, err := d.Info()
			if err != nil {
				// The file vanished between enumeration and the metadata
				// read; keep the entry and let size queries skip it.
				log.printf("[debug]: error reading metadata for %s: %v\n", path, err)
			} else {
				entry.Size = uint64(fileInfo.Size()) //nolint:gosec // Regular file sizes are non-negative
				entry.SizeKnown = true
			}
		default:
			log.printf("[debug]: skipping special file: %s\n", path)

			return nil
		}

		col.addEntry(entry)

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %q: %w", opts.Path, walkErr)
	}

	return newSnapshot(opts.Path, col.entries, col.errs), nil
}
