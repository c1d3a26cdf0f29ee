// Package dirinfo walks a directory tree, classifies every visited
// object as a directory, regular file, or symbolic link, and answers
// aggregate statistics over the result.
//
// A single Walk call builds an immutable Snapshot; all statistics are
// pure queries over that Snapshot and may be evaluated concurrently by
// any number of callers. Traversal uses fastwalk for parallel
// enumeration, never follows symbolic links into directories, and
// collects per-entry failures as WalkErrors instead of aborting.
package dirinfo
