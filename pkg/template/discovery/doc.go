// Package discovery locates template files on disk and maintains an index
// of their metadata.
//
// A Scanner walks a root directory filtering by extension and ignored
// directory names; ParseMetadata extracts each file's referenced variables
// (plus declarations from an optional template.yaml manifest); the Index
// maps canonical absolute paths to metadata. The Service ties them
// together with full scans (Discover), incremental rescans classifying
// new/modified/deleted files (Rescan), and a filesystem watcher (Watch).
// Failures are isolated per file: one corrupt template never aborts a
// directory-wide scan. The index can be persisted to a JSON cache guarded
// by a cross-process file lock.
package discovery
