// Package scaffold turns a project configuration into files on disk. A
// Builder renders builtin generators and discovered templates into an
// ordered Plan of directory and file actions; an Executor materializes
// the plan through synthfs, or just logs it in dry-run mode.
package scaffold
