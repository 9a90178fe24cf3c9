package scaffold

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/logging"
)

// Executor materializes scaffold plans using synthfs.
type Executor struct {
	logger     zerolog.Logger
	dryRun     bool
	force      bool
	filesystem synthfs.FileSystem
}

// NewExecutor creates a plan executor. In dry-run mode Execute logs
// every action and writes nothing.
func NewExecutor(dryRun bool) *Executor {
	return &Executor{
		logger:     logging.GetLogger("scaffold.executor"),
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"),
	}
}

// EnableForce allows overwriting files that already exist in the target.
func (e *Executor) EnableForce(force bool) *Executor {
	e.force = force
	return e
}

// Execute runs every action in the plan. Actions whose target would land
// outside the project directory fail the whole run before anything is
// written.
func (e *Executor) Execute(ctx context.Context, plan *Plan) error {
	if e.dryRun {
		e.logger.Info().Str("plan", plan.ID).Msg("Dry run mode - actions that would run:")
		for _, action := range plan.Actions {
			e.logAction(action)
		}
		return nil
	}

	if err := validateTargets(plan); err != nil {
		return err
	}

	if e.force {
		e.removeExisting(plan)
	}

	pipeline := synthfs.NewMemPipeline()
	count := 0
	for _, action := range plan.Actions {
		op, err := e.convert(action)
		if err != nil {
			return err
		}
		if op == nil {
			continue
		}
		if err := pipeline.Add(op); err != nil {
			return errors.Wrapf(err, errors.ErrScaffoldExecute,
				"failed to add action to pipeline: %s", action.Target)
		}
		count++
	}

	if count == 0 {
		e.logger.Info().Str("plan", plan.ID).Msg("Nothing to do")
		return nil
	}

	executor := synthfs.NewExecutor()
	e.logger.Info().Str("plan", plan.ID).Int("actions", count).Msg("Executing scaffold plan")

	result := executor.Run(ctx, pipeline, e.filesystem)
	if result.GetError() != nil {
		e.logger.Error().Err(result.GetError()).Str("plan", plan.ID).Msg("Scaffold execution failed")
		return errors.Wrapf(result.GetError(), errors.ErrScaffoldExecute,
			"failed to scaffold %s", plan.Project.Name)
	}

	e.logger.Info().Str("plan", plan.ID).Str("dir", plan.Project.Dir).Msg("Scaffold complete")
	return nil
}

// convert turns a plan action into a synthfs operation. Directories that
// already exist convert to nil: pipelines treat re-creating them as a
// conflict, while for scaffolding they are simply done.
func (e *Executor) convert(action Action) (synthfs.Operation, error) {
	relPath, err := filepath.Rel("/", action.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", action.Target)
	}

	switch action.Type {
	case ActionCreateDir:
		if info, statErr := os.Stat(action.Target); statErr == nil && info.IsDir() {
			e.logger.Debug().Str("target", action.Target).Msg("Directory already exists")
			return nil, nil
		}

		mode := action.Mode
		if mode == 0 {
			mode = 0o755
		}

		opID := core.OperationID("create-dir-" + action.Target)
		createOp := operations.NewCreateDirectoryOperation(opID, relPath)
		createOp.SetItem(&directoryItem{path: relPath, mode: mode})
		return synthfs.NewOperationsPackageAdapter(createOp), nil

	case ActionWriteFile:
		mode := action.Mode
		if mode == 0 {
			mode = 0o644
		}

		opID := core.OperationID("write-file-" + action.Target)
		createOp := operations.NewCreateFileOperation(opID, relPath)
		createOp.SetItem(&fileItem{path: relPath, content: []byte(action.Content), mode: mode})
		return synthfs.NewOperationsPackageAdapter(createOp), nil

	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported action type: %s", action.Type)
	}
}

// removeExisting clears file targets so the pipeline can recreate them.
func (e *Executor) removeExisting(plan *Plan) {
	for _, action := range plan.Actions {
		if action.Type != ActionWriteFile {
			continue
		}
		if info, err := os.Lstat(action.Target); err == nil && !info.IsDir() {
			e.logger.Debug().
				Str("target", action.Target).
				Msg("Removing existing file to allow overwrite in force mode")
			if err := os.Remove(action.Target); err != nil {
				e.logger.Warn().
					Err(err).
					Str("target", action.Target).
					Msg("Failed to remove existing file in force mode")
			}
		}
	}
}

func (e *Executor) logAction(action Action) {
	logger := e.logger.With().Str("source", action.Source).Logger()

	switch action.Type {
	case ActionCreateDir:
		logger.Info().
			Str("target", action.Target).
			Msg("Would create directory")
	case ActionWriteFile:
		logger.Info().
			Str("target", action.Target).
			Int("contentLen", len(action.Content)).
			Msg("Would write file")
	default:
		logger.Info().Msg("Would run action")
	}
}

// validateTargets rejects plans whose actions reach outside the project
// directory.
func validateTargets(plan *Plan) error {
	root, err := filepath.Abs(plan.Project.Dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to normalize project dir: %s", plan.Project.Dir)
	}

	for _, action := range plan.Actions {
		target, err := filepath.Abs(action.Target)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput,
				"failed to normalize path: %s", action.Target)
		}
		if !isPathWithin(target, root) {
			return errors.Newf(errors.ErrScaffoldExecute,
				"action target is outside the project directory: %s", action.Target)
		}
	}
	return nil
}

// isPathWithin checks if a path is within a parent directory.
func isPathWithin(path, parent string) bool {
	path = filepath.Clean(path)
	parent = filepath.Clean(parent)

	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return !strings.HasPrefix(rel, "..") && !strings.HasPrefix(rel, "/")
}

// directoryItem implements the item interface synthfs needs for
// directory creation.
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }

// fileItem implements the item interface synthfs needs for file creation.
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }
