package scaffold

import (
	"os"

	"github.com/menoncello/nimata-sub006/pkg/project"
)

// ActionType names the kinds of filesystem mutations a plan can contain.
type ActionType string

const (
	ActionCreateDir ActionType = "create_dir"
	ActionWriteFile ActionType = "write_file"
)

// Action is one step of a scaffold plan. Targets are absolute paths.
type Action struct {
	Type    ActionType
	Target  string
	Content string
	Mode    os.FileMode

	// Source records where the content came from, as "generator:<name>"
	// or "template:<path>", for plan display and logging.
	Source string
}

// Plan is the ordered set of actions that materializes one project:
// directories first, parents before children, then files sorted by path.
type Plan struct {
	// ID identifies one scaffold run in logs.
	ID string

	Project project.Config
	Actions []Action
}

// Summary counts the directory and file actions in the plan.
func (p *Plan) Summary() (dirs, files int) {
	for _, action := range p.Actions {
		switch action.Type {
		case ActionCreateDir:
			dirs++
		case ActionWriteFile:
			files++
		}
	}
	return dirs, files
}
