// Package dependencies supplies default collaborators for command builders
// that were not given explicit ones.
package dependencies

import (
	"go.uber.org/zap"

	"github.com/temirov/gone/internal/branchstatus"
	"github.com/temirov/gone/internal/execshell"
	"github.com/temirov/gone/internal/ui"
)

// ResolveGitExecutor returns the provided executor or constructs a shell-backed
// default. Human-readable logging attaches a console observer for git events.
func ResolveGitExecutor(existing branchstatus.GitExecutor, logger *zap.Logger, humanReadableLogging bool) (branchstatus.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	var observer execshell.CommandEventObserver
	if humanReadableLogging {
		observer = ui.NewConsoleCommandEventLogger(logger)
	}

	shellExecutor, creationError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), observer)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveRepositoryReader returns a branch status reader backed by the executor.
func ResolveRepositoryReader(executor branchstatus.GitExecutor) (*branchstatus.Reader, error) {
	return branchstatus.NewReader(executor)
}
