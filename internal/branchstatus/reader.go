package branchstatus

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/temirov/gone/internal/execshell"
)

const (
	gitBranchSubcommandConstant                 = "branch"
	gitDoubleVerboseFlagConstant                = "-vv"
	gitNoColorFlagConstant                      = "--no-color"
	localeEnvironmentNameConstant               = "LC_ALL"
	localeEnvironmentValueConstant              = "C"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
	gitExecutorMissingMessageConstant           = "git executor not configured"
	listBranchesFailureTemplateConstant         = "failed to list branches in %s: %w"
	parseBranchesFailureTemplateConstant        = "failed to parse branches in %s: %w"
	currentDirectoryLabelConstant               = "."
)

// ErrGitExecutorNotConfigured indicates the reader was constructed without an executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// GitExecutor runs git commands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Reader loads a Repository by running `git branch -vv` in a working tree.
type Reader struct {
	executor GitExecutor
}

// NewReader constructs a Reader backed by the executor.
func NewReader(executor GitExecutor) (*Reader, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &Reader{executor: executor}, nil
}

// ReadRepository lists the branches of the repository at repositoryPath and
// parses them. An empty path uses the process working directory.
func (reader *Reader) ReadRepository(executionContext context.Context, repositoryPath string) (Repository, error) {
	repositoryLabel := repositoryPath
	if len(repositoryLabel) == 0 {
		repositoryLabel = currentDirectoryLabelConstant
	}

	executionResult, executionError := reader.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, gitDoubleVerboseFlagConstant, gitNoColorFlagConstant},
		WorkingDirectory: repositoryPath,
		EnvironmentVariables: map[string]string{
			localeEnvironmentNameConstant:            localeEnvironmentValueConstant,
			gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant,
		},
	})
	if executionError != nil {
		return Repository{}, fmt.Errorf(listBranchesFailureTemplateConstant, repositoryLabel, executionError)
	}

	if !utf8.ValidString(executionResult.StandardOutput) {
		return Repository{}, fmt.Errorf(listBranchesFailureTemplateConstant, repositoryLabel, ErrNonUTF8Output)
	}

	repository, parseError := ParseRepository(executionResult.StandardOutput)
	if parseError != nil {
		return Repository{}, fmt.Errorf(parseBranchesFailureTemplateConstant, repositoryLabel, parseError)
	}
	return repository, nil
}
