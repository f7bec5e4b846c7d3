package cleanup

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/gone/internal/branchstatus"
	"github.com/temirov/gone/internal/execshell"
)

const (
	repositoryReaderMissingMessageConstant      = "repository reader not configured"
	gitExecutorMissingMessageConstant           = "git executor not configured"
	prompterMissingMessageConstant              = "confirmation prompter not configured for step mode"
	readRepositoryErrorTemplateConstant         = "unable to read branches: %w"
	confirmationErrorTemplateConstant           = "unable to confirm deletion of branch %s: %w"
	deleteBranchErrorTemplateConstant           = "failed to delete branch %s: %w"
	confirmationPromptTemplateConstant          = "About to delete branch %s, continue? [y/N] "
	dryRunMessageTemplateConstant               = "Would delete branch %s\n"
	deletedMessageTemplateConstant              = "Deleted branch %s\n"
	abortedMessageConstant                      = "Understood, aborting cleanup\n"
	deletionFailedMessageTemplateConstant       = "An error occurred while deleting branch %s, aborting cleanup\n"
	currentBranchSkippedMessageTemplateConstant = "Skipping current branch %s; check out another branch to delete it\n"
	nothingToDeleteMessageConstant              = "No gone branches to delete\n"
	gitBranchSubcommandConstant                 = "branch"
	gitDeleteFlagConstant                       = "--delete"
	gitForceFlagConstant                        = "--force"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
	cleanupCompletedMessageConstant             = "Branch cleanup finished"
	logFieldRepositoryPathConstant              = "repository_path"
	logFieldDeletedConstant                     = "deleted"
	logFieldAbortedConstant                     = "aborted"
	logFieldDryRunConstant                      = "dry_run"
)

// ErrRepositoryReaderNotConfigured indicates the repository reader dependency was missing.
var ErrRepositoryReaderNotConfigured = errors.New(repositoryReaderMissingMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrPrompterNotConfigured indicates step mode was requested without a prompter.
var ErrPrompterNotConfigured = errors.New(prompterMissingMessageConstant)

// RepositoryReader loads the parsed branch state of a repository.
type RepositoryReader interface {
	ReadRepository(executionContext context.Context, repositoryPath string) (branchstatus.Repository, error)
}

// GitExecutor runs git commands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Dependencies enumerates the collaborators required for cleanup.
type Dependencies struct {
	Logger      *zap.Logger
	Reader      RepositoryReader
	GitExecutor GitExecutor
	Prompter    ConfirmationPrompter
	Output      io.Writer
}

// Options configures a single cleanup run.
type Options struct {
	RepositoryPath string
	Mode           Mode
	DryRun         bool
	Force          bool
}

// Result captures the observable outcome of a cleanup run.
type Result struct {
	RepositoryPath string
	Candidates     []string
	Deleted        []string
	SkippedCurrent string
	Aborted        bool
}

// Service deletes local branches whose upstream is gone.
type Service struct {
	logger   *zap.Logger
	reader   RepositoryReader
	executor GitExecutor
	prompter ConfirmationPrompter
	output   io.Writer
}

// NewService constructs a Service from the provided dependencies. A missing
// logger or output is replaced by a no-op.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.Reader == nil {
		return nil, ErrRepositoryReaderNotConfigured
	}
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	output := dependencies.Output
	if output == nil {
		output = io.Discard
	}

	return &Service{
		logger:   logger,
		reader:   dependencies.Reader,
		executor: dependencies.GitExecutor,
		prompter: dependencies.Prompter,
		output:   output,
	}, nil
}

// Cleanup deletes the gone branches of the repository in name order. In step
// mode a declined confirmation stops the run and sets Result.Aborted. The
// first failed deletion stops the run and is returned. The checked out branch
// is never deleted.
func (service *Service) Cleanup(executionContext context.Context, options Options) (Result, error) {
	mode, modeError := ParseMode(string(options.Mode))
	if modeError != nil {
		return Result{}, modeError
	}
	if mode == ModeStep && !options.DryRun && service.prompter == nil {
		return Result{}, ErrPrompterNotConfigured
	}

	repository, readError := service.reader.ReadRepository(executionContext, options.RepositoryPath)
	if readError != nil {
		return Result{}, fmt.Errorf(readRepositoryErrorTemplateConstant, readError)
	}

	result := Result{RepositoryPath: options.RepositoryPath, Candidates: []string{}, Deleted: []string{}}
	if headBranch, onBranch := repository.Head().Branch(); onBranch && headBranch.HasStatus(branchstatus.RemoteStatusGone) {
		result.SkippedCurrent = headBranch.Name
		fmt.Fprintf(service.output, currentBranchSkippedMessageTemplateConstant, headBranch.Name)
	}

	for _, branch := range repository.Branches() {
		if branch.HasStatus(branchstatus.RemoteStatusGone) {
			result.Candidates = append(result.Candidates, branch.Name)
		}
	}
	if len(result.Candidates) == 0 {
		fmt.Fprint(service.output, nothingToDeleteMessageConstant)
	}

	for _, branchName := range result.Candidates {
		if options.DryRun {
			fmt.Fprintf(service.output, dryRunMessageTemplateConstant, branchName)
			continue
		}

		if mode == ModeStep {
			confirmed, confirmationError := service.prompter.Confirm(fmt.Sprintf(confirmationPromptTemplateConstant, branchName))
			if confirmationError != nil {
				return result, fmt.Errorf(confirmationErrorTemplateConstant, branchName, confirmationError)
			}
			if !confirmed {
				fmt.Fprint(service.output, abortedMessageConstant)
				result.Aborted = true
				break
			}
		}

		if deleteError := service.deleteBranch(executionContext, options, branchName); deleteError != nil {
			fmt.Fprintf(service.output, deletionFailedMessageTemplateConstant, branchName)
			return result, fmt.Errorf(deleteBranchErrorTemplateConstant, branchName, deleteError)
		}
		result.Deleted = append(result.Deleted, branchName)
		fmt.Fprintf(service.output, deletedMessageTemplateConstant, branchName)
	}

	service.logger.Info(cleanupCompletedMessageConstant,
		zap.String(logFieldRepositoryPathConstant, options.RepositoryPath),
		zap.Strings(logFieldDeletedConstant, result.Deleted),
		zap.Bool(logFieldAbortedConstant, result.Aborted),
		zap.Bool(logFieldDryRunConstant, options.DryRun),
	)
	return result, nil
}

func (service *Service) deleteBranch(executionContext context.Context, options Options, branchName string) error {
	arguments := []string{gitBranchSubcommandConstant, gitDeleteFlagConstant}
	if options.Force {
		arguments = append(arguments, gitForceFlagConstant)
	}
	arguments = append(arguments, branchName)

	_, executionError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            arguments,
		WorkingDirectory:     options.RepositoryPath,
		EnvironmentVariables: map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant},
	})
	return executionError
}
