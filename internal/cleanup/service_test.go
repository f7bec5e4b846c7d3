package cleanup_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/gone/internal/branchstatus"
	"github.com/temirov/gone/internal/cleanup"
	"github.com/temirov/gone/internal/execshell"
)

const (
	testRepositoryPathConstant   = "/tmp/example"
	cleanupListingOutputConstant = `* main     73b4084 [origin/main] Merge pull request
  zeta     1111111 [origin/zeta: gone] Old work
  alpha    2222222 [origin/alpha: gone] Older work
  bugfix   3333333 [origin/bugfix: ahead 2] Fix crash
  scratch  4444444 Local experiment
`
)

type stubRepositoryReader struct {
	output    string
	readError error
}

func (reader stubRepositoryReader) ReadRepository(context.Context, string) (branchstatus.Repository, error) {
	if reader.readError != nil {
		return branchstatus.Repository{}, reader.readError
	}
	return branchstatus.ParseRepository(reader.output)
}

type recordingGitExecutor struct {
	failingBranch    string
	recordedCommands []execshell.CommandDetails
}

func (executor *recordingGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, details)
	branchName := details.Arguments[len(details.Arguments)-1]
	if branchName == executor.failingBranch {
		return execshell.ExecutionResult{}, execshell.CommandFailedError{
			Command: execshell.ShellCommand{Name: execshell.CommandGit, Details: details},
			Result:  execshell.ExecutionResult{ExitCode: 1, StandardError: "error: the branch is not fully merged"},
		}
	}
	return execshell.ExecutionResult{}, nil
}

func (executor *recordingGitExecutor) deletedBranches() []string {
	branches := []string{}
	for _, details := range executor.recordedCommands {
		branches = append(branches, details.Arguments[len(details.Arguments)-1])
	}
	return branches
}

type scriptedPrompter struct {
	responses []bool
	failure   error
	prompts   []string
}

func (prompter *scriptedPrompter) Confirm(prompt string) (bool, error) {
	prompter.prompts = append(prompter.prompts, prompt)
	if prompter.failure != nil {
		return false, prompter.failure
	}
	if len(prompter.responses) == 0 {
		return false, nil
	}
	response := prompter.responses[0]
	prompter.responses = prompter.responses[1:]
	return response, nil
}

func TestNewServiceValidatesDependencies(testInstance *testing.T) {
	_, missingReaderError := cleanup.NewService(cleanup.Dependencies{GitExecutor: &recordingGitExecutor{}})
	require.ErrorIs(testInstance, missingReaderError, cleanup.ErrRepositoryReaderNotConfigured)

	_, missingExecutorError := cleanup.NewService(cleanup.Dependencies{Reader: stubRepositoryReader{}})
	require.ErrorIs(testInstance, missingExecutorError, cleanup.ErrGitExecutorNotConfigured)
}

func TestServiceCleanup(testInstance *testing.T) {
	testCases := []struct {
		name             string
		output           string
		options          cleanup.Options
		prompter         *scriptedPrompter
		expectedDeleted  []string
		expectedCommands [][]string
		expectedPrompts  int
		expectedAborted  bool
		expectedSkipped  string
		expectedOutput   []string
	}{
		{
			name:             "automatic_deletes_gone_in_name_order",
			output:           cleanupListingOutputConstant,
			options:          cleanup.Options{Mode: cleanup.ModeAutomatic},
			expectedDeleted:  []string{"alpha", "zeta"},
			expectedCommands: [][]string{{"branch", "--delete", "alpha"}, {"branch", "--delete", "zeta"}},
			expectedOutput:   []string{"Deleted branch alpha", "Deleted branch zeta"},
		},
		{
			name:             "force_adds_flag",
			output:           cleanupListingOutputConstant,
			options:          cleanup.Options{Mode: cleanup.ModeAutomatic, Force: true},
			expectedDeleted:  []string{"alpha", "zeta"},
			expectedCommands: [][]string{{"branch", "--delete", "--force", "alpha"}, {"branch", "--delete", "--force", "zeta"}},
		},
		{
			name:             "step_mode_confirms_each",
			output:           cleanupListingOutputConstant,
			options:          cleanup.Options{Mode: cleanup.ModeStep},
			prompter:         &scriptedPrompter{responses: []bool{true, true}},
			expectedDeleted:  []string{"alpha", "zeta"},
			expectedCommands: [][]string{{"branch", "--delete", "alpha"}, {"branch", "--delete", "zeta"}},
			expectedPrompts:  2,
		},
		{
			name:             "step_mode_decline_aborts",
			output:           cleanupListingOutputConstant,
			options:          cleanup.Options{},
			prompter:         &scriptedPrompter{responses: []bool{true, false}},
			expectedDeleted:  []string{"alpha"},
			expectedCommands: [][]string{{"branch", "--delete", "alpha"}},
			expectedPrompts:  2,
			expectedAborted:  true,
			expectedOutput:   []string{"Understood, aborting cleanup"},
		},
		{
			name:             "dry_run_deletes_nothing",
			output:           cleanupListingOutputConstant,
			options:          cleanup.Options{Mode: cleanup.ModeStep, DryRun: true},
			expectedDeleted:  []string{},
			expectedCommands: [][]string{},
			expectedOutput:   []string{"Would delete branch alpha", "Would delete branch zeta"},
		},
		{
			name:             "gone_head_is_skipped",
			output:           "* main 73b4084 [origin/main: gone] msg\n  old 1111111 [origin/old: gone] msg\n",
			options:          cleanup.Options{Mode: cleanup.ModeAutomatic},
			expectedDeleted:  []string{"old"},
			expectedCommands: [][]string{{"branch", "--delete", "old"}},
			expectedSkipped:  "main",
			expectedOutput:   []string{"Skipping current branch main"},
		},
		{
			name:             "nothing_to_delete",
			output:           "* main 73b4084 [origin/main] msg\n",
			options:          cleanup.Options{Mode: cleanup.ModeAutomatic},
			expectedDeleted:  []string{},
			expectedCommands: [][]string{},
			expectedOutput:   []string{"No gone branches to delete"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &recordingGitExecutor{}
			outputBuffer := &bytes.Buffer{}
			dependencies := cleanup.Dependencies{
				Reader:      stubRepositoryReader{output: testCase.output},
				GitExecutor: executor,
				Output:      outputBuffer,
			}
			if testCase.prompter != nil {
				dependencies.Prompter = testCase.prompter
			}

			service, creationError := cleanup.NewService(dependencies)
			require.NoError(testInstance, creationError)

			testCase.options.RepositoryPath = testRepositoryPathConstant
			result, cleanupError := service.Cleanup(context.Background(), testCase.options)
			require.NoError(testInstance, cleanupError)

			require.Equal(testInstance, testCase.expectedDeleted, result.Deleted)
			require.Equal(testInstance, testCase.expectedAborted, result.Aborted)
			require.Equal(testInstance, testCase.expectedSkipped, result.SkippedCurrent)

			recordedArguments := [][]string{}
			for _, details := range executor.recordedCommands {
				recordedArguments = append(recordedArguments, details.Arguments)
				require.Equal(testInstance, testRepositoryPathConstant, details.WorkingDirectory)
			}
			require.Equal(testInstance, testCase.expectedCommands, recordedArguments)

			if testCase.prompter != nil {
				require.Len(testInstance, testCase.prompter.prompts, testCase.expectedPrompts)
				require.Equal(testInstance, "About to delete branch alpha, continue? [y/N] ", testCase.prompter.prompts[0])
			}
			for _, expectedLine := range testCase.expectedOutput {
				require.Contains(testInstance, outputBuffer.String(), expectedLine)
			}
		})
	}
}

func TestServiceCleanupFailures(testInstance *testing.T) {
	readFailure := errors.New("read failed")
	promptFailure := errors.New("stdin closed")

	testCases := []struct {
		name            string
		reader          stubRepositoryReader
		executor        *recordingGitExecutor
		prompter        cleanup.ConfirmationPrompter
		options         cleanup.Options
		expectedError   error
		expectedDeleted []string
	}{
		{
			name:          "unknown_mode",
			reader:        stubRepositoryReader{output: cleanupListingOutputConstant},
			executor:      &recordingGitExecutor{},
			options:       cleanup.Options{Mode: cleanup.Mode("eager")},
			expectedError: cleanup.ErrUnknownMode,
		},
		{
			name:          "step_mode_without_prompter",
			reader:        stubRepositoryReader{output: cleanupListingOutputConstant},
			executor:      &recordingGitExecutor{},
			options:       cleanup.Options{Mode: cleanup.ModeStep},
			expectedError: cleanup.ErrPrompterNotConfigured,
		},
		{
			name:          "read_failure",
			reader:        stubRepositoryReader{readError: readFailure},
			executor:      &recordingGitExecutor{},
			options:       cleanup.Options{Mode: cleanup.ModeAutomatic},
			expectedError: readFailure,
		},
		{
			name:          "parse_failure",
			reader:        stubRepositoryReader{output: "develop 73b4084 commit\n"},
			executor:      &recordingGitExecutor{},
			options:       cleanup.Options{Mode: cleanup.ModeAutomatic},
			expectedError: branchstatus.ErrMissingHead,
		},
		{
			name:          "prompt_failure",
			reader:        stubRepositoryReader{output: cleanupListingOutputConstant},
			executor:      &recordingGitExecutor{},
			prompter:      &scriptedPrompter{failure: promptFailure},
			options:       cleanup.Options{Mode: cleanup.ModeStep},
			expectedError: promptFailure,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			service, creationError := cleanup.NewService(cleanup.Dependencies{
				Reader:      testCase.reader,
				GitExecutor: testCase.executor,
				Prompter:    testCase.prompter,
			})
			require.NoError(testInstance, creationError)

			_, cleanupError := service.Cleanup(context.Background(), testCase.options)
			require.ErrorIs(testInstance, cleanupError, testCase.expectedError)
			require.Empty(testInstance, testCase.executor.recordedCommands)
		})
	}
}

func TestServiceCleanupStopsAtFirstFailedDeletion(testInstance *testing.T) {
	executor := &recordingGitExecutor{failingBranch: "alpha"}
	outputBuffer := &bytes.Buffer{}
	observerCore, observedLogs := observer.New(zap.InfoLevel)

	service, creationError := cleanup.NewService(cleanup.Dependencies{
		Logger:      zap.New(observerCore),
		Reader:      stubRepositoryReader{output: cleanupListingOutputConstant},
		GitExecutor: executor,
		Output:      outputBuffer,
	})
	require.NoError(testInstance, creationError)

	result, cleanupError := service.Cleanup(context.Background(), cleanup.Options{Mode: cleanup.ModeAutomatic})
	require.Error(testInstance, cleanupError)
	require.IsType(testInstance, execshell.CommandFailedError{}, errors.Unwrap(cleanupError))
	require.Empty(testInstance, result.Deleted)
	require.Equal(testInstance, []string{"alpha"}, executor.deletedBranches())
	require.Contains(testInstance, outputBuffer.String(), "An error occurred while deleting branch alpha, aborting cleanup")
	require.Empty(testInstance, observedLogs.All())
}

func TestParseMode(testInstance *testing.T) {
	mode, parseError := cleanup.ParseMode("")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, cleanup.ModeStep, mode)

	mode, parseError = cleanup.ParseMode(" Automatic ")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, cleanup.ModeAutomatic, mode)

	_, parseError = cleanup.ParseMode("eager")
	require.ErrorIs(testInstance, parseError, cleanup.ErrUnknownMode)
}
