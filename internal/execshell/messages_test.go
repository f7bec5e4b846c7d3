package execshell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandMessageFormatterDescribesBranchCommands(t *testing.T) {
	listingCommand := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"branch", "-vv", "--no-color"},
			WorkingDirectory: "/workspace/repo",
		},
	}
	deletionCommand := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"branch", "--delete", "feature/gone"},
			WorkingDirectory: "/workspace/repo",
		},
	}
	forcedDeletionCommand := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments: []string{"branch", "--delete", "--force", "feature/gone"},
		},
	}

	testCases := []struct {
		name     string
		build    func(formatter CommandMessageFormatter) string
		expected string
	}{
		{
			name:     "ListingStarted",
			build:    func(formatter CommandMessageFormatter) string { return formatter.BuildStartedMessage(listingCommand) },
			expected: "Listing branches in /workspace/repo",
		},
		{
			name: "ListingFailed",
			build: func(formatter CommandMessageFormatter) string {
				return formatter.BuildFailureMessage(listingCommand, ExecutionResult{ExitCode: 128, StandardError: "fatal: not a git repository\n"})
			},
			expected: "Failed to list branches in /workspace/repo (exit code 128: fatal: not a git repository)",
		},
		{
			name:     "DeletionStarted",
			build:    func(formatter CommandMessageFormatter) string { return formatter.BuildStartedMessage(deletionCommand) },
			expected: "Removing local branch feature/gone in /workspace/repo",
		},
		{
			name:     "DeletionSucceeded",
			build:    func(formatter CommandMessageFormatter) string { return formatter.BuildSuccessMessage(deletionCommand) },
			expected: "Removed local branch feature/gone in /workspace/repo",
		},
		{
			name:     "ForcedDeletionUsesDefaultDirectoryLabel",
			build:    func(formatter CommandMessageFormatter) string { return formatter.BuildStartedMessage(forcedDeletionCommand) },
			expected: "Force removing local branch feature/gone in current directory",
		},
		{
			name: "DeletionExecutionFailure",
			build: func(formatter CommandMessageFormatter) string {
				return formatter.BuildExecutionFailureMessage(deletionCommand, errors.New("signal: killed"))
			},
			expected: "Unable to remove local branch feature/gone in /workspace/repo: signal: killed",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, testCase.build(CommandMessageFormatter{}))
		})
	}
}

func TestCommandMessageFormatterFallsBackToGenericMessages(t *testing.T) {
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"status", "--porcelain"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	formatter := CommandMessageFormatter{}

	require.Equal(t, "Running git status --porcelain (in /workspace/repo)", formatter.BuildStartedMessage(command))
	require.Equal(t, "Completed git status --porcelain (in /workspace/repo)", formatter.BuildSuccessMessage(command))
	require.Equal(t, "git status --porcelain (in /workspace/repo) failed with exit code 1", formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 1}))
	require.Equal(t, "git status --porcelain (in /workspace/repo) failed: unknown error", formatter.BuildExecutionFailureMessage(command, nil))
}
