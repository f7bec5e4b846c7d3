package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
	flagPrefixConstant                      = "-"
)

const (
	gitBranchSubcommandNameConstant = "branch"
	gitVerboseFlagConstant          = "-v"
	gitDoubleVerboseFlagConstant    = "-vv"
	gitVerboseLongFlagConstant      = "--verbose"
	gitDeleteFlagConstant           = "--delete"
	gitDeleteShortFlagConstant      = "-d"
	gitForceDeleteShortFlagConstant = "-D"
	gitForceFlagConstant            = "--force"
)

const (
	gitBranchListingStartTemplateConstant             = "Listing branches in %s"
	gitBranchListingSuccessTemplateConstant           = "Listed branches in %s"
	gitBranchListingFailureTemplateConstant           = "Failed to list branches in %s (exit code %d%s)"
	gitBranchListingExecutionFailureTemplateConstant  = "Unable to list branches in %s: %s"
	gitBranchDeletionStartTemplateConstant            = "Removing local branch %s in %s"
	gitBranchForceDeletionStartTemplateConstant       = "Force removing local branch %s in %s"
	gitBranchDeletionSuccessTemplateConstant          = "Removed local branch %s in %s"
	gitBranchDeletionFailureTemplateConstant          = "Failed to remove local branch %s in %s (exit code %d%s)"
	gitBranchDeletionExecutionFailureTemplateConstant = "Unable to remove local branch %s in %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandGit:
		return formatter.describeGitMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case gitBranchSubcommandNameConstant:
		return formatter.describeGitBranchMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitBranchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments[1:]
	workingDirectory := formatter.describeWorkingDirectory(command)

	hasForceFlag := containsArgument(arguments, gitForceFlagConstant) || containsArgument(arguments, gitForceDeleteShortFlagConstant)
	hasDeleteFlag := containsArgument(arguments, gitDeleteFlagConstant) || containsArgument(arguments, gitDeleteShortFlagConstant) || containsArgument(arguments, gitForceDeleteShortFlagConstant)

	if hasDeleteFlag {
		branchName := formatter.ensureValue(formatter.extractLastNonFlagArgument(arguments))
		switch stage {
		case messageStageStart:
			if hasForceFlag {
				return fmt.Sprintf(gitBranchForceDeletionStartTemplateConstant, branchName, workingDirectory)
			}
			return fmt.Sprintf(gitBranchDeletionStartTemplateConstant, branchName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitBranchDeletionSuccessTemplateConstant, branchName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitBranchDeletionFailureTemplateConstant, branchName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitBranchDeletionExecutionFailureTemplateConstant, branchName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	if formatter.isVerboseListing(arguments) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitBranchListingStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitBranchListingSuccessTemplateConstant, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitBranchListingFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitBranchListingExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) isVerboseListing(arguments []string) bool {
	return containsArgument(arguments, gitDoubleVerboseFlagConstant) ||
		containsArgument(arguments, gitVerboseFlagConstant) ||
		containsArgument(arguments, gitVerboseLongFlagConstant)
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) extractLastNonFlagArgument(arguments []string) string {
	for index := len(arguments) - 1; index >= 0; index-- {
		argument := strings.TrimSpace(arguments[index])
		if len(argument) == 0 || strings.HasPrefix(argument, flagPrefixConstant) {
			continue
		}
		return argument
	}
	return emptyStringConstant
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}
