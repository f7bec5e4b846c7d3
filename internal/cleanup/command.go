package cleanup

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gone/internal/branchstatus"
	"github.com/temirov/gone/internal/dependencies"
	"github.com/temirov/gone/internal/utils/flags"
	pathutils "github.com/temirov/gone/internal/utils/path"
)

const (
	commandUseConstant                    = "clean [repository-path]"
	commandShortDescriptionConstant       = "Delete local branches whose upstream is gone"
	commandLongDescriptionConstant        = "clean deletes local branches that track a remote branch which no longer exists, asking before each deletion unless --mode automatic is given."
	commandExecutionErrorTemplateConstant = "branch cleanup failed: %w"
	flagModeNameConstant                  = "mode"
	flagModeDescriptionConstant           = "Confirm each deletion (step) or delete without asking (automatic)."
	flagDryRunNameConstant                = "dry-run"
	flagDryRunDescriptionConstant         = "Preview deletions without making changes"
	flagForceNameConstant                 = "force"
	flagForceDescriptionConstant          = "Delete branches even when they are not fully merged"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the clean command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  branchstatus.GitExecutor
	Prompter                     ConfirmationPrompter
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	WorkingDirectory             string
}

// Build constructs the clean command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		Args:          cobra.MaximumNArgs(1),
		RunE:          builder.run,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	command.Flags().String(flagModeNameConstant, "", flags.FormatChoiceUsage(string(DefaultMode), ModeChoices(), flagModeDescriptionConstant))
	command.Flags().Bool(flagDryRunNameConstant, false, flagDryRunDescriptionConstant)
	command.Flags().Bool(flagForceNameConstant, false, flagForceDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}
	reader, readerError := dependencies.ResolveRepositoryReader(gitExecutor)
	if readerError != nil {
		return readerError
	}

	prompter := builder.Prompter
	if prompter == nil {
		prompter = NewIOConfirmationPrompter(command.InOrStdin(), command.OutOrStdout())
	}

	service, serviceError := NewService(Dependencies{
		Logger:      logger,
		Reader:      reader,
		GitExecutor: gitExecutor,
		Prompter:    prompter,
		Output:      command.OutOrStdout(),
	})
	if serviceError != nil {
		return serviceError
	}

	executionContext := command.Context()
	if executionContext == nil {
		executionContext = context.Background()
	}

	if _, cleanupError := service.Cleanup(executionContext, options); cleanupError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, cleanupError)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (Options, error) {
	configuration := builder.resolveConfiguration()

	modeValue := configuration.Mode
	if command.Flags().Changed(flagModeNameConstant) {
		modeValue, _ = command.Flags().GetString(flagModeNameConstant)
	}
	mode, modeError := ParseMode(modeValue)
	if modeError != nil {
		return Options{}, modeError
	}

	dryRun := configuration.DryRun
	if command.Flags().Changed(flagDryRunNameConstant) {
		dryRun, _ = command.Flags().GetBool(flagDryRunNameConstant)
	}

	force := configuration.Force
	if command.Flags().Changed(flagForceNameConstant) {
		force, _ = command.Flags().GetBool(flagForceNameConstant)
	}

	repositoryPath := builder.WorkingDirectory
	if len(arguments) > 0 && len(strings.TrimSpace(arguments[0])) > 0 {
		repositoryPath = pathutils.NewHomeExpander().Expand(strings.TrimSpace(arguments[0]))
	}

	return Options{RepositoryPath: repositoryPath, Mode: mode, DryRun: dryRun, Force: force}, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
