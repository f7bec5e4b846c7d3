package listing

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
	commandUseConstant                    = "list [repository-path]"
	commandShortDescriptionConstant       = "List branches by remote tracking state"
	commandLongDescriptionConstant        = "list reads `git branch -vv` for the repository (the working directory by default) and prints its branches grouped by their relationship to the remote."
	commandExecutionErrorTemplateConstant = "branch listing failed: %w"
	flagFilterNameConstant                = "filter"
	flagFilterDescriptionConstant         = "Branches to list."
	flagFormatNameConstant                = "format"
	flagFormatDescriptionConstant         = "Output format."
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the list command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  branchstatus.GitExecutor
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	WorkingDirectory             string
}

// Build constructs the list command.
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

	command.Flags().String(flagFilterNameConstant, "", flags.FormatChoiceUsage(string(DefaultFilter), FilterChoices(), flagFilterDescriptionConstant))
	command.Flags().String(flagFormatNameConstant, "", flags.FormatChoiceUsage(string(DefaultFormat), FormatChoices(), flagFormatDescriptionConstant))

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

	service, serviceError := NewService(logger, reader, command.OutOrStdout())
	if serviceError != nil {
		return serviceError
	}

	executionContext := command.Context()
	if executionContext == nil {
		executionContext = context.Background()
	}

	if _, listError := service.List(executionContext, options); listError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, listError)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (Options, error) {
	configuration := builder.resolveConfiguration()

	filterValue := configuration.Filter
	if command.Flags().Changed(flagFilterNameConstant) {
		filterValue, _ = command.Flags().GetString(flagFilterNameConstant)
	}
	filter, filterError := ParseFilter(filterValue)
	if filterError != nil {
		return Options{}, filterError
	}

	formatValue := configuration.Format
	if command.Flags().Changed(flagFormatNameConstant) {
		formatValue, _ = command.Flags().GetString(flagFormatNameConstant)
	}
	format, formatError := ParseFormat(formatValue)
	if formatError != nil {
		return Options{}, formatError
	}

	repositoryPath := builder.WorkingDirectory
	if len(arguments) > 0 && len(strings.TrimSpace(arguments[0])) > 0 {
		repositoryPath = pathutils.NewHomeExpander().Expand(strings.TrimSpace(arguments[0]))
	}

	return Options{RepositoryPath: repositoryPath, Filter: filter, Format: format}, nil
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
