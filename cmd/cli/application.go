package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/gone/internal/cleanup"
	"github.com/temirov/gone/internal/listing"
	"github.com/temirov/gone/internal/utils"
	"github.com/temirov/gone/internal/utils/flags"
)

const (
	applicationNameConstant                 = "gone"
	applicationShortDescriptionConstant     = "Inspect and prune local git branches whose upstream is gone"
	applicationLongDescriptionConstant      = "gone reads git branch -vv output, classifies local branches by their upstream status, and deletes branches whose remote counterpart has been removed."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	toolsConfigurationKeyConstant           = "tools"
	listConfigurationKeyConstant            = toolsConfigurationKeyConstant + ".list"
	cleanConfigurationKeyConstant           = toolsConfigurationKeyConstant + ".clean"
	listFilterConfigKeyConstant             = listConfigurationKeyConstant + ".filter"
	listFormatConfigKeyConstant             = listConfigurationKeyConstant + ".format"
	cleanModeConfigKeyConstant              = cleanConfigurationKeyConstant + ".mode"
	cleanDryRunConfigKeyConstant            = cleanConfigurationKeyConstant + ".dry_run"
	cleanForceConfigKeyConstant             = cleanConfigurationKeyConstant + ".force"
	environmentPrefixConstant               = "GONE"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	workingDirectorySearchPathConstant      = "."
	userConfigurationSearchPathConstant     = "~/.config/gone"
	xdgConfigurationHomeEnvironmentConstant = "XDG_CONFIG_HOME"
	xdgConfigurationDirectoryNameConstant   = "gone"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	commandBuildErrorTemplateConstant       = "unable to build %s command: %w"
	listCommandNameConstant                 = "list"
	cleanCommandNameConstant                = "clean"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Tools  ApplicationToolsConfiguration  `mapstructure:"tools"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationToolsConfiguration holds per-command configuration.
type ApplicationToolsConfiguration struct {
	List  listing.CommandConfiguration `mapstructure:"list"`
	Clean cleanup.CommandConfiguration `mapstructure:"clean"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	logLevelFlagValue     string
	logFormatFlagValue    string
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() (*Application, error) {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		configurationSearchPaths(),
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(
		&application.logLevelFlagValue,
		logLevelFlagNameConstant,
		"",
		flags.FormatChoiceUsage(string(utils.LogLevelInfo), utils.LogLevelChoices(), logLevelFlagUsageConstant),
	)
	cobraCommand.PersistentFlags().StringVar(
		&application.logFormatFlagValue,
		logFormatFlagNameConstant,
		"",
		flags.FormatChoiceUsage(string(utils.LogFormatStructured), utils.LogFormatChoices(), logFormatFlagUsageConstant),
	)

	var workingDirectory string
	if resolvedWorkingDirectory, workingDirectoryError := os.Getwd(); workingDirectoryError == nil {
		workingDirectory = resolvedWorkingDirectory
	}

	listBuilder := listing.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		ConfigurationProvider: func() listing.CommandConfiguration {
			return application.configuration.Tools.List
		},
		WorkingDirectory: workingDirectory,
	}
	listCommand, listBuildError := listBuilder.Build()
	if listBuildError != nil {
		return nil, fmt.Errorf(commandBuildErrorTemplateConstant, listCommandNameConstant, listBuildError)
	}
	cobraCommand.AddCommand(listCommand)

	cleanBuilder := cleanup.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		ConfigurationProvider: func() cleanup.CommandConfiguration {
			return application.configuration.Tools.Clean
		},
		WorkingDirectory: workingDirectory,
	}
	cleanCommand, cleanBuildError := cleanBuilder.Build()
	if cleanBuildError != nil {
		return nil, fmt.Errorf(commandBuildErrorTemplateConstant, cleanCommandNameConstant, cleanBuildError)
	}
	cobraCommand.AddCommand(cleanCommand)

	application.rootCommand = cobraCommand

	return application, nil
}

// RootCommand exposes the configured Cobra root command.
func (application *Application) RootCommand() *cobra.Command {
	return application.rootCommand
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	application, applicationError := NewApplication()
	if applicationError != nil {
		return applicationError
	}
	return application.Execute()
}

func configurationSearchPaths() []string {
	searchPaths := []string{workingDirectorySearchPathConstant}
	if xdgConfigurationHome := strings.TrimSpace(os.Getenv(xdgConfigurationHomeEnvironmentConstant)); len(xdgConfigurationHome) > 0 {
		searchPaths = append(searchPaths, xdgConfigurationHome+string(os.PathSeparator)+xdgConfigurationDirectoryNameConstant)
	}
	return append(searchPaths, userConfigurationSearchPathConstant)
}

func defaultConfigurationValues() map[string]any {
	listDefaults := listing.DefaultCommandConfiguration()
	cleanDefaults := cleanup.DefaultCommandConfiguration()
	return map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatStructured),
		listFilterConfigKeyConstant:      listDefaults.Filter,
		listFormatConfigKeyConstant:      listDefaults.Format,
		cleanModeConfigKeyConstant:       cleanDefaults.Mode,
		cleanDryRunConfigKeyConstant:     cleanDefaults.DryRun,
		cleanForceConfigKeyConstant:      cleanDefaults.Force,
	}
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(
		application.configurationFilePath,
		defaultConfigurationValues(),
		&application.configuration,
	)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) humanReadableLoggingEnabled() bool {
	logFormatValue := strings.TrimSpace(application.configuration.Common.LogFormat)
	return strings.EqualFold(logFormatValue, string(utils.LogFormatConsole))
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}
		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
