package cleanup

import "strings"

// CommandConfiguration captures configuration values for the clean command.
type CommandConfiguration struct {
	Mode   string `mapstructure:"mode"`
	DryRun bool   `mapstructure:"dry_run"`
	Force  bool   `mapstructure:"force"`
}

// DefaultCommandConfiguration provides baseline configuration values for the clean command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Mode:   string(DefaultMode),
		DryRun: false,
		Force:  false,
	}
}

// Sanitize trims and lowercases configuration values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Mode = strings.ToLower(strings.TrimSpace(configuration.Mode))
	return sanitized
}
