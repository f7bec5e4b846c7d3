package listing

import "strings"

// CommandConfiguration captures configuration values for the list command.
type CommandConfiguration struct {
	Filter string `mapstructure:"filter"`
	Format string `mapstructure:"format"`
}

// DefaultCommandConfiguration provides baseline configuration values for the list command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Filter: string(DefaultFilter),
		Format: string(DefaultFormat),
	}
}

// Sanitize trims and lowercases configuration values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Filter = strings.ToLower(strings.TrimSpace(configuration.Filter))
	sanitized.Format = strings.ToLower(strings.TrimSpace(configuration.Format))
	return sanitized
}
