// Package flags holds helpers for enumerated command-line flags.
package flags

import (
	"fmt"
	"strings"
)

const (
	choicePlaceholderPrefix  = "<"
	choicePlaceholderSuffix  = ">"
	choiceSeparatorLiteral   = "|"
	choiceUsageEmptyTemplate = "`%s`"
	choiceUsageFullTemplate  = "`%s` %s"
)

// FormatChoiceUsage builds a usage string listing the choices with the default
// one upper-cased, for example "`<GONE|diverged>` Branches to list."
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	normalizedDefault := normalizeChoice(defaultChoice)
	displayedChoices := make([]string, 0, len(choices))
	for _, choice := range uniqueChoices(choices) {
		if normalizeChoice(choice) == normalizedDefault {
			choice = strings.ToUpper(choice)
		}
		displayedChoices = append(displayedChoices, choice)
	}

	placeholder := choicePlaceholderPrefix + strings.Join(displayedChoices, choiceSeparatorLiteral) + choicePlaceholderSuffix
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

// MatchChoice returns the choice equal to value ignoring case and surrounding
// whitespace.
func MatchChoice(value string, choices []string) (string, bool) {
	normalizedValue := normalizeChoice(value)
	for _, choice := range choices {
		if normalizeChoice(choice) == normalizedValue && len(normalizedValue) > 0 {
			return strings.TrimSpace(choice), true
		}
	}
	return "", false
}

func uniqueChoices(choices []string) []string {
	unique := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		normalized := normalizeChoice(choice)
		if len(normalized) == 0 {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		unique = append(unique, strings.TrimSpace(choice))
	}
	return unique
}

func normalizeChoice(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
