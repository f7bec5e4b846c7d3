package cleanup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/gone/internal/utils/flags"
)

const (
	unknownModeMessageConstant       = "unknown cleanup mode"
	unknownModeErrorTemplateConstant = "%w %q"
)

// Mode controls whether deletions are confirmed one by one.
type Mode string

const (
	// ModeStep asks for confirmation before each deletion.
	ModeStep Mode = "step"
	// ModeAutomatic deletes without asking.
	ModeAutomatic Mode = "automatic"
)

// DefaultMode is applied when no mode is configured.
const DefaultMode = ModeStep

// ErrUnknownMode indicates an unsupported cleanup mode.
var ErrUnknownMode = errors.New(unknownModeMessageConstant)

// ModeChoices lists the accepted mode values.
func ModeChoices() []string {
	return []string{string(ModeStep), string(ModeAutomatic)}
}

// ParseMode converts a case-insensitive value into a Mode. An empty value yields DefaultMode.
func ParseMode(value string) (Mode, error) {
	if len(strings.TrimSpace(value)) == 0 {
		return DefaultMode, nil
	}
	if choice, found := flags.MatchChoice(value, ModeChoices()); found {
		return Mode(choice), nil
	}
	return "", fmt.Errorf(unknownModeErrorTemplateConstant, ErrUnknownMode, value)
}
