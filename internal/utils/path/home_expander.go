// Package pathutils resolves user-supplied filesystem paths.
package pathutils

import (
	"os"
	"path/filepath"
	"strings"
)

const homeShortcutConstant = "~"

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander replaces a leading ~ with the user's home directory.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return HomeExpander{homeDirectoryProvider: provider}
}

// Expand resolves "~" and "~/…" against the home directory. Other paths,
// including "~user", are returned unchanged, as is every path when the home
// directory cannot be determined.
func (expander HomeExpander) Expand(candidatePath string) string {
	if candidatePath != homeShortcutConstant && !strings.HasPrefix(candidatePath, homeShortcutConstant+"/") && !strings.HasPrefix(candidatePath, homeShortcutConstant+string(os.PathSeparator)) {
		return candidatePath
	}

	provider := expander.homeDirectoryProvider
	if provider == nil {
		provider = os.UserHomeDir
	}
	homeDirectory, homeDirectoryError := provider()
	if homeDirectoryError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}

	return filepath.Join(homeDirectory, candidatePath[len(homeShortcutConstant):])
}
