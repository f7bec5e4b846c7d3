package branchstatus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gone/internal/branchstatus"
)

func TestTokenizeLine(testInstance *testing.T) {
	testCases := []struct {
		name           string
		rawLine        string
		expectedTokens []string
	}{
		{
			name:           "current_tracking_branch",
			rawLine:        "* main                73b4084 [origin/main: ahead 1, behind 2] Merge pull request",
			expectedTokens: []string{"*", "main", "73b4084", "[origin/main: ahead 1, behind 2]", "Merge", "pull", "request"},
		},
		{
			name:           "detached_head",
			rawLine:        "* (HEAD detached at 1f02cc2) 1f02cc2 Initial commit",
			expectedTokens: []string{"*", "(HEAD", "detached", "at", "1f02cc2)", "1f02cc2", "Initial", "commit"},
		},
		{
			name:           "unmatched_opening_bracket",
			rawLine:        "  feature 1234567 [origin/feature broken",
			expectedTokens: []string{"feature", "1234567", "[origin/feature", "broken"},
		},
		{
			name:           "nested_brackets_end_at_first_closing",
			rawLine:        "[a [b] c]",
			expectedTokens: []string{"[a [b]", "c]"},
		},
		{
			name:           "tabs_are_whitespace",
			rawLine:        "local\t73b4084\tmessage",
			expectedTokens: []string{"local", "73b4084", "message"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			line := branchstatus.TokenizeLine(testCase.rawLine)
			require.Equal(testInstance, testCase.expectedTokens, line.Tokens())
			require.Equal(testInstance, testCase.rawLine, line.Raw())
			require.False(testInstance, line.IsBlank())
		})
	}
}

func TestTokenizeLineBlankInput(testInstance *testing.T) {
	for _, rawLine := range []string{"", "   ", "\t \t"} {
		line := branchstatus.TokenizeLine(rawLine)
		require.True(testInstance, line.IsBlank())
		require.Empty(testInstance, line.Tokens())
	}
}

func TestTokenizeLineIsDeterministic(testInstance *testing.T) {
	const rawLine = "* main 73b4084 [origin/main: gone] msg"
	require.Equal(testInstance, branchstatus.TokenizeLine(rawLine), branchstatus.TokenizeLine(rawLine))
}
