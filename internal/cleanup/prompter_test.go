package cleanup_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gone/internal/cleanup"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("terminal closed")
}

func TestIOConfirmationPrompterConfirm(testInstance *testing.T) {
	testCases := []struct {
		name           string
		input          string
		expectedResult bool
	}{
		{name: "short_yes", input: "y\n", expectedResult: true},
		{name: "long_yes_mixed_case", input: "  YeS \n", expectedResult: true},
		{name: "no", input: "n\n", expectedResult: false},
		{name: "empty_line", input: "\n", expectedResult: false},
		{name: "end_of_input", input: "", expectedResult: false},
		{name: "yes_without_newline", input: "yes", expectedResult: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			prompter := cleanup.NewIOConfirmationPrompter(strings.NewReader(testCase.input), outputBuffer)

			confirmed, confirmError := prompter.Confirm("Delete? ")
			require.NoError(testInstance, confirmError)
			require.Equal(testInstance, testCase.expectedResult, confirmed)
			require.Equal(testInstance, "Delete? ", outputBuffer.String())
		})
	}
}

func TestIOConfirmationPrompterPropagatesReadErrors(testInstance *testing.T) {
	prompter := cleanup.NewIOConfirmationPrompter(failingReader{}, nil)
	confirmed, confirmError := prompter.Confirm("Delete? ")
	require.Error(testInstance, confirmError)
	require.False(testInstance, confirmed)
}
