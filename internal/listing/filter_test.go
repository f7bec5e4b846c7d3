package listing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gone/internal/listing"
)

func TestParseFilter(testInstance *testing.T) {
	testCases := []struct {
		name           string
		value          string
		expectedFilter listing.Filter
		expectError    bool
	}{
		{name: "empty_defaults_to_gone", value: "", expectedFilter: listing.FilterGone},
		{name: "diverged", value: "diverged", expectedFilter: listing.FilterDiverged},
		{name: "case_insensitive", value: "  TRACKING ", expectedFilter: listing.FilterTracking},
		{name: "local", value: "local", expectedFilter: listing.FilterLocal},
		{name: "all", value: "all", expectedFilter: listing.FilterAll},
		{name: "unknown", value: "stale", expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			filter, parseError := listing.ParseFilter(testCase.value)
			if testCase.expectError {
				require.ErrorIs(testInstance, parseError, listing.ErrUnknownFilter)
				require.Contains(testInstance, parseError.Error(), testCase.value)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedFilter, filter)
		})
	}
}

func TestParseFormat(testInstance *testing.T) {
	format, parseError := listing.ParseFormat("")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, listing.FormatText, format)

	format, parseError = listing.ParseFormat("YAML")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, listing.FormatYAML, format)

	_, parseError = listing.ParseFormat("json")
	require.ErrorIs(testInstance, parseError, listing.ErrUnknownFormat)
}
