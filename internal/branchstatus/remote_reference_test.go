package branchstatus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gone/internal/branchstatus"
)

func TestParseRemoteReference(testInstance *testing.T) {
	testCases := []struct {
		name              string
		token             string
		expectedReference branchstatus.RemoteReference
		expectedFound     bool
	}{
		{
			name:              "synchronized",
			token:             "[origin/branch2]",
			expectedReference: branchstatus.RemoteReference{RemoteName: "origin", BranchName: "branch2", Status: branchstatus.RemoteStatusSynchronized},
			expectedFound:     true,
		},
		{
			name:              "ahead",
			token:             "[origin/main: ahead 1]",
			expectedReference: branchstatus.RemoteReference{RemoteName: "origin", BranchName: "main", Status: branchstatus.RemoteStatusDiverged},
			expectedFound:     true,
		},
		{
			name:              "behind",
			token:             "[upstream/main: behind 4]",
			expectedReference: branchstatus.RemoteReference{RemoteName: "upstream", BranchName: "main", Status: branchstatus.RemoteStatusDiverged},
			expectedFound:     true,
		},
		{
			name:              "ahead_and_behind",
			token:             "[origin/main: ahead 1, behind 2]",
			expectedReference: branchstatus.RemoteReference{RemoteName: "origin", BranchName: "main", Status: branchstatus.RemoteStatusDiverged},
			expectedFound:     true,
		},
		{
			name:              "gone",
			token:             "[origin/main: gone]",
			expectedReference: branchstatus.RemoteReference{RemoteName: "origin", BranchName: "main", Status: branchstatus.RemoteStatusGone},
			expectedFound:     true,
		},
		{
			name:              "nested_branch_path",
			token:             "[origin/feature/login: gone]",
			expectedReference: branchstatus.RemoteReference{RemoteName: "origin", BranchName: "feature/login", Status: branchstatus.RemoteStatusGone},
			expectedFound:     true,
		},
		{name: "missing_opening_bracket", token: "origin/branch2]"},
		{name: "missing_closing_bracket", token: "[origin/branch2"},
		{name: "missing_slash", token: "originbranch2]"},
		{name: "bracketed_without_slash", token: "[WIP]"},
		{name: "slash_only_in_annotation", token: "[origin: ahead 1/2]"},
		{name: "empty_brackets", token: "[]"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			reference, found := branchstatus.ParseRemoteReference(testCase.token)
			require.Equal(testInstance, testCase.expectedFound, found)
			require.Equal(testInstance, testCase.expectedReference, reference)
		})
	}
}

func TestRemoteStatusString(testInstance *testing.T) {
	require.Equal(testInstance, "synchronized", branchstatus.RemoteStatusSynchronized.String())
	require.Equal(testInstance, "diverged", branchstatus.RemoteStatusDiverged.String())
	require.Equal(testInstance, "gone", branchstatus.RemoteStatusGone.String())
}
