package branchstatus

import "strings"

const (
	remoteReferenceOpeningConstant         = "["
	remoteReferenceClosingConstant         = "]"
	remoteReferenceStatusSeparatorConstant = ":"
	remoteReferenceNameSeparatorConstant   = "/"
	remoteStatusAheadMarkerConstant        = "ahead"
	remoteStatusBehindMarkerConstant       = "behind"
	remoteStatusGoneMarkerConstant         = "gone"
	remoteStatusSynchronizedLabelConstant  = "synchronized"
	remoteStatusDivergedLabelConstant      = "diverged"
	remoteStatusGoneLabelConstant          = "gone"
)

// RemoteStatus describes how a tracking branch relates to its upstream.
type RemoteStatus int

const (
	// RemoteStatusSynchronized marks an upstream without a divergence annotation.
	RemoteStatusSynchronized RemoteStatus = iota
	// RemoteStatusDiverged marks an upstream that is ahead of or behind the local branch.
	RemoteStatusDiverged
	// RemoteStatusGone marks an upstream that no longer exists on the remote.
	RemoteStatusGone
)

// String returns the lowercase status label.
func (status RemoteStatus) String() string {
	switch status {
	case RemoteStatusDiverged:
		return remoteStatusDivergedLabelConstant
	case RemoteStatusGone:
		return remoteStatusGoneLabelConstant
	default:
		return remoteStatusSynchronizedLabelConstant
	}
}

// RemoteReference identifies the upstream of a tracking branch.
type RemoteReference struct {
	RemoteName string
	BranchName string
	Status     RemoteStatus
}

// String renders the reference as remote/branch.
func (reference RemoteReference) String() string {
	return reference.RemoteName + remoteReferenceNameSeparatorConstant + reference.BranchName
}

// ParseRemoteReference interprets a bracketed token such as [origin/main: ahead 1].
// The boolean is false when the token is not a remote reference.
func ParseRemoteReference(token string) (RemoteReference, bool) {
	if !strings.HasPrefix(token, remoteReferenceOpeningConstant) || !strings.HasSuffix(token, remoteReferenceClosingConstant) {
		return RemoteReference{}, false
	}
	interior := token[1 : len(token)-1]

	namePair, statusAnnotation, _ := strings.Cut(interior, remoteReferenceStatusSeparatorConstant)
	remoteName, branchName, found := strings.Cut(namePair, remoteReferenceNameSeparatorConstant)
	if !found {
		return RemoteReference{}, false
	}

	return RemoteReference{
		RemoteName: remoteName,
		BranchName: branchName,
		Status:     classifyRemoteStatus(statusAnnotation),
	}, true
}

func classifyRemoteStatus(statusAnnotation string) RemoteStatus {
	switch {
	case strings.Contains(statusAnnotation, remoteStatusAheadMarkerConstant), strings.Contains(statusAnnotation, remoteStatusBehindMarkerConstant):
		return RemoteStatusDiverged
	case strings.Contains(statusAnnotation, remoteStatusGoneMarkerConstant):
		return RemoteStatusGone
	default:
		return RemoteStatusSynchronized
	}
}
