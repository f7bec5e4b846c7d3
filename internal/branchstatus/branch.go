package branchstatus

import "fmt"

const (
	trackingBranchDisplayTemplateConstant = "%s => %s"
	branchKindLocalLabelConstant          = "local"
	branchKindTrackingLabelConstant       = "tracking"
	detachedHeadDisplayConstant           = "Detached"
)

// BranchKind distinguishes plain local branches from branches that follow an upstream.
type BranchKind int

const (
	// BranchKindLocal marks a branch without an upstream.
	BranchKindLocal BranchKind = iota
	// BranchKindTracking marks a branch configured to follow a remote branch.
	BranchKindTracking
)

// String returns the lowercase kind label.
func (kind BranchKind) String() string {
	if kind == BranchKindTracking {
		return branchKindTrackingLabelConstant
	}
	return branchKindLocalLabelConstant
}

// Branch is a comparable value describing one local branch. Remote is the zero
// value for local branches.
type Branch struct {
	Kind   BranchKind
	Name   string
	Remote RemoteReference
}

// NewLocalBranch constructs a branch without an upstream.
func NewLocalBranch(name string) Branch {
	return Branch{Kind: BranchKindLocal, Name: name}
}

// NewTrackingBranch constructs a branch that follows the given remote reference.
func NewTrackingBranch(name string, remote RemoteReference) Branch {
	return Branch{Kind: BranchKindTracking, Name: name, Remote: remote}
}

// IsTracking reports whether the branch follows an upstream.
func (branch Branch) IsTracking() bool {
	return branch.Kind == BranchKindTracking
}

// HasStatus reports whether the branch tracks an upstream with the given status.
func (branch Branch) HasStatus(status RemoteStatus) bool {
	return branch.IsTracking() && branch.Remote.Status == status
}

// String renders local branches as their name and tracking branches as
// "name => remote/branch".
func (branch Branch) String() string {
	if !branch.IsTracking() {
		return branch.Name
	}
	return fmt.Sprintf(trackingBranchDisplayTemplateConstant, branch.Name, branch.Remote.String())
}

// Head is the checked out reference of a repository. The zero value is a
// detached head.
type Head struct {
	onBranch bool
	branch   Branch
}

// NewDetachedHead returns a head that points at a commit rather than a branch.
func NewDetachedHead() Head {
	return Head{}
}

// NewBranchHead returns a head checked out on the given branch.
func NewBranchHead(branch Branch) Head {
	return Head{onBranch: true, branch: branch}
}

// IsDetached reports whether the head is not on a named branch.
func (head Head) IsDetached() bool {
	return !head.onBranch
}

// Branch returns the checked out branch when the head is on one.
func (head Head) Branch() (Branch, bool) {
	return head.branch, head.onBranch
}

func (head Head) String() string {
	if !head.onBranch {
		return detachedHeadDisplayConstant
	}
	return head.branch.String()
}
