package branchstatus

import (
	"sort"
	"strings"
)

const (
	lineSeparatorConstant        = "\n"
	carriageReturnSuffixConstant = "\r"
)

// Repository is the parsed branch state of a git repository. The branch set
// holds every branch except the one carried by the head.
type Repository struct {
	head     Head
	branches map[Branch]struct{}
}

// NewRepository builds a Repository from a head and the remaining branches.
// A branch equal to the head branch is not stored in the set.
func NewRepository(head Head, branches ...Branch) Repository {
	branchSet := make(map[Branch]struct{}, len(branches))
	for _, branch := range branches {
		branchSet[branch] = struct{}{}
	}
	if headBranch, onBranch := head.Branch(); onBranch {
		delete(branchSet, headBranch)
	}
	return Repository{head: head, branches: branchSet}
}

// ParseRepository parses the complete output of `git branch -vv`. Blank lines
// are ignored. The first malformed line aborts parsing. When several lines are
// marked current the last one becomes the head and earlier ones join the
// branch set.
func ParseRepository(output string) (Repository, error) {
	branchSet := make(map[Branch]struct{})
	var head Head
	headFound := false

	for _, rawLine := range strings.Split(output, lineSeparatorConstant) {
		rawLine = strings.TrimSuffix(rawLine, carriageReturnSuffixConstant)
		line := TokenizeLine(rawLine)
		if line.IsBlank() {
			continue
		}

		classified, classificationError := ClassifyLine(line)
		if classificationError != nil {
			return Repository{}, classificationError
		}

		if !classified.Current {
			if classified.Detached {
				return Repository{}, &LineParseError{Line: rawLine}
			}
			branchSet[classified.Branch] = struct{}{}
			continue
		}

		if previousBranch, onBranch := head.Branch(); headFound && onBranch {
			branchSet[previousBranch] = struct{}{}
		}
		headFound = true
		if classified.Detached {
			head = NewDetachedHead()
		} else {
			head = NewBranchHead(classified.Branch)
		}
	}

	if !headFound {
		return Repository{}, ErrMissingHead
	}

	if headBranch, onBranch := head.Branch(); onBranch {
		delete(branchSet, headBranch)
	}
	return Repository{head: head, branches: branchSet}, nil
}

// Head returns the checked out reference.
func (repository Repository) Head() Head {
	return repository.head
}

// Branches returns the non-head branches sorted by name.
func (repository Repository) Branches() []Branch {
	branches := make([]Branch, 0, len(repository.branches))
	for branch := range repository.branches {
		branches = append(branches, branch)
	}
	sort.SliceStable(branches, func(first int, second int) bool {
		if branches[first].Name != branches[second].Name {
			return branches[first].Name < branches[second].Name
		}
		if branches[first].String() != branches[second].String() {
			return branches[first].String() < branches[second].String()
		}
		return branches[first].Remote.Status < branches[second].Remote.Status
	})
	return branches
}

// Contains reports whether the branch is in the non-head set.
func (repository Repository) Contains(branch Branch) bool {
	_, found := repository.branches[branch]
	return found
}

// Len returns the number of non-head branches.
func (repository Repository) Len() int {
	return len(repository.branches)
}
