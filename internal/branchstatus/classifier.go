package branchstatus

import "strings"

const (
	currentBranchMarkerConstant        = "*"
	worktreeBranchMarkerConstant       = "+"
	detachedHeadPrefixConstant         = "(HEAD"
	noBranchOpeningTokenConstant       = "(no"
	noBranchFollowingPrefixConstant    = "branch"
	worktreePathOpeningPrefixConstant  = "("
	worktreePathClosingSuffixConstant  = ")"
	minimumBranchTokenCountConstant    = 3
	branchNameTokenIndexConstant       = 0
	remoteReferenceTokenOffsetConstant = 2
)

// ClassifiedLine is the outcome of classifying one branch listing line.
// Branch is meaningful only when Detached is false.
type ClassifiedLine struct {
	Branch   Branch
	Detached bool
	Current  bool
}

// ClassifyLine decides whether the line describes the detached head, a local
// branch, or a tracking branch. Lines with too few tokens yield *LineParseError.
func ClassifyLine(line Line) (ClassifiedLine, error) {
	tokens := line.tokens
	isCurrent := false
	isCheckedOutElsewhere := false

	if len(tokens) > 0 {
		switch tokens[0] {
		case currentBranchMarkerConstant:
			isCurrent = true
			tokens = tokens[1:]
		case worktreeBranchMarkerConstant:
			isCheckedOutElsewhere = true
			tokens = tokens[1:]
		}
	}

	if len(tokens) == 0 {
		return ClassifiedLine{}, &LineParseError{Line: line.raw}
	}

	if isDetachedHead(tokens) {
		return ClassifiedLine{Detached: true, Current: isCurrent}, nil
	}

	if len(tokens) < minimumBranchTokenCountConstant {
		return ClassifiedLine{}, &LineParseError{Line: line.raw}
	}

	branchName := tokens[branchNameTokenIndexConstant]
	remainingTokens := tokens[remoteReferenceTokenOffsetConstant:]
	if isCheckedOutElsewhere {
		var skipped bool
		remainingTokens, skipped = skipWorktreePath(remainingTokens)
		if !skipped || len(remainingTokens) == 0 {
			return ClassifiedLine{}, &LineParseError{Line: line.raw}
		}
	}

	remoteReference, isRemoteReference := ParseRemoteReference(remainingTokens[0])
	if isRemoteReference {
		return ClassifiedLine{Branch: NewTrackingBranch(branchName, remoteReference), Current: isCurrent}, nil
	}
	return ClassifiedLine{Branch: NewLocalBranch(branchName), Current: isCurrent}, nil
}

// isDetachedHead recognizes "(HEAD detached at …)" and the "(no branch, …)"
// form git prints during a rebase or bisect.
func isDetachedHead(tokens []string) bool {
	if strings.HasPrefix(tokens[0], detachedHeadPrefixConstant) {
		return true
	}
	return tokens[0] == noBranchOpeningTokenConstant && len(tokens) > 1 && strings.HasPrefix(tokens[1], noBranchFollowingPrefixConstant)
}

// skipWorktreePath drops the parenthesized worktree path that follows the
// commit of a branch checked out in another worktree.
func skipWorktreePath(tokens []string) ([]string, bool) {
	if len(tokens) == 0 || !strings.HasPrefix(tokens[0], worktreePathOpeningPrefixConstant) {
		return tokens, true
	}
	for index, token := range tokens {
		if strings.HasSuffix(token, worktreePathClosingSuffixConstant) {
			return tokens[index+1:], true
		}
	}
	return nil, false
}
