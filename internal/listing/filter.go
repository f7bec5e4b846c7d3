package listing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/gone/internal/branchstatus"
	"github.com/temirov/gone/internal/utils/flags"
)

const (
	unknownFilterMessageConstant       = "unknown branch filter"
	unknownFilterErrorTemplateConstant = "%w %q"
	localSectionTitleConstant          = "Local branches"
	trackingSectionTitleConstant       = "Tracking branches"
	goneSectionTitleConstant           = "Gone branches"
	divergedSectionTitleConstant       = "Diverged branches"
)

// Filter selects which branches a listing shows.
type Filter string

const (
	// FilterGone shows tracking branches whose upstream was deleted.
	FilterGone Filter = "gone"
	// FilterDiverged shows tracking branches that are ahead of or behind their upstream.
	FilterDiverged Filter = "diverged"
	// FilterTracking shows every branch with an upstream.
	FilterTracking Filter = "tracking"
	// FilterLocal shows branches without an upstream.
	FilterLocal Filter = "local"
	// FilterAll shows local branches followed by tracking branches.
	FilterAll Filter = "all"
)

// DefaultFilter is applied when no filter is configured.
const DefaultFilter = FilterGone

// ErrUnknownFilter indicates an unsupported filter value.
var ErrUnknownFilter = errors.New(unknownFilterMessageConstant)

// FilterChoices lists the accepted filter values.
func FilterChoices() []string {
	return []string{string(FilterGone), string(FilterDiverged), string(FilterTracking), string(FilterLocal), string(FilterAll)}
}

// ParseFilter converts a case-insensitive value into a Filter. An empty value yields DefaultFilter.
func ParseFilter(value string) (Filter, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if len(normalized) == 0 {
		return DefaultFilter, nil
	}
	if choice, found := flags.MatchChoice(normalized, FilterChoices()); found {
		return Filter(choice), nil
	}
	return "", fmt.Errorf(unknownFilterErrorTemplateConstant, ErrUnknownFilter, value)
}

type sectionSelector struct {
	title   string
	matches func(branch branchstatus.Branch) bool
}

func isLocalBranch(branch branchstatus.Branch) bool {
	return !branch.IsTracking()
}

func isTrackingBranch(branch branchstatus.Branch) bool {
	return branch.IsTracking()
}

func isGoneBranch(branch branchstatus.Branch) bool {
	return branch.HasStatus(branchstatus.RemoteStatusGone)
}

func isDivergedBranch(branch branchstatus.Branch) bool {
	return branch.HasStatus(branchstatus.RemoteStatusDiverged)
}

func (filter Filter) selectors() []sectionSelector {
	localSelector := sectionSelector{title: localSectionTitleConstant, matches: isLocalBranch}
	trackingSelector := sectionSelector{title: trackingSectionTitleConstant, matches: isTrackingBranch}

	switch filter {
	case FilterAll:
		return []sectionSelector{localSelector, trackingSelector}
	case FilterLocal:
		return []sectionSelector{localSelector}
	case FilterTracking:
		return []sectionSelector{trackingSelector}
	case FilterDiverged:
		return []sectionSelector{{title: divergedSectionTitleConstant, matches: isDivergedBranch}}
	default:
		return []sectionSelector{{title: goneSectionTitleConstant, matches: isGoneBranch}}
	}
}
