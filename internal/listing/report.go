package listing

import "github.com/temirov/gone/internal/branchstatus"

// Entry is one branch shown in a section.
type Entry struct {
	Branch  branchstatus.Branch
	Current bool
}

// Section groups the branches matching one classification.
type Section struct {
	Title   string
	Entries []Entry
}

// Report is the complete listing for a repository.
type Report struct {
	RepositoryPath string
	Head           branchstatus.Head
	Sections       []Section
}

// BuildReport selects the sections for the filter. The head branch leads each
// section it matches; a detached head appears in none.
func BuildReport(repositoryPath string, repository branchstatus.Repository, filter Filter) Report {
	headBranch, onBranch := repository.Head().Branch()
	branches := repository.Branches()

	selectors := filter.selectors()
	sections := make([]Section, 0, len(selectors))
	for _, selector := range selectors {
		entries := []Entry{}
		if onBranch && selector.matches(headBranch) {
			entries = append(entries, Entry{Branch: headBranch, Current: true})
		}
		for _, branch := range branches {
			if selector.matches(branch) {
				entries = append(entries, Entry{Branch: branch})
			}
		}
		sections = append(sections, Section{Title: selector.title, Entries: entries})
	}

	return Report{RepositoryPath: repositoryPath, Head: repository.Head(), Sections: sections}
}
