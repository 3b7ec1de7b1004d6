package source

import "github.com/bmatcuk/doublestar/v4"

// PathFilter drops commits whose touched files all fall outside the
// configured globs. Release notes for a sub-tree of a repository are the
// usual reason to configure one.
type PathFilter struct {
	include []string
	exclude []string
}

// NewPathFilter creates a filter from include/exclude glob patterns.
func NewPathFilter(include, exclude []string) *PathFilter {
	return &PathFilter{include: include, exclude: exclude}
}

// Apply returns the commits that pass the filter, preserving order. Commits
// with no recorded paths always pass: sources that cannot report paths must
// not lose commits to filtering.
func (f *PathFilter) Apply(commits []Commit) []Commit {
	if len(f.include) == 0 && len(f.exclude) == 0 {
		return commits
	}
	kept := make([]Commit, 0, len(commits))
	for _, commit := range commits {
		if f.Keep(commit) {
			kept = append(kept, commit)
		}
	}
	return kept
}

// Keep reports whether a commit should be kept. A commit stays if any of its
// paths matches the filters.
func (f *PathFilter) Keep(commit Commit) bool {
	if len(commit.Paths) == 0 {
		return true
	}
	for _, path := range commit.Paths {
		if f.matchesFilters(path) {
			return true
		}
	}
	return false
}

// matchesFilters checks if a path matches the include/exclude filters.
// Exclude patterns take precedence.
func (f *PathFilter) matchesFilters(path string) bool {
	for _, pattern := range f.exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}
	for _, pattern := range f.include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}
	return false
}
