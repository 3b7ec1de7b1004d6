package source

import (
	"context"

	"github.com/herald-sh/herald/internal/release"
)

// MockSource is a test double for Source. It serves predefined tags and
// commits without a repository behind it.
type MockSource struct {
	Tags    []release.TagRef
	Commits []Commit
	Err     error
}

// ListTags returns the predefined tags or error.
func (m *MockSource) ListTags(_ context.Context) ([]release.TagRef, error) {
	return m.Tags, m.Err
}

// DiffCommits returns the predefined commits or error.
func (m *MockSource) DiffCommits(_ context.Context, _, _ string) ([]Commit, error) {
	return m.Commits, m.Err
}
