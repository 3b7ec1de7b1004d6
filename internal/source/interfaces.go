package source

import (
	"context"

	"github.com/herald-sh/herald/internal/release"
)

// Source supplies the tag list and commit diffs for one repository. It is
// the boundary between the resolution/classification core and the hosting
// system: pagination and ordering guarantees live here, not in the core.
type Source interface {
	// ListTags returns the repository's tags, newest first.
	ListTags(ctx context.Context) ([]release.TagRef, error)

	// DiffCommits returns commits reachable from head but not from base, in
	// the hosting system's native order.
	DiffCommits(ctx context.Context, base, head string) ([]Commit, error)
}

// Compile-time interface conformance checks.
var (
	_ Source = (*LocalSource)(nil)
	_ Source = (*HubSource)(nil)
	_ Source = (*MockSource)(nil)
)
