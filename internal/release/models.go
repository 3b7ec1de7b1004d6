package release

// TagRef represents one tag in a repository, as returned by the tag source.
type TagRef struct {
	Name string
}

// Kind identifies which resolution strategy produced a Window.
type Kind string

const (
	KindSequential Kind = "sequential"
	KindSemver     Kind = "semver"
	KindHotfix     Kind = "hotfix"
)

// Window is the commit range bounding a release: commits reachable from
// Head but not from Base. Base is the exclusive lower bound.
type Window struct {
	Base string
	Head string
	Kind Kind

	// BaseReleaseTag and PreviousHotfixTag are recorded by the hotfix
	// strategy for downstream reporting. PreviousHotfixTag is empty when the
	// base release tag itself is the lower bound.
	BaseReleaseTag    string
	PreviousHotfixTag string
}
