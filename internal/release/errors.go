package release

import "errors"

// Resolution failures are unrecoverable for the current invocation: callers
// abort release-notes generation and surface the specific kind together with
// the tag or identifier that was attempted. Match with errors.Is.
var (
	// ErrTagNotFound means the expected current release tag is absent from
	// the supplied tag list.
	ErrTagNotFound = errors.New("release tag not found")

	// ErrInvalidVersionFormat means the identifier carries no parseable
	// MAJOR.MINOR.PATCH triple where one is required.
	ErrInvalidVersionFormat = errors.New("invalid version format")

	// ErrNoPreviousRelease means no qualifying earlier release tag exists
	// under the active strategy.
	ErrNoPreviousRelease = errors.New("no previous release tag")

	// ErrBaseReleaseNotFound means the hotfix strategy's required base
	// release tag is missing.
	ErrBaseReleaseNotFound = errors.New("base release tag not found")
)
