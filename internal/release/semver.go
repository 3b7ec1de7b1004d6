package release

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// parseTriple extracts the version triple embedded in s. The triple is the
// only part compared; prerelease or build suffixes in the tag name are not
// considered.
func parseTriple(s string) (*semver.Version, bool) {
	m := versionTriple.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	major, _ := strconv.ParseUint(m[1], 10, 64)
	minor, _ := strconv.ParseUint(m[2], 10, 64)
	patch, _ := strconv.ParseUint(m[3], 10, 64)
	return semver.New(major, minor, patch, "", ""), true
}

// resolveSemver selects as base the "-release" tag with the greatest version
// triple strictly below the identifier's own triple. Comparison is
// per-component numeric, major first.
func (r *Resolver) resolveSemver(tags []TagRef, identifier string) (*Window, error) {
	current, ok := parseTriple(identifier)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersionFormat, identifier)
	}

	type candidate struct {
		name    string
		version *semver.Version
	}
	var candidates []candidate
	for _, tag := range tags {
		if !strings.HasSuffix(tag.Name, releaseSuffix) {
			continue
		}
		v, ok := parseTriple(tag.Name)
		if !ok || !v.LessThan(current) {
			continue
		}
		candidates = append(candidates, candidate{name: tag.Name, version: v})
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w below %s", ErrNoPreviousRelease, current)
	}

	// Stable sort keeps the first-seen tag ahead on identical triples.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].version.GreaterThan(candidates[j].version)
	})

	return &Window{
		Base: candidates[0].name,
		Head: r.TagFor(identifier),
		Kind: KindSemver,
	}, nil
}
