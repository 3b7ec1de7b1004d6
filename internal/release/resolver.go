package release

import (
	"fmt"
	"regexp"
	"strings"
)

// Strategy selects how a release identifier is resolved to a commit window.
type Strategy int

const (
	// StrategyAuto picks a strategy from the identifier's shape.
	StrategyAuto Strategy = iota
	// StrategySequential scans the tag list in source order.
	StrategySequential
	// StrategySemver compares embedded version triples component-wise.
	StrategySemver
	// StrategyHotfix walks a numbered hotfix chain on top of a base release.
	StrategyHotfix
)

// String returns a string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategySequential:
		return "sequential"
	case StrategySemver:
		return "semver"
	case StrategyHotfix:
		return "hotfix"
	default:
		return "auto"
	}
}

// DefaultTagFormat is the template used to render release identifiers into
// tag names when no format is configured.
const DefaultTagFormat = "{id}" + releaseSuffix

const (
	idPlaceholder = "{id}"
	releaseSuffix = "-release"
	hotfixMarker  = "-hotfix"
)

// versionTriple extracts a MAJOR.MINOR.PATCH triple with an optional v prefix.
var versionTriple = regexp.MustCompile(`v?(\d+)\.(\d+)\.(\d+)`)

// Resolver locates the (base, head] commit window for a release identifier
// within a repository's tag set. It holds no implicit state: the tag format
// is fixed at construction and the tag list arrives per call.
type Resolver struct {
	tagFormat string
}

// NewResolver creates a resolver rendering identifiers through tagFormat,
// a template with a single {id} placeholder. Empty means DefaultTagFormat.
func NewResolver(tagFormat string) *Resolver {
	if tagFormat == "" {
		tagFormat = DefaultTagFormat
	}
	return &Resolver{tagFormat: tagFormat}
}

// TagFor renders an identifier through the tag format template.
func (r *Resolver) TagFor(identifier string) string {
	return strings.ReplaceAll(r.tagFormat, idPlaceholder, identifier)
}

// Resolve determines the commit window for identifier. With StrategyAuto the
// identifier's shape picks the strategy: a "-hotfix" marker selects the
// hotfix chain, an embedded version triple selects semantic-version
// comparison, anything else the sequential tag scan. Shape sniffing is an
// ergonomic default only; callers that know their convention should pass an
// explicit strategy.
func (r *Resolver) Resolve(tags []TagRef, identifier string, strategy Strategy) (*Window, error) {
	switch strategy {
	case StrategySequential:
		return r.resolveSequential(tags, identifier)
	case StrategySemver:
		return r.resolveSemver(tags, identifier)
	case StrategyHotfix:
		return r.resolveHotfix(tags, identifier)
	case StrategyAuto:
		return r.Resolve(tags, identifier, DetectStrategy(identifier))
	default:
		return nil, fmt.Errorf("unknown resolution strategy %d", strategy)
	}
}

// DetectStrategy picks a strategy from the identifier's shape.
func DetectStrategy(identifier string) Strategy {
	if strings.Contains(identifier, hotfixMarker) {
		return StrategyHotfix
	}
	if versionTriple.MatchString(identifier) {
		return StrategySemver
	}
	return StrategySequential
}
