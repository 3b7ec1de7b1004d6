package release

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// hotfixNumber parses the integer suffix after the "-hotfix" marker. A bare
// marker with no digits means hotfix #1.
func hotfixNumber(s string) int {
	idx := strings.Index(s, hotfixMarker)
	if idx < 0 {
		return 1
	}
	n, err := strconv.Atoi(s[idx+len(hotfixMarker):])
	if err != nil {
		return 1
	}
	return n
}

// resolveHotfix resolves a window inside a hotfix chain. The identifier
// decomposes into the base version before the "-hotfix" marker and the
// hotfix number after it. The head is the identifier's own tag name: this
// strategy runs before the hotfix tag is created, so the head may not exist
// in the tag list yet.
func (r *Resolver) resolveHotfix(tags []TagRef, identifier string) (*Window, error) {
	idx := strings.Index(identifier, hotfixMarker)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q has no %q marker", ErrInvalidVersionFormat, identifier, hotfixMarker)
	}
	baseVersion := identifier[:idx]
	number := hotfixNumber(identifier)

	baseTag := baseVersion + releaseSuffix
	found := false
	for _, tag := range tags {
		if tag.Name == baseTag {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrBaseReleaseNotFound, baseTag)
	}

	type link struct {
		name   string
		number int
	}
	prefix := baseVersion + hotfixMarker
	var chain []link
	for _, tag := range tags {
		if !strings.HasPrefix(tag.Name, prefix) {
			continue
		}
		chain = append(chain, link{name: tag.Name, number: hotfixNumber(tag.Name)})
	}
	sort.SliceStable(chain, func(i, j int) bool { return chain[i].number > chain[j].number })

	window := &Window{
		Base:           baseTag,
		Head:           identifier,
		Kind:           KindHotfix,
		BaseReleaseTag: baseTag,
	}
	for _, l := range chain {
		if l.number < number {
			window.Base = l.name
			window.PreviousHotfixTag = l.name
			break
		}
	}
	return window, nil
}
