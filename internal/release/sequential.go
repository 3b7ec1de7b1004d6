package release

import (
	"fmt"
	"strings"
)

// resolveSequential walks the tag list exactly as returned by the source,
// which is assumed to be reverse-chronological (newest first). The first tag
// after the current release tag whose name ends in "-release" is the base.
// Tag order, not version order, is authoritative here.
func (r *Resolver) resolveSequential(tags []TagRef, identifier string) (*Window, error) {
	head := r.TagFor(identifier)

	pos := -1
	for i, tag := range tags {
		if tag.Name == head {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, fmt.Errorf("%w: %q", ErrTagNotFound, head)
	}

	for _, tag := range tags[pos+1:] {
		if strings.HasSuffix(tag.Name, releaseSuffix) {
			return &Window{Base: tag.Name, Head: head, Kind: KindSequential}, nil
		}
	}

	return nil, fmt.Errorf("%w before %q", ErrNoPreviousRelease, head)
}
