package source

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/herald-sh/herald/internal/release"
)

// LocalSource reads tags and commit ranges from an on-disk repository.
type LocalSource struct {
	repo *git.Repository
}

// OpenLocal opens the repository at path.
func OpenLocal(path string) (*LocalSource, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	return &LocalSource{repo: repo}, nil
}

// ListTags returns all tags sorted newest first by target commit time. The
// sequential strategy relies on this ordering; establishing it is this
// layer's job, not the resolver's.
func (s *LocalSource) ListTags(ctx context.Context) ([]release.TagRef, error) {
	iter, err := s.repo.Tags()
	if err != nil {
		return nil, err
	}

	type taggedRef struct {
		name string
		when time.Time
	}
	var refs []taggedRef
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		commit, err := s.tagCommit(ref)
		if err != nil {
			return err
		}
		refs = append(refs, taggedRef{name: ref.Name().Short(), when: commit.Committer.When})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(refs, func(i, j int) bool { return refs[i].when.After(refs[j].when) })

	tags := make([]release.TagRef, len(refs))
	for i, ref := range refs {
		tags[i] = release.TagRef{Name: ref.name}
	}
	return tags, nil
}

// tagCommit resolves a tag ref to its target commit, peeling annotated tags.
func (s *LocalSource) tagCommit(ref *plumbing.Reference) (*object.Commit, error) {
	if tag, err := s.repo.TagObject(ref.Hash()); err == nil {
		return tag.Commit()
	}
	return s.repo.CommitObject(ref.Hash())
}

// DiffCommits walks the history from head and stops at base. Commits are
// returned in walk order, newest first.
func (s *LocalSource) DiffCommits(ctx context.Context, base, head string) ([]Commit, error) {
	headHash, err := s.repo.ResolveRevision(plumbing.Revision(head))
	if err != nil {
		return nil, fmt.Errorf("resolve head %q: %w", head, err)
	}

	var stop plumbing.Hash
	if base != "" {
		baseHash, err := s.repo.ResolveRevision(plumbing.Revision(base))
		if err != nil {
			return nil, fmt.Errorf("resolve base %q: %w", base, err)
		}
		stop = *baseHash
	}

	cIter, err := s.repo.Log(&git.LogOptions{From: *headHash})
	if err != nil {
		return nil, err
	}

	var commits []Commit
	err = cIter.ForEach(func(c *object.Commit) error {
		if c.Hash == stop {
			return storer.ErrStop
		}
		commits = append(commits, Commit{
			Message: c.Message,
			Author:  c.Author.Name,
			Paths:   commitPaths(c),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return commits, nil
}

// commitPaths lists the files c touched relative to its first parent. The
// initial commit and unreadable diffs yield no paths, which filtering
// treats as unknown.
func commitPaths(c *object.Commit) []string {
	if c.NumParents() == 0 {
		return nil
	}
	parent, err := c.Parent(0)
	if err != nil {
		return nil
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil
	}
	tree, err := c.Tree()
	if err != nil {
		return nil
	}
	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil
	}

	var paths []string
	for _, change := range changes {
		if change.From.Name != "" {
			paths = append(paths, change.From.Name)
		} else {
			paths = append(paths, change.To.Name)
		}
	}
	return paths
}
