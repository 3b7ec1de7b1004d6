package source

import (
	"context"
	"fmt"

	"github.com/google/go-github/v52/github"

	"github.com/herald-sh/herald/internal/release"
)

// HubSource reads tags and commit diffs through the GitHub REST API.
type HubSource struct {
	client *github.Client
	owner  string
	repo   string
}

// NewHubSource creates a source for owner/repo. The token may be empty for
// public repositories.
func NewHubSource(ctx context.Context, owner, repo, token string) *HubSource {
	client := github.NewClient(nil)
	if token != "" {
		client = github.NewTokenClient(ctx, token)
	}
	return &HubSource{client: client, owner: owner, repo: repo}
}

// ListTags fetches one page of tags, which the API returns newest first.
// That page is the window the resolver works on; releases older than the
// page boundary cannot be resolved against.
func (s *HubSource) ListTags(ctx context.Context) ([]release.TagRef, error) {
	tags, _, err := s.client.Repositories.ListTags(ctx, s.owner, s.repo, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, fmt.Errorf("list tags for %s/%s: %w", s.owner, s.repo, err)
	}
	refs := make([]release.TagRef, 0, len(tags))
	for _, tag := range tags {
		refs = append(refs, release.TagRef{Name: tag.GetName()})
	}
	return refs, nil
}

// DiffCommits compares base...head and returns the commits only reachable
// from head, in the API's native order.
func (s *HubSource) DiffCommits(ctx context.Context, base, head string) ([]Commit, error) {
	comparison, _, err := s.client.Repositories.CompareCommits(ctx, s.owner, s.repo, base, head, &github.ListOptions{PerPage: 250})
	if err != nil {
		return nil, fmt.Errorf("compare %s...%s in %s/%s: %w", base, head, s.owner, s.repo, err)
	}

	commits := make([]Commit, 0, len(comparison.Commits))
	for _, rc := range comparison.Commits {
		commits = append(commits, Commit{
			Message: rc.GetCommit().GetMessage(),
			Author:  rc.GetCommit().GetAuthor().GetName(),
		})
	}
	return commits, nil
}
