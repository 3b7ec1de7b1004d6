package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/herald-sh/herald/config"
	"github.com/herald-sh/herald/internal/classify"
	"github.com/herald-sh/herald/internal/output"
	"github.com/herald-sh/herald/internal/release"
	"github.com/herald-sh/herald/internal/source"
)

// CommandContext holds common state for command execution: loaded
// configuration, the commit/tag source, and the resolved release window.
type CommandContext struct {
	Config     *config.Config
	Source     source.Source
	Identifier string
	Strategy   release.Strategy
	Window     *release.Window
}

// NewCommandContext creates a context from CLI flags. It loads the
// configuration, builds the source, lists tags, and resolves the window for
// the identifier argument. A resolution failure aborts the whole run; the
// error carries the specific kind and the tag or identifier attempted.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	if c.NArg() < 1 {
		return nil, fmt.Errorf("release identifier argument required (e.g. %q)", "v1.2.0")
	}
	identifier := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	strategy, err := parseStrategyFlag(c.String("strategy"))
	if err != nil {
		return nil, err
	}

	src, err := newSource(c)
	if err != nil {
		return nil, err
	}

	tags, err := src.ListTags(c.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	resolver := release.NewResolver(cfg.Release.TagFormat)
	window, err := resolver.Resolve(tags, identifier, strategy)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Config:     cfg,
		Source:     src,
		Identifier: identifier,
		Strategy:   strategy,
		Window:     window,
	}, nil
}

// newSource builds a source from the flags: the GitHub API when --github is
// given, the local repository otherwise.
func newSource(c *cli.Context) (source.Source, error) {
	if slug := c.String("github"); slug != "" {
		owner, name, ok := strings.Cut(slug, "/")
		if !ok || owner == "" || name == "" {
			return nil, fmt.Errorf("invalid --github value %q (expected owner/name)", slug)
		}
		return source.NewHubSource(c.Context, owner, name, c.String("token")), nil
	}
	return source.OpenLocal(c.String("repo"))
}

// Commits fetches the window's commits, applies the path filters, and
// converts to the classifier's input shape.
func (ctx *CommandContext) Commits(c *cli.Context) ([]classify.Commit, error) {
	commits, err := ctx.Source.DiffCommits(c.Context, ctx.Window.Base, ctx.Window.Head)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s..%s: %w", ctx.Window.Base, ctx.Window.Head, err)
	}

	filter := source.NewPathFilter(ctx.Config.Filters.Include, ctx.Config.Filters.Exclude)
	commits = filter.Apply(commits)

	out := make([]classify.Commit, 0, len(commits))
	for _, commit := range commits {
		out = append(out, classify.Commit{Message: commit.Message, Author: commit.Author})
	}
	return out, nil
}

// OutputOptions creates output Options from CLI flags.
func OutputOptions(c *cli.Context) output.Options {
	return output.Options{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
	}
}
