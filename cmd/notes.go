package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/herald-sh/herald/internal/classify"
	"github.com/herald-sh/herald/internal/output"
)

// NotesCmd returns the notes command.
func NotesCmd() *cli.Command {
	return &cli.Command{
		Name:      "notes",
		Aliases:   []string{"n"},
		Usage:     "Generate classified release notes for a release identifier",
		ArgsUsage: "<identifier>",
		Flags:     commonFlags(),
		Action:    notesAction,
	}
}

func notesAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	report, err := buildReport(c, ctx)
	if err != nil {
		return err
	}

	opts := OutputOptions(c)
	return output.NewReportWriter(opts.Format).Write(report, opts)
}

// buildReport runs the diff-classify half of the pipeline for a resolved
// window.
func buildReport(c *cli.Context, ctx *CommandContext) (*output.NotesReport, error) {
	commits, err := ctx.Commits(c)
	if err != nil {
		return nil, err
	}

	classifier := classify.NewClassifier(ctx.Config.Links.BaseURL)
	sections := classifier.Classify(commits)

	return &output.NotesReport{
		Identifier:  ctx.Identifier,
		Window:      ctx.Window,
		Sections:    sections,
		CommitCount: len(commits),
		GeneratedAt: time.Now(),
	}, nil
}
