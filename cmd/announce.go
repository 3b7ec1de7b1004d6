package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/herald-sh/herald/internal/notify"
	"github.com/herald-sh/herald/internal/output"
)

// AnnounceCmd returns the announce command.
func AnnounceCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "webhook",
			Aliases: []string{"w"},
			Usage:   "Webhook URL to deliver the announcement to",
			EnvVars: []string{"HERALD_WEBHOOK_URL"},
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the announcement instead of delivering it",
		},
	)

	return &cli.Command{
		Name:      "announce",
		Aliases:   []string{"a"},
		Usage:     "Generate release notes and deliver them to a webhook",
		ArgsUsage: "<identifier>",
		Flags:     flags,
		Action:    announceAction,
	}
}

func announceAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	report, err := buildReport(c, ctx)
	if err != nil {
		return err
	}

	body := (&output.MarkdownWriter{}).Render(report)

	if c.Bool("dry-run") {
		fmt.Print(body)
		return nil
	}

	webhookURL := ctx.Config.Webhook.URL
	if webhookURL == "" {
		return fmt.Errorf("no webhook URL configured (set webhook.url or pass --webhook)")
	}

	if err := notify.NewAnnouncer(webhookURL).Announce(c.Context, body); err != nil {
		return err
	}

	color.Green("Announced %s (%d commits)", ctx.Identifier, report.CommitCount)
	return nil
}
