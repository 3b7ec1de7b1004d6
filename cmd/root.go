package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/herald-sh/herald/config"
	"github.com/herald-sh/herald/internal/output"
	"github.com/herald-sh/herald/internal/release"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "herald",
		Usage:   "Release notes and announcements from Git tag history",
		Version: "1.0.0",
		Commands: []*cli.Command{
			ResolveCmd(),
			NotesCmd(),
			AnnounceCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
	}
}

// Common flags shared across commands.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to local Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "github",
			Usage: "GitHub repository as owner/name (uses the API instead of a local repo)",
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "GitHub API token",
			EnvVars: []string{"GITHUB_TOKEN"},
		},
		&cli.StringFlag{
			Name:  "tag-format",
			Usage: "Release tag template with an {id} placeholder",
		},
		&cli.StringFlag{
			Name:    "strategy",
			Aliases: []string{"s"},
			Usage:   "Window resolution strategy (auto, sequential, semver, hotfix)",
			Value:   "auto",
		},
		&cli.StringFlag{
			Name:  "link-base",
			Usage: "Issue tracker base URL for linkifying scopes",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns of paths to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of paths to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, markdown)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

// parseStrategyFlag parses the strategy flag.
func parseStrategyFlag(s string) (release.Strategy, error) {
	switch s {
	case "", "auto":
		return release.StrategyAuto, nil
	case "sequential", "seq":
		return release.StrategySequential, nil
	case "semver", "version":
		return release.StrategySemver, nil
	case "hotfix":
		return release.StrategyHotfix, nil
	default:
		return release.StrategyAuto, fmt.Errorf("invalid strategy: %s (expected auto, sequential, semver or hotfix)", s)
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.Format {
	switch s {
	case "json":
		return output.FormatJSON
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply overrides from CLI
	if format := c.String("tag-format"); format != "" {
		cfg.Release.TagFormat = format
	}
	if base := c.String("link-base"); base != "" {
		cfg.Links.BaseURL = base
	}
	if url := c.String("webhook"); url != "" {
		cfg.Webhook.URL = url
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
