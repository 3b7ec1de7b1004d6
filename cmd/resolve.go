package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/herald-sh/herald/internal/output"
)

// ResolveCmd returns the resolve command.
func ResolveCmd() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Aliases:   []string{"r"},
		Usage:     "Resolve the commit window for a release identifier",
		ArgsUsage: "<identifier>",
		Flags:     commonFlags(),
		Action:    resolveAction,
	}
}

func resolveAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	w := ctx.Window

	if getOutputFormat(c.String("format")) == output.FormatJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]string{
			"base":              w.Base,
			"head":              w.Head,
			"kind":              string(w.Kind),
			"baseReleaseTag":    w.BaseReleaseTag,
			"previousHotfixTag": w.PreviousHotfixTag,
		})
	}

	color.Green("Resolved %s via %s strategy", ctx.Identifier, w.Kind)
	fmt.Printf("  base: %s\n", w.Base)
	fmt.Printf("  head: %s\n", w.Head)
	if w.BaseReleaseTag != "" {
		fmt.Printf("  base release: %s\n", w.BaseReleaseTag)
	}
	if w.PreviousHotfixTag != "" {
		fmt.Printf("  previous hotfix: %s\n", w.PreviousHotfixTag)
	}
	return nil
}
