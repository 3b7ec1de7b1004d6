package cmd

import (
	"testing"

	"github.com/herald-sh/herald/internal/output"
	"github.com/herald-sh/herald/internal/release"
)

func TestParseStrategyFlag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    release.Strategy
		wantErr bool
	}{
		{name: "DefaultAuto", input: "", want: release.StrategyAuto},
		{name: "Auto", input: "auto", want: release.StrategyAuto},
		{name: "Sequential", input: "sequential", want: release.StrategySequential},
		{name: "SequentialAlias", input: "seq", want: release.StrategySequential},
		{name: "Semver", input: "semver", want: release.StrategySemver},
		{name: "SemverAlias", input: "version", want: release.StrategySemver},
		{name: "Hotfix", input: "hotfix", want: release.StrategyHotfix},
		{name: "Invalid", input: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStrategyFlag(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("parseStrategyFlag(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  output.Format
	}{
		{input: "json", want: output.FormatJSON},
		{input: "markdown", want: output.FormatMarkdown},
		{input: "md", want: output.FormatMarkdown},
		{input: "console", want: output.FormatConsole},
		{input: "unknown", want: output.FormatConsole},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := getOutputFormat(tt.input); got != tt.want {
				t.Fatalf("getOutputFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
