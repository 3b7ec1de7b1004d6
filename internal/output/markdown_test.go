package output

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/herald-sh/herald/internal/classify"
	"github.com/herald-sh/herald/internal/release"
)

func sampleReport() *NotesReport {
	return &NotesReport{
		Identifier: "v1.2.0",
		Window: &release.Window{
			Base: "v1.1.0-release",
			Head: "v1.2.0-release",
			Kind: release.KindSemver,
		},
		Sections: classify.Sections{
			{Name: classify.CategoryFeatures, Entries: []classify.Entry{
				{Title: "[ENG-42 - add export - Jo](https://x/y/ENG-42)"},
			}},
			{Name: classify.CategoryImprovements},
			{Name: classify.CategoryBugfixes, Entries: []classify.Entry{
				{Title: "leak - Ann"},
			}},
		},
		CommitCount: 5,
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMarkdownWriter_Render(t *testing.T) {
	body := (&MarkdownWriter{}).Render(sampleReport())

	for _, want := range []string{
		"# Release v1.2.0",
		"**Range:** `v1.1.0-release`..`v1.2.0-release`",
		"## Features",
		"- [ENG-42 - add export - Jo](https://x/y/ENG-42)",
		"## Bug Fixes",
		"- leak - Ann",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("rendered Markdown missing %q:\n%s", want, body)
		}
	}
}

func TestMarkdownWriter_SkipsEmptySections(t *testing.T) {
	body := (&MarkdownWriter{}).Render(sampleReport())
	if strings.Contains(body, "## Improvements") {
		t.Errorf("empty section rendered:\n%s", body)
	}
}

func TestMarkdownWriter_EmptyReport(t *testing.T) {
	report := sampleReport()
	report.Sections = classify.Sections{
		{Name: classify.CategoryFeatures},
		{Name: classify.CategoryImprovements},
		{Name: classify.CategoryBugfixes},
	}

	body := (&MarkdownWriter{}).Render(report)
	if !strings.Contains(body, "No categorized changes") {
		t.Errorf("empty report should say so:\n%s", body)
	}
}

func TestMarkdownWriter_WriteToFile(t *testing.T) {
	path := t.TempDir() + "/notes.md"
	if err := (&MarkdownWriter{}).Write(sampleReport(), Options{OutputPath: path}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	written := (&MarkdownWriter{}).Render(sampleReport())
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != written {
		t.Errorf("file contents differ from Render output")
	}
}
