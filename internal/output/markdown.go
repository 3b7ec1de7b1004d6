package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownWriter writes release-note reports as Markdown.
type MarkdownWriter struct{}

// Write outputs the report as Markdown.
func (w *MarkdownWriter) Write(report *NotesReport, options Options) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	w.render(out, report)
	return nil
}

// Render returns the Markdown body as a string, for webhook delivery.
func (w *MarkdownWriter) Render(report *NotesReport) string {
	var b strings.Builder
	w.render(&b, report)
	return b.String()
}

func (w *MarkdownWriter) render(out io.Writer, report *NotesReport) {
	fmt.Fprintf(out, "# Release %s\n\n", report.Identifier)
	if report.Window != nil {
		fmt.Fprintf(out, "**Range:** `%s`..`%s`\n\n", report.Window.Base, report.Window.Head)
	}
	fmt.Fprintf(out, "**Commits:** %d\n\n", report.CommitCount)

	if report.Sections.Empty() {
		fmt.Fprintln(out, "_No categorized changes in this release._")
		return
	}

	for _, section := range report.Sections {
		if len(section.Entries) == 0 {
			continue
		}
		fmt.Fprintf(out, "## %s\n\n", sectionHeading(section.Name))
		for _, entry := range section.Entries {
			fmt.Fprintf(out, "- %s\n", entry.Title)
		}
		fmt.Fprintln(out)
	}
}
