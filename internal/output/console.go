package output

import (
	"fmt"

	"github.com/fatih/color"
)

// ConsoleWriter writes release-note reports to the console.
type ConsoleWriter struct{}

// Write outputs the report to the console. The output path option is
// ignored: console output always goes to stdout.
func (w *ConsoleWriter) Write(report *NotesReport, options Options) error {
	color.Green("Release %s", report.Identifier)
	if report.Window != nil {
		fmt.Printf("Range: %s..%s (%s strategy)\n", report.Window.Base, report.Window.Head, report.Window.Kind)
		if report.Window.PreviousHotfixTag != "" {
			fmt.Printf("Previous hotfix: %s\n", report.Window.PreviousHotfixTag)
		}
	}
	fmt.Printf("Commits: %d\n\n", report.CommitCount)

	if report.Sections.Empty() {
		color.Yellow("No categorized changes in this release.")
		return nil
	}

	heading := color.New(color.FgCyan).Add(color.Underline)
	for _, section := range report.Sections {
		if len(section.Entries) == 0 {
			continue
		}
		heading.Printf("%s (%d)\n", sectionHeading(section.Name), len(section.Entries))
		for _, entry := range section.Entries {
			fmt.Printf("  - %s\n", entry.Title)
		}
		fmt.Println()
	}
	return nil
}
