package output

import (
	"time"

	"github.com/herald-sh/herald/internal/classify"
	"github.com/herald-sh/herald/internal/release"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
	_ ReportWriter = (*MarkdownWriter)(nil)
)

// Format represents the output format type.
type Format string

const (
	FormatConsole  Format = "console"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Options controls output behavior.
type Options struct {
	Format     Format
	OutputPath string
}

// NotesReport holds classified release notes for one resolved window.
type NotesReport struct {
	Identifier  string
	Window      *release.Window
	Sections    classify.Sections
	CommitCount int
	GeneratedAt time.Time
}

// ReportWriter writes release-note reports.
type ReportWriter interface {
	Write(report *NotesReport, options Options) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format Format) ReportWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	case FormatMarkdown:
		return &MarkdownWriter{}
	default:
		return &ConsoleWriter{}
	}
}
