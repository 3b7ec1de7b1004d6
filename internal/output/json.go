package output

import "encoding/json"

// JSONWriter writes release-note reports as JSON.
type JSONWriter struct{}

type jsonReport struct {
	Identifier  string        `json:"identifier"`
	Window      *jsonWindow   `json:"window,omitempty"`
	CommitCount int           `json:"commitCount"`
	GeneratedAt string        `json:"generatedAt"`
	Sections    []jsonSection `json:"sections"`
}

type jsonWindow struct {
	Base              string `json:"base"`
	Head              string `json:"head"`
	Kind              string `json:"kind"`
	BaseReleaseTag    string `json:"baseReleaseTag,omitempty"`
	PreviousHotfixTag string `json:"previousHotfixTag,omitempty"`
}

type jsonSection struct {
	Category string   `json:"category"`
	Entries  []string `json:"entries"`
}

// Write outputs the report as indented JSON. Empty categories are kept so
// consumers see a stable section list.
func (w *JSONWriter) Write(report *NotesReport, options Options) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	doc := jsonReport{
		Identifier:  report.Identifier,
		CommitCount: report.CommitCount,
		GeneratedAt: report.GeneratedAt.Format(reportDateTimeLayout),
	}
	if report.Window != nil {
		doc.Window = &jsonWindow{
			Base:              report.Window.Base,
			Head:              report.Window.Head,
			Kind:              string(report.Window.Kind),
			BaseReleaseTag:    report.Window.BaseReleaseTag,
			PreviousHotfixTag: report.Window.PreviousHotfixTag,
		}
	}
	for _, section := range report.Sections {
		entries := make([]string, 0, len(section.Entries))
		for _, entry := range section.Entries {
			entries = append(entries, entry.Title)
		}
		doc.Sections = append(doc.Sections, jsonSection{Category: section.Name, Entries: entries})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
