package output

import (
	"io"
	"os"

	"github.com/herald-sh/herald/internal/classify"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

// sectionHeading maps category names to display headings.
func sectionHeading(name string) string {
	switch name {
	case classify.CategoryFeatures:
		return "Features"
	case classify.CategoryImprovements:
		return "Improvements"
	case classify.CategoryBugfixes:
		return "Bug Fixes"
	default:
		return name
	}
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
