// Package classify parses conventional-commit messages and buckets commits
// into release-note categories.
package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// Commit is one VCS commit as handed over by the diff source. Only the first
// line of Message is used for classification.
type Commit struct {
	Message string
	Author  string
}

// Parsed is a commit message's first line decomposed as a conventional
// commit. Scope is empty when the message carried none.
type Parsed struct {
	Type    string
	Scope   string
	Subject string
}

// Entry is one rendered line grouped under a category.
type Entry struct {
	Title string
}

// Section groups entries under a category name, in commit order.
type Section struct {
	Name    string
	Entries []Entry
}

// Sections is the ordered grouping of classified commits. Category order is
// fixed: features, improvements, bugfixes.
type Sections []Section

// Category names.
const (
	CategoryFeatures     = "features"
	CategoryImprovements = "improvements"
	CategoryBugfixes     = "bugfixes"
)

// typeOther is the catch-all for messages matching no grammar. It maps to no
// category, so such commits never reach the output.
const typeOther = "other"

var categoryOrder = []string{CategoryFeatures, CategoryImprovements, CategoryBugfixes}

// categories maps conventional-commit types to category names. Types absent
// here are dropped, never placed in a default bucket.
var categories = map[string]string{
	"feat":     CategoryFeatures,
	"fix":      CategoryBugfixes,
	"perf":     CategoryImprovements,
	"refactor": CategoryImprovements,
	"style":    CategoryImprovements,
}

// grammar is one commit-message shape with its field extractor. Grammars are
// tried in priority order; the first match wins. New shapes (breaking-change
// markers and the like) slot in here.
type grammar struct {
	pattern *regexp.Regexp
	extract func(match []string) Parsed
}

var grammars = []grammar{
	{
		// type(scope): subject
		pattern: regexp.MustCompile(`^(\w+)\(([^)]+)\):[ \t]*(.*)$`),
		extract: func(m []string) Parsed {
			return Parsed{Type: strings.ToLower(m[1]), Scope: m[2], Subject: m[3]}
		},
	},
	{
		// type: subject
		pattern: regexp.MustCompile(`^(\w+):[ \t]*(.*)$`),
		extract: func(m []string) Parsed {
			return Parsed{Type: strings.ToLower(m[1]), Subject: m[2]}
		},
	},
}

// issueKey matches tracker-style scopes such as ENG-123.
var issueKey = regexp.MustCompile(`^[A-Za-z]+-\d+$`)

// Classifier groups commits into release-note categories. The link base URL
// is fixed at construction; empty disables linkification.
type Classifier struct {
	linkBaseURL string
}

// NewClassifier creates a classifier. linkBaseURL, when non-empty, is the
// issue-tracker URL prefix that tracker-style scopes are linked against.
func NewClassifier(linkBaseURL string) *Classifier {
	return &Classifier{linkBaseURL: strings.TrimSuffix(linkBaseURL, "/")}
}

// Parse decomposes the first line of a commit message. Messages matching no
// grammar fall through to type "other" with the line kept verbatim.
func Parse(message string) Parsed {
	line := message
	if idx := strings.IndexByte(line, '\n'); idx != -1 {
		line = line[:idx]
	}
	for _, g := range grammars {
		if m := g.pattern.FindStringSubmatch(line); m != nil {
			return g.extract(m)
		}
	}
	return Parsed{Type: typeOther, Subject: line}
}

// Classify buckets commits into sections, preserving input order within each
// category. Commits whose type maps to no category are excluded; malformed
// messages degrade to exclusion, never to failure.
func (c *Classifier) Classify(commits []Commit) Sections {
	entries := make(map[string][]Entry, len(categoryOrder))
	for _, commit := range commits {
		parsed := Parse(commit.Message)
		category, ok := categories[parsed.Type]
		if !ok {
			continue
		}
		entries[category] = append(entries[category], Entry{Title: c.title(parsed, commit.Author)})
	}

	sections := make(Sections, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		sections = append(sections, Section{Name: name, Entries: entries[name]})
	}
	return sections
}

// Empty reports whether no commit landed in any category.
func (s Sections) Empty() bool {
	for _, section := range s {
		if len(section.Entries) > 0 {
			return false
		}
	}
	return true
}

// title renders one entry line, linkifying tracker-style scopes as Markdown
// links against the configured base URL.
func (c *Classifier) title(p Parsed, author string) string {
	var text string
	if p.Scope != "" {
		text = fmt.Sprintf("%s - %s - %s", p.Scope, p.Subject, author)
	} else {
		text = fmt.Sprintf("%s - %s", p.Subject, author)
	}
	if c.linkBaseURL != "" && issueKey.MatchString(p.Scope) {
		return fmt.Sprintf("[%s](%s/%s)", text, c.linkBaseURL, p.Scope)
	}
	return text
}
