package classify

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Parsed
	}{
		{
			name:    "TypeScopeSubject",
			message: "feat(ENG-42): add export",
			want:    Parsed{Type: "feat", Scope: "ENG-42", Subject: "add export"},
		},
		{
			name:    "TypeSubject",
			message: "fix: handle nil window",
			want:    Parsed{Type: "fix", Subject: "handle nil window"},
		},
		{
			name:    "UppercaseTypeLowered",
			message: "Fix: handle nil window",
			want:    Parsed{Type: "fix", Subject: "handle nil window"},
		},
		{
			name:    "FirstLineOnly",
			message: "feat(api): add endpoint\n\nlong body\nfix: not a fix",
			want:    Parsed{Type: "feat", Scope: "api", Subject: "add endpoint"},
		},
		{
			name:    "TrailingWhitespaceKept",
			message: "fix: trailing  ",
			want:    Parsed{Type: "fix", Subject: "trailing  "},
		},
		{
			name:    "NoGrammarMatch",
			message: "Merge branch 'main'",
			want:    Parsed{Type: "other", Subject: "Merge branch 'main'"},
		},
		{
			name:    "EmptyMessage",
			message: "",
			want:    Parsed{Type: "other", Subject: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.message); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}

func sectionByName(t *testing.T, s Sections, name string) Section {
	t.Helper()
	for _, section := range s {
		if section.Name == name {
			return section
		}
	}
	t.Fatalf("no section named %q", name)
	return Section{}
}

func TestClassify_CategoryMapping(t *testing.T) {
	c := NewClassifier("")
	commits := []Commit{
		{Message: "feat: feature one", Author: "Ann"},
		{Message: "perf: faster parse", Author: "Bob"},
		{Message: "refactor: tidy resolver", Author: "Cal"},
		{Message: "style: gofmt", Author: "Dee"},
		{Message: "fix: crash on empty tag", Author: "Eve"},
		{Message: "chore: bump deps", Author: "Flo"},
		{Message: "docs: update readme", Author: "Gil"},
		{Message: "random noise", Author: "Hal"},
	}

	sections := c.Classify(commits)

	if got := len(sectionByName(t, sections, CategoryFeatures).Entries); got != 1 {
		t.Errorf("features entries = %d, want 1", got)
	}
	if got := len(sectionByName(t, sections, CategoryImprovements).Entries); got != 3 {
		t.Errorf("improvements entries = %d, want 3", got)
	}
	if got := len(sectionByName(t, sections, CategoryBugfixes).Entries); got != 1 {
		t.Errorf("bugfixes entries = %d, want 1", got)
	}
}

func TestClassify_LinkifiesIssueKeyScopes(t *testing.T) {
	c := NewClassifier("https://x/y")
	sections := c.Classify([]Commit{{Message: "feat(ENG-42): add export", Author: "Jo"}})

	features := sectionByName(t, sections, CategoryFeatures)
	if len(features.Entries) != 1 {
		t.Fatalf("features entries = %d, want 1", len(features.Entries))
	}
	want := "[ENG-42 - add export - Jo](https://x/y/ENG-42)"
	if features.Entries[0].Title != want {
		t.Errorf("title = %q, want %q", features.Entries[0].Title, want)
	}
}

func TestClassify_PlainTitles(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		message string
		want    string
	}{
		{
			name:    "ScopeNotAnIssueKey",
			baseURL: "https://x/y",
			message: "fix(parser): off by one",
			want:    "parser - off by one - Jo",
		},
		{
			name:    "NoLinkBase",
			baseURL: "",
			message: "fix(ENG-7): leak",
			want:    "ENG-7 - leak - Jo",
		},
		{
			name:    "NoScope",
			baseURL: "https://x/y",
			message: "fix: leak",
			want:    "leak - Jo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(tt.baseURL)
			sections := c.Classify([]Commit{{Message: tt.message, Author: "Jo"}})
			bugfixes := sectionByName(t, sections, CategoryBugfixes)
			if len(bugfixes.Entries) != 1 {
				t.Fatalf("bugfixes entries = %d, want 1", len(bugfixes.Entries))
			}
			if bugfixes.Entries[0].Title != tt.want {
				t.Errorf("title = %q, want %q", bugfixes.Entries[0].Title, tt.want)
			}
		})
	}
}

func TestClassify_UnknownTypesDropped(t *testing.T) {
	c := NewClassifier("")
	sections := c.Classify([]Commit{{Message: "chore: bump deps", Author: "Jo"}})
	if !sections.Empty() {
		t.Errorf("expected no entries in any category, got %+v", sections)
	}
}

func TestClassify_PreservesInputOrder(t *testing.T) {
	c := NewClassifier("")
	commits := []Commit{
		{Message: "feat: first", Author: "A"},
		{Message: "fix: interleaved", Author: "B"},
		{Message: "feat: second", Author: "C"},
		{Message: "feat: third", Author: "D"},
	}

	features := sectionByName(t, c.Classify(commits), CategoryFeatures)
	want := []Entry{
		{Title: "first - A"},
		{Title: "second - C"},
		{Title: "third - D"},
	}
	if !reflect.DeepEqual(features.Entries, want) {
		t.Errorf("features entries = %+v, want %+v", features.Entries, want)
	}
}

func TestClassify_SectionOrderFixed(t *testing.T) {
	c := NewClassifier("")
	sections := c.Classify(nil)

	want := []string{CategoryFeatures, CategoryImprovements, CategoryBugfixes}
	if len(sections) != len(want) {
		t.Fatalf("section count = %d, want %d", len(sections), len(want))
	}
	for i, name := range want {
		if sections[i].Name != name {
			t.Errorf("section[%d] = %q, want %q", i, sections[i].Name, name)
		}
	}
}
