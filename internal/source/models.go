package source

// Commit is one VCS commit as reported by a source. Paths lists the files
// the commit touched when the source can report them; an empty list means
// unknown, not "touched nothing".
type Commit struct {
	Message string
	Author  string
	Paths   []string
}
