// Package model defines the member index built from a documentation file.
package model

// Entry is one documented member.
type Entry struct {
	ID      string
	Kind    string
	Summary string
	Rank    float64
}

// Reference is an edge in the cross-reference graph: the documentation of
// Source names Target. Via lists the tags that carry the reference.
type Reference struct {
	Source string
	Target string
	Via    []string
}

// Site is a single cross-reference occurrence with its location in the
// documentation file.
type Site struct {
	Source string
	Target string
	Tag    string
	Line   int
}

// Index is the complete member index, ready for serialization.
type Index struct {
	Assembly   string
	Members    []Entry
	References []Reference
	// Sites is only populated for focused queries.
	Sites []Site
}
