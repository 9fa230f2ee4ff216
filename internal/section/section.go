// Package section composes generated files from ordered, named blocks of
// text. Each generator describes its file as a list of sections, some of
// them gated by a feature flag, so which blocks appear under which flags can
// be checked without scanning rendered output.
package section

import "strings"

// Section is one named block of a generated file.
type Section struct {
	Name string
	Body string
}

// List is an ordered sequence of sections.
type List []Section

// Add appends an unconditional section.
func (l List) Add(name, body string) List {
	return append(l, Section{Name: name, Body: body})
}

// AddIf appends the section only when cond is true.
func (l List) AddIf(cond bool, name, body string) List {
	if !cond {
		return l
	}
	return l.Add(name, body)
}

// Names returns the section names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, s := range l {
		names[i] = s.Name
	}
	return names
}

// Join concatenates the bodies with sep between them.
func (l List) Join(sep string) string {
	bodies := make([]string, len(l))
	for i, s := range l {
		bodies[i] = s.Body
	}
	return strings.Join(bodies, sep)
}

// String concatenates the bodies with no separator.
func (l List) String() string { return l.Join("") }
