package policy

import (
	"fmt"
	"strings"
)

// Tag binds a classification keyword to its validation rule. A commit
// message declares a tag by starting with "NAME: ".
type Tag struct {
	// Name is the keyword authors put at the start of the subject line.
	Name string

	// Validate inspects the full commit message and produces a verdict.
	// It is only called for messages that declare this tag.
	Validate func(message string) Verdict

	// Help explains to authors when the tag should be used.
	Help string

	// Hidden excludes the tag from the advertised catalogue while
	// keeping it matchable. Used for deprecated tags.
	Hidden bool
}

// StaticTag returns a tag whose verdict does not depend on message
// content beyond the declared keyword.
func StaticTag(name string, d Disposition, help, explanation string) Tag {
	return Tag{
		Name: name,
		Validate: func(string) Verdict {
			return Verdict{Disposition: d, Explanation: explanation}
		},
		Help: help,
	}
}

// Table is an ordered, immutable set of tags. Evaluation scans it in
// declaration order and the first matching tag wins.
type Table struct {
	tags []Tag
}

// NewTable builds a table, rejecting definitions that could misroute a
// lookup: empty names, duplicates, and a name that is a prefix of
// another name.
func NewTable(tags ...Tag) (*Table, error) {
	for i, t := range tags {
		if t.Name == "" {
			return nil, fmt.Errorf("tag at position %d has an empty name", i)
		}
		if t.Validate == nil {
			return nil, fmt.Errorf("tag %s has no validator", t.Name)
		}
		for _, prev := range tags[:i] {
			if t.Name == prev.Name {
				return nil, fmt.Errorf("duplicate tag: %s", t.Name)
			}
			if strings.HasPrefix(t.Name, prev.Name) || strings.HasPrefix(prev.Name, t.Name) {
				return nil, fmt.Errorf("ambiguous tags: %s and %s, one is a prefix of the other", prev.Name, t.Name)
			}
		}
	}

	table := &Table{tags: make([]Tag, len(tags))}
	copy(table.tags, tags)
	return table, nil
}

// Tags returns the tags in declaration order.
func (t *Table) Tags() []Tag {
	out := make([]Tag, len(t.tags))
	copy(out, t.tags)
	return out
}

// Names returns the tag names in declaration order. Hidden tags are
// included; they are still matchable.
func (t *Table) Names() []string {
	names := make([]string, len(t.tags))
	for i, tag := range t.tags {
		names[i] = tag.Name
	}
	return names
}
