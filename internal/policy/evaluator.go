package policy

import "strings"

// Evaluator maps commit messages to verdicts using a tag table.
type Evaluator struct {
	table *Table
}

// NewEvaluator creates an evaluator over the given table.
func NewEvaluator(table *Table) *Evaluator {
	return &Evaluator{table: table}
}

// Evaluate determines which tag the message declares and returns that
// tag's verdict. Matching is exact-prefix and case-sensitive: a message
// declares tag NAME iff it starts with "NAME: ". The first tag in
// declaration order wins. When no tag matches, the verdict is
// MustNotSubmit with a catalogue of the accepted tags.
func (e *Evaluator) Evaluate(message string) Verdict {
	for _, tag := range e.table.tags {
		if strings.HasPrefix(message, tag.Name+": ") {
			return tag.Validate(message)
		}
	}

	return Verdict{
		Disposition: MustNotSubmit,
		Explanation: e.Catalogue(),
	}
}

// Catalogue lists every non-hidden tag with its help text, prefixed by
// the instruction that the subject line must declare one of them.
func (e *Evaluator) Catalogue() string {
	var b strings.Builder
	b.WriteString(missingTagHeader)
	for _, tag := range e.table.tags {
		if tag.Hidden {
			continue
		}
		b.WriteString("* ")
		b.WriteString(tag.Name)
		b.WriteString(": ")
		b.WriteString(tag.Help)
		b.WriteString("\n\n")
	}
	return b.String()
}
