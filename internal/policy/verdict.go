// Package policy implements tag classification rules for commit messages.
package policy

import "fmt"

// Disposition is the coarse submit-worthiness of a commit message.
// Negative values fail the submit gate, positive values let it proceed.
type Disposition int

const (
	// MustNotSubmit marks a commit that is strictly forbidden to submit.
	MustNotSubmit Disposition = -2

	// ShouldNotSubmit marks a commit that is discouraged. It fails the
	// gate like MustNotSubmit, but a reviewer may override and proceed.
	ShouldNotSubmit Disposition = -1

	// NeedsHumanReview marks a commit that requires a reviewer decision.
	NeedsHumanReview Disposition = 1

	// AutoApprovable marks a commit that can be approved without a
	// human. No built-in tag produces it.
	AutoApprovable Disposition = 2
)

// Blocking reports whether the disposition fails the submit gate.
func (d Disposition) Blocking() bool {
	return d < 0
}

// String returns the canonical name used in configuration files.
func (d Disposition) String() string {
	switch d {
	case MustNotSubmit:
		return "must-not-submit"
	case ShouldNotSubmit:
		return "should-not-submit"
	case NeedsHumanReview:
		return "needs-human-review"
	case AutoApprovable:
		return "auto-approvable"
	}
	return fmt.Sprintf("disposition(%d)", int(d))
}

// ParseDisposition converts a configuration name into a Disposition.
func ParseDisposition(s string) (Disposition, error) {
	switch s {
	case "must-not-submit":
		return MustNotSubmit, nil
	case "should-not-submit":
		return ShouldNotSubmit, nil
	case "needs-human-review":
		return NeedsHumanReview, nil
	case "auto-approvable":
		return AutoApprovable, nil
	}
	return 0, fmt.Errorf("unknown disposition: %q", s)
}

// Verdict is the outcome of evaluating a commit message: a disposition
// plus an explanation intended for the commit author and reviewers.
type Verdict struct {
	Disposition Disposition
	Explanation string
}
