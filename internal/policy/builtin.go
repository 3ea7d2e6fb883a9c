package policy

import "regexp"

// The texts below are the policy shown to authors and reviewers on the
// review system and are kept stable on purpose.

var pullRequestLink = regexp.MustCompile(`https://github\.com/zephyrproject-.*/pull/[0-9]+`)

const missingTagHeader = `Your commit message subject line in this repository MUST include one
of the following tags to help us track upstream changes:

`

func validateBackport(string) Verdict {
	return Verdict{
		Disposition: NeedsHumanReview,
		Explanation: "Reviewers: please identify if this BACKPORT commit is acceptable to " +
			"merge into the release branch.",
	}
}

func validateFrompull(message string) Verdict {
	if !pullRequestLink.MatchString(message) {
		return Verdict{
			Disposition: MustNotSubmit,
			Explanation: "Please add a link to the pull request in the commit message.",
		}
	}
	return Verdict{
		Disposition: NeedsHumanReview,
		Explanation: "Reviewers: please identify if this FROMPULL commit is acceptable " +
			"to merge to our Chromium OS branches.",
	}
}

func validateChromium(string) Verdict {
	return Verdict{
		Disposition: ShouldNotSubmit,
		Explanation: "The CHROMIUM tag is used for commits in this repository which " +
			"cannot be upstreamed.\n" +
			"\n" +
			"Generally speaking, almost all commits can either be " +
			"upstreamed, or instead landed in one of our local " +
			"repositories, such as platform/ec.\n" +
			"\n" +
			"* If it's possible to upstream this CL, please do so.  You " +
			"can reupload this CL with the FROMPULL tag instead after " +
			"uploading the pull request.\n" +
			"\n" +
			"* Otherwise, if it's possible to land this code in " +
			"platform/ec or another local repository instead, please do " +
			"that, and abandon this CL.\n" +
			"\n" +
			"If none of the above are possible, you may remove my CR-1 on " +
			"this CL and proceed with the review.\n" +
			"\n" +
			"Thanks for helping us keep upstream first!\n",
	}
}

func validateUpstream(string) Verdict {
	return Verdict{
		Disposition: MustNotSubmit,
		Explanation: `The UPSTREAM tag is obsolete and should no longer be used.

If you are cherry-picking from upstream to a release branch, you should
use the BACKPORT tag, regardless if the cherry-pick is clean or not.

If you are cherry-picking from upstream to a main branch, or your PR was
merged into a release branch upstream, then Copybara should copy your CL
to the appropriate branch within 24 hours.

Note, if you would like an automated approval on backports to a
release branch, simply wait for Copybara to copy your CL to the main
branch, and then use the "Cherry-Pick" button in the Gerrit UI to copy
the CL to a release branch, adding the BACKPORT tag.  You can then add
the Rubber Stamper bot as a reviewer on the CL and it will
auto-approve.`,
	}
}

// BuiltinTags returns the tag policy for repositories tracking upstream
// Zephyr, in evaluation order.
func BuiltinTags() []Tag {
	return []Tag{
		{
			Name:     "BACKPORT",
			Validate: validateBackport,
			Help: "This tag should be used for commits which have already merged into " +
				"upstream Zephyr main branch, and you are cherry-picking to a " +
				"release branch.  Note that this tag is now used regardless if the " +
				"cherry-pick was clean or not.",
		},
		{
			Name:     "FROMPULL",
			Validate: validateFrompull,
			Help: "This tag should be used for commits which have not yet been merged " +
				"into upstream Zephyr, but have a pending pull request open.  Please " +
				"link to the pull request in the commit message.",
		},
		{
			Name:     "CHROMIUM",
			Validate: validateChromium,
			Help: "This tag should be used for commits which will never be upstreamed. " +
				"Generally speaking, these commits can almost always be avoided by " +
				"landing code in one of the repositories we maintain (i.e., platform/ec), " +
				"and should only be used as a last resort if it's impossible to put it in " +
				"one of our modules, and upstream won't accept our change.  Please " +
				"include adequate justification as to why this commit cannot be " +
				"upstreamed in your commit message.",
		},
		{
			Name:     "UPSTREAM",
			Validate: validateUpstream,
			Help:     "This tag should never be used.",
			Hidden:   true,
		},
	}
}

// DefaultTable returns the built-in tag table. The built-in tags are
// known to pass table validation; a failure here is a programming error.
func DefaultTable() *Table {
	table, err := NewTable(BuiltinTags()...)
	if err != nil {
		panic(err)
	}
	return table
}
