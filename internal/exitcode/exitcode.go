// Package exitcode defines the process exit codes of the tool.
package exitcode

import "os"

// Exit codes. Policy failures and repository access failures are kept
// distinct so a caller can tell a rejected commit from a broken checkout.
const (
	// Success indicates the commit passed the gate.
	Success = 0

	// PolicyBlocked indicates the commit message failed the tag policy.
	PolicyBlocked = 1

	// AccessError indicates the repository or its HEAD commit could not
	// be read. The policy was never evaluated.
	AccessError = 2

	// UsageError indicates invalid command usage.
	UsageError = 3
)

// Exit terminates the process with the given code.
func Exit(code int) {
	os.Exit(code)
}
