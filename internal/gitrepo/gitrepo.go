// Package gitrepo reads commit information from a local git repository.
package gitrepo

import (
	"fmt"
	"os/exec"
	"strings"
)

// Repo provides access to a repository checkout on disk.
type Repo struct {
	dir     string
	runFunc func(dir string, args ...string) ([]byte, error) // injectable for testing
}

// Open returns a Repo for the given directory. The directory is not
// checked until a query runs; git itself reports access problems.
func Open(dir string) *Repo {
	if dir == "" {
		dir = "."
	}
	return &Repo{dir: dir, runFunc: runGit}
}

// HeadMessage returns the full raw commit message of HEAD, subject line
// first. Failures (not a repository, no commits yet, git not installed)
// are returned as errors and must be reported as access problems, never
// as a policy verdict.
func (r *Repo) HeadMessage() (string, error) {
	out, err := r.runFunc(r.dir, "log", "-1", "--format=%B")
	if err != nil {
		return "", fmt.Errorf("cannot read HEAD commit in %s: %w", r.dir, err)
	}
	return string(out), nil
}

func runGit(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git %s: %s", strings.Join(args, " "), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}
