package gitrepo

import (
	"errors"
	"strings"
	"testing"
)

func TestHeadMessage(t *testing.T) {
	var gotDir string
	var gotArgs []string

	r := Open("/work/repo")
	r.runFunc = func(dir string, args ...string) ([]byte, error) {
		gotDir = dir
		gotArgs = args
		return []byte("BACKPORT: fix flash driver\n\nbody\n"), nil
	}

	msg, err := r.HeadMessage()
	if err != nil {
		t.Fatalf("HeadMessage() error = %v", err)
	}
	if msg != "BACKPORT: fix flash driver\n\nbody\n" {
		t.Errorf("HeadMessage() = %q", msg)
	}
	if gotDir != "/work/repo" {
		t.Errorf("dir = %q, want %q", gotDir, "/work/repo")
	}
	want := "log -1 --format=%B"
	if strings.Join(gotArgs, " ") != want {
		t.Errorf("args = %q, want %q", strings.Join(gotArgs, " "), want)
	}
}

func TestHeadMessageError(t *testing.T) {
	r := Open(".")
	r.runFunc = func(string, ...string) ([]byte, error) {
		return nil, errors.New("fatal: not a git repository")
	}

	_, err := r.HeadMessage()
	if err == nil {
		t.Fatal("HeadMessage() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "not a git repository") {
		t.Errorf("HeadMessage() error = %v, want git failure preserved", err)
	}
}

func TestOpenDefaultsToCurrentDir(t *testing.T) {
	r := Open("")
	if r.dir != "." {
		t.Errorf("dir = %q, want %q", r.dir, ".")
	}
}
