package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func setupDirs(t *testing.T) (local, home string) {
	t.Helper()
	local = t.TempDir()
	home = t.TempDir()
	chdir(t, local)
	t.Setenv("HOME", home)
	return local, home
}

func writeGlobal(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "commitwatch")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, DefaultContact, cfg.Contact)
	assert.Equal(t, ".", cfg.Repo)
	assert.Empty(t, cfg.Tags)
}

func TestLoadNoConfigFiles(t *testing.T) {
	setupDirs(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLocalConfig(t *testing.T) {
	local, _ := setupDirs(t)
	content := `version: 1
contact: bot-owner@example.org
repo: /srv/checkout
tags:
  - name: WIP
    disposition: should-not-submit
    help: Work in progress.
    message: Please finish the change before submitting.
`
	require.NoError(t, os.WriteFile(filepath.Join(local, ".commitwatch.yml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bot-owner@example.org", cfg.Contact)
	assert.Equal(t, "/srv/checkout", cfg.Repo)
	require.Len(t, cfg.Tags, 1)
	assert.Equal(t, "WIP", cfg.Tags[0].Name)
	assert.Equal(t, "should-not-submit", cfg.Tags[0].Disposition)
}

func TestLoadLocalWinsOverGlobal(t *testing.T) {
	local, home := setupDirs(t)
	writeGlobal(t, home, "contact: global@example.org\n")
	require.NoError(t, os.WriteFile(filepath.Join(local, ".commitwatch.yml"), []byte("contact: local@example.org\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "local@example.org", cfg.Contact)
}

func TestLoadGlobalWhenNoLocal(t *testing.T) {
	_, home := setupDirs(t)
	writeGlobal(t, home, "contact: global@example.org\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "global@example.org", cfg.Contact)
}

func TestLoadKeepsDefaultsForUnsetFields(t *testing.T) {
	local, _ := setupDirs(t)
	require.NoError(t, os.WriteFile(filepath.Join(local, ".commitwatch.yml"), []byte("repo: /srv/checkout\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultContact, cfg.Contact)
	assert.Equal(t, "/srv/checkout", cfg.Repo)
}

func TestLoadInvalidYAML(t *testing.T) {
	local, _ := setupDirs(t)
	require.NoError(t, os.WriteFile(filepath.Join(local, ".commitwatch.yml"), []byte("tags: [unclosed\n"), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestAppendTagsUnique(t *testing.T) {
	base := []TagConfig{{Name: "WIP"}}
	got := appendTagsUnique(base, []TagConfig{{Name: "WIP"}, {Name: "RFC"}})

	require.Len(t, got, 2)
	assert.Equal(t, "WIP", got[0].Name)
	assert.Equal(t, "RFC", got[1].Name)
}
