package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrianpk/commitwatch/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commitwatch configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd, initLocal)
	},
}

var initLocal bool

func init() {
	initCmd.Flags().BoolVar(&initLocal, "local", false, "write .commitwatch.yml in the current directory instead of the global config")
	rootCmd.AddCommand(initCmd)
}

// runInit creates a configuration file, refusing to overwrite one that
// already exists.
func runInit(cmd *cobra.Command, local bool) error {
	var configPath string
	var configDir string

	if local {
		cwd, err := os.Getwd()
		if err != nil {
			return &accessError{fmt.Errorf("cannot get working directory: %w", err)}
		}
		configPath = filepath.Join(cwd, ".commitwatch.yml")
	} else {
		configPath = config.GlobalConfigPath()
		if configPath == "" {
			return &accessError{fmt.Errorf("cannot determine home directory")}
		}
		configDir = filepath.Dir(configPath)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists: %s\n", configPath)
		return nil
	}

	if configDir != "" {
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return &accessError{fmt.Errorf("cannot create config directory: %w", err)}
		}
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return &accessError{fmt.Errorf("cannot write config: %w", err)}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config: %s\n", configPath)
	return nil
}

const defaultConfig = `version: 1

# Bot owner named in the disclaimer appended to every review message.
contact: jrosenth@chromium.org

# Repository to inspect. Relative paths resolve from the working directory.
repo: .

# Extra classification tags with a fixed verdict. Disposition is one of:
# must-not-submit, should-not-submit, needs-human-review, auto-approvable.
#
# tags:
#   - name: WIP
#     disposition: should-not-submit
#     help: Work in progress.
#     message: Please finish the change before submitting.
tags: []
`
