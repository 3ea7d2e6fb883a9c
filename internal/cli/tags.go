package cli

import (
	"fmt"

	"github.com/adrianpk/commitwatch/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the accepted classification tags",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

var (
	tagNameStyle = lipgloss.NewStyle().Bold(true)
	tagHelpStyle = lipgloss.NewStyle().PaddingLeft(2).Width(74)
)

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return &accessError{fmt.Errorf("cannot load config: %w", err)}
	}

	table, err := tableFromConfig(cfg)
	if err != nil {
		return &accessError{fmt.Errorf("invalid tag configuration: %w", err)}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Commit message subject lines must start with one of these tags:")
	fmt.Fprintln(out)

	// Deprecated tags stay matchable but are not advertised.
	for _, tag := range table.Tags() {
		if tag.Hidden {
			continue
		}
		fmt.Fprintln(out, tagNameStyle.Render(tag.Name))
		fmt.Fprintln(out, tagHelpStyle.Render(tag.Help))
		fmt.Fprintln(out)
	}
	return nil
}
