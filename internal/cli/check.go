package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adrianpk/commitwatch/internal/commitmsg"
	"github.com/adrianpk/commitwatch/internal/config"
	"github.com/adrianpk/commitwatch/internal/gitrepo"
	"github.com/adrianpk/commitwatch/internal/policy"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const disclaimerFormat = "This is an automated message from a bot trying to be " +
	"helpful.  If I'm mis-behaving, or if this message seems " +
	"to be wrong, please feel free to reach out to my owner, %s."

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate the HEAD commit message against the tag policy",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

var (
	checkRepo        string
	checkMessage     string
	checkMessageFile string
)

func addCheckFlags(fs *pflag.FlagSet) {
	fs.StringVar(&checkRepo, "repo", "", "repository to inspect (default from config, then \".\")")
	fs.StringVar(&checkMessage, "message", "", "evaluate this message instead of reading HEAD")
	fs.StringVar(&checkMessageFile, "message-file", "", "evaluate the message in this file instead of reading HEAD")
}

func init() {
	addCheckFlags(checkCmd.Flags())
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return &accessError{fmt.Errorf("cannot load config: %w", err)}
	}

	table, err := tableFromConfig(cfg)
	if err != nil {
		return &accessError{fmt.Errorf("invalid tag configuration: %w", err)}
	}

	message, err := commitMessage(cfg)
	if err != nil {
		return &accessError{err}
	}

	parsed := commitmsg.Parse(message)
	slog.Debug("inspecting commit",
		"subject", parsed.Subject,
		"trailers", len(parsed.Trailers))

	verdict := policy.NewEvaluator(table).Evaluate(message)
	printVerdict(cmd.OutOrStdout(), verdict, cfg.Contact)

	if verdict.Disposition.Blocking() {
		return &blockedError{disposition: verdict.Disposition.String()}
	}
	return nil
}

// commitMessage obtains the message under review: an explicit override
// from flags, or the HEAD commit of the configured repository.
func commitMessage(cfg *config.Config) (string, error) {
	if checkMessage != "" {
		return checkMessage, nil
	}
	if checkMessageFile != "" {
		data, err := os.ReadFile(checkMessageFile)
		if err != nil {
			return "", fmt.Errorf("cannot read message file: %w", err)
		}
		return string(data), nil
	}

	repo := checkRepo
	if repo == "" {
		repo = cfg.Repo
	}
	return gitrepo.Open(repo).HeadMessage()
}

// printVerdict writes the explanation, two blank lines, and the bot
// disclaimer. The disclaimer is appended for every verdict.
func printVerdict(w io.Writer, verdict policy.Verdict, contact string) {
	fmt.Fprintln(w, verdict.Explanation)
	fmt.Fprint(w, "\n\n")
	fmt.Fprintf(w, disclaimerFormat+"\n", contact)
}

// tableFromConfig appends config-defined tags to the built-in table.
func tableFromConfig(cfg *config.Config) (*policy.Table, error) {
	tags := policy.BuiltinTags()
	for _, tc := range cfg.Tags {
		d, err := policy.ParseDisposition(tc.Disposition)
		if err != nil {
			return nil, fmt.Errorf("tag %s: %w", tc.Name, err)
		}
		tag := policy.StaticTag(tc.Name, d, tc.Help, tc.Message)
		tag.Hidden = tc.Hidden
		tags = append(tags, tag)
	}
	return policy.NewTable(tags...)
}
