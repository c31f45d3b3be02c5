package cmd

import (
	"fmt"

	"github.com/rustyeddy/barjournal/journal"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [bar]",
	Short: "Render the session (or one bar) as Org-mode text",
	Long: `Render journaled observations as an Org-mode block for pasting into
a text journal. With no argument, every non-empty bar is printed in session
order.

Examples:
  barjournal show
  barjournal show RTH
  barjournal show 17`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		bar := journal.ParseBarKey(args[0])
		fmt.Println(journal.FormatBarOrg(bar, st.Record(bar)))
		return nil
	}

	fmt.Println(journal.FormatSessionOrg(st.Snapshot()))
	return nil
}
