package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a CSV export into the current session",
	Long: `Read a previously exported CSV and overwrite the listed bars'
category lists. Bar timestamps are untouched and the undo history is
discarded: an import is not reversible.

Example:
  barjournal import 2024-06-03.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, saver, err := openStore(cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	if err := st.ImportCSV(f); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := st.Flush(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	fmt.Printf("imported %s into %s\n", args[0], saver.Path())
	return nil
}
