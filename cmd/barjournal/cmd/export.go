package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Export the current session as CSV",
	Long: `Write the autosaved session to a CSV file.

The header is Bar,Bull,Bear,TR,Bias with one row per bar in session order;
multi-entry cells use embedded newlines.

Example:
  barjournal export 2024-06-03.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := st.ExportCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}

	fmt.Printf("exported session to %s\n", args[0])
	return nil
}
