package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/barjournal/config"
	"github.com/rustyeddy/barjournal/journal"
	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage archived session snapshots",
	Long: `Archive finished sessions to SQLite and review them later.

Subcommands:
  save  - Snapshot the current session into the archive
  list  - List archived snapshots
  show  - Render an archived snapshot as Org-mode text
  rm    - Delete an archived snapshot

Examples:
  barjournal archive save -m "FOMC day"
  barjournal archive list
  barjournal archive show <snapshot-id>`,
}

var archiveSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Snapshot the current session into the archive",
	Args:  cobra.NoArgs,
	RunE:  runArchiveSave,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived snapshots",
	Args:  cobra.NoArgs,
	RunE:  runArchiveList,
}

var archiveShowCmd = &cobra.Command{
	Use:   "show <snapshot-id>",
	Short: "Render an archived snapshot as Org-mode text",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveShow,
}

var archiveRmCmd = &cobra.Command{
	Use:   "rm <snapshot-id>",
	Short: "Delete an archived snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveRm,
}

var (
	archiveDBPath string
	archiveLabel  string
)

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveSaveCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveRmCmd)

	archiveCmd.PersistentFlags().StringVarP(&archiveDBPath, "db", "d", "", "path to SQLite archive (default from config)")
	archiveSaveCmd.Flags().StringVarP(&archiveLabel, "message", "m", "", "label for the snapshot")
}

func openArchive(cfg *config.Config) (*journal.Archive, error) {
	path := archiveDBPath
	if path == "" {
		path = cfg.Archive.DBPath
	}
	a, err := journal.OpenArchive(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	return a, nil
}

func runArchiveSave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	a, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	label := archiveLabel
	if label == "" {
		label = time.Now().Format("2006-01-02")
	}

	id, err := a.SaveSnapshot(st.Snapshot(), label, time.Now())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	fmt.Printf("archived session as %s (%s)\n", id, label)
	return nil
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	infos, err := a.ListSnapshots()
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}
	if len(infos) == 0 {
		fmt.Println("no archived snapshots")
		return nil
	}

	fmt.Printf("%-26s  %-19s  %5s  %s\n", "ID", "SAVED", "OBS", "LABEL")
	for _, info := range infos {
		fmt.Printf("%-26s  %-19s  %5d  %s\n",
			info.ID,
			info.SavedAt.Local().Format("2006-01-02 15:04:05"),
			info.Observations,
			info.Label,
		)
	}
	return nil
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	sess, err := a.LoadSnapshot(args[0])
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	fmt.Println(journal.FormatSessionOrg(sess))
	return nil
}

func runArchiveRm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.DeleteSnapshot(args[0]); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	fmt.Printf("deleted snapshot %s\n", args[0])
	return nil
}
