package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/barjournal/presets"
	"github.com/rustyeddy/barjournal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive journaling grid",
	Long: `Open the full-screen journaling grid.

Navigation:
  up/down     select a bar
  tab         cycle the active category panel
  left/right  select a preset label
  enter       add the selected preset (templates prompt for a detail)
  x           remove the selected preset from the current bar
  c           add a custom entry
  u           undo the last change
  D / K       clear category / clear bar
  s           save immediately
  q           quit`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}

	sets := presets.Load(cfg.Presets.Path)
	app := tui.New(st, sets, cfg.UI.Theme)

	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	// Final best-effort save; the quit key already flushed on clean exits.
	_ = st.Flush()
	return err
}
