package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/barjournal/config"
	"github.com/rustyeddy/barjournal/journal"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "barjournal",
	Short: "A per-bar price action journaling tool",
	Long: `Barjournal is a keyboard-driven journal for discretionary trading
observations. Each session holds 83 bars (RTH, ETH and bars 1-81); every bar
carries four observation lists: bull, bear, trading-range and bias.

The interactive grid autosaves to a local JSON file after every change and
supports undo. Sessions can be exported to CSV, rendered as Org-mode text
and archived to SQLite.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./barjournal.yaml if present)")
}

const defaultConfigFile = "barjournal.yaml"

// loadConfig resolves the active configuration: the --config flag, then a
// project-local barjournal.yaml, then built-in defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.LoadFromFile(defaultConfigFile)
	}
	return config.Default(), nil
}

// openStore builds a store wired to the autosave file and restores the prior
// session if one exists. Restore failures are swallowed: the fresh in-memory
// session stays authoritative.
func openStore(cfg *config.Config) (*journal.Store, *journal.Autosaver, error) {
	saver := journal.NewAutosaver(cfg.Session.Path)
	debounce, err := cfg.Session.ParseDebounce()
	if err != nil {
		return nil, nil, fmt.Errorf("session.debounce: %w", err)
	}
	st := journal.NewStore(saver, debounce)
	_, _ = st.Restore(saver)
	return st, saver, nil
}
