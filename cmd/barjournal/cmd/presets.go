package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/barjournal/journal"
	"github.com/rustyeddy/barjournal/presets"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage category preset labels",
	Long: `Manage the preset label sets behind the four category panels.

Labels containing "()" are templates: adding one prompts for a detail, e.g.
"Decent bull bar()" journals as "Decent bull bar(inside)".

Subcommands:
  init - Write the built-in defaults to the presets file for editing
  show - Print the effective label sets`,
}

var presetsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in defaults to the presets file",
	Args:  cobra.NoArgs,
	RunE:  runPresetsInit,
}

var presetsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective label sets",
	Args:  cobra.NoArgs,
	RunE:  runPresetsShow,
}

var presetsForce bool

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsInitCmd)
	presetsCmd.AddCommand(presetsShowCmd)

	presetsInitCmd.Flags().BoolVarP(&presetsForce, "force", "f", false, "overwrite an existing presets file")
}

func runPresetsInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Presets.Path); err == nil && !presetsForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.Presets.Path)
	}

	if err := presets.Defaults().Save(cfg.Presets.Path); err != nil {
		return err
	}

	fmt.Printf("wrote default presets to %s\n", cfg.Presets.Path)
	return nil
}

func runPresetsShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sets := presets.Load(cfg.Presets.Path)
	for _, cat := range journal.Categories {
		fmt.Printf("%s:\n", cat)
		for _, label := range sets.List(cat) {
			fmt.Printf("  %s\n", label)
		}
	}
	return nil
}
