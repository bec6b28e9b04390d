package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oxyfarm/aercomp/internal/config"
)

// newPresetsCmd creates the "presets" command group.
func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage named comparison scenarios",
	}
	cmd.AddCommand(newPresetsListCmd(), newPresetsShowCmd())
	return cmd
}

// newPresetsListCmd lists all preset names, built-ins and preset-dir files.
func newPresetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCommandConfig(cmd)
			if err != nil {
				return err
			}
			names, err := config.PresetNames(cfg.PresetDir)
			if err != nil {
				return err
			}
			for _, name := range names {
				cmd.Println(name)
			}
			return nil
		},
	}
}

// newPresetsShowCmd prints one preset as yaml.
func newPresetsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a preset scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCommandConfig(cmd)
			if err != nil {
				return err
			}
			preset, err := config.ResolvePreset(args[0], cfg.PresetDir)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(preset)
			if err != nil {
				return err
			}
			cmd.Print(string(out))
			return nil
		},
	}
}
