package main

import (
	"github.com/spf13/cobra"

	"github.com/justinpbarnett/panedock/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var asTOML bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *opts)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg, asTOML)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&asTOML, "toml", false, "print TOML instead of YAML")
	return cmd
}
