package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justinpbarnett/panedock/internal/ui/panels"
	"github.com/justinpbarnett/panedock/internal/update"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for a newer release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "panedock version %s\n", panels.Version)

			if panels.Version == "dev" {
				fmt.Fprintln(out, "Development build, update check skipped.")
				return nil
			}

			rel, err := update.NewChecker().Check(cmd.Context(), panels.Version)
			switch {
			case err != nil:
				fmt.Fprintf(out, "Update check failed: %v\n", err)
			case rel != nil:
				fmt.Fprintf(out, "Update available: v%s. Run \"panedock update\" to install.\n", rel.Version)
			default:
				fmt.Fprintln(out, "You are up to date.")
			}
			return nil
		},
	}
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Replace this binary with the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rel, err := update.NewChecker().Apply(cmd.Context(), panels.Version)
			if errors.Is(err, update.ErrDevBuild) {
				return err
			}
			if err != nil {
				return fmt.Errorf("updating panedock: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated to v%s.\n", rel.Version)
			return nil
		},
	}
}
