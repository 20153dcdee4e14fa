package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the manifest and derive everything without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			return runCheck(cmd, configPath)
		},
	}
}

func runCheck(cmd *cobra.Command, configPath string) error {
	m, err := loadManifest(configPath)
	if err != nil {
		return err
	}

	_, artifacts, diags := deriveAll(m)

	for _, w := range diags.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), w.String())
	}

	for _, e := range diags.Errors {
		fmt.Fprintln(cmd.ErrOrStderr(), e.String())
	}

	if diags.HasErrors() {
		return errors.New("check failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d types derive cleanly\n", len(artifacts))

	return nil
}
