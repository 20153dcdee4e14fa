package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"optionalstruct-generator/internal/gen"
)

type genOptions struct {
	dryRun bool
}

func newGenCmd() *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Derive partial structs and write the generated file",
		Example: `  # Generate using ./optionalstruct.yaml
  optionalstruct-gen gen

  # Preview without writing
  optionalstruct-gen gen --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			return runGen(cmd, configPath, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the generated file instead of writing it")

	return cmd
}

func runGen(cmd *cobra.Command, configPath string, opts *genOptions) error {
	m, err := loadManifest(configPath)
	if err != nil {
		return err
	}

	pkg, artifacts, diags := deriveAll(m)

	for _, w := range diags.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), w.String())
	}

	if diags.HasErrors() {
		for _, e := range diags.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), e.String())
		}

		return fmt.Errorf("derivation failed for %d of %d types", len(diags.Errors), len(m.Derive))
	}

	file, err := gen.RenderFile(m.Output, pkg.Name(), artifacts)
	if err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprint(cmd.OutOrStdout(), string(file.Content))
		return nil
	}

	if err := gen.WriteFile(file, pkg.Dir()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d types)\n", file.Filename, len(artifacts))

	return nil
}
