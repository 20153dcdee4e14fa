package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"optionalstruct-generator/internal/analyze"
	"optionalstruct-generator/internal/derive"
)

type dumpOptions struct {
	typeName string
}

func newDumpCmd() *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the derivation artifacts for one type",
		Long: `Dump loads the manifest, derives the partial schema for a single
type and prints the raw artifacts (schemas, classification results and
operation fragments). Intended for debugging the derivation itself.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			return runDump(cmd, configPath, opts)
		},
	}

	cmd.Flags().StringVar(&opts.typeName, "type", "", "Base type to dump (required)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runDump(cmd *cobra.Command, configPath string, opts *dumpOptions) error {
	m, err := loadManifest(configPath)
	if err != nil {
		return err
	}

	var params derive.Params

	found := false

	for _, d := range m.Derive {
		if d.Type == opts.typeName {
			params = derive.Params{Name: d.Name, Wrap: d.Wrap, Tags: m.Tags}
			found = true

			break
		}
	}

	if !found {
		return fmt.Errorf("type %s is not listed in the manifest", opts.typeName)
	}

	pkg, err := analyze.LoadPackage(m.Package)
	if err != nil {
		return err
	}

	source, err := pkg.Schema(opts.typeName)
	if err != nil {
		return err
	}

	artifacts, err := derive.Derive(source, params)
	if err != nil {
		return err
	}

	spew.Fdump(cmd.OutOrStdout(), artifacts)

	return nil
}
