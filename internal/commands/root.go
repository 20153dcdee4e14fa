package commands

import (
	"github.com/spf13/cobra"

	"optionalstruct-generator/internal/config"
)

// NewRootCmd builds the optionalstruct-gen command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optionalstruct-gen",
		Short: "Derive optional companion structs and their operations",
		Long: `optionalstruct-gen derives, for each configured struct, a partial
companion type whose fields are selectively optional, together with a
completeness predicate (CanBuild), a fallible conversion back to the
base type (Build) and an in-place merge (ApplyTo).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to the derivation manifest")

	cmd.AddCommand(newGenCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newDumpCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
