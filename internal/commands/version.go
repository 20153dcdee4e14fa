package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"optionalstruct-generator/internal/gen"
)

// Version is overridable at link time.
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", gen.ToolName, Version)
		},
	}
}
