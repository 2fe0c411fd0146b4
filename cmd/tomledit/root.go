package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd assembles the tomledit command tree: get/set/unset/sort/fmt,
// each built directly on the exported tomledit API rather than on
// flag-parsing boilerplate (cf. the teacher's internal/cli.Execute).
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tomledit",
		Short:         "Format-preserving TOML editing from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGetCmd(),
		newSetCmd(),
		newUnsetCmd(),
		newSortCmd(),
		newFmtCmd(),
	)
	return root
}
