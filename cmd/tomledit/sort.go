package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <path> [file]",
		Short: "Sort the immediate value entries of the table at path by key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var file string
			if len(args) > 1 {
				file = args[1]
			}
			doc, err := readDocument(cmd, file)
			if err != nil {
				return err
			}
			node := doc.Root().Path(splitPath(path)...)
			if err := node.Err(); err != nil {
				return err
			}
			t, ok := node.AsTable()
			if !ok {
				return fmt.Errorf("tomledit: %s: not a table", path)
			}
			t.SortValues()
			return writeDocument(cmd, file, doc)
		},
	}
	return cmd
}
