package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <path> [file]",
		Short: "Remove the entry at a dotted path",
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
			keys := splitPath(path)
			parent := doc.Root()
			if len(keys) > 1 {
				node := doc.Root().Path(keys[:len(keys)-1]...)
				if err := node.Err(); err != nil {
					return err
				}
				t, ok := node.AsTable()
				if !ok {
					return fmt.Errorf("tomledit: %s: parent is not a table", path)
				}
				parent = t
			}
			last := keys[len(keys)-1]
			if parent.Entry(last).IsNone() {
				return fmt.Errorf("tomledit: %s: no such key", path)
			}
			parent.Remove(last)
			return writeDocument(cmd, file, doc)
		},
	}
	return cmd
}
