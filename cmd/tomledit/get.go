package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	tomledit "github.com/ordian/toml-edit"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> [file]",
		Short: "Print the value at a dotted path",
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
			if node.IsNone() {
				return fmt.Errorf("tomledit: %s: no such key", path)
			}
			return printItem(cmd, node)
		},
	}
	return cmd
}

func printItem(cmd *cobra.Command, node *tomledit.Node) error {
	switch node.Kind() {
	case tomledit.ItemValue:
		v, _ := node.AsValue()
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("%s", tomledit.RenderValue(v)))
	case tomledit.ItemTable:
		t, _ := node.AsTable()
		for _, k := range t.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), color.CyanString(k))
		}
	case tomledit.ItemArrayOfTables:
		a, _ := node.AsArrayOfTables()
		fmt.Fprintln(cmd.OutOrStdout(), color.CyanString("array of %d tables", a.Len()))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("<none>"))
	}
	return nil
}
