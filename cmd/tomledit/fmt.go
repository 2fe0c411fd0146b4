package main

import (
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var originalOrder bool
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Round-trip a document through display or original-order rendering",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			doc, err := readDocument(cmd, file)
			if err != nil {
				return err
			}
			out := doc.String()
			if originalOrder {
				out = doc.StringInOriginalOrder()
			}
			if file == "" {
				return writeRaw(cmd, "", out)
			}
			return writeRaw(cmd, file, out)
		},
	}
	cmd.Flags().BoolVar(&originalOrder, "original-order", false, "render tables in source order instead of insertion order")
	return cmd
}
