package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tomledit "github.com/ordian/toml-edit"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <value> [file]",
		Short: "Assign value at a dotted path, auto-vivifying as needed",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, raw := args[0], args[1]
			var file string
			if len(args) > 2 {
				file = args[2]
			}
			doc, err := readDocument(cmd, file)
			if err != nil {
				return err
			}
			v, err := parseScalarLiteral(raw)
			if err != nil {
				return fmt.Errorf("tomledit: %s: %w", raw, err)
			}
			keys := splitPath(path)
			node := doc.Root().Path(keys...)
			if err := node.Err(); err != nil {
				return err
			}
			if err := node.SetValue(v); err != nil {
				return err
			}
			// A table vivified on the way now holds the value directly, so
			// it gets a header of its own to keep the value inside it.
			if len(keys) > 1 {
				parent, ok := doc.Root().Path(keys[:len(keys)-1]...).AsTable()
				if ok && parent.Implicit() && !parent.Dotted() {
					parent.SetImplicit(false)
				}
			}
			return writeDocument(cmd, file, doc)
		},
	}
	return cmd
}

// parseScalarLiteral decodes raw the way a TOML value literal would
// appear on the right-hand side of `x = `, by parsing a throwaway
// one-line document through the same parser the library uses for real
// documents — rather than hand-rolling a second scalar grammar for the
// CLI.
func parseScalarLiteral(raw string) (tomledit.Value, error) {
	doc, err := tomledit.Parse([]byte("x = " + raw + "\n"))
	if err != nil {
		return nil, err
	}
	v, ok := doc.Root().Get("x").AsValue()
	if !ok {
		return nil, fmt.Errorf("not a value literal")
	}
	v.Decor().SetPrefix("")
	v.Decor().SetSuffix("")
	return v, nil
}
