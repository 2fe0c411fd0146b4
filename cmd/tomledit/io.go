package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	tomledit "github.com/ordian/toml-edit"
)

// readDocument loads and parses the TOML file named by path, or reads
// from cmd's stdin when path is empty. A leading "~" is resolved against
// the caller's home directory, as conn-castle-agent-layer resolves
// config paths.
func readDocument(cmd *cobra.Command, path string) (*tomledit.Document, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	doc, err := tomledit.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("tomledit: parse %s: %w", displayPath(path), err)
	}
	return doc, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(cmd.InOrStdin())
	}
	resolved, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("tomledit: resolve %s: %w", path, err)
	}
	return os.ReadFile(resolved)
}

// writeDocument renders doc (in original order, so an edit that touches
// one corner of a file doesn't reshuffle unrelated sections) back to
// path, or to cmd's stdout when path is empty.
func writeDocument(cmd *cobra.Command, path string, doc *tomledit.Document) error {
	return writeRaw(cmd, path, doc.StringInOriginalOrder())
}

// writeRaw writes out verbatim to path, or to cmd's stdout when path is
// empty, resolving a leading "~" as readDocument does.
func writeRaw(cmd *cobra.Command, path string, out string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
	resolved, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("tomledit: resolve %s: %w", path, err)
	}
	return os.WriteFile(resolved, []byte(out), 0o644)
}

func displayPath(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}

// splitPath splits a dotted CLI path argument ("a.b.c") into its
// segments. Unlike the library's splitDottedKey, it does not understand
// quoted segments containing dots — a CLI argument naming such a key is
// outside this tool's scope; the library's own Table.Index still handles
// it for callers driving the API directly.
func splitPath(path string) []string {
	return strings.Split(path, ".")
}
