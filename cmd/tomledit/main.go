// Command tomledit is a small front end over the tomledit library: each
// subcommand exercises one corner of the edit API (read, write, remove,
// sort, round-trip) instead of being a library unto itself.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
