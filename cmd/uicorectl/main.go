// Command uicorectl is a small inspection CLI over the core runtime: it
// builds a demo layout/data tree in-process and lets you dump its resolved
// geometry, trace targeted event delivery through it, and validate the
// layout cacher's soundness invariants against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uicorectl",
	Short: "Inspect and exercise the core runtime's data graph, layout, and event plumbing",
}

func main() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(traceCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
