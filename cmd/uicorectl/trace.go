package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corewidgets/uicore/graph"
	"github.com/corewidgets/uicore/identity"
	"github.com/corewidgets/uicore/scope"
	"github.com/corewidgets/uicore/system"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Trace targeted event delivery: shows only the path-named blocks being entered",
	Run: func(cmd *cobra.Command, args []string) {
		sys := system.New()
		path := []identity.ID{identity.Value("toolbar"), identity.Value("save-button")}

		var entered []string
		err := sys.Dispatch(path, func(ctx scope.Context) {
			entered = append(entered, "leaf reached")
		})
		if err != nil {
			if _, ok := err.(*graph.ProgrammerError); ok {
				fmt.Printf("traversal rejected: %v\n", err)
				return
			}
			fmt.Printf("traversal error: %v\n", err)
			return
		}

		fmt.Println("Targeted delivery trace:")
		for _, hop := range path {
			fmt.Printf("  -> enter %v\n", identity.Capture(hop))
		}
		for _, e := range entered {
			fmt.Printf("  %s\n", e)
		}
	},
}
