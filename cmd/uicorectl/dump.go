package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corewidgets/uicore/layout"
)

var dumpWidth, dumpHeight int

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Resolve the demo layout tree and dump each node's assigned region as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		tree := newDemoTree()
		tree.resolve(layout.Scalar(dumpWidth), layout.Scalar(dumpHeight))

		dump := map[string]any{
			"fixed":  regionOf(tree.fixed.Cache),
			"grower": regionOf(tree.grower.Cache),
		}
		out, _ := json.MarshalIndent(dump, "", "  ")
		fmt.Println(string(out))
	},
}

func regionOf(c *layout.Cacher) map[string]any {
	a, ok := c.LastAssignment()
	if !ok {
		return map[string]any{"resolved": false}
	}
	return map[string]any{
		"resolved": true,
		"x":        a.Region.Origin.X,
		"y":        a.Region.Origin.Y,
		"width":    a.Region.Size.X,
		"height":   a.Region.Size.Y,
		"baseline": a.Baseline,
	}
}

func init() {
	dumpCmd.Flags().IntVar(&dumpWidth, "width", 40, "assigned width to resolve the demo tree against")
	dumpCmd.Flags().IntVar(&dumpHeight, "height", 3, "assigned height to resolve the demo tree against")
}
