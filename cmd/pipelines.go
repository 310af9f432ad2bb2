package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/chartspec"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/pipeline"
)

var pipelinesCmd = &cobra.Command{
	Use:   "pipelines",
	Short: "List available pipelines and the chart kinds they support",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, pipeline.ChartPipelineName)
		for _, k := range chartspec.Kinds() {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	},
}
