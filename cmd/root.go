package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pixmo-docs",
	Short: "Generate synthetic chart images with LLM-written annotations",
	Long: `pixmo-docs generates synthetic chart datasets: an LLM invents a persona,
the underlying data, and a caption; the chart is rendered locally and the
results are exported as PNG images plus a JSONL annotation file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PIXMO_DB env var)")

	rootCmd.Flags().StringP("pipeline", "p", "PlotlyChartPipeline", "Pipeline to run")
	rootCmd.Flags().StringP("type", "t", "bar chart", "Kind of chart to generate (e.g. \"bar chart\", \"line chart\")")
	rootCmd.Flags().IntP("num_samples", "n", 1, "Number of samples to generate")
	rootCmd.Flags().String("language", "English", "Language the persona, data and caption are written in")
	rootCmd.Flags().Bool("no-export", false, "Generate without writing any files")
	rootCmd.Flags().StringP("output", "o", "output", "Base directory for run output")
	rootCmd.Flags().Bool("xlsx", false, "Also write the data tables as an Excel workbook")

	rootCmd.Flags().String("model", "", "Model to use (overrides the selected profile)")
	rootCmd.Flags().String("base-url", "", "OpenAI-compatible API base URL (overrides the selected profile)")
	rootCmd.Flags().String("llm-config", "", "Path to the LLM profile YAML file")
	rootCmd.Flags().String("profile", "", "Named profile from the LLM config file")

	rootCmd.AddCommand(pipelinesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PIXMO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
