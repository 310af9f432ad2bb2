package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <run-dir>",
	Short: "Build an HTML gallery (and optionally a PDF contact sheet) for a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		path, err := report.WriteGallery(dir)
		if err != nil {
			return err
		}
		fmt.Println("Wrote", path)

		if pdf, _ := cmd.Flags().GetBool("pdf"); pdf {
			path, err := report.WriteContactSheet(dir)
			if err != nil {
				return err
			}
			fmt.Println("Wrote", path)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("pdf", false, "Also write a PDF contact sheet")
}
