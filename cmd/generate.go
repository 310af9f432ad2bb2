package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/llm"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/pipeline"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/runner"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/store"
)

// runGenerate wires the store, provider and pipeline together and runs
// the generation loop.
func runGenerate(cmd *cobra.Command) error {
	ctx := cmd.Context()

	pipelineName, _ := cmd.Flags().GetString("pipeline")
	chartType, _ := cmd.Flags().GetString("type")
	numSamples, _ := cmd.Flags().GetInt("num_samples")
	language, _ := cmd.Flags().GetString("language")
	noExport, _ := cmd.Flags().GetBool("no-export")
	outputDir, _ := cmd.Flags().GetString("output")
	xlsx, _ := cmd.Flags().GetBool("xlsx")

	cfg := llm.ConfigFromEnv()
	if m, _ := cmd.Flags().GetString("model"); m != "" {
		cfg.Model = m
	}
	if u, _ := cmd.Flags().GetString("base-url"); u != "" {
		cfg.BaseURL = u
	}
	if p, _ := cmd.Flags().GetString("llm-config"); p != "" {
		cfg.ProfilePath = p
	}
	if n, _ := cmd.Flags().GetString("profile"); n != "" {
		cfg.ProfileName = n
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Request logging is best-effort: a broken database should not stop
	// a generation run.
	var eventRepo store.EventRepo
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		if st, openErr := store.Open(dbPath); openErr == nil {
			defer st.Close()
			eventRepo = st.EventRepo()
		} else {
			fmt.Fprintf(os.Stderr, "warning: LLM request log disabled: %v\n", openErr)
		}
	} else {
		fmt.Fprintf(os.Stderr, "warning: LLM request log disabled: %v\n", err)
	}

	provider, err := llm.NewProvider(cfg, eventRepo)
	if err != nil {
		return err
	}

	reg := pipeline.NewRegistry()
	reg.Register(pipeline.NewChartPipeline(provider, pipeline.DefaultConfig()))
	p, err := reg.Get(pipelineName)
	if err != nil {
		return err
	}

	res, err := runner.Run(ctx, p, runner.Options{
		ChartType:  chartType,
		Language:   language,
		NumSamples: numSamples,
		NoExport:   noExport,
		OutputDir:  outputDir,
		XLSX:       xlsx,
		Progress:   os.Stderr,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d/%d samples in %s\n", res.Succeeded, res.Requested, res.Elapsed.Round(time.Millisecond))
	if res.Failed > 0 {
		fmt.Printf("%d samples failed; see warnings above\n", res.Failed)
	}
	if res.RunDir != "" {
		fmt.Printf("Output: %s\n", res.RunDir)
	}
	return nil
}
