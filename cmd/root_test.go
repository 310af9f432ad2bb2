package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateFlagDefaults(t *testing.T) {
	defaults := map[string]string{
		"pipeline":    "PlotlyChartPipeline",
		"type":        "bar chart",
		"num_samples": "1",
		"language":    "English",
		"no-export":   "false",
		"output":      "output",
		"xlsx":        "false",
		"model":       "",
		"base-url":    "",
		"llm-config":  "",
		"profile":     "",
	}
	for name, want := range defaults {
		f := rootCmd.Flags().Lookup(name)
		if f == nil {
			t.Errorf("flag --%s not registered", name)
			continue
		}
		if f.DefValue != want {
			t.Errorf("flag --%s default = %q, want %q", name, f.DefValue, want)
		}
	}
}

func TestGenerateFlagShorthands(t *testing.T) {
	shorthands := map[string]string{
		"pipeline":    "p",
		"type":        "t",
		"num_samples": "n",
		"output":      "o",
	}
	for name, want := range shorthands {
		f := rootCmd.Flags().Lookup(name)
		if f == nil {
			t.Fatalf("flag --%s not registered", name)
		}
		if f.Shorthand != want {
			t.Errorf("flag --%s shorthand = %q, want %q", name, f.Shorthand, want)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"pipelines", "llm", "report", "version"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestPipelinesCommandOutput(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"pipelines"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"PlotlyChartPipeline", "bar", "grouped_bar", "line", "scatter", "area", "histogram"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("pipelines output missing %q:\n%s", want, out.String())
		}
	}
}

func TestLLMListCommandOutput(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"llm", "list", "--db", filepath.Join(t.TempDir(), "events.db")})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "No LLM events found.") {
		t.Errorf("llm list output not routed to the command writer:\n%s", out.String())
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"gpt-4o", 28, "gpt-4o"},
		{"a-very-long-model-name-that-overflows", 10, "a-very-lon"},
		{"日本語モデル名", 3, "日本語"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}
