package main

import (
	"fmt"
	"os"

	"github.com/dreamness-dnalm/pixmo-docs-custom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
