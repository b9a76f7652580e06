package main

import (
	"os"

	"github.com/arthur-debert/injectpreload/cmd/injectpreload"
	"github.com/arthur-debert/injectpreload/pkg/output"
)

func main() {
	rootCmd := injectpreload.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		format := output.DetectFormat(os.Stderr)
		_ = output.NewRenderer(os.Stderr, format, noColor).RenderError(err)
		os.Exit(1)
	}
}
