package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/injectpreload/cmd/injectpreload"
	"github.com/arthur-debert/injectpreload/internal/version"
)

func main() {
	rootCmd := injectpreload.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "INJECTPRELOAD",
		Section: "1",
		Source:  "injectpreload " + version.Version,
		Manual:  "injectpreload manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
