package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/menoncello/nimata-sub006/internal/cli"
	"github.com/menoncello/nimata-sub006/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "NIMATA",
		Section: "1",
		Source:  "nimata " + version.Version,
		Manual:  "nimata manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
