package main

import (
	"fmt"
	"os"

	"github.com/menoncello/nimata-sub006/internal/cli"
	"github.com/menoncello/nimata-sub006/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewTerminalRenderer()
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
