package cli

import (
	"os"

	"github.com/menoncello/nimata-sub006/pkg/style"
	"github.com/menoncello/nimata-sub006/pkg/ui"
)

// newRenderer picks the display renderer for stdout: styled output on a
// color terminal, plain text when piped, redirected, or NO_COLOR is set.
func newRenderer() style.Renderer {
	return rendererFor(ui.DetectFormat(os.Stdout))
}

func rendererFor(format ui.Format) style.Renderer {
	if format == ui.FormatTerminal {
		return style.NewTerminalRenderer()
	}
	return style.NewPlainRenderer()
}
