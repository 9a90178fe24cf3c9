package style

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/menoncello/nimata-sub006/pkg/validate"
)

// Status types for templates and scaffold actions
type Status string

const (
	StatusSuccess Status = "success" // Rendered/written successfully
	StatusError   Status = "error"   // Render/write failed
	StatusWarning Status = "warning" // Succeeded with findings
	StatusPending Status = "pending" // Planned but not executed yet
	StatusSkipped Status = "skipped" // Deliberately not executed
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case StatusWarning:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusPending:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Indicator returns the one-character marker for a status
func Indicator(status Status) string {
	switch status {
	case StatusSuccess:
		return SuccessIndicator
	case StatusError:
		return ErrorIndicator
	case StatusWarning:
		return WarningIndicator
	case StatusPending:
		return PendingIndicator
	default:
		return InfoIndicator
	}
}

// SeverityStatus maps a validation severity to a display status
func SeverityStatus(severity validate.Severity) Status {
	if severity == validate.SeverityError {
		return StatusError
	}
	return StatusWarning
}

// RenderStatusLine renders a single "badge : subject : detail" line, the
// shape used for per-template and per-action rows
func RenderStatusLine(status Status, subject, detail string) string {
	badge := StatusStyle(status).Sprint(fmt.Sprintf("%-8s", status))

	subject = fmt.Sprintf("%-20s", subject)

	if detail == "" {
		return fmt.Sprintf("    %s : %s", badge, subject)
	}
	return fmt.Sprintf("    %s : %s : %s", badge, subject, detail)
}
