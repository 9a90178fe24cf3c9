package style

import (
	"strings"
	"testing"

	"github.com/menoncello/nimata-sub006/pkg/validate"
)

func TestStatusStyle(t *testing.T) {
	// Every status must resolve to a usable style
	statuses := []Status{StatusSuccess, StatusError, StatusWarning, StatusPending, StatusSkipped, Status("bogus")}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			style := StatusStyle(status)
			if style == nil {
				t.Fatalf("Expected a style for status %q", status)
			}
			if !strings.Contains(style.Sprint("text"), "text") {
				t.Errorf("Expected styled output to contain the text for status %q", status)
			}
		})
	}
}

func TestIndicator(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected string
	}{
		{name: "success", status: StatusSuccess, expected: SuccessIndicator},
		{name: "error", status: StatusError, expected: ErrorIndicator},
		{name: "warning", status: StatusWarning, expected: WarningIndicator},
		{name: "pending", status: StatusPending, expected: PendingIndicator},
		{name: "skipped", status: StatusSkipped, expected: InfoIndicator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Indicator(tt.status); got != tt.expected {
				t.Errorf("Expected indicator %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSeverityStatus(t *testing.T) {
	if got := SeverityStatus(validate.SeverityError); got != StatusError {
		t.Errorf("Expected error severity to map to StatusError, got %q", got)
	}
	if got := SeverityStatus(validate.SeverityWarning); got != StatusWarning {
		t.Errorf("Expected warning severity to map to StatusWarning, got %q", got)
	}
}

func TestRenderStatusLine(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		subject  string
		detail   string
		contains []string
	}{
		{
			name:     "error with detail",
			status:   StatusError,
			subject:  "name",
			detail:   "required variable is missing",
			contains: []string{"error", "name", "required variable is missing"},
		},
		{
			name:     "warning with detail",
			status:   StatusWarning,
			subject:  "extra",
			detail:   "never referenced",
			contains: []string{"warning", "extra", "never referenced"},
		},
		{
			name:     "no detail drops the trailing column",
			status:   StatusSuccess,
			subject:  "readme",
			contains: []string{"success", "readme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderStatusLine(tt.status, tt.subject, tt.detail)
			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("Expected output to contain %q, got %q", expected, result)
				}
			}
			if tt.detail == "" && strings.HasSuffix(strings.TrimSpace(result), ":") {
				t.Errorf("Expected no trailing separator without detail, got %q", result)
			}
		})
	}
}
