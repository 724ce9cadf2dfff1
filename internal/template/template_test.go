package template

import (
	"testing"

	"github.com/d-kuro/snooze/pkg/models"
)

func TestProcessor_Render(t *testing.T) {
	result := models.ParseResult{
		Input:        "1m30s",
		Milliseconds: 90000,
		Duration:     "1m30s",
		Human:        "1 minute 30 seconds",
	}

	tests := []struct {
		name        string
		template    string
		expected    string
		expectError bool
	}{
		{
			name:     "milliseconds",
			template: "{{.Milliseconds}}",
			expected: "90000",
		},
		{
			name:     "input and duration",
			template: "{{.Input}} => {{.Duration}}",
			expected: "1m30s => 1m30s",
		},
		{
			name:     "seconds helper",
			template: "{{seconds .Milliseconds}}",
			expected: "90",
		},
		{
			name:     "minutes helper",
			template: "{{minutes .Milliseconds}}",
			expected: "1.5",
		},
		{
			name:     "upper helper",
			template: "{{upper .Human}}",
			expected: "1 MINUTE 30 SECONDS",
		},
		{
			name:        "unknown field",
			template:    "{{.Nope}}",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.template)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			got, err := p.Render(result)
			if tt.expectError {
				if err == nil {
					t.Errorf("Render() expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNew_InvalidTemplate(t *testing.T) {
	if _, err := New("{{.Milliseconds"); err == nil {
		t.Error("New() should fail for a malformed template")
	}
}
