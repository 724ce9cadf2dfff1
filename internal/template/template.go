// Package template provides output template processing for parse results.
package template

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/d-kuro/snooze/pkg/models"
)

// funcs are the helpers available inside a format template.
var funcs = template.FuncMap{
	"seconds": func(ms int64) float64 {
		return float64(ms) / 1000
	},
	"minutes": func(ms int64) float64 {
		return float64(ms) / 60000
	},
	"until": func(ms int64) string {
		return time.Now().Add(time.Duration(ms) * time.Millisecond).Format(time.RFC3339)
	},
	"upper": strings.ToUpper,
}

// Processor renders parse results with a user supplied template.
type Processor struct {
	template *template.Template
}

// New creates a new template processor.
func New(templateStr string) (*Processor, error) {
	tmpl, err := template.New("result").Funcs(funcs).Option("missingkey=error").Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &Processor{template: tmpl}, nil
}

// Render executes the template for one result.
func (p *Processor) Render(result models.ParseResult) (string, error) {
	var buf strings.Builder
	if err := p.template.Execute(&buf, result); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
