// Where: autoshutdown/internal/app/render.go
// What: Output rendering for CLI results.
// Why: Support text, json, yaml and user templates with one code path.
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// render writes value using format when set, otherwise the named output.
// text is called for the text output.
func render(out io.Writer, value any, output, format string, text func()) error {
	if format != "" {
		return renderTemplate(out, format, value)
	}
	switch output {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	case outputText, "":
		text()
		return nil
	default:
		return fmt.Errorf("unsupported output: %s", output)
	}
}

func renderTemplate(out io.Writer, format string, value any) error {
	tmpl, err := template.New("format").Funcs(sprig.TxtFuncMap()).Parse(format)
	if err != nil {
		return fmt.Errorf("parse format: %w", err)
	}
	if err := tmpl.Execute(out, value); err != nil {
		return fmt.Errorf("render format: %w", err)
	}
	if !strings.HasSuffix(format, "\n") {
		fmt.Fprintln(out)
	}
	return nil
}
