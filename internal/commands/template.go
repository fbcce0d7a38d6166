package commands

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

var templateFuncs = sprig.TxtFuncMap()

// ExpandTemplate renders tmplStr against data, which templates reach through
// {{ .Field }}.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return sb.String(), nil
}

// expandInputTemplate renders one command config value for the current
// actor, room and inputs. Plain strings pass through untouched.
func expandInputTemplate(tmplStr string, ctx *ConfigContext) (string, error) {
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}
	return ExpandTemplate(tmplStr, ctx)
}
