package scaffold

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/mrexodia/devdocs-cli/pkg/templates"
)

var hookTemplate = template.Must(template.New("hook").Parse(`// Generated by devdocs from instruction templates {{.Version}}. Do not edit.
import type { HookAPI } from "@mariozechner/pi-coding-agent/hooks";

export default function (pi: HookAPI) {
{{- range .Commands}}
  pi.registerCommand({{.Name}}, {
    description: {{.Description}},
    handler: async ({{if .Usage}}args{{else}}_args{{end}}, ctx) => {
{{- if .Usage}}
      if (!args.trim()) {
        ctx.ui.notify({{.Usage}}, "warning");
        return;
      }
{{- end}}
      pi.sendMessage({
        customType: {{$.CustomType}},
        content: ` + "`{{.Content}}`" + `,
        display: true,
      }, { triggerTurn: true });
    }
  });
{{- end}}
}
`))

type hookCommand struct {
	Name        string
	Description string
	Usage       string
	Content     string
}

// GenerateHook renders a pi hook script that registers every command in cat with the
// same wording, argument policy, and custom type as the Go dispatcher.
func GenerateHook(cat *templates.Catalog, customType string) (string, error) {
	if customType == "" {
		customType = "devdocs"
	}

	data := struct {
		Version    string
		CustomType string
		Commands   []hookCommand
	}{
		Version:    cat.Version(),
		CustomType: jsString(customType),
	}

	for _, e := range cat.Entries() {
		cmd := hookCommand{
			Name:        jsString(e.Name),
			Description: jsString(e.Description),
			Content:     templateLiteral(e.Body),
		}
		if e.TakesArgument() {
			cmd.Usage = jsString("Usage: /" + e.Name + " " + e.Placeholder)
		}
		data.Commands = append(data.Commands, cmd)
	}

	var buf bytes.Buffer
	if err := hookTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// templateLiteral escapes body for a JS template literal and turns each
// argument insertion point into ${args}.
func templateLiteral(body string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		"`", "\\`",
		"${", "\\${",
		templates.ArgToken, "${args}",
	)
	return r.Replace(body)
}

// jsString quotes s as a JS string literal. HTML escaping stays off so usage
// placeholders like <topic> remain readable.
func jsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
