package unit

import (
	"strings"
	"text/template"
)

// Unit bodies are rendered verbatim: no escaping, quoting, or line-wrapping
// is applied to field values. Values containing newlines or '=' pass through
// as-is; callers own quoting.

const serviceTemplate = `[Unit]
Description={{.Description}}
After=network.target

[Service]
Type=simple
User={{.User}}
WorkingDirectory={{.WorkingDir}}
ExecStart={{.Command}}
Restart=on-failure

[Install]
WantedBy=default.target
`

const timerTemplate = `[Unit]
Description=Timer for {{.Name}} service

[Timer]
OnCalendar={{.Timer}}
Persistent=true

[Install]
WantedBy=timers.target
`

var (
	serviceTmpl = template.Must(template.New("service").Parse(serviceTemplate))
	timerTmpl   = template.Must(template.New("timer").Parse(timerTemplate))
)

// RenderService returns the service unit body for req.
func RenderService(req Request) (string, error) {
	var sb strings.Builder
	if err := serviceTmpl.Execute(&sb, req); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderTimer returns the timer unit body for req.
func RenderTimer(req Request) (string, error) {
	var sb strings.Builder
	if err := timerTmpl.Execute(&sb, req); err != nil {
		return "", err
	}
	return sb.String(), nil
}
