package unit

import (
	"strings"
	"testing"
)

func TestRenderService(t *testing.T) {
	req := Request{
		Name:        "foo",
		WorkingDir:  "/tmp",
		Command:     "/usr/bin/echo hi",
		Description: DefaultDescription,
		User:        "alice",
	}

	body, err := RenderService(req)
	if err != nil {
		t.Fatalf("RenderService: %v", err)
	}

	want := `[Unit]
Description=A custom systemd service
After=network.target

[Service]
Type=simple
User=alice
WorkingDirectory=/tmp
ExecStart=/usr/bin/echo hi
Restart=on-failure

[Install]
WantedBy=default.target
`
	if body != want {
		t.Errorf("service body = %q, want %q", body, want)
	}
}

func TestRenderTimer(t *testing.T) {
	req := Request{
		Name:     "foo",
		Timer:    "*-*-* 14:00:00",
		TimerSet: true,
	}

	body, err := RenderTimer(req)
	if err != nil {
		t.Fatalf("RenderTimer: %v", err)
	}

	want := `[Unit]
Description=Timer for foo service

[Timer]
OnCalendar=*-*-* 14:00:00
Persistent=true

[Install]
WantedBy=timers.target
`
	if body != want {
		t.Errorf("timer body = %q, want %q", body, want)
	}
}

func TestRenderService_VerbatimValues(t *testing.T) {
	// Values are written through untouched, including characters that are
	// meaningful to systemd's parser. Documented limitation, not a bug.
	req := Request{
		Name:        "edge",
		WorkingDir:  "/srv/app",
		Command:     `/bin/sh -c "echo a=b"`,
		Description: "has = and spaces",
		User:        "bob",
	}

	body, err := RenderService(req)
	if err != nil {
		t.Fatalf("RenderService: %v", err)
	}

	for _, line := range []string{
		"Description=has = and spaces",
		`ExecStart=/bin/sh -c "echo a=b"`,
	} {
		if !strings.Contains(body, line+"\n") {
			t.Errorf("service body missing line %q:\n%s", line, body)
		}
	}
}

func TestRenderService_Deterministic(t *testing.T) {
	req := Request{
		Name:        "det",
		WorkingDir:  "/opt/det",
		Command:     "/opt/det/run",
		Description: "deterministic",
		User:        "carol",
	}

	first, err := RenderService(req)
	if err != nil {
		t.Fatalf("RenderService: %v", err)
	}
	second, err := RenderService(req)
	if err != nil {
		t.Fatalf("RenderService: %v", err)
	}
	if first != second {
		t.Error("expected identical output for identical requests")
	}
}
