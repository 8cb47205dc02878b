package main

import (
	"testing"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/app"
	"github.com/atomicstack/tmux-context-menu/internal/config"
)

func TestProbeTerminalsCoversStandardDescriptors(t *testing.T) {
	info := probeTerminals()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			SocketPath:   "socket-path",
			Width:        80,
			Height:       24,
			PollInterval: 2 * time.Second,
			MouseMotion:  true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"socket":      "socket-path",
			"width":       "80",
			"height":      "24",
			"poll":        "2s",
			"mouseMotion": "true",
		},
		Args: []string{"--socket", "socket-path"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["socket"] != "socket-path" {
		t.Fatalf("expected socket flag %q, got %v", "socket-path", flagsValue["socket"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["poll"] != "2s" {
		t.Fatalf("expected poll 2s, got %v", flagsValue["poll"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["mouseMotion"] != "true" {
		t.Fatalf("expected mouse motion flag true, got %v", flagsValue["mouseMotion"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(terminalInfo); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if env, ok := payload["tmux"].(map[string]string); !ok {
		t.Fatalf("expected tmux environment in payload")
	} else if _, ok := env["TMUX_PANE"]; !ok {
		t.Fatalf("expected TMUX_PANE key, got %v", env)
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
