package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.PollInterval != 1500*time.Millisecond {
		t.Fatalf("expected default poll 1.5s, got %s", cfg.App.PollInterval)
	}
	if !cfg.App.MouseMotion {
		t.Fatalf("mouse motion should default to on")
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"TMUX_CONTEXT_MENU_SOCKET=/env/sock",
		"TMUX_CONTEXT_MENU_WIDTH=100",
		"TMUX_CONTEXT_MENU_POLL=3s",
		"TMUX_CONTEXT_MENU_TRACE=true",
		"TMUX_CONTEXT_MENU_MOUSE_MOTION=false",
		"malformed",
	}
	cfg, err := LoadArgs([]string{"-socket", "/flag/sock", "-poll", "250ms"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.SocketPath != "/flag/sock" {
		t.Fatalf("flag should override env socket, got %q", cfg.App.SocketPath)
	}
	if cfg.App.Width != 100 {
		t.Fatalf("expected env width 100, got %d", cfg.App.Width)
	}
	if cfg.App.PollInterval != 250*time.Millisecond {
		t.Fatalf("expected flag poll 250ms, got %s", cfg.App.PollInterval)
	}
	if !cfg.Logging.Trace || cfg.App.MouseMotion {
		t.Fatalf("expected env booleans applied, got trace=%v motion=%v", cfg.Logging.Trace, cfg.App.MouseMotion)
	}
	if cfg.Flags["poll"] != "250ms" || cfg.Flags["socket"] != "/flag/sock" {
		t.Fatalf("unexpected flag snapshot %v", cfg.Flags)
	}
}

func TestLoadArgsIgnoresInvalidEnv(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"TMUX_CONTEXT_MENU_HEIGHT=tall", "TMUX_CONTEXT_MENU_POLL=soon"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.PollInterval != 1500*time.Millisecond {
		t.Fatalf("invalid env values should fall back, got %+v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil || !strings.Contains(err.Error(), "width") {
		t.Fatalf("expected width error, got %v", err)
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil || !strings.Contains(err.Error(), "height") {
		t.Fatalf("expected height error, got %v", err)
	}
}

func TestValidateRejectsNonPositivePoll(t *testing.T) {
	cfg, err := LoadArgs([]string{"-poll", "0s"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected poll validation error")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected parse error for unknown flag")
	}
}
