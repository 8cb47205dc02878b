package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/tmux-context-menu/internal/app"
	"github.com/atomicstack/tmux-context-menu/internal/config"
	"github.com/atomicstack/tmux-context-menu/internal/logging"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records how the menu was launched: flags, working
// directory, the tmux environment it inherited and the terminal it drew on.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tmux": map[string]string{
			"TMUX":      os.Getenv("TMUX"),
			"TMUX_PANE": os.Getenv("TMUX_PANE"),
		},
		"tty": probeTerminals(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalInfo struct {
	// Size is taken from the first descriptor that reports one.
	Size   *terminalSize   `json:"size,omitempty"`
	Probes []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Error      string `json:"error,omitempty"`
}

func probeTerminals() terminalInfo {
	descriptors := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	var info terminalInfo
	for _, d := range descriptors {
		probe := terminalProbe{Name: d.name}
		fd := int(d.file.Fd())
		if term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				probe.Error = err.Error()
			case info.Size == nil:
				info.Size = &terminalSize{Source: d.name, Width: width, Height: height}
			}
		}
		info.Probes = append(info.Probes, probe)
	}
	return info
}
