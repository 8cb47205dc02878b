// Package testutil runs throwaway tmux servers for live tests.
package testutil

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// RequireTmux skips the calling test when tmux is not on PATH.
func RequireTmux(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("tmux")
	if err != nil {
		t.Skip("skipping: tmux binary not available")
	}
	return path
}

// Server is a temporary tmux server bound to its own socket.
type Server struct {
	Socket string
	t      *testing.T
}

// StartServer boots a tmux server with one detached session named first.
// The server is killed and its directory removed when the test ends.
func StartServer(t *testing.T, first string) *Server {
	t.Helper()
	RequireTmux(t)
	baseDir, err := os.MkdirTemp("/tmp", "tmux-context-menu-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(baseDir) })
	s := &Server{Socket: filepath.Join(baseDir, "tmux-test.sock"), t: t}
	if err := s.command("-f", "/dev/null", "new-session", "-d", "-s", first, "sleep", "600").Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	t.Cleanup(s.kill)
	return s
}

// NewSession adds a detached session with extra windows beyond the first.
func (s *Server) NewSession(name string, windows ...string) {
	s.t.Helper()
	if err := s.command("new-session", "-d", "-s", name, "sleep", "600").Run(); err != nil {
		s.t.Fatalf("new-session %s: %v", name, err)
	}
	for _, w := range windows {
		if err := s.command("new-window", "-d", "-t", name, "-n", w, "sleep", "600").Run(); err != nil {
			s.t.Fatalf("new-window %s in %s: %v", w, name, err)
		}
	}
}

func (s *Server) kill() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := killServerControl(ctx, s.Socket); err != nil {
		s.t.Logf("control-mode kill failed for socket %s: %v; falling back to tmux kill-server", s.Socket, err)
		_ = s.command("kill-server").Run()
	}
}

// command builds a tmux invocation isolated from any surrounding session.
func (s *Server) command(extra ...string) *exec.Cmd {
	args := append([]string{"-S", s.Socket}, extra...)
	cmd := exec.Command("tmux", args...)
	env := make([]string, 0, len(os.Environ())+2)
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "TMUX=") {
			continue
		}
		env = append(env, entry)
	}
	cmd.Env = append(env, "TMUX=", "TMUX_TMPDIR="+filepath.Dir(s.Socket))
	return cmd
}

func killServerControl(ctx context.Context, socket string) error {
	if strings.TrimSpace(socket) == "" {
		return errors.New("empty tmux socket path")
	}
	client, err := gotmux.NewTmuxWithOptions(socket, gotmux.WithContext(ctx))
	if err != nil {
		return err
	}
	defer client.Close()
	return client.KillServer()
}
