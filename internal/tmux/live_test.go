package tmux

import (
	"testing"

	"github.com/atomicstack/tmux-context-menu/internal/testutil"
)

func TestLiveServerSessionsAndWindows(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live tmux test in short mode")
	}
	t.Setenv("TMUX_PANE", "")
	srv := testutil.StartServer(t, "alpha")
	srv.NewSession("beta", "logs")

	snapshot, err := FetchSessions(srv.Socket)
	if err != nil {
		t.Fatalf("FetchSessions: %v", err)
	}
	if len(snapshot.Sessions) != 2 || snapshot.Sessions[0].Name != "alpha" || snapshot.Sessions[1].Name != "beta" {
		t.Fatalf("unexpected sessions %+v", snapshot.Sessions)
	}

	windows, err := SessionWindows(srv.Socket, "beta")
	if err != nil {
		t.Fatalf("SessionWindows: %v", err)
	}
	if len(windows) != 2 || windows[1].Name != "logs" {
		t.Fatalf("unexpected windows %+v", windows)
	}
}
