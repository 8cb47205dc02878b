package testutil

import "testing"

func TestStartServerLifecycle(t *testing.T) {
	s := StartServer(t, "first")
	s.NewSession("second", "logs")
	if err := s.command("has-session", "-t", "second").Run(); err != nil {
		t.Fatalf("expected second session: %v", err)
	}
}
