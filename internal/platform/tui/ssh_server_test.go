package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestSSHServerShutdownClosesStore(t *testing.T) {
	dir := t.TempDir()
	cfg := SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "keys", "host_key"),
		DBPath:      filepath.Join(dir, "runs.db"),
		GameID:      "stub",
		TickRate:    60,
		IdleTimeout: time.Minute,
	}

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Fatal("server should have opened the run database")
	}

	run := core.RunSummary{GameID: "stub", Steps: 1, Outcome: "quit"}
	if _, err := srv.store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() before shutdown failed: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() = %v, expected nil", err)
	}
	if _, err := srv.store.SaveRun(run); err == nil {
		t.Error("store should be closed once the server has drained")
	}
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "missing"

	if _, err := NewSSHServer(cfg, log.New(io.Discard)); err == nil {
		t.Error("NewSSHServer() should reject an unknown game")
	}
}
