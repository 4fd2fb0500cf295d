package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestHistoryModel(t *testing.T) {
	store := openStore(t)
	for _, steps := range []int{4, 12, 7} {
		run := core.RunSummary{GameID: "stub", Waves: 1, Steps: steps, Seconds: 2, Outcome: "landed"}
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewHistoryModel(store, "stub", 100, 30)

	if rows := m.table.Rows(); len(rows) != 3 {
		t.Fatalf("table has %d rows, expected 3", len(rows))
	}
	if m.best == nil || m.best.Steps != 12 {
		t.Errorf("best = %+v, expected the 12-step run", m.best)
	}

	view := m.View()
	if !strings.Contains(view, "RUN HISTORY - Stub") {
		t.Error("View() should show the game title")
	}
	if !strings.Contains(view, "Longest run: 12 steps") {
		t.Error("View() should show the longest run")
	}
}

func TestHistoryModelClear(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(core.RunSummary{GameID: "stub", Steps: 3, Outcome: "quit"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewHistoryModel(store, "stub", 100, 30)
	next, _ := m.Update(runeKey('x'))
	m = next.(HistoryModel)

	if len(m.table.Rows()) != 0 || m.best != nil {
		t.Errorf("after clear rows = %d, best = %+v", len(m.table.Rows()), m.best)
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("View() should show the empty message")
	}
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(nil, "", 80, 24)

	next, cmd := m.Update(runeKey('q'))
	m = next.(HistoryModel)

	if !m.quitting || cmd == nil {
		t.Error("q should quit the history browser")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}
