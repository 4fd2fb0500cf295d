package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// stubGame ends after overAt steps and reports every run.
type stubGame struct {
	steps  int
	overAt int
	resets int
	fired  int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.resets++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if g.over() {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionFire) {
		g.fired++
	}
	g.steps++
	return core.StepResult{State: g.State(), Moved: true}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "STUB")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Wave: 1, Steps: g.steps, GameOver: g.over()}
}

func (g *stubGame) over() bool {
	return g.overAt > 0 && g.steps >= g.overAt
}

func (g *stubGame) RunSummary() core.RunSummary {
	outcome := "quit"
	if g.over() {
		outcome = "landed"
	}
	return core.RunSummary{GameID: "stub", Waves: 1, Steps: g.steps, Seconds: 1.5, Outcome: outcome}
}

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, game *stubGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func recentRuns(t *testing.T, store *storage.Store) []storage.RunEntry {
	t.Helper()
	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	return runs
}

func TestModelRecordsRunOnGameOver(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAt: 3}
	m := newTestModel(t, game, store)

	for i := 0; i < 6; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	runs := recentRuns(t, store)
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, expected exactly 1", len(runs))
	}
	if runs[0].Steps != 3 || runs[0].Outcome != "landed" {
		t.Errorf("recorded run = %+v", runs[0])
	}
}

func TestModelRecordsRunOnQuit(t *testing.T) {
	store := openStore(t)
	game := &stubGame{}
	m := newTestModel(t, game, store)

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, runeKey('q'))

	if !m.quitting || cmd == nil {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}

	runs := recentRuns(t, store)
	if len(runs) != 1 || runs[0].Outcome != "quit" || runs[0].Steps != 2 {
		t.Errorf("recorded runs = %+v", runs)
	}
}

func TestModelSkipsRunWithoutSteps(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, &stubGame{}, store)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if runs := recentRuns(t, store); len(runs) != 0 {
		t.Errorf("recorded %d runs, expected none", len(runs))
	}
}

func TestModelFireKey(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(t, game, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if game.fired != 1 {
		t.Errorf("fired = %d, expected 1 (input is cleared after each tick)", game.fired)
	}
}

func TestModelRestart(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAt: 2}
	m := newTestModel(t, game, store)

	// Restart is ignored while the run is going
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if game.resets != 1 {
		t.Fatalf("resets = %d during a run, expected 1", game.resets)
	}

	m, _ = update(t, m, TickMsg{})
	if !game.State().GameOver {
		t.Fatal("stub should be over after 2 steps")
	}

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if game.resets != 2 || game.steps != 0 {
		t.Errorf("after restart resets = %d, steps = %d", game.resets, game.steps)
	}

	m, _ = update(t, m, TickMsg{})
	update(t, m, TickMsg{})
	if runs := recentRuns(t, store); len(runs) != 2 {
		t.Errorf("recorded %d runs, expected one per finished run", len(runs))
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(t, game, nil)
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 8})

	if game.resets != 1 || game.steps != 1 {
		t.Errorf("resize restarted the game: resets = %d, steps = %d", game.resets, game.steps)
	}
	if m.screen.Width() != 30 || m.screen.Height() != 8 {
		t.Errorf("screen = %dx%d, expected 30x8", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "STUB") {
		t.Error("View() should render the game")
	}
}
