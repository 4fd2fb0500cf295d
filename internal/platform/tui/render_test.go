package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "WAVE")
	s.DrawTextColored(0, 1, "AB", core.ColorRed)
	s.DrawTextColored(2, 1, "CD", core.ColorGreen)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() produced %d lines, expected 3", len(lines))
	}

	plain := ansi.Strip(out)
	if plain != s.String() {
		t.Errorf("RenderScreen() text = %q, expected %q", plain, s.String())
	}
}
