package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mandelterm/internal/config"
)

func TestGetTheme_Fallback(t *testing.T) {
	if GetTheme("nope").Name != "retro" {
		t.Error("unknown theme should fall back to retro")
	}
	if GetTheme("ocean").Name != "ocean" {
		t.Error("ocean theme not found")
	}
}

func TestNextTheme_Wraps(t *testing.T) {
	names := ThemeNames()
	if NextTheme(names[len(names)-1]) != names[0] {
		t.Error("NextTheme did not wrap")
	}
	if NextTheme("unknown") != names[0] {
		t.Error("unknown theme should restart the cycle")
	}
}

func TestShade(t *testing.T) {
	th := ThemeMinimal
	if th.Shade(0, 15) != th.Member {
		t.Error("member should use the member color")
	}
	if th.Shade(1, 15) != th.Near {
		t.Errorf("first escape = %s, want %s", th.Shade(1, 15), th.Near)
	}
	if th.Shade(14, 15) != th.Far {
		t.Errorf("last escape = %s, want %s", th.Shade(14, 15), th.Far)
	}
}

func TestLerpColor(t *testing.T) {
	got := lerpColor(lipgloss.Color("#000000"), lipgloss.Color("#ffffff"), 0.5)
	if got != lipgloss.Color("#7f7f7f") {
		t.Errorf("midpoint = %s", got)
	}
	if lerpColor("#000000", "#ffffff", 2) != "#ffffff" {
		t.Error("t should be clamped")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 1}, 2); got != "▁█" {
		t.Errorf("Sparkline = %q", got)
	}
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("empty Sparkline = %q", got)
	}
}

func TestKeyWait(t *testing.T) {
	m := keyWait{prompt: "press any key"}
	if !strings.Contains(m.View(), "press any key") {
		t.Error("prompt not shown")
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit on key press")
	}
	if next.(keyWait).View() != "" {
		t.Error("prompt should clear after key press")
	}
}

func TestBrowser_OpenAndBack(t *testing.T) {
	base := config.DefaultConfig()
	base.Width, base.Height = 20, 6
	b := NewBrowser(base)

	next, _ := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	b = next.(Browser)
	if b.Selected() != config.ListPresets()[1] {
		t.Errorf("selected = %s", b.Selected())
	}

	next, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	b = next.(Browser)
	if cmd == nil {
		t.Error("opening a preset should start the ticker")
	}
	if b.state != stateLive || b.live.Frame().Cols() != 20 {
		t.Fatal("preset not opened at base size")
	}

	next, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	b = next.(Browser)
	if b.state != stateMenu {
		t.Error("b should return to the menu")
	}
	if !strings.Contains(b.View(), "MANDELTERM") {
		t.Error("menu view missing title")
	}
}

func TestBrowser_StaleTickAfterReopen(t *testing.T) {
	base := config.DefaultConfig()
	base.Width, base.Height = 20, 6
	b := NewBrowser(base)

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	back := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}

	next, _ := b.Update(enter)
	b = next.(Browser)
	first := b.live.Session()

	next, _ = b.Update(back)
	b = next.(Browser)
	next, _ = b.Update(TickMsg{Time: time.Now(), Session: first})
	b = next.(Browser)

	next, _ = b.Update(enter)
	b = next.(Browser)
	if b.live.Session() == first {
		t.Fatal("reopening should start a new session")
	}

	start := b.live.Frame()
	next, cmd := b.Update(TickMsg{Time: time.Now(), Session: first})
	b = next.(Browser)
	if cmd != nil {
		t.Error("stale tick scheduled another tick")
	}
	if !b.live.Frame().Equal(start) {
		t.Error("stale tick scrolled the new session")
	}

	next, cmd = b.Update(TickMsg{Time: time.Now(), Session: b.live.Session()})
	b = next.(Browser)
	if cmd == nil {
		t.Error("current tick should schedule the next one")
	}
	if b.live.Offset() != 1 {
		t.Errorf("offset = %d, want 1", b.live.Offset())
	}
}
