package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mandelterm/internal/config"
)

var presetInfo = map[string]string{
	"classic": "the whole set", "seahorse": "curled filaments", "elephant": "trunk-like tendrils",
	"spiral": "minibrot in a spiral", "triple-spiral": "threefold spirals", "dragon": "deep spiral valley",
	"minibrot": "self-similar copy",
}

var (
	menuTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuIdle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuIdleDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	menuKey      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	menuErr      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

const (
	stateMenu = iota
	stateLive
)

// Browser is a preset picker that opens the selected region in Live.
type Browser struct {
	state   int
	cursor  int
	presets []string
	base    *config.Config
	live    Live
	session int
	err     error
}

// NewBrowser lists the presets; base supplies grid size and fps.
func NewBrowser(base *config.Config) Browser {
	return Browser{presets: config.ListPresets(), base: base}
}

func (m Browser) Init() tea.Cmd { return nil }

func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t, ok := msg.(TickMsg); ok && (m.state != stateLive || t.Session != m.session) {
		return m, nil
	}
	if m.state == stateLive {
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "b" {
			m.state = stateMenu
			return m, nil
		}
		next, cmd := m.live.Update(msg)
		m.live = next.(Live)
		return m, cmd
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter":
		return m.open()
	}
	return m, nil
}

func (m Browser) open() (tea.Model, tea.Cmd) {
	name := m.presets[m.cursor]
	cfg := config.GetPreset(name)
	cfg.Width, cfg.Height, cfg.FPS = m.base.Width, m.base.Height, m.base.FPS

	live, err := NewLive(cfg.Params(), cfg.FPS, name)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.session++
	live = live.WithSession(m.session)
	m.err = nil
	m.live = live
	m.state = stateLive
	return m, live.Init()
}

// Selected returns the preset under the cursor.
func (m Browser) Selected() string { return m.presets[m.cursor] }

func (m Browser) View() string {
	if m.state == stateLive {
		return m.live.View() + "\n" + keyHint.Render("  b: back to presets")
	}

	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("MANDELTERM") + "\n    " + menuSub.Render("ascii mandelbrot explorer") + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.presets {
		desc := presetInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuCursor.Render("▸"), menuSelected.Render(fmt.Sprintf("%-16s", name)), menuDesc.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", menuIdle.Render(fmt.Sprintf("  %-16s", name)), menuIdleDesc.Render(desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + menuErr.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuIdle.Render(" navigate  ") + menuKey.Render("enter") + menuIdle.Render(" open  ") + menuKey.Render("q") + menuIdle.Render(" quit") + "\n")
	return b.String()
}

func RunBrowser(base *config.Config) error {
	_, err := tea.NewProgram(NewBrowser(base), tea.WithAltScreen()).Run()
	return err
}
