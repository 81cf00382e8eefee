package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mandelterm/internal/analysis"
	"github.com/san-kum/mandelterm/internal/grid"
	"github.com/san-kum/mandelterm/internal/mandel"
)

// DefaultGIFPath is where recordings are written.
const DefaultGIFPath = "mandelterm.gif"

// TickMsg advances the animation. Session identifies the Live that
// scheduled it; ticks from another session are dropped.
type TickMsg struct {
	Time    time.Time
	Session int
}

// Live animates the scroll transform of a render. It keeps a depth grid
// alongside the glyphs so that both go through the same transforms and
// colors follow their cells.
type Live struct {
	title     string
	n         int
	base      *grid.Grid
	baseDepth *grid.Grid
	glyphs    *grid.Grid
	depth     *grid.Grid
	summary   analysis.Summary
	mirrored  bool
	offset    int
	running   bool
	fps       int
	showHelp  bool
	recording bool
	frames    []*image.Paletted
	gifPath   string
	message   string
	session   int
}

// NewLive renders p and prepares the animation.
func NewLive(p mandel.Params, fps int, title string) (Live, error) {
	g, err := mandel.Render(p)
	if err != nil {
		return Live{}, err
	}
	counts := mandel.Counts(p)
	depth := grid.New(p.Height, p.Width)
	for r, row := range counts {
		for c, v := range row {
			depth.Set(r, c, rune(v))
		}
	}
	if fps <= 0 {
		fps = 1
	}
	return Live{
		title:     title,
		n:         p.Iterations(),
		base:      g,
		baseDepth: depth,
		glyphs:    g,
		depth:     depth,
		summary:   analysis.Summarize(counts),
		running:   true,
		fps:       fps,
		gifPath:   DefaultGIFPath,
	}, nil
}

// WithGIFPath sets the recording destination.
func (m Live) WithGIFPath(path string) Live {
	m.gifPath = path
	return m
}

// WithSession tags the ticks this model schedules, so that a host can
// start a fresh model while an older tick is still in flight.
func (m Live) WithSession(id int) Live {
	m.session = id
	return m
}

func (m Live) Frame() *grid.Grid { return m.glyphs }
func (m Live) Offset() int       { return m.offset }
func (m Live) Mirrored() bool    { return m.mirrored }
func (m Live) Running() bool     { return m.running }
func (m Live) Session() int      { return m.session }

func (m Live) tick() tea.Cmd {
	session := m.session
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Session: session}
	})
}

func (m Live) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the scroll.
func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.running = false
			m.step(1)
		case "p":
			m.running = false
			m.step(-1)
		case "m":
			m.mirrored = !m.mirrored
			m.glyphs = grid.Mirror(m.glyphs)
			m.depth = grid.Mirror(m.depth)
		case "r":
			m.reset()
		case "t":
			SetTheme(NextTheme(CurrentTheme.Name))
		case "g":
			if m.recording {
				if err := m.saveGIF(); err != nil {
					m.message = "gif: " + err.Error()
				} else {
					m.message = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.gifPath)
				}
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
				m.message = ""
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if msg.Session != m.session {
			return m, nil
		}
		if m.running {
			m.step(1)
		}
		if m.recording {
			m.captureFrame()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Live) step(dir int) {
	rows := m.glyphs.Rows()
	if rows == 0 {
		return
	}
	m.glyphs = grid.ScrollBy(m.glyphs, dir)
	m.depth = grid.ScrollBy(m.depth, dir)
	m.offset = ((m.offset+dir)%rows + rows) % rows
}

// reset restores the unscrolled frame, keeping the mirror setting.
func (m *Live) reset() {
	m.offset = 0
	m.glyphs, m.depth = m.base, m.baseDepth
	if m.mirrored {
		m.glyphs = grid.Mirror(m.glyphs)
		m.depth = grid.Mirror(m.depth)
	}
}

// View renders the frame and the status panel.
func (m Live) View() string {
	frameView := canvasStyle.Render(m.colorFrame())

	status := statusRunning.Render("SCROLLING")
	if !m.running {
		status = statusPaused.Render("PAUSED")
	}
	if m.recording {
		status += " " + statusRecording.Render("● REC")
	}

	rows := m.glyphs.Rows()
	var s strings.Builder
	s.WriteString(GradientText(strings.ToUpper(m.title), CurrentTheme.Accent, CurrentTheme.Far) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Row") + valueStyle.Render(fmt.Sprintf("%d/%d", m.offset, rows)) + "\n")
	if rows > 0 {
		s.WriteString(ProgressBar(float64(m.offset)/float64(rows), 20, CurrentTheme.Accent) + "\n")
	}
	s.WriteString(labelStyle.Render("Mirror") + valueStyle.Render(fmt.Sprintf("%v", m.mirrored)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(CurrentTheme.Name) + "\n")
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%d", m.fps)) + "\n")
	s.WriteString(labelStyle.Render("Members") + valueStyle.Render(fmt.Sprintf("%.1f%%", 100*m.summary.MemberRatio)) + "\n")
	s.WriteString(labelStyle.Render("Depth") + valueStyle.Render(fmt.Sprintf("%.2f / %d", m.summary.MeanEscape, m.n-1)) + "\n")
	s.WriteString("\n" + labelStyle.Render("Profile") + "\n")
	s.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Member).Render(Sparkline(m.rowProfile(), 20)) + "\n")
	if m.message != "" {
		s.WriteString("\n" + subtle.Render(m.message) + "\n")
	}
	s.WriteString("\n" + Separator(22) + "\n")
	s.WriteString(keyHint.Render("SP:Pause N/P:Step M:Mirror\nR:Reset T:Theme G:Record\n?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, frameView, panelStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume scrolling   ║
║  N / P    - Step one row down / up   ║
║  M        - Toggle mirror image      ║
║  R        - Reset to first row       ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// colorFrame styles runs of equal depth together to keep escape sequences
// to a minimum.
func (m Live) colorFrame() string {
	var b strings.Builder
	for r := 0; r < m.glyphs.Rows(); r++ {
		line := m.glyphs.Row(r)
		depths := m.depth.Row(r)
		start := 0
		for c := 1; c <= len(line); c++ {
			if c < len(line) && depths[c] == depths[start] {
				continue
			}
			style := lipgloss.NewStyle().Foreground(CurrentTheme.Shade(int(depths[start]), m.n))
			b.WriteString(style.Render(string(line[start:c])))
			start = c
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Live) rowProfile() []float64 {
	counts := make([][]int, m.depth.Rows())
	for r := range counts {
		row := m.depth.Row(r)
		counts[r] = make([]int, len(row))
		for c, v := range row {
			counts[r][c] = int(v)
		}
	}
	return analysis.RowProfile(counts)
}

// maxGIFColors is the largest color table a GIF frame can carry.
const maxGIFColors = 256

// gifColors returns how many palette entries a frame needs. Depths beyond
// maxGIFColors share entries.
func (m Live) gifColors() int {
	return min(m.n, maxGIFColors)
}

// gifIndex buckets an escape depth in [0, n) into the frame palette.
// Index 0 stays reserved for members.
func (m Live) gifIndex(depth int) uint8 {
	if depth <= 0 {
		return 0
	}
	return uint8(1 + (depth-1)*(m.gifColors()-1)/(m.n-1))
}

// gifDepth is the representative depth of palette entry i.
func (m Live) gifDepth(i int) int {
	if i <= 0 {
		return 0
	}
	return 1 + (i-1)*(m.n-1)/(m.gifColors()-1)
}

// captureFrame rasterizes the depth grid, one block per cell.
func (m *Live) captureFrame() {
	const cellW, cellH = 4, 8
	pal := make(color.Palette, m.gifColors())
	for i := range pal {
		r, g, b := parseHex(string(CurrentTheme.Shade(m.gifDepth(i), m.n)))
		pal[i] = color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}
	}

	rows, cols := m.depth.Rows(), m.depth.Cols()
	img := image.NewPaletted(image.Rect(0, 0, cols*cellW, rows*cellH), pal)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := m.gifIndex(int(m.depth.At(row, col)))
			for py := 0; py < cellH; py++ {
				for px := 0; px < cellW; px++ {
					img.SetColorIndex(col*cellW+px, row*cellH+py, idx)
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Live) saveGIF() error {
	if len(m.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	delay := 100 / m.fps
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(m.gifPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}

// RunLive starts the animation in the alternate screen.
func RunLive(p mandel.Params, fps int, title string) error {
	m, err := NewLive(p, fps, title)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
