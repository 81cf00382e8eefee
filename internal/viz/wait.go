package viz

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// keyWait quits on the first key press.
type keyWait struct {
	prompt  string
	pressed bool
}

func (m keyWait) Init() tea.Cmd { return nil }

func (m keyWait) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.pressed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m keyWait) View() string {
	if m.pressed {
		return ""
	}
	return keyHint.Render(m.prompt) + "\n"
}

// WaitForKey shows prompt on out and blocks until a key arrives on in.
func WaitForKey(in io.Reader, out io.Writer, prompt string) error {
	_, err := tea.NewProgram(keyWait{prompt: prompt}, tea.WithInput(in), tea.WithOutput(out)).Run()
	return err
}
