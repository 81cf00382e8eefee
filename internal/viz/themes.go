package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of a render. Escape depths are shaded from
// Near (escaped immediately) to Far (escaped at the last iteration).
type Theme struct {
	Name   string
	Member lipgloss.Color
	Near   lipgloss.Color
	Far    lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Member: lipgloss.Color("#ffff00"),
		Near:   lipgloss.Color("#330033"),
		Far:    lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Member: lipgloss.Color("#88ff88"), // Green phosphor
		Near:   lipgloss.Color("#003300"),
		Far:    lipgloss.Color("#00ff00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Member: lipgloss.Color("#ffffff"),
		Near:   lipgloss.Color("#444444"),
		Far:    lipgloss.Color("#eeeeee"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Member: lipgloss.Color("#ffd700"),
		Near:   lipgloss.Color("#001a33"),
		Far:    lipgloss.Color("#00a8cc"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#0077be"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Member: lipgloss.Color("#fff5f5"),
		Near:   lipgloss.Color("#2d1b2e"),
		Far:    lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ff6b6b"), // Coral
	}

	// Default theme
	CurrentTheme = ThemeRetroGreen

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to retro.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRetroGreen
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the name of the theme after current, wrapping around.
func NextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Shade returns the color for an escape count out of n iterations.
func (t Theme) Shade(count, n int) lipgloss.Color {
	if count <= 0 {
		return t.Member
	}
	frac := 0.0
	if n > 2 {
		frac = float64(count-1) / float64(n-2)
	}
	return lerpColor(t.Near, t.Far, frac)
}
