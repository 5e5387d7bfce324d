package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours of the live view.
type Theme struct {
	Name      string
	Cubes     lipgloss.Color
	Title     lipgloss.Color
	TitleEnd  lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Running   lipgloss.Color
	Paused    lipgloss.Color
	Converged lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Cubes:     lipgloss.Color("#ff00ff"),
		Title:     lipgloss.Color("#00ffff"),
		TitleEnd:  lipgloss.Color("#ff00ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Border:    lipgloss.Color("#444466"),
		Running:   lipgloss.Color("#00ff88"),
		Paused:    lipgloss.Color("#ffff00"),
		Converged: lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Cubes:     lipgloss.Color("#00ff00"), // Green phosphor
		Title:     lipgloss.Color("#88ff88"),
		TitleEnd:  lipgloss.Color("#00cc00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Border:    lipgloss.Color("#005500"),
		Running:   lipgloss.Color("#88ff88"),
		Paused:    lipgloss.Color("#ffff00"),
		Converged: lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Cubes:     lipgloss.Color("#ffffff"),
		Title:     lipgloss.Color("#ffffff"),
		TitleEnd:  lipgloss.Color("#888888"),
		Text:      lipgloss.Color("#cccccc"),
		Muted:     lipgloss.Color("#888888"),
		Border:    lipgloss.Color("#444444"),
		Running:   lipgloss.Color("#00ff00"),
		Paused:    lipgloss.Color("#ffaa00"),
		Converged: lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Cubes:     lipgloss.Color("#00a8cc"),
		Title:     lipgloss.Color("#0077be"),
		TitleEnd:  lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Border:    lipgloss.Color("#001a33"),
		Running:   lipgloss.Color("#00ff88"),
		Paused:    lipgloss.Color("#ffcc00"),
		Converged: lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Cubes:     lipgloss.Color("#ff6b6b"),
		Title:     lipgloss.Color("#feca57"),
		TitleEnd:  lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Border:    lipgloss.Color("#2d1b2e"),
		Running:   lipgloss.Color("#5fd068"),
		Paused:    lipgloss.Color("#ffc048"),
		Converged: lipgloss.Color("#ff4757"),
	}

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

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
