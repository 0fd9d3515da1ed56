package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the terminal interface. Exactly two
// themes exist, mirroring the light/dark preference the UI persists.
type Theme struct {
	Name string

	// MarkdownStyle is the glamour style used for assistant answers.
	MarkdownStyle string

	// Base colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Text colors
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in themes
var (
	// DarkTheme is the default theme, based on Tokyo Night colors
	DarkTheme = Theme{
		Name:          "dark",
		MarkdownStyle: "dark",

		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#24283b"),
		Border:     lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#9ece6a"),
		Accent:    lipgloss.Color("#bb9af7"),
		Warning:   lipgloss.Color("#e0af68"),
		Error:     lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),
	}

	// LightTheme is the light variant for bright terminals
	LightTheme = Theme{
		Name:          "light",
		MarkdownStyle: "light",

		Background: lipgloss.Color("#e1e2e7"),
		Surface:    lipgloss.Color("#d5d6db"),
		Border:     lipgloss.Color("#a8aecb"),

		Primary:   lipgloss.Color("#2e7de9"),
		Secondary: lipgloss.Color("#587539"),
		Accent:    lipgloss.Color("#9854f1"),
		Warning:   lipgloss.Color("#8c6c3e"),
		Error:     lipgloss.Color("#f52a65"),

		Text:     lipgloss.Color("#3760bf"),
		TextDim:  lipgloss.Color("#6172b0"),
		TextMute: lipgloss.Color("#a1a6c5"),
	}
)

// currentTheme holds the currently active theme
var currentTheme = DarkTheme

// GetTheme returns the currently active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme by name and reports whether the name
// was recognized.
func SetTheme(name string) bool {
	theme, ok := ThemeByName(name)
	if ok {
		currentTheme = theme
	}
	return ok
}

// ThemeByName returns a theme by its name
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "dark":
		return DarkTheme, true
	case "light":
		return LightTheme, true
	default:
		return Theme{}, false
	}
}

// ToggleTheme switches between light and dark and returns the name of
// the newly active theme.
func ToggleTheme() string {
	if currentTheme.Name == "dark" {
		currentTheme = LightTheme
	} else {
		currentTheme = DarkTheme
	}
	return currentTheme.Name
}
