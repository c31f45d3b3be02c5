package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the TUI colors and pre-built styles.
type Theme struct {
	Accent  lipgloss.Color
	Danger  lipgloss.Color
	Success lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Border  lipgloss.Color

	BullColor lipgloss.Color
	BearColor lipgloss.Color
	TRColor   lipgloss.Color
	BiasColor lipgloss.Color

	TitleStyle       lipgloss.Style
	PanelStyle       lipgloss.Style
	ActivePanelStyle lipgloss.Style
	PanelTitleStyle  lipgloss.Style
	LabelStyle       lipgloss.Style
	SelectedLabel    lipgloss.Style
	PresentLabel     lipgloss.Style
	StatusStyle      lipgloss.Style
	ErrorStyle       lipgloss.Style
	HelpStyle        lipgloss.Style
}

func buildStyles(t Theme) Theme {
	t.TitleStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.ActivePanelStyle = t.PanelStyle.BorderForeground(t.Accent)
	t.PanelTitleStyle = lipgloss.NewStyle().Bold(true)
	t.LabelStyle = lipgloss.NewStyle().Foreground(t.Text)
	t.SelectedLabel = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Reverse(true)
	t.PresentLabel = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	t.StatusStyle = lipgloss.NewStyle().Foreground(t.Muted)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Danger).Bold(true)
	t.HelpStyle = lipgloss.NewStyle().Foreground(t.Muted)
	return t
}

// DarkTheme is the default theme.
func DarkTheme() Theme {
	return buildStyles(Theme{
		Accent:    lipgloss.Color("#F59E0B"),
		Danger:    lipgloss.Color("#EF4444"),
		Success:   lipgloss.Color("#10B981"),
		Muted:     lipgloss.Color("#6B7280"),
		Text:      lipgloss.Color("#E5E7EB"),
		Border:    lipgloss.Color("#374151"),
		BullColor: lipgloss.Color("#2E8B57"),
		BearColor: lipgloss.Color("#B22222"),
		TRColor:   lipgloss.Color("#1E90FF"),
		BiasColor: lipgloss.Color("#6A5ACD"),
	})
}

// LightTheme suits light terminal backgrounds.
func LightTheme() Theme {
	return buildStyles(Theme{
		Accent:    lipgloss.Color("#B45309"),
		Danger:    lipgloss.Color("#B91C1C"),
		Success:   lipgloss.Color("#047857"),
		Muted:     lipgloss.Color("#6B7280"),
		Text:      lipgloss.Color("#111827"),
		Border:    lipgloss.Color("#9CA3AF"),
		BullColor: lipgloss.Color("#15803D"),
		BearColor: lipgloss.Color("#B91C1C"),
		TRColor:   lipgloss.Color("#1D4ED8"),
		BiasColor: lipgloss.Color("#6D28D9"),
	})
}

// ThemeForName maps a config theme name to a Theme. Unknown names get dark.
func ThemeForName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
