package viewer

import "github.com/charmbracelet/lipgloss"

// Class adjusts a style. Classes are pure: they return a new style and
// never touch shared state.
type Class func(lipgloss.Style) lipgloss.Style

// When returns class if cond holds and nil otherwise.
func When(cond bool, class Class) Class {
	if !cond {
		return nil
	}
	return class
}

// Compose applies classes to base in order, skipping nil ones. Later
// classes win over earlier ones.
func Compose(base lipgloss.Style, classes ...Class) lipgloss.Style {
	out := base
	for _, class := range classes {
		if class == nil {
			continue
		}
		out = class(out)
	}
	return out
}

var (
	colorAccent = lipgloss.Color("#F25D94")
	colorText   = lipgloss.Color("#EEEEEE")
	colorMuted  = lipgloss.Color("#6C6C6C")
	colorError  = lipgloss.Color("#FF5F5F")
)

// Styles holds the viewer palette.
type Styles struct {
	Title  lipgloss.Style
	Card   lipgloss.Style
	Body   lipgloss.Style
	Dot    lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
}

// DefaultStyles returns the stock palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Foreground(colorText).
			Padding(1, 3),
		Body:   lipgloss.NewStyle().Foreground(colorText),
		Dot:    lipgloss.NewStyle().Foreground(colorMuted),
		Help:   lipgloss.NewStyle().Foreground(colorMuted),
		Status: lipgloss.NewStyle().Foreground(colorError),
	}
}

// blurred renders an unrevealed slide.
func blurred(s lipgloss.Style) lipgloss.Style {
	return s.Faint(true).Foreground(colorMuted)
}

// focused renders the revealed slide.
func focused(s lipgloss.Style) lipgloss.Style {
	return s.Faint(false).BorderForeground(colorAccent)
}

// active marks the current position in the dot strip.
func active(s lipgloss.Style) lipgloss.Style {
	return s.Foreground(colorAccent).Bold(true)
}
