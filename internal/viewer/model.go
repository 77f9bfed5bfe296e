// Package viewer renders a slide deck carousel in the terminal.
//
// The current slide moves the moment the user navigates. It is drawn
// blurred (faint) until the carousel reveals it, mirroring the blur-clear
// transition of the visible index.
package viewer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zoobzio/carousel"
	"github.com/zoobzio/carousel/deck"
)

// RevealMsg reports that the carousel revealed a slide.
type RevealMsg struct {
	Index int
}

// DeckMsg reports a deck load result. Err is empty on success.
type DeckMsg struct {
	Err string
}

// Model is the bubbletea model for a deck carousel.
type Model struct {
	carousel *carousel.Carousel[deck.Slide]
	title    string
	styles   Styles
	width    int
	height   int
	status   string
}

// New creates a viewer over c.
func New(c *carousel.Carousel[deck.Slide], title string) Model {
	return Model{
		carousel: c,
		title:    title,
		styles:   DefaultStyles(),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.carousel.Retreat()
		case "right", "l", " ":
			m.carousel.Advance()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		switch HitRegion(msg.X, m.width) {
		case RegionLeft:
			m.carousel.Retreat()
		case RegionRight:
			m.carousel.Advance()
		}

	case DeckMsg:
		m.status = msg.Err

	case RevealMsg:
		// Re-render only; the carousel already holds the visible index.
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	current := m.carousel.Current()
	visible := m.carousel.Visible()
	n := m.carousel.Len()

	var b strings.Builder
	header := m.styles.Title.Render(m.title)
	if n > 0 {
		header += m.styles.Help.Render(fmt.Sprintf("  %d/%d", current+1, n))
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	if slide, ok := m.carousel.SlideAt(current); ok {
		b.WriteString(m.renderSlide(slide.Content, current == visible))
	} else {
		b.WriteString(m.styles.Help.Render("no slides"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderDots(current, n))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.Status.Render("deck: " + m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("←/h prev • →/l next • click edges • q quit"))

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
}

func (m Model) renderSlide(s deck.Slide, revealed bool) string {
	width := min(m.width-2*EdgeWidth(m.width), 2*contentHalf)
	card := Compose(m.styles.Card,
		func(st lipgloss.Style) lipgloss.Style { return st.Width(max(width, 10)) },
		When(!revealed, blurred),
		When(revealed, focused),
	)
	title := Compose(m.styles.Title, When(!revealed, blurred)).Render(s.Title)
	if s.Body == "" {
		return card.Render(title)
	}
	body := Compose(m.styles.Body, When(!revealed, blurred)).Render(s.Body)
	return card.Render(title + "\n\n" + body)
}

func (m Model) renderDots(current, n int) string {
	dots := make([]string, n)
	for i := range dots {
		dots[i] = Compose(m.styles.Dot, When(i == current, active)).Render("●")
	}
	return strings.Join(dots, " ")
}
