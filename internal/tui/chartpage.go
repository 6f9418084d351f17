package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ChartPage renders one deck full-screen. When dismissed it either advances
// to the next page in the sequence or quits if it is the last one.
type ChartPage struct {
	id     string
	nextID string // "" = last page, dismissal quits
	deck   Deck
	keys   KeyMap
}

// NewChartPage creates a page for a single deck. nextID names the page shown
// after dismissal; an empty nextID makes dismissal quit the program.
func NewChartPage(id string, deck Deck, nextID string) *ChartPage {
	return &ChartPage{id: id, nextID: nextID, deck: deck, keys: DefaultKeyMap()}
}

func (p *ChartPage) ID() string    { return p.id }
func (p *ChartPage) Init() tea.Cmd { return nil }

func (p *ChartPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Quit), key.Matches(keyMsg, p.keys.ForceQuit):
		return tea.Quit, nil
	case key.Matches(keyMsg, p.keys.Advance):
		if p.nextID == "" {
			return tea.Quit, nil
		}
		return nil, &PageNav{PageID: p.nextID}
	}
	return nil, nil
}

func (p *ChartPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Initializing..."
	}

	ctx := ViewContext{ContentWidth: width, ContentHeight: height, ShowLegend: true}

	deckHeight := height - 1 // status line
	if deckHeight < 4 {
		deckHeight = 4
	}
	deckView := p.deck.Render(ctx, width-2, deckHeight-2, false)

	statusText := "enter: next chart • q: quit"
	if p.nextID == "" {
		statusText = "enter: close • q: quit"
	}
	status := statusStyle.Width(width).Align(lipgloss.Center).Render(statusText)

	return lipgloss.JoinVertical(lipgloss.Left, deckView, status)
}
