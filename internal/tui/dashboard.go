package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardPage composes all three charts into one figure: the day chart
// spanning the top row, frequency and density side by side below, and a
// shared category legend.
type DashboardPage struct {
	day         Deck
	freq        Deck
	kde         Deck
	categories  []string
	recordCount int
	keys        KeyMap
}

// NewDashboardPage creates the combined dashboard.
func NewDashboardPage(day, freq, kde Deck, categories []string, recordCount int) *DashboardPage {
	return &DashboardPage{
		day:         day,
		freq:        freq,
		kde:         kde,
		categories:  categories,
		recordCount: recordCount,
		keys:        DefaultKeyMap(),
	}
}

func (p *DashboardPage) ID() string    { return "dashboard" }
func (p *DashboardPage) Init() tea.Cmd { return nil }

func (p *DashboardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Quit),
		key.Matches(keyMsg, p.keys.ForceQuit),
		key.Matches(keyMsg, p.keys.Advance):
		return tea.Quit, nil
	}
	return nil, nil
}

func (p *DashboardPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Initializing..."
	}
	if width < 40 || height < 16 {
		return "Terminal too small for the combined view"
	}

	// Decks skip their own legends; the dashboard renders a shared one.
	ctx := ViewContext{ContentWidth: width, ContentHeight: height, ShowLegend: false}

	title := pageTitleStyle.Width(width).
		Render(fmt.Sprintf("Sex Activity Statistics (%d entries)", p.recordCount))
	legend := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(renderCategoryLegend(p.categories, "Mean/Overall"))
	status := statusStyle.Width(width).Align(lipgloss.Center).
		Render("enter: close • q: quit")

	chartsHeight := height - 3 // title, legend, status
	topHeight := chartsHeight / 2
	bottomHeight := chartsHeight - topHeight
	if topHeight < 6 {
		topHeight = 6
	}
	if bottomHeight < 6 {
		bottomHeight = 6
	}

	topView := p.day.Render(ctx, width-2, topHeight-2, false)

	// Each bordered panel adds two columns, plus one column of gap.
	panelWidth := (width - 1 - 4) / 2
	freqView := p.freq.Render(ctx, panelWidth, bottomHeight-2, false)
	kdeView := p.kde.Render(ctx, panelWidth, bottomHeight-2, false)
	bottomView := lipgloss.JoinHorizontal(lipgloss.Top, freqView, " ", kdeView)

	return lipgloss.JoinVertical(lipgloss.Left, title, topView, bottomView, legend, status)
}
