package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewContext provides read-only context to decks for rendering.
type ViewContext struct {
	ContentWidth  int
	ContentHeight int
	ShowLegend    bool // false when a combined page renders a shared legend
}

// Deck is one chart on a page. Deck data is computed once from the record
// set at construction; rendering is a pure function of the context and
// dimensions.
type Deck interface {
	ID() string
	Title() string
	ContentLines(ctx ViewContext) int
	Render(ctx ViewContext, width, height int, active bool) string
}

// deckFrame wraps rendered chart content in the shared section chrome.
func deckFrame(title, content string, width, height int, active bool) string {
	style := sectionStyle.Width(width).Height(height)
	if active {
		style = activeSectionStyle.Width(width).Height(height)
	}
	header := chartTitleStyle.Render(title)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, header, content))
}

// renderCategoryLegend renders one line of colored category markers, with
// optional extra entries (such as the overall or mean series) appended in
// gray.
func renderCategoryLegend(categories []string, extra ...string) string {
	parts := make([]string, 0, len(categories)+len(extra))
	for i, c := range categories {
		parts = append(parts, categoryStyle(i).Render("■ "+c))
	}
	for _, e := range extra {
		parts = append(parts, meanStyle.Render("─ "+e))
	}
	return strings.Join(parts, "  ")
}
