package tui

import (
	"fmt"
	"strings"

	"github.com/BaksiLi/sex-stats/internal/aggregate"
	"github.com/BaksiLi/sex-stats/internal/plot"
)

// DayDeck displays the time-of-day distribution: per-category record counts
// scattered against fractional hour of day, with a gray cross-category mean
// line.
type DayDeck struct {
	groups aggregate.ClockGroups
}

// NewDayDeck creates a time-of-day deck over pre-grouped clock buckets.
func NewDayDeck(groups aggregate.ClockGroups) *DayDeck {
	return &DayDeck{groups: groups}
}

func (d *DayDeck) ID() string    { return "day" }
func (d *DayDeck) Title() string { return "Activities in a Day" }

func (d *DayDeck) ContentLines(ctx ViewContext) int {
	if len(d.groups.Buckets) == 0 {
		return 1
	}
	lines := 11 // scatter canvas + hour axis
	if ctx.ContentWidth < 80 {
		lines = 9
	}
	if ctx.ShowLegend {
		lines++
	}
	return lines
}

func (d *DayDeck) Render(ctx ViewContext, width, height int, active bool) string {
	var content string
	if len(d.groups.Buckets) > 0 {
		content = d.renderContent(ctx, width-4, height-4)
	} else {
		content = helpStyle.Render("No data available")
	}
	return deckFrame(d.Title(), content, width, height, active)
}

func (d *DayDeck) renderContent(ctx ViewContext, chartWidth, chartHeight int) string {
	if chartWidth < 12 {
		chartWidth = 12
	}
	if chartHeight < 4 {
		chartHeight = 4
	}
	canvasHeight := chartHeight - 1 // reserve the hour axis row
	if ctx.ShowLegend {
		canvasHeight--
	}
	if canvasHeight < 2 {
		canvasHeight = 2
	}

	yMax := float64(d.groups.MaxCount() + 1)
	canvas := plot.New(chartWidth, canvasHeight, -0.5, 24.5, 0, yMax)

	// Categories first so their colors win over the mean line where they
	// overlap.
	for i, c := range d.groups.Categories {
		series := canvas.AddSeries(categoryStyle(i))
		for _, b := range d.groups.Buckets {
			if count, ok := b.CategoryCounts[c]; ok {
				canvas.Point(series, b.Hour, float64(count))
			}
		}
	}

	means := d.groups.Mean()
	meanSeries := canvas.AddSeries(meanStyle)
	for i := 1; i < len(d.groups.Buckets); i++ {
		canvas.Line(meanSeries,
			d.groups.Buckets[i-1].Hour, means[i-1],
			d.groups.Buckets[i].Hour, means[i])
	}
	if len(d.groups.Buckets) == 1 {
		canvas.Point(meanSeries, d.groups.Buckets[0].Hour, means[0])
	}

	lines := canvas.Rows()
	lines = append(lines, hourAxis(chartWidth))
	if ctx.ShowLegend {
		lines = append(lines, renderCategoryLegend(d.groups.Categories, "Mean"))
	}
	return strings.Join(lines, "\n")
}

// hourAxis renders an o'clock ruler with ticks every six hours.
func hourAxis(width int) string {
	axis := make([]byte, width)
	for i := range axis {
		axis[i] = ' '
	}
	for _, hour := range []int{0, 6, 12, 18, 24} {
		label := fmt.Sprintf("%d", hour)
		pos := int(float64(hour) / 25 * float64(width))
		if pos+len(label) > width {
			pos = width - len(label)
		}
		copy(axis[pos:], label)
	}
	return helpStyle.Render(string(axis))
}
