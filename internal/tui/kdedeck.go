package tui

import (
	"fmt"
	"strings"

	"github.com/BaksiLi/sex-stats/internal/aggregate"
	"github.com/BaksiLi/sex-stats/internal/plot"
)

// kdeGridSize is the number of evaluation points per density curve.
const kdeGridSize = 200

// KDEDeck displays a kernel density estimate of per-bucket repeat counts,
// one curve per category.
type KDEDeck struct {
	groups aggregate.ClockGroups
	curves []aggregate.KDECurve // parallel to groups.Categories
}

// NewKDEDeck creates a density deck over pre-grouped clock buckets.
func NewKDEDeck(groups aggregate.ClockGroups) *KDEDeck {
	curves := make([]aggregate.KDECurve, len(groups.Categories))
	for i, c := range groups.Categories {
		curves[i] = aggregate.KDE(groups.CountsFor(c), kdeGridSize)
	}
	return &KDEDeck{groups: groups, curves: curves}
}

func (d *KDEDeck) ID() string    { return "kde" }
func (d *KDEDeck) Title() string { return "Kernel Density Estimation" }

func (d *KDEDeck) ContentLines(ctx ViewContext) int {
	if len(d.curves) == 0 {
		return 1
	}
	lines := 11
	if ctx.ContentWidth < 80 {
		lines = 9
	}
	if ctx.ShowLegend {
		lines++
	}
	return lines
}

func (d *KDEDeck) Render(ctx ViewContext, width, height int, active bool) string {
	var content string
	if len(d.curves) > 0 {
		content = d.renderContent(ctx, width-4, height-4)
	} else {
		content = helpStyle.Render("No data available")
	}
	return deckFrame(d.Title(), content, width, height, active)
}

func (d *KDEDeck) renderContent(ctx ViewContext, chartWidth, chartHeight int) string {
	if chartWidth < 12 {
		chartWidth = 12
	}
	if chartHeight < 4 {
		chartHeight = 4
	}
	canvasHeight := chartHeight - 1 // reserve the axis row
	if ctx.ShowLegend {
		canvasHeight--
	}
	if canvasHeight < 2 {
		canvasHeight = 2
	}

	// Shared ranges across curves so densities stay comparable.
	xMin, xMax, yMax := curveRanges(d.curves)

	canvas := plot.New(chartWidth, canvasHeight, xMin, xMax, 0, yMax)
	for i := range d.curves {
		curve := d.curves[i]
		if len(curve.X) == 0 {
			continue
		}
		series := canvas.AddSeries(categoryStyle(i))
		for j := 1; j < len(curve.X); j++ {
			canvas.Line(series, curve.X[j-1], curve.Y[j-1], curve.X[j], curve.Y[j])
		}
	}

	lines := canvas.Rows()
	lines = append(lines, d.renderAxisLabels(chartWidth, xMin, xMax))
	if ctx.ShowLegend {
		lines = append(lines, renderCategoryLegend(d.groups.Categories))
	}
	return strings.Join(lines, "\n")
}

// renderAxisLabels shows the repeated-times range under the curves.
func (d *KDEDeck) renderAxisLabels(chartWidth int, xMin, xMax float64) string {
	left := fmt.Sprintf("%.1f", xMin)
	right := fmt.Sprintf("%.1f", xMax)
	gap := chartWidth - len(left) - len(right)
	if gap < 1 {
		return helpStyle.Render(left)
	}
	return helpStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func curveRanges(curves []aggregate.KDECurve) (xMin, xMax, yMax float64) {
	first := true
	for _, c := range curves {
		for i := range c.X {
			if first {
				xMin, xMax = c.X[i], c.X[i]
				first = false
			}
			if c.X[i] < xMin {
				xMin = c.X[i]
			}
			if c.X[i] > xMax {
				xMax = c.X[i]
			}
			if c.Y[i] > yMax {
				yMax = c.Y[i]
			}
		}
	}
	if first {
		return 0, 1, 1
	}
	return xMin, xMax, yMax
}
