package tui

import (
	"fmt"
	"strings"

	"github.com/BaksiLi/sex-stats/internal/aggregate"
	"github.com/BaksiLi/sex-stats/internal/plot"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// FreqDeck displays record counts per calendar period as a stacked bar chart
// by category, with the overall repeat-count sums drawn as a line beneath
// the bars.
type FreqDeck struct {
	granularity aggregate.Granularity
	buckets     []aggregate.PeriodBucket
	categories  []string
}

// NewFreqDeck creates a frequency deck over pre-grouped period buckets.
func NewFreqDeck(buckets []aggregate.PeriodBucket, g aggregate.Granularity) *FreqDeck {
	return &FreqDeck{
		granularity: g,
		buckets:     buckets,
		categories:  aggregate.Categories(buckets),
	}
}

func (d *FreqDeck) ID() string    { return "freq" }
func (d *FreqDeck) Title() string { return "Frequency vs Time Period" }

func (d *FreqDeck) ContentLines(ctx ViewContext) int {
	if len(d.buckets) == 0 {
		return 1
	}
	lines := 12 // bars + overall line + axis labels
	if ctx.ContentWidth < 80 {
		lines = 10
	}
	if ctx.ShowLegend {
		lines++
	}
	return lines
}

func (d *FreqDeck) Render(ctx ViewContext, width, height int, active bool) string {
	var headerText string
	leftTitle := fmt.Sprintf("%s (%s)", d.Title(), d.granularity)
	if len(d.buckets) > 0 {
		totalRepeats := 0
		for _, b := range d.buckets {
			totalRepeats += b.RepeatSum
		}
		rightStats := fmt.Sprintf("Σ repeats: %d", totalRepeats)
		spacerWidth := width - 4 - len(leftTitle) - len(rightStats)
		if spacerWidth > 0 {
			headerText = leftTitle + strings.Repeat(" ", spacerWidth) + rightStats
		} else {
			headerText = leftTitle
		}
	} else {
		headerText = leftTitle
	}

	var content string
	if len(d.buckets) > 0 {
		content = d.renderContent(ctx, width-4)
	} else {
		content = helpStyle.Render("No data available")
	}

	return deckFrame(headerText, content, width, height, active)
}

func (d *FreqDeck) renderContent(ctx ViewContext, chartWidth int) string {
	if chartWidth < 12 {
		chartWidth = 12
	}

	chartHeight := 8
	if ctx.ContentWidth < 80 {
		chartHeight = 6
	}

	// One bar per period: two cells of bar, one of gap.
	maxBars := chartWidth / 3
	if maxBars < 1 {
		maxBars = 1
	}

	shown := d.buckets
	if len(shown) > maxBars {
		shown = shown[len(shown)-maxBars:]
	}
	paddingCount := maxBars - len(shown)

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(2),
		barchart.WithNoAxis(),
	)

	emptyStyle := lipgloss.NewStyle().Foreground(ColorGray).Background(ColorGray)
	for i := 0; i < paddingCount; i++ {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: "EMPTY", Value: 0, Style: emptyStyle},
			},
		})
	}

	for _, b := range shown {
		var barValues []barchart.BarValue
		for i, c := range d.categories {
			if count := b.CategoryCounts[c]; count > 0 {
				barValues = append(barValues, barchart.BarValue{
					Name:  c,
					Value: float64(count),
					Style: categoryBarStyle(i),
				})
			}
		}
		if len(barValues) == 0 {
			barValues = append(barValues, barchart.BarValue{Name: "EMPTY", Value: 0, Style: emptyStyle})
		}
		bc.Push(barchart.BarData{Label: "", Values: barValues})
	}

	bc.Draw()

	lines := []string{bc.View()}
	lines = append(lines, d.renderOverallLine(chartWidth, maxBars, paddingCount, shown))
	lines = append(lines, d.renderAxisLabels(chartWidth, shown))
	if ctx.ShowLegend {
		lines = append(lines, renderCategoryLegend(d.categories, "Overall"))
	}
	return strings.Join(lines, "\n")
}

// renderOverallLine draws the per-period repeat-count sums as a compact line
// under the bars, horizontally aligned with the bar slots.
func (d *FreqDeck) renderOverallLine(chartWidth, maxBars, paddingCount int, shown []aggregate.PeriodBucket) string {
	maxSum := 0
	for _, b := range shown {
		if b.RepeatSum > maxSum {
			maxSum = b.RepeatSum
		}
	}

	canvas := plot.New(chartWidth, 2, -0.5, float64(maxBars)-0.5, 0, float64(maxSum))
	series := canvas.AddSeries(meanStyle)
	prev := -1
	for i, b := range shown {
		slot := paddingCount + i
		if prev >= 0 {
			canvas.Line(series, float64(prev), float64(shown[i-1].RepeatSum), float64(slot), float64(b.RepeatSum))
		} else {
			canvas.Point(series, float64(slot), float64(b.RepeatSum))
		}
		prev = slot
	}
	return strings.Join(canvas.Rows(), "\n")
}

// renderAxisLabels shows the first and last visible period labels.
func (d *FreqDeck) renderAxisLabels(chartWidth int, shown []aggregate.PeriodBucket) string {
	if len(shown) == 0 {
		return ""
	}
	first := shown[0].Label
	last := shown[len(shown)-1].Label
	if len(shown) == 1 || len(first)+len(last)+1 > chartWidth {
		return helpStyle.Render(first)
	}
	gap := strings.Repeat(" ", chartWidth-len(first)-len(last))
	return helpStyle.Render(first + gap + last)
}
