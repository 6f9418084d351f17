// Package plot draws multi-series scatter and line charts onto a braille
// cell grid for terminal display.
package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas maps data coordinates onto a grid of braille cells. Each terminal
// cell holds a 2x4 dot matrix, so the drawable resolution is twice the cell
// width and four times the cell height. Series are drawn independently and
// composed at render time; where series overlap in a cell, the earliest
// added series supplies the color.
type Canvas struct {
	width  int
	height int
	xmin   float64
	xmax   float64
	ymin   float64
	ymax   float64
	series []seriesLayer
}

type seriesLayer struct {
	style lipgloss.Style
	cells [][]uint8
}

// New creates a canvas of width x height terminal cells covering the given
// data ranges. Degenerate ranges are widened so every point stays mappable.
func New(width, height int, xmin, xmax, ymin, ymax float64) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if xmax-xmin < 1e-9 {
		xmin, xmax = xmin-1, xmax+1
	}
	if ymax-ymin < 1e-9 {
		ymin, ymax = ymin-1, ymax+1
	}
	return &Canvas{width: width, height: height, xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax}
}

// AddSeries registers a new drawing layer with its own style and returns its
// index for use with Point and Line.
func (c *Canvas) AddSeries(style lipgloss.Style) int {
	cells := make([][]uint8, c.height)
	for y := range cells {
		cells[y] = make([]uint8, c.width)
	}
	c.series = append(c.series, seriesLayer{style: style, cells: cells})
	return len(c.series) - 1
}

// Point plots a single data point onto the given series layer.
func (c *Canvas) Point(series int, x, y float64) {
	px, py := c.toDot(x, y)
	c.setDot(series, px, py)
}

// Line draws a straight segment between two data points on the given series
// layer.
func (c *Canvas) Line(series int, x0, y0, x1, y1 float64) {
	px0, py0 := c.toDot(x0, y0)
	px1, py1 := c.toDot(x1, y1)
	drawLine(px0, py0, px1, py1, func(px, py int) {
		c.setDot(series, px, py)
	})
}

// Rows renders the composed canvas as one styled string per cell row.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var row strings.Builder
		for x := 0; x < c.width; x++ {
			var mask uint8
			styleIdx := -1
			for i, layer := range c.series {
				if layer.cells[y][x] == 0 {
					continue
				}
				if styleIdx == -1 {
					styleIdx = i
				}
				mask |= layer.cells[y][x]
			}
			if mask == 0 {
				row.WriteByte(' ')
				continue
			}
			row.WriteString(c.series[styleIdx].style.Render(string(brailleFromMask(mask))))
		}
		rows[y] = row.String()
	}
	return rows
}

// toDot maps a data point onto dot coordinates, clamped to the drawable
// area. The y axis is flipped: larger values sit higher on screen.
func (c *Canvas) toDot(x, y float64) (int, int) {
	dotsW := c.width * 2
	dotsH := c.height * 4
	px := int(math.Round((x - c.xmin) / (c.xmax - c.xmin) * float64(dotsW-1)))
	py := int(math.Round((1 - (y-c.ymin)/(c.ymax-c.ymin)) * float64(dotsH-1)))
	return clamp(px, 0, dotsW-1), clamp(py, 0, dotsH-1)
}

func (c *Canvas) setDot(series, px, py int) {
	if series < 0 || series >= len(c.series) {
		return
	}
	cellY := py / 4
	cellX := px / 2
	if cellY < 0 || cellY >= c.height || cellX < 0 || cellX >= c.width {
		return
	}
	c.series[series].cells[cellY][cellX] |= brailleDotMask(px%2, py%4)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// drawLine rasterizes a segment in dot coordinates (Bresenham).
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

func brailleDotMask(x, y int) uint8 {
	switch {
	case x == 0 && y == 0:
		return 0x01
	case x == 0 && y == 1:
		return 0x02
	case x == 0 && y == 2:
		return 0x04
	case x == 0 && y == 3:
		return 0x40
	case x == 1 && y == 0:
		return 0x08
	case x == 1 && y == 1:
		return 0x10
	case x == 1 && y == 2:
		return 0x20
	case x == 1 && y == 3:
		return 0x80
	default:
		return 0
	}
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
