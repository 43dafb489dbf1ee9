package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Series is a named WPM series drawn on the speed graph.
type Series struct {
	Name   string
	Values []float64
}

type dashPattern struct {
	name   string
	period int
	on     int
}

const (
	defaultGraphHeight = 8
	minGraphWidth      = 10
	graphSeparator     = " │ "
)

var dashPatterns = []dashPattern{
	{name: "solid", period: 1, on: 1},
	{name: "dashed", period: 6, on: 3},
}

var seriesStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
}

// TimelineSeries converts the timeline into smoothed WPM and raw WPM series.
func TimelineSeries(t *Timeline, window int) []Series {
	return []Series{
		{Name: "WPM", Values: MovingAverage(t.WPM(), window)},
		{Name: "Raw WPM", Values: MovingAverage(t.RawWPM(), window)},
	}
}

// PlotSeries draws the series as a braille line graph on a shared WPM axis.
// width is the total output width including the axis.
func PlotSeries(w io.Writer, series []Series, width, height int) error {
	series = nonEmpty(series)
	if len(series) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultGraphHeight
	}
	lo, hi := seriesBounds(series)
	labels := axisLabels(lo, hi, height)
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, utf8.RuneCountInString(l))
	}
	plotWidth := max(minGraphWidth, width-labelWidth-utf8.RuneCountInString(graphSeparator))

	grids := make([][][]uint8, len(series))
	for si, s := range series {
		grids[si] = newGrid(height, plotWidth)
		drawSeries(grids[si], resampleLinear(s.Values, plotWidth), lo, hi, dashPatterns[si%len(dashPatterns)])
	}

	for y := 0; y < height; y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "%*s%s", labelWidth, labels[y], graphSeparator)
		for x := 0; x < plotWidth; x++ {
			mask, owner := mergeCell(grids, x, y)
			ch := string(brailleRune(mask))
			if owner >= 0 {
				ch = seriesStyles[owner%len(seriesStyles)].Render(ch)
			}
			row.WriteString(ch)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(row.String(), string(brailleRune(0)))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, legend(series))
	return err
}

func nonEmpty(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// seriesBounds returns the shared value range, anchored at zero.
func seriesBounds(series []Series) (float64, float64) {
	hi := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			hi = math.Max(hi, v)
		}
	}
	if hi < 1e-9 {
		hi = 1
	}
	return 0, hi
}

func axisLabels(lo, hi float64, height int) []string {
	labels := make([]string, height)
	labels[0] = fmt.Sprintf("%.0f", hi)
	if height > 2 {
		labels[height/2] = fmt.Sprintf("%.0f", (lo+hi)/2)
	}
	if height > 1 {
		labels[height-1] = fmt.Sprintf("%.0f", lo)
	}
	return labels
}

func newGrid(height, width int) [][]uint8 {
	grid := make([][]uint8, height)
	for y := range grid {
		grid[y] = make([]uint8, width)
	}
	return grid
}

func drawSeries(grid [][]uint8, values []float64, lo, hi float64, pattern dashPattern) {
	dotRows := len(grid) * 4
	prevX, prevY := -1, -1
	for x, v := range values {
		px, py := x*2, valueToDotRow(v, lo, hi, dotRows)
		if prevX < 0 {
			if pattern.draws(px) {
				setDot(grid, px, py)
			}
		} else {
			bresenham(prevX, prevY, px, py, func(dx, dy int) {
				if pattern.draws(dx) {
					setDot(grid, dx, dy)
				}
			})
		}
		prevX, prevY = px, py
	}
}

func (p dashPattern) draws(x int) bool {
	if p.period <= 1 {
		return true
	}
	return x%p.period < p.on
}

func mergeCell(grids [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	owner := -1
	for i, grid := range grids {
		if m := grid[y][x]; m != 0 {
			if owner < 0 {
				owner = i
			}
			mask |= m
		}
	}
	return mask, owner
}

// resampleLinear stretches values to width points by linear interpolation, or
// shrinks them by bucket averaging.
func resampleLinear(values []float64, width int) []float64 {
	n := len(values)
	if n == 0 || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	switch {
	case n >= width:
		for i := range out {
			start := i * n / width
			end := max(start+1, (i+1)*n/width)
			sum := 0.0
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
	case n == 1 || width == 1:
		for i := range out {
			out[i] = values[0]
		}
	default:
		for i := range out {
			pos := float64(i) * float64(n-1) / float64(width-1)
			idx := min(int(pos), n-2)
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

func valueToDotRow(v, lo, hi float64, rows int) int {
	if rows <= 1 {
		return 0
	}
	pos := (v - lo) / (hi - lo)
	row := int(math.Round((1 - pos) * float64(rows-1)))
	return max(0, min(row, rows-1))
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Braille cells are 2 dots wide and 4 dots tall.
var dotMasks = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func setDot(grid [][]uint8, x, y int) {
	cy, cx := y/4, x/2
	if x < 0 || y < 0 || cy >= len(grid) || cx >= len(grid[cy]) {
		return
	}
	grid[cy][cx] |= dotMasks[x%2][y%4]
}

func brailleRune(mask uint8) rune {
	return rune(0x2800 + int(mask))
}

func legend(series []Series) string {
	parts := make([]string, len(series))
	for i, s := range series {
		label := fmt.Sprintf("%c %s (%s)", brailleRune(0x01), s.Name, dashPatterns[i%len(dashPatterns)].name)
		parts[i] = seriesStyles[i%len(seriesStyles)].Render(label)
	}
	return strings.Join(parts, "  ")
}
