package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one terminal cell of a Canvas. An empty FG means the terminal's
// default foreground.
type Cell struct {
	Ch   rune
	FG   string
	Bold bool
}

var blank = Cell{Ch: ' '}

// Canvas is a fixed-size grid the scenes and overlays paint into. Writes
// outside the grid are dropped.
type Canvas struct {
	W, H  int
	cells []Cell
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{W: w, H: h, cells: make([]Cell, w*h)}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blank
	}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.W && y < c.H
}

func (c *Canvas) Set(x, y int, ch rune, fg string) {
	if c.inside(x, y) {
		c.cells[y*c.W+x] = Cell{Ch: ch, FG: fg}
	}
}

func (c *Canvas) SetCell(x, y int, cell Cell) {
	if c.inside(x, y) {
		c.cells[y*c.W+x] = cell
	}
}

func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return blank
	}
	return c.cells[y*c.W+x]
}

// Text writes s left to right starting at (x, y), one rune per cell.
func (c *Canvas) Text(x, y int, s string, fg string) {
	for _, r := range s {
		c.Set(x, y, r, fg)
		x++
	}
}

// BoldText is Text with the bold attribute.
func (c *Canvas) BoldText(x, y int, s string, fg string) {
	for _, r := range s {
		c.SetCell(x, y, Cell{Ch: r, FG: fg, Bold: true})
		x++
	}
}

// CenterText writes s centered on row y.
func (c *Canvas) CenterText(y int, s string, fg string) {
	c.Text((c.W-len([]rune(s)))/2, y, s, fg)
}

// Box draws a single-line frame around r using the given corner and edge
// runes: top-left, top-right, bottom-left, bottom-right, horizontal, vertical.
func (c *Canvas) Box(x, y, w, h int, runes [6]rune, fg string) {
	if w < 2 || h < 2 {
		return
	}
	for i := 1; i < w-1; i++ {
		c.Set(x+i, y, runes[4], fg)
		c.Set(x+i, y+h-1, runes[4], fg)
	}
	for j := 1; j < h-1; j++ {
		c.Set(x, y+j, runes[5], fg)
		c.Set(x+w-1, y+j, runes[5], fg)
	}
	c.Set(x, y, runes[0], fg)
	c.Set(x+w-1, y, runes[1], fg)
	c.Set(x, y+h-1, runes[2], fg)
	c.Set(x+w-1, y+h-1, runes[3], fg)
}

// Fill paints every cell of the rectangle.
func (c *Canvas) Fill(x, y, w, h int, ch rune, fg string) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			c.Set(i, j, ch, fg)
		}
	}
}

// Line rasterizes a segment with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, ch rune, fg string) {
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
		c.Set(x0, y0, ch, fg)
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

// Plain returns the canvas without styling, one string per row.
func (c *Canvas) Plain() []string {
	rows := make([]string, c.H)
	for y := 0; y < c.H; y++ {
		var sb strings.Builder
		for x := 0; x < c.W; x++ {
			sb.WriteRune(c.cells[y*c.W+x].Ch)
		}
		rows[y] = sb.String()
	}
	return rows
}

// Render styles the canvas, grouping runs of equally colored cells so each
// run costs one escape sequence.
func (c *Canvas) Render() string {
	var out strings.Builder
	for y := 0; y < c.H; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		runFG, runBold := "", false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runFG == "" && !runBold {
				out.WriteString(run.String())
			} else {
				style := lipgloss.NewStyle().Bold(runBold)
				if runFG != "" {
					style = style.Foreground(lipgloss.Color(runFG))
				}
				out.WriteString(style.Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.W; x++ {
			cell := c.cells[y*c.W+x]
			fg, bold := cell.FG, cell.Bold
			if cell.Ch == ' ' {
				// Spaces take the color of the current run.
				fg, bold = runFG, runBold
			}
			if fg != runFG || bold != runBold {
				flush()
				runFG, runBold = fg, bold
			}
			run.WriteRune(cell.Ch)
		}
		flush()
	}
	return out.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
