package views

import (
	"strings"

	"github.com/schollz/multiverse/internal/types"
)

// PanelStyle decides how a project list looks inside a scene.
type PanelStyle struct {
	Border  [6]rune
	Frame   string // border color
	Title   string // project title color
	Body    string // description color
	Tags    string // technologies color
	Bullet  string
	Heading string
}

var (
	squareBorder  = [6]rune{'┌', '┐', '└', '┘', '─', '│'}
	heavyBorder   = [6]rune{'┏', '┓', '┗', '┛', '━', '┃'}
	roundedBorder = [6]rune{'╭', '╮', '╰', '╯', '─', '│'}
)

// wrap breaks s into lines of at most width runes on word boundaries. Words
// longer than width are cut.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			lines = append(lines, string(line))
			line = w
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// truncate cuts s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// DrawProjects renders a bordered project list into the rectangle r and
// returns how many projects fit.
func DrawProjects(c *Canvas, r types.Rect, projects []types.Project, skills []string, st PanelStyle) int {
	if r.W < 8 || r.H < 4 {
		return 0
	}
	c.Fill(r.X, r.Y, r.W, r.H, ' ', "")
	c.Box(r.X, r.Y, r.W, r.H, st.Border, st.Frame)
	if st.Heading != "" {
		c.BoldText(r.X+2, r.Y, " "+truncate(st.Heading, r.W-6)+" ", st.Title)
	}

	inner := r.W - 4
	y := r.Y + 1
	bottom := r.Y + r.H - 1
	if len(skills) > 0 {
		bottom--
	}

	shown := 0
	for _, p := range projects {
		desc := wrap(p.Description, inner-2)
		if len(desc) > 2 {
			desc = desc[:2]
		}
		need := 2 + len(desc)
		if y+need > bottom {
			break
		}
		title := st.Bullet + p.Title
		if p.Featured {
			title += " ★"
		}
		c.BoldText(r.X+2, y, truncate(title, inner), st.Title)
		y++
		for _, line := range desc {
			c.Text(r.X+4, y, line, st.Body)
			y++
		}
		c.Text(r.X+4, y, truncate(strings.Join(p.Technologies, " · "), inner-2), st.Tags)
		y++
		shown++
	}

	if len(skills) > 0 {
		c.Text(r.X+2, r.Y+r.H-2, truncate(strings.Join(skills, " / "), inner), st.Tags)
	}
	return shown
}
