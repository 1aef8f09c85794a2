package views

import (
	"github.com/charmbracelet/harmonica"

	"github.com/schollz/multiverse/internal/types"
)

// AnchorTimeline is the timeline the cursor is colored for: the committed
// one, or in the singularity whatever the pointer currently leans toward.
func AnchorTimeline(active, dominant types.Timeline) types.Timeline {
	if active != types.Singularity {
		return active
	}
	return dominant
}

// Anchor is the on-screen cursor: a ring at the pointer cell and a trailing
// particle that lags behind it.
type Anchor struct {
	spring         harmonica.Spring
	trailX, trailY float64
	velX, velY     float64
	placed         bool
}

func NewAnchor(fps int) *Anchor {
	if fps <= 0 {
		fps = 30
	}
	return &Anchor{spring: harmonica.NewSpring(harmonica.FPS(fps), 10.0, 1.0)}
}

// Advance pulls the trail toward the pointer cell.
func (a *Anchor) Advance(col, row int) {
	x, y := float64(col), float64(row)
	if !a.placed {
		a.trailX, a.trailY, a.placed = x, y, true
		return
	}
	a.trailX, a.velX = a.spring.Update(a.trailX, a.velX, x)
	a.trailY, a.velY = a.spring.Update(a.trailY, a.velY, y)
}

// Trail returns the rounded trail cell.
func (a *Anchor) Trail() (col, row int) {
	return int(a.trailX + 0.5), int(a.trailY + 0.5)
}

func (a *Anchor) Draw(c *Canvas, col, row int, active, dominant types.Timeline) {
	tl := AnchorTimeline(active, dominant)
	fg := colorWhite
	if tl != types.Singularity {
		fg = tl.Info().Primary
	}

	if tx, ty := a.Trail(); tx != col || ty != row {
		c.Set(tx, ty, '•', Dim(colorWhite, 0.5))
	}
	c.Set(col-1, row, '(', fg)
	c.Set(col+1, row, ')', fg)
	inner := '·'
	if tl != types.Singularity {
		inner = '●'
	}
	c.Set(col, row, inner, fg)
}
