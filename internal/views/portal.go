package views

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/schollz/multiverse/internal/types"
)

// PortalSource reports the timeline a running transition is heading to.
type PortalSource interface {
	Portal() (types.Timeline, bool)
}

// Portal is the overlay drawn over the scene while a transition runs. Its
// look depends on the destination: a grid for data, a torn rift for comic,
// an eight-fold mirror for web3 and a plain ring back into the singularity.
type Portal struct {
	spring    harmonica.Spring
	open, vel float64
	target    types.Timeline
	active    bool
	t         float64
}

func NewPortal(fps int) *Portal {
	if fps <= 0 {
		fps = 30
	}
	return &Portal{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.6)}
}

func (p *Portal) Active() bool { return p.active }

// Target is the destination the overlay is styled for.
func (p *Portal) Target() types.Timeline { return p.target }

// Advance eases the opening toward fully open while transitioning and snaps
// closed once the transition ends.
func (p *Portal) Advance(dt float64, transitioning bool, src PortalSource) {
	if !transitioning {
		p.active = false
		p.open, p.vel, p.t = 0, 0, 0
		return
	}
	if src != nil {
		if target, ok := src.Portal(); ok {
			p.target = target
		}
	}
	p.active = true
	p.t += dt
	p.open, p.vel = p.spring.Update(p.open, p.vel, 1)
}

func (p *Portal) Draw(c *Canvas) {
	if !p.active || c.W == 0 || c.H == 0 {
		return
	}
	cx, cy := float64(c.W)/2, float64(c.H)/2
	// Radius in rows; columns are scaled by the cell aspect.
	maxR := math.Hypot(cx/DefaultCamera.CellAspect, cy)
	r := math.Max(0, p.open) * maxR
	info := p.target.Info()

	switch p.target {
	case types.DataTimeline:
		p.drawGrid(c, cx, cy, r, info)
	case types.ComicTimeline:
		p.drawRift(c, cx, cy, r, info)
	case types.Web3Timeline:
		p.drawMirror(c, cx, cy, r, info)
	default:
		p.drawRing(c, cx, cy, r)
	}
}

func cellDistance(x, y int, cx, cy float64) float64 {
	return math.Hypot((float64(x)+0.5-cx)/DefaultCamera.CellAspect, float64(y)+0.5-cy)
}

func (p *Portal) drawGrid(c *Canvas, cx, cy, r float64, info types.TimelineInfo) {
	step := max(2, int(6*p.open))
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			if cellDistance(x, y, cx, cy) > r {
				continue
			}
			onCol := x%(step*2) == 0
			onRow := y%step == 0
			switch {
			case onCol && onRow:
				c.Set(x, y, '┼', info.Primary)
			case onRow:
				c.Set(x, y, '─', info.Secondary)
			case onCol:
				c.Set(x, y, '│', info.Secondary)
			}
		}
	}
}

func (p *Portal) drawRift(c *Canvas, cx, cy, r float64, info types.TimelineInfo) {
	half := r * DefaultCamera.CellAspect / 2
	for y := 0; y < c.H; y++ {
		// Jagged edge: a sawtooth offset per row.
		jag := float64((y*7)%5) - 2
		left := int(cx - half + jag)
		right := int(cx + half - jag)
		for x := max(left, 0); x <= right && x < c.W; x++ {
			ch := '█'
			if x == left || x == right {
				ch = '▓'
			}
			c.Set(x, y, ch, info.Primary)
		}
	}
	if r > 2 {
		label := "WHRRRIP!"
		c.BoldText(int(cx)-len(label)/2, int(cy), label, colorBlack)
	}
}

func (p *Portal) drawMirror(c *Canvas, cx, cy, r float64, info types.TimelineInfo) {
	// Eight rays fold outward, turning up to 45 degrees as the portal opens.
	spin := p.open * math.Pi / 4
	for i := 0; i < 8; i++ {
		a := float64(i)*math.Pi/4 + spin
		fg := info.Primary
		if i%2 == 1 {
			fg = info.Accent
		}
		ex := int(cx + math.Cos(a)*r*DefaultCamera.CellAspect)
		ey := int(cy - math.Sin(a)*r)
		c.Line(int(cx), int(cy), ex, ey, '◆', fg)
	}
	p.drawRingAt(c, cx, cy, r*0.9, '◇', info.Secondary)
}

func (p *Portal) drawRing(c *Canvas, cx, cy, r float64) {
	p.drawRingAt(c, cx, cy, r*0.6, '○', colorWhite)
	p.drawRingAt(c, cx, cy, r*0.4, '·', colorWhite)
}

func (p *Portal) drawRingAt(c *Canvas, cx, cy, r float64, ch rune, fg string) {
	if r < 0.5 {
		return
	}
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			if math.Abs(cellDistance(x, y, cx, cy)-r) < 0.5 {
				c.Set(x, y, ch, fg)
			}
		}
	}
}
