package views

import (
	"math"
	"math/rand"

	"github.com/schollz/multiverse/internal/types"
)

const rainGlyphs = "01アイウエオカキクケコサシスセソ{}[]<>/=;"

type rainDrop struct {
	y     float64
	speed float64
	trail int
}

// DataScene is The Architect: falling code rain behind a terminal-style
// project listing.
type DataScene struct {
	rng    *rand.Rand
	drops  []rainDrop
	glyphs []rune
	blink  float64
}

func NewDataScene() *DataScene {
	return &DataScene{rng: rand.New(rand.NewSource(1)), glyphs: []rune(rainGlyphs)}
}

func (s *DataScene) ensure(w, h int) {
	for len(s.drops) < w {
		s.drops = append(s.drops, s.newDrop(h, true))
	}
}

func (s *DataScene) newDrop(h int, scatter bool) rainDrop {
	d := rainDrop{speed: 4 + s.rng.Float64()*12, trail: 3 + s.rng.Intn(8)}
	if scatter {
		d.y = s.rng.Float64() * float64(max(h, 1))
	} else {
		d.y = -float64(s.rng.Intn(max(h, 1)))
	}
	return d
}

func (s *DataScene) Advance(dt float64, f Frame) {
	s.blink += dt
	for i := range s.drops {
		s.drops[i].y += s.drops[i].speed * dt
	}
}

func (s *DataScene) Draw(c *Canvas, f Frame) {
	info := types.DataTimeline.Info()
	s.ensure(c.W, c.H)

	// Every other column rains.
	for x := 0; x < c.W; x += 2 {
		d := &s.drops[x]
		if int(d.y)-d.trail > c.H {
			*d = s.newDrop(c.H, false)
		}
		head := int(d.y)
		for k := 0; k <= d.trail; k++ {
			y := head - k
			if y < 0 || y >= c.H {
				continue
			}
			g := s.glyphs[(x*7+y*13+int(s.blink*3))%len(s.glyphs)]
			switch {
			case k == 0:
				c.Set(x, y, g, info.Accent)
			default:
				fade := float64(k) / float64(d.trail+1)
				c.Set(x, y, g, Dim(info.Secondary, 0.3+0.6*fade))
			}
		}
	}

	title := "> THE ARCHITECT"
	if math.Mod(s.blink, 1) < 0.5 {
		title += "_"
	}
	panelW := min(c.W-4, 64)
	panelX := (c.W - panelW) / 2
	if c.H >= 4 {
		c.Fill(panelX, 1, panelW, 3, ' ', "")
		c.BoldText(panelX+1, 1, title, info.Primary)
		c.Text(panelX+1, 2, "SYSTEM.BOOT [OK]", info.Primary)
		c.Text(panelX+1, 3, truncate("Machine Learning • Data Science • Cloud Architecture", panelW-2), info.Secondary)
	}

	DrawProjects(c, types.Rect{X: panelX, Y: 5, W: panelW, H: c.H - 6},
		f.Content.ProjectsFor(types.DataTimeline),
		f.Content.SkillsFor(types.DataTimeline),
		PanelStyle{
			Border:  squareBorder,
			Frame:   info.Secondary,
			Title:   info.Primary,
			Body:    info.Secondary,
			Tags:    Dim(info.Primary, 0.4),
			Bullet:  "$ ",
			Heading: "ls ./projects",
		})
}
