package views

import (
	"math"

	"github.com/schollz/multiverse/internal/types"
)

type comicPanel struct {
	title    string
	subtitle string
}

var comicPanels = []comicPanel{
	{"POW!", "Frontend Mastery"},
	{"WHAM!", "Creative Dev"},
	{"ZAP!", "UI/UX Design"},
}

var speechBubbles = []string{"React.js", "Three.js", "WebGL"}

// ComicScene is The Anomaly: a halftone page with bouncing action panels and
// the project list inked in a speech-balloon frame.
type ComicScene struct {
	t float64
}

func NewComicScene() *ComicScene { return &ComicScene{} }

func (s *ComicScene) Advance(dt float64, f Frame) { s.t += dt }

func (s *ComicScene) Draw(c *Canvas, f Frame) {
	info := types.ComicTimeline.Info()

	// Ben-Day dots, drifting slowly.
	shift := int(s.t * 2)
	dot := Dim(info.Secondary, 0.6)
	for y := 0; y < c.H; y++ {
		for x := (y + shift) % 4; x < c.W; x += 4 {
			c.Set(x, y, '·', dot)
		}
	}

	panelW := 16
	gap := 2
	total := len(comicPanels)*panelW + (len(comicPanels)-1)*gap
	if total <= c.W && c.H >= 12 {
		x0 := (c.W - total) / 2
		for i, p := range comicPanels {
			x := x0 + i*(panelW+gap)
			y := 1
			if math.Sin(s.t*3+float64(i)) > 0.6 {
				y = 0
			}
			c.Fill(x, y, panelW, 4, ' ', "")
			c.Box(x, y, panelW, 4, heavyBorder, colorWhite)
			c.BoldText(x+(panelW-len([]rune(p.title)))/2, y+1, p.title, info.Primary)
			c.Text(x+(panelW-len([]rune(p.subtitle)))/2, y+2, truncate(p.subtitle, panelW-2), info.Accent)
		}
	} else if c.H > 0 {
		c.CenterText(0, "THE ANOMALY", info.Primary)
	}

	panelW = min(c.W-4, 60)
	panelX := (c.W - panelW) / 2
	top := 6
	h := c.H - top - 3
	DrawProjects(c, types.Rect{X: panelX, Y: top, W: panelW, H: h},
		f.Content.ProjectsFor(types.ComicTimeline),
		f.Content.SkillsFor(types.ComicTimeline),
		PanelStyle{
			Border:  roundedBorder,
			Frame:   colorWhite,
			Title:   info.Primary,
			Body:    info.Accent,
			Tags:    info.Secondary,
			Bullet:  "✦ ",
			Heading: "THE ANOMALY",
		})

	// Speech bubbles along the bottom.
	if c.H >= 3 {
		x := 2
		for i, b := range speechBubbles {
			label := "( " + b + " )"
			y := c.H - 2
			if math.Sin(s.t*2+float64(i)*2) > 0 {
				y = c.H - 3
			}
			c.Text(x, y, label, colorWhite)
			x += len(label) + 3
		}
	}
}
