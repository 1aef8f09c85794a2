package views

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/schollz/multiverse/internal/types"
)

const shardCount = 5

// Web3Scene is The Mirror: glass shards orbiting the title while the
// projects hang off a chain of blocks.
type Web3Scene struct {
	t     float64
	orbit float64
}

func NewWeb3Scene() *Web3Scene { return &Web3Scene{} }

func (s *Web3Scene) Advance(dt float64, f Frame) {
	s.t += dt
	s.orbit += dt * 0.2
}

func (s *Web3Scene) Draw(c *Canvas, f Frame) {
	info := types.Web3Timeline.Info()
	cam := DefaultCamera

	// Each shard is a 1.5 x 2.5 pane facing the center, radius 3.
	for i := 0; i < shardCount; i++ {
		angle := float64(i)/shardCount*2*math.Pi + s.orbit
		center := Vec3{math.Cos(angle) * 3, math.Sin(float64(i)+s.t) * 0.5, math.Sin(angle) * 3}
		corners := []Vec3{{-0.75, -1.25, 0}, {0.75, -1.25, 0}, {0.75, 1.25, 0}, {-0.75, 1.25, 0}}
		var px, py [4]int
		visible := true
		for k, corner := range corners {
			p := corner.RotateY(-angle + math.Pi/2).Add(center)
			x, y, _, ok := cam.Project(p, c.W, c.H)
			if !ok {
				visible = false
				break
			}
			px[k], py[k] = x, y
		}
		if !visible {
			continue
		}
		fg := Dim(info.Secondary, 0.5)
		if center.Z > 0 {
			fg = info.Secondary
		}
		for k := 0; k < 4; k++ {
			n := (k + 1) % 4
			c.Line(px[k], py[k], px[n], py[n], '░', fg)
		}
	}

	if c.H >= 3 {
		title := "THE MIRROR DIMENSION"
		c.BoldText((c.W-len(title))/2, 1, title, info.Secondary)
		lineW := min(len(title)+4, c.W)
		c.Text((c.W-lineW)/2, 2, repeatRune('━', lineW), info.Accent)
	}

	projects := f.Content.ProjectsFor(types.Web3Timeline)
	panelW := min(c.W-4, 60)
	panelX := (c.W - panelW) / 2
	DrawProjects(c, types.Rect{X: panelX, Y: 4, W: panelW, H: c.H - 8},
		projects,
		f.Content.SkillsFor(types.Web3Timeline),
		PanelStyle{
			Border:  squareBorder,
			Frame:   info.Primary,
			Title:   info.Secondary,
			Body:    colorWhite,
			Tags:    info.Accent,
			Bullet:  "◈ ",
			Heading: "ledger",
		})

	s.drawChain(c, projects, info)
}

// drawChain lays one block per project along the bottom edge, linked left to
// right, each labeled with a short content hash.
func (s *Web3Scene) drawChain(c *Canvas, projects []types.Project, info types.TimelineInfo) {
	if c.H < 6 || len(projects) == 0 {
		return
	}
	const blockW = 12
	y := c.H - 3
	x := 2
	for i, p := range projects {
		if x+blockW > c.W {
			break
		}
		if i > 0 {
			c.Text(x-3, y+1, "══", info.Accent)
		}
		fg := info.Primary
		// A pulse travels down the chain.
		if int(s.t*2)%len(projects) == i {
			fg = info.Accent
		}
		c.Box(x, y, blockW-2, 3, squareBorder, fg)
		c.Text(x+1, y+1, BlockHash(p), info.Secondary)
		x += blockW + 1
	}
}

// BlockHash is a short stable fingerprint of a project.
func BlockHash(p types.Project) string {
	h := fnv.New32a()
	h.Write([]byte(p.ID))
	h.Write([]byte(p.Title))
	return fmt.Sprintf("0x%06x", h.Sum32()&0xffffff)
}

func repeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
