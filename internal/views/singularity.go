package views

import (
	"math"
	"math/rand"

	"github.com/schollz/multiverse/internal/types"
)

const (
	debrisCount     = 50
	glitchIdle      = 0.2
	glitchLeaning   = 0.5
	heroPointCount  = 260
	heroRadius      = 1.5
	shadeRamp       = ".:-=+*#%@"
	singularityHint = "← data   ↑ comic   web3 →"
)

type debris struct {
	pos   Vec3
	phase float64
	glyph rune
}

// SingularityScene is the undecided state: a point-cloud bust that tilts with
// the pointer and takes on the colors of whichever timelines it leans toward,
// surrounded by drifting debris.
type SingularityScene struct {
	hero   []Vec3
	debris []debris
	rng    *rand.Rand

	spin      float64
	glitchRow int
	glitchOff int
}

func NewSingularityScene() *SingularityScene {
	s := &SingularityScene{rng: rand.New(rand.NewSource(42)), glitchRow: -1}

	// Elongate the top and narrow the neck so the sphere reads as a head.
	for _, p := range FibonacciSphere(heroPointCount, heroRadius) {
		if p.Y > 0 {
			p.Y *= 1.2
		}
		if p.Y < -0.5 {
			p.X *= 0.6
			p.Z *= 0.6
		}
		s.hero = append(s.hero, p)
	}

	glyphs := []rune("·∙•◦▪")
	for i := 0; i < debrisCount; i++ {
		s.debris = append(s.debris, debris{
			pos: Vec3{
				(s.rng.Float64() - 0.5) * 20,
				(s.rng.Float64() - 0.5) * 20,
				(s.rng.Float64()-0.5)*10 - 5,
			},
			phase: s.rng.Float64() * 2 * math.Pi,
			glyph: glyphs[i%len(glyphs)],
		})
	}
	return s
}

// GlitchIntensity is the chance per frame of a torn scanline. It rises once
// the pointer leans toward a timeline.
func GlitchIntensity(dominant types.Timeline) float64 {
	if dominant != types.Singularity {
		return glitchLeaning
	}
	return glitchIdle
}

func (s *SingularityScene) Advance(dt float64, f Frame) {
	s.spin += dt * 0.25
	s.glitchRow = -1
	if s.rng.Float64() < GlitchIntensity(f.Dominant) {
		s.glitchRow = s.rng.Intn(64)
		s.glitchOff = s.rng.Intn(5) - 2
	}
}

func (s *SingularityScene) Draw(c *Canvas, f Frame) {
	cam := DefaultCamera
	for _, d := range s.debris {
		p := d.pos
		p.Y += math.Sin(f.Time*0.5+d.phase) * 0.3
		x, y, _, ok := cam.Project(p, c.W, c.H)
		if !ok {
			continue
		}
		fg := Dim("#FFFFFF", 0.7)
		if f.Dominant != types.Singularity {
			fg = Dim(f.Dominant.Info().Secondary, 0.3)
		}
		c.Set(x, y, d.glyph, fg)
	}

	inf := f.Influence.Influence()
	tint := InfluenceColor(inf)

	// Nearest point wins each cell.
	depthBuf := make(map[int]float64, len(s.hero))
	for _, p := range s.hero {
		r := p.RotateY(f.Influence.X*0.3 + s.spin).RotateX(f.Influence.Y * 0.2)
		x, y, depth, ok := cam.Project(r, c.W, c.H)
		if !ok {
			continue
		}
		key := y*c.W + x
		if d, seen := depthBuf[key]; seen && d <= depth {
			continue
		}
		depthBuf[key] = depth

		// Points facing the camera are brighter.
		light := clamp01((r.Z/heroRadius + 1) / 2)
		ch := rune(shadeRamp[int(light*float64(len(shadeRamp)-1))])
		c.Set(x, y, ch, Dim(tint, 0.6*(1-light)))
	}

	s.drawText(c, f)

	if s.glitchRow >= 0 && c.H > 0 {
		row := s.glitchRow % c.H
		shiftRow(c, row, s.glitchOff)
	}
}

func (s *SingularityScene) drawText(c *Canvas, f Frame) {
	if f.Content != nil && c.H >= 6 {
		c.CenterText(1, f.Content.Personal.Name, colorWhite)
		c.CenterText(2, f.Content.Personal.Title, string(colorTextDim))
	}
	if c.H < 4 {
		return
	}
	if f.Dominant == types.Singularity {
		c.CenterText(c.H-2, singularityHint, string(colorTextDim))
		return
	}
	info := f.Dominant.Info()
	c.CenterText(c.H-2, "click to enter "+info.Label+" "+info.Icon, info.Primary)
}

// shiftRow tears one canvas row sideways by off cells.
func shiftRow(c *Canvas, row, off int) {
	if off == 0 || row < 0 || row >= c.H {
		return
	}
	line := make([]Cell, c.W)
	for x := range line {
		line[x] = c.At(x-off, row)
	}
	for x, cell := range line {
		c.SetCell(x, row, cell)
	}
}
