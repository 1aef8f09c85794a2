package views

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/schollz/multiverse/internal/types"
)

// SplashState tracks the intro animation.
type SplashState struct {
	start    time.Time
	duration time.Duration
}

func NewSplashState(d time.Duration) *SplashState {
	return &SplashState{start: time.Now(), duration: d}
}

// Progress is the fraction of the intro elapsed at now, in [0, 1].
func (s *SplashState) Progress(now time.Time) float64 {
	if s.duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(s.start)) / float64(s.duration))
}

// Done reports whether the intro has played out.
func (s *SplashState) Done(now time.Time) bool {
	return s.Progress(now) >= 1
}

// RenderSplashScreen draws the three timeline sigils spiralling into the
// singularity, then the title.
func RenderSplashScreen(width, height int, s *SplashState, version string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c := NewCanvas(width, height)
	p := s.Progress(time.Now())

	cx, cy := float64(width)/2, float64(height)/2
	radius := (1 - easeOutCubic(p)) * math.Min(cx/2, cy) * 0.9
	for i, t := range types.CommittedTimelines {
		a := float64(i)*2*math.Pi/3 + p*4*math.Pi
		x := int(cx + math.Cos(a)*radius*2)
		y := int(cy - math.Sin(a)*radius)
		c.Text(x, y, t.Info().Icon, t.Info().Primary)
	}
	c.Set(int(cx), int(cy), []rune(types.Singularity.Info().Icon)[0], colorWhite)

	if p > 0.5 {
		title := "M U L T I V E R S E"
		fade := clamp01((p - 0.5) * 2)
		c.CenterText(int(cy)+2, title, Blend(colorBlack, colorWhite, fade))
		if version != "" {
			c.CenterText(int(cy)+3, version, Blend(colorBlack, string(colorTextDim), fade))
		}
	}

	var sb strings.Builder
	sb.WriteString(c.Render())
	if height > 1 {
		hint := helpStyle.Render("press any key")
		pad := max((width-lipgloss.Width(hint))/2, 0)
		// Overwrite the last row with the hint.
		rows := strings.Split(sb.String(), "\n")
		rows[len(rows)-1] = strings.Repeat(" ", pad) + hint
		return strings.Join(rows, "\n")
	}
	return sb.String()
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
