package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/schollz/multiverse/internal/types"
)

// ────────────────────────────────────────────────────────────
// Palette
// ────────────────────────────────────────────────────────────
//
// Timeline colors come from types.TimelineInfo; everything structural is
// defined here.

var (
	colorText      = lipgloss.Color("#E6EDF3")
	colorTextDim   = lipgloss.Color("#8B949E")
	colorTextMuted = lipgloss.Color("#484F58")
	colorBgSurface = lipgloss.Color("#161B22")
	colorBlack     = "#000000"
	colorWhite     = "#FFFFFF"
)

var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText)

	headerBrandStyle = lipgloss.NewStyle().
				Background(colorBgSurface).
				Foreground(colorText).
				Bold(true)

	headerSepStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorTextMuted)

	soundOffStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorTextMuted)

	watchIdleStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// timelineStyle is a foreground style in the primary color of t.
func timelineStyle(t types.Timeline) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info().Primary))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// Blend mixes from toward to by t in [0, 1] in Lab space and returns a hex
// color usable by lipgloss.
func Blend(from, to string, t float64) string {
	t = clamp01(t)
	return mustHex(from).BlendLab(mustHex(to), t).Clamped().Hex()
}

// InfluenceColor tints white toward each timeline by how hard the pointer
// leans at it.
func InfluenceColor(inf types.Influence) string {
	c := colorWhite
	c = Blend(c, types.DataTimeline.Info().Primary, inf.Data)
	c = Blend(c, types.ComicTimeline.Info().Primary, inf.Comic)
	c = Blend(c, types.Web3Timeline.Info().Primary, inf.Web3)
	return c
}

// Dim darkens a hex color toward black.
func Dim(hex string, amount float64) string {
	return Blend(hex, colorBlack, amount)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
