package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/schollz/multiverse/internal/types"
)

const (
	waveRows     = 2
	soundOnText  = "[♪ on ]"
	soundOffText = "[♪ off]"
)

// Layout is the screen split for one frame. Rects are in terminal cells.
type Layout struct {
	Width, Height int

	Header  types.Rect
	Sound   types.Rect
	Wave    types.Rect
	Canvas  types.Rect
	Watch   types.Rect
	Help    types.Rect
	Buttons map[types.Timeline]types.Rect

	timeline types.Timeline
}

// WatchLabel is the text of one watch button.
func WatchLabel(t types.Timeline) string {
	info := t.Info()
	return " " + info.Icon + " " + info.Label + " "
}

// ComputeLayout stacks header, optional waveform strip, scene canvas, watch
// row and help rows from top to bottom. The watch row is always reserved so
// the canvas does not jump when a timeline is committed.
func ComputeLayout(width, height int, timeline types.Timeline, audioOn bool, helpRows int) Layout {
	width, height = max(width, 0), max(height, 0)
	l := Layout{Width: width, Height: height, timeline: timeline, Buttons: map[types.Timeline]types.Rect{}}

	y := 0
	l.Header = types.Rect{X: 0, Y: y, W: width, H: min(1, height)}
	soundW := lipgloss.Width(soundOffText)
	if width >= soundW {
		l.Sound = types.Rect{X: width - soundW, Y: y, W: soundW, H: l.Header.H}
	}
	y += l.Header.H

	if audioOn && height-y > waveRows+2 {
		l.Wave = types.Rect{X: 0, Y: y, W: width, H: waveRows}
		y += waveRows
	}

	helpRows = max(helpRows, 0)
	bottom := 1 + helpRows
	canvasH := max(height-y-bottom, 0)
	l.Canvas = types.Rect{X: 0, Y: y, W: width, H: canvasH}
	y += canvasH

	if y < height {
		l.Watch = types.Rect{X: 0, Y: y, W: width, H: 1}
		y++
	}
	l.Help = types.Rect{X: 0, Y: y, W: width, H: max(min(helpRows, height-y), 0)}

	if timeline.Committed() && l.Watch.H > 0 {
		// Buttons are right-aligned in watch order.
		total := 0
		for _, t := range types.CommittedTimelines {
			total += lipgloss.Width(WatchLabel(t)) + 1
		}
		x := width - total
		for _, t := range types.CommittedTimelines {
			w := lipgloss.Width(WatchLabel(t))
			if x >= 0 {
				l.Buttons[t] = types.Rect{X: x, Y: l.Watch.Y, W: w, H: 1}
			}
			x += w + 1
		}
	}
	return l
}

// At resolves a cell to the control drawn there.
func (l Layout) At(x, y int) (types.Hotspot, bool) {
	if l.Sound.Contains(x, y) {
		return types.Hotspot{Action: types.ActionToggleAudio}, true
	}
	for t, r := range l.Buttons {
		if r.Contains(x, y) {
			return types.Hotspot{Action: types.ActionSwitch, Timeline: t}, true
		}
	}
	if l.timeline == types.Singularity && l.Canvas.Contains(x, y) {
		return types.Hotspot{Action: types.ActionCommit}, true
	}
	return types.Hotspot{}, false
}
