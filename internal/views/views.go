package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/schollz/multiverse/internal/audio"
	"github.com/schollz/multiverse/internal/input"
	"github.com/schollz/multiverse/internal/types"
)

const brand = " ◎ MULTIVERSE "

// Renderer owns all per-frame visual state: the scenes, the portal overlay,
// the cursor trail and the layout last drawn.
type Renderer struct {
	Selector *Selector
	Portal   *Portal
	Anchor   *Anchor
	Help     help.Model
	Content  *types.Content
	Waves    *WaveformCache

	canvas *Canvas
	layout Layout
	t      float64
}

func NewRenderer(content *types.Content, fps int) *Renderer {
	h := help.New()
	h.ShortSeparator = "  "
	return &Renderer{
		Selector: NewSelector(),
		Portal:   NewPortal(fps),
		Anchor:   NewAnchor(fps),
		Help:     h,
		Content:  content,
		Waves:    NewWaveformCache(""),
		canvas:   NewCanvas(0, 0),
	}
}

// Close drops the rendered waveform loops.
func (r *Renderer) Close() error {
	return r.Waves.Close()
}

// Layout is the split used by the most recent View.
func (r *Renderer) Layout() Layout { return r.layout }

// At resolves clicks against the most recent layout.
func (r *Renderer) At(x, y int) (types.Hotspot, bool) { return r.layout.At(x, y) }

// Elapsed is the animation clock in seconds.
func (r *Renderer) Elapsed() float64 { return r.t }

func (r *Renderer) frame(ctl *input.Controller) Frame {
	st := ctl.State
	return Frame{
		Timeline:  st.Timeline(),
		Pointer:   st.Pointer(),
		Influence: st.CursorInfluence(),
		Dominant:  ctl.Dominant(),
		Content:   r.Content,
		Time:      r.t,
	}
}

// Advance steps every animation by dt seconds.
func (r *Renderer) Advance(dt float64, ctl *input.Controller) {
	r.t += dt
	f := r.frame(ctl)
	r.Selector.Advance(dt, f)
	r.Portal.Advance(dt, ctl.State.Transitioning(), ctl.Sequencer)
	col, row := ctl.Tracker.Cell()
	r.Anchor.Advance(col, row)
}

// View renders the whole screen.
func (r *Renderer) View(ctl *input.Controller, width, height int) string {
	st := ctl.State
	r.Help.Width = width
	r.Help.ShowAll = ctl.ShowFullHelp
	helpView := r.Help.View(ctl.Keys)
	helpRows := lipgloss.Height(helpView)

	r.layout = ComputeLayout(width, height, st.Timeline(), st.AudioEnabled(), helpRows)
	l := r.layout

	var rows []string
	if l.Header.H > 0 {
		rows = append(rows, r.renderHeader(ctl, width))
	}
	if l.Wave.H > 0 {
		style := timelineStyle(st.Timeline())
		for _, line := range r.Waves.Strip(audio.ForTimeline(st.Timeline()), r.t, width, l.Wave.H) {
			rows = append(rows, style.Render(line))
		}
	}
	if l.Canvas.H > 0 {
		rows = append(rows, r.renderCanvas(ctl, l))
	}
	if l.Watch.H > 0 {
		rows = append(rows, r.renderWatch(ctl, l))
	}
	if l.Help.H > 0 {
		helpLines := strings.Split(helpView, "\n")
		rows = append(rows, helpLines[:min(len(helpLines), l.Help.H)]...)
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderHeader(ctl *input.Controller, width int) string {
	st := ctl.State
	info := st.Timeline().Info()

	left := headerBrandStyle.Render(brand) + headerSepStyle.Render("│ ")
	left += headerBarStyle.Foreground(lipgloss.Color(info.Primary)).Render(info.Icon + " " + info.Label)
	if target, ok := ctl.Sequencer.Portal(); ok && st.Transitioning() {
		next := target.Info()
		left += headerSepStyle.Render(" → ") +
			headerBarStyle.Foreground(lipgloss.Color(next.Primary)).Render(next.Label)
	}

	right := soundOffStyle.Render(soundOffText)
	if st.AudioEnabled() {
		right = headerBarStyle.Foreground(lipgloss.Color(info.Primary)).Render(soundOnText)
	}

	// The toggle keeps its place whenever the layout registered it; the
	// left side gives way instead.
	rightW := lipgloss.Width(right)
	if width < rightW {
		return lipgloss.NewStyle().MaxWidth(width).Render(left)
	}
	if avail := width - rightW; avail == 0 {
		left = ""
	} else if lipgloss.Width(left) > avail {
		left = lipgloss.NewStyle().MaxWidth(avail).Render(left)
	}
	gap := max(width-lipgloss.Width(left)-rightW, 0)
	return left + headerBarStyle.Render(strings.Repeat(" ", gap)) + right
}

func (r *Renderer) renderCanvas(ctl *input.Controller, l Layout) string {
	if r.canvas.W != l.Canvas.W || r.canvas.H != l.Canvas.H {
		r.canvas = NewCanvas(l.Canvas.W, l.Canvas.H)
	} else {
		r.canvas.Clear()
	}
	f := r.frame(ctl)
	r.Selector.RenderScene(r.canvas, f)
	r.Portal.Draw(r.canvas)

	col, row := ctl.Tracker.Cell()
	if ctl.Tracker.Installed() {
		r.Anchor.Draw(r.canvas, col, row-l.Canvas.Y, f.Timeline, f.Dominant)
	}
	return r.canvas.Render()
}

func (r *Renderer) renderWatch(ctl *input.Controller, l Layout) string {
	active := ctl.State.Timeline()
	if !active.Committed() {
		return strings.Repeat(" ", l.Width)
	}

	var sb strings.Builder
	cursor := 0
	for _, t := range types.CommittedTimelines {
		rect, ok := l.Buttons[t]
		if !ok {
			continue
		}
		sb.WriteString(strings.Repeat(" ", max(rect.X-cursor, 0)))
		label := WatchLabel(t)
		if t == active {
			sb.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color(t.Info().Primary)).
				Foreground(lipgloss.Color(colorBlack)).
				Bold(true).
				Render(label))
		} else {
			sb.WriteString(watchIdleStyle.Render(label))
		}
		cursor = rect.X + rect.W
	}
	return sb.String()
}
