package input

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schollz/multiverse/internal/model"
	"github.com/schollz/multiverse/internal/types"
)

// Normalize maps a cell position inside a width x height viewport onto the
// [-1, 1] pointer space: x grows to the right, y grows upward, the viewport
// center is the origin. Degenerate viewports are treated as one cell wide or
// tall so the result is always finite.
func Normalize(col, row, width, height int) types.PointerVector {
	w := float64(max(width, 1))
	h := float64(max(height, 1))
	x := (float64(col)/w)*2 - 1
	y := -(float64(row)/h)*2 + 1
	return types.PointerVector{X: x, Y: y}.Clamp()
}

// Tracker writes every mouse movement into the UI state while installed.
// bubbletea delivers mouse events to Update, so "subscribing" is the
// installed flag: an uninstalled tracker drops every event it is handed.
type Tracker struct {
	state     *model.State
	installed bool

	width, height int
	col, row      int
}

func NewTracker(state *model.State) *Tracker {
	return &Tracker{state: state, width: 1, height: 1}
}

// Install starts forwarding pointer events to the state.
func (t *Tracker) Install() { t.installed = true }

// Uninstall stops forwarding. Events arriving afterwards are ignored.
func (t *Tracker) Uninstall() { t.installed = false }

func (t *Tracker) Installed() bool { return t.installed }

// Resize records the viewport the next events are normalized against.
func (t *Tracker) Resize(width, height int) {
	t.width = max(width, 1)
	t.height = max(height, 1)
	t.col = min(t.col, t.width-1)
	t.row = min(t.row, t.height-1)
}

// Cell returns the last raw cell position seen.
func (t *Tracker) Cell() (col, row int) { return t.col, t.row }

// Handle normalizes msg and stores it. Every mouse message carries a
// position, so presses and wheel events move the pointer as well.
func (t *Tracker) Handle(msg tea.MouseMsg) {
	if !t.installed {
		return
	}
	t.moveTo(msg.X, msg.Y)
}

// Nudge moves the pointer by whole cells, for terminals without mouse
// motion reporting.
func (t *Tracker) Nudge(dCol, dRow int) {
	if !t.installed {
		return
	}
	col := min(max(t.col+dCol, 0), t.width-1)
	row := min(max(t.row+dRow, 0), t.height-1)
	t.moveTo(col, row)
}

// Place puts the pointer at p, which did not come from the mouse, and moves
// the cell to match it against the last viewport so later nudges and the
// anchor start from there.
func (t *Tracker) Place(p types.PointerVector) {
	p = p.Clamp()
	col := int(math.Round((p.X + 1) / 2 * float64(t.width)))
	row := int(math.Round((1 - p.Y) / 2 * float64(t.height)))
	t.col = min(max(col, 0), t.width-1)
	t.row = min(max(row, 0), t.height-1)
	t.state.SetPointer(p.X, p.Y)
}

func (t *Tracker) moveTo(col, row int) {
	t.col, t.row = col, row
	p := Normalize(col, row, t.width, t.height)
	t.state.SetPointer(p.X, p.Y)
}
