package types

// Action is what a click on a rendered control asks for.
type Action int

const (
	ActionNone Action = iota
	ActionSwitch
	ActionToggleAudio
	ActionCommit
)

// Hotspot is a clickable control resolved from a screen cell.
type Hotspot struct {
	Action   Action
	Timeline Timeline // only meaningful for ActionSwitch
}

// Rect is a cell-aligned rectangle. Zero width or height contains nothing.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
