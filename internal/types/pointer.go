package types

import "math"

// PointerVector is a normalized pointer position. Origin is the viewport
// center, y grows upward, both components lie in [-1, 1].
type PointerVector struct {
	X float64
	Y float64
}

// Clamp returns p with both components bounded to [-1, 1]. NaN collapses to 0.
func (p PointerVector) Clamp() PointerVector {
	return PointerVector{X: clampUnit(p.X), Y: clampUnit(p.Y)}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// Influence is how strongly the pointer leans toward each committed timeline.
type Influence struct {
	Data  float64
	Comic float64
	Web3  float64
}

// Influence derives per-timeline weights from the pointer position:
// left pulls toward data, up toward comic, right toward web3.
func (p PointerVector) Influence() Influence {
	return Influence{
		Data:  math.Max(0, -p.X),
		Comic: math.Max(0, p.Y),
		Web3:  math.Max(0, p.X),
	}
}
