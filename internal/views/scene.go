package views

import (
	"github.com/schollz/multiverse/internal/types"
)

// Frame is the per-frame snapshot a scene draws from.
type Frame struct {
	Timeline  types.Timeline
	Pointer   types.PointerVector
	Influence types.PointerVector // spring-smoothed pointer
	Dominant  types.Timeline      // classifier candidate while in singularity
	Content   *types.Content
	Time      float64 // seconds since start
}

// Scene is one of the four timeline renderers. Each keeps its own animation
// state; Advance moves it forward by dt seconds and Draw paints the current
// state into c.
type Scene interface {
	Advance(dt float64, f Frame)
	Draw(c *Canvas, f Frame)
}

// Selector owns one instance of every scene and picks the one matching the
// active timeline.
type Selector struct {
	scenes map[types.Timeline]Scene
}

func NewSelector() *Selector {
	return &Selector{scenes: map[types.Timeline]Scene{
		types.Singularity:   NewSingularityScene(),
		types.DataTimeline:  NewDataScene(),
		types.ComicTimeline: NewComicScene(),
		types.Web3Timeline:  NewWeb3Scene(),
	}}
}

// SceneFor returns the renderer for t. Unknown values map to the singularity.
func (s *Selector) SceneFor(t types.Timeline) Scene {
	if sc, ok := s.scenes[t]; ok {
		return sc
	}
	return s.scenes[types.Singularity]
}

// Advance steps only the scene currently on screen.
func (s *Selector) Advance(dt float64, f Frame) {
	s.SceneFor(f.Timeline).Advance(dt, f)
}

// RenderScene draws exactly one scene, the one for f.Timeline.
func (s *Selector) RenderScene(c *Canvas, f Frame) {
	s.SceneFor(f.Timeline).Draw(c, f)
}
