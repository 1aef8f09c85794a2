package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schollz/multiverse/internal/storage"
	"github.com/schollz/multiverse/internal/types"
)

func TestSelectorPicksExactlyOneScene(t *testing.T) {
	s := NewSelector()

	tests := []struct {
		timeline types.Timeline
		want     Scene
	}{
		{types.Singularity, s.scenes[types.Singularity]},
		{types.DataTimeline, s.scenes[types.DataTimeline]},
		{types.ComicTimeline, s.scenes[types.ComicTimeline]},
		{types.Web3Timeline, s.scenes[types.Web3Timeline]},
		{types.Timeline(42), s.scenes[types.Singularity]},
		{types.Timeline(-1), s.scenes[types.Singularity]},
	}
	for _, tt := range tests {
		assert.Same(t, tt.want, s.SceneFor(tt.timeline), tt.timeline.String())
	}

	assert.IsType(t, &SingularityScene{}, s.SceneFor(types.Singularity))
	assert.IsType(t, &DataScene{}, s.SceneFor(types.DataTimeline))
	assert.IsType(t, &ComicScene{}, s.SceneFor(types.ComicTimeline))
	assert.IsType(t, &Web3Scene{}, s.SceneFor(types.Web3Timeline))
}

func TestSelectorAdvancesOnlyTheActiveScene(t *testing.T) {
	s := NewSelector()
	s.Advance(1, Frame{Timeline: types.ComicTimeline})

	assert.InDelta(t, 1.0, s.SceneFor(types.ComicTimeline).(*ComicScene).t, 1e-9)
	assert.Zero(t, s.SceneFor(types.Web3Timeline).(*Web3Scene).t)
}

func TestScenesDrawContent(t *testing.T) {
	content := storage.DefaultContent()
	s := NewSelector()

	for _, tl := range types.CommittedTimelines {
		t.Run(tl.String(), func(t *testing.T) {
			c := NewCanvas(100, 40)
			f := Frame{Timeline: tl, Content: content, Time: 1}
			s.Advance(1.0/30, f)
			s.RenderScene(c, f)

			screen := strings.Join(c.Plain(), "\n")
			projects := content.ProjectsFor(tl)
			require.NotEmpty(t, projects)
			assert.Contains(t, screen, projects[0].Title)
		})
	}
}

func TestSingularityDrawsOwnerAndHint(t *testing.T) {
	content := storage.DefaultContent()
	scene := NewSingularityScene()
	c := NewCanvas(100, 40)

	scene.Draw(c, Frame{Content: content})
	screen := strings.Join(c.Plain(), "\n")
	assert.Contains(t, screen, content.Personal.Name)
	assert.Contains(t, screen, singularityHint)

	c.Clear()
	scene.Draw(c, Frame{Content: content, Dominant: types.Web3Timeline})
	assert.Contains(t, strings.Join(c.Plain(), "\n"), "The Mirror")
}

func TestScenesSurviveTinyCanvases(t *testing.T) {
	sizes := [][2]int{{0, 0}, {1, 1}, {5, 3}, {12, 6}}
	for _, size := range sizes {
		s := NewSelector()
		for _, tl := range []types.Timeline{types.Singularity, types.DataTimeline, types.ComicTimeline, types.Web3Timeline} {
			c := NewCanvas(size[0], size[1])
			f := Frame{Timeline: tl, Dominant: types.DataTimeline}
			assert.NotPanics(t, func() {
				s.Advance(0.5, f)
				s.RenderScene(c, f)
			}, "%s at %dx%d", tl, size[0], size[1])
		}
	}
}

func TestGlitchIntensity(t *testing.T) {
	assert.Equal(t, 0.2, GlitchIntensity(types.Singularity))
	for _, tl := range types.CommittedTimelines {
		assert.Equal(t, 0.5, GlitchIntensity(tl))
	}
}

func TestDrawProjects(t *testing.T) {
	projects := []types.Project{
		{ID: "a", Title: "Alpha", Description: "first", Technologies: []string{"Go"}, Featured: true},
		{ID: "b", Title: "Beta", Description: "second", Technologies: []string{"Rust"}},
	}

	c := NewCanvas(40, 10)
	n := DrawProjects(c, types.Rect{X: 0, Y: 0, W: 40, H: 10}, projects, []string{"Go", "Rust"},
		PanelStyle{Border: squareBorder, Bullet: "- ", Heading: "work"})
	assert.Equal(t, 2, n)

	screen := strings.Join(c.Plain(), "\n")
	assert.Contains(t, screen, "- Alpha ★")
	assert.Contains(t, screen, "- Beta")
	assert.Contains(t, screen, "Go / Rust")
	assert.Contains(t, screen, " work ")

	// Only the first project fits in five rows.
	c = NewCanvas(40, 6)
	n = DrawProjects(c, types.Rect{X: 0, Y: 0, W: 40, H: 6}, projects, nil, PanelStyle{Border: squareBorder})
	assert.Equal(t, 1, n)

	assert.Zero(t, DrawProjects(c, types.Rect{W: 4, H: 4}, projects, nil, PanelStyle{}))
}

func TestBlockHashIsStable(t *testing.T) {
	p := types.Project{ID: "defi", Title: "DeFi"}
	assert.Equal(t, BlockHash(p), BlockHash(p))
	assert.Len(t, BlockHash(p), 8)
	assert.NotEqual(t, BlockHash(p), BlockHash(types.Project{ID: "nft", Title: "NFT"}))
}
