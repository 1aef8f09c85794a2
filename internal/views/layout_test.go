package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schollz/multiverse/internal/types"
)

func TestComputeLayoutSingularity(t *testing.T) {
	l := ComputeLayout(80, 24, types.Singularity, false, 1)

	assert.Equal(t, types.Rect{X: 0, Y: 0, W: 80, H: 1}, l.Header)
	assert.Zero(t, l.Wave.H)
	assert.Equal(t, types.Rect{X: 0, Y: 1, W: 80, H: 21}, l.Canvas)
	assert.Equal(t, types.Rect{X: 0, Y: 22, W: 80, H: 1}, l.Watch)
	assert.Equal(t, types.Rect{X: 0, Y: 23, W: 80, H: 1}, l.Help)
	assert.Empty(t, l.Buttons, "watch is hidden in the singularity")
}

func TestComputeLayoutCommittedWithAudio(t *testing.T) {
	l := ComputeLayout(120, 30, types.DataTimeline, true, 1)

	assert.Equal(t, types.Rect{X: 0, Y: 1, W: 120, H: waveRows}, l.Wave)
	assert.Equal(t, 3, l.Canvas.Y)
	assert.Equal(t, 25, l.Canvas.H)
	require.Len(t, l.Buttons, 3)

	data, comic, web3 := l.Buttons[types.DataTimeline], l.Buttons[types.ComicTimeline], l.Buttons[types.Web3Timeline]
	assert.Less(t, data.X+data.W, comic.X)
	assert.Less(t, comic.X+comic.W, web3.X)
	assert.LessOrEqual(t, web3.X+web3.W, 120)
	for _, r := range l.Buttons {
		assert.Equal(t, l.Watch.Y, r.Y)
	}
}

func TestLayoutHitTesting(t *testing.T) {
	t.Run("singularity canvas commits", func(t *testing.T) {
		l := ComputeLayout(80, 24, types.Singularity, false, 1)

		spot, ok := l.At(40, 10)
		require.True(t, ok)
		assert.Equal(t, types.ActionCommit, spot.Action)

		_, ok = l.At(40, 23)
		assert.False(t, ok, "help row is inert")
	})

	t.Run("sound toggle", func(t *testing.T) {
		l := ComputeLayout(80, 24, types.ComicTimeline, false, 1)
		require.NotZero(t, l.Sound.W)

		spot, ok := l.At(l.Sound.X, 0)
		require.True(t, ok)
		assert.Equal(t, types.ActionToggleAudio, spot.Action)

		_, ok = l.At(0, 0)
		assert.False(t, ok)
	})

	t.Run("watch buttons switch", func(t *testing.T) {
		l := ComputeLayout(120, 30, types.ComicTimeline, false, 1)
		for _, tl := range types.CommittedTimelines {
			r := l.Buttons[tl]
			spot, ok := l.At(r.X+r.W-1, r.Y)
			require.True(t, ok, tl.String())
			assert.Equal(t, types.Hotspot{Action: types.ActionSwitch, Timeline: tl}, spot)
		}
	})

	t.Run("committed canvas is inert", func(t *testing.T) {
		l := ComputeLayout(80, 24, types.Web3Timeline, false, 1)
		_, ok := l.At(40, 10)
		assert.False(t, ok)
	})
}

func TestComputeLayoutDegenerate(t *testing.T) {
	assert.NotPanics(t, func() {
		for _, size := range [][2]int{{0, 0}, {-5, -5}, {10, 2}, {3, 1}} {
			l := ComputeLayout(size[0], size[1], types.DataTimeline, true, 3)
			assert.GreaterOrEqual(t, l.Canvas.H, 0)
			assert.GreaterOrEqual(t, l.Help.H, 0)
		}
	})
}
