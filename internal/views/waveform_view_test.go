package views

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schollz/multiverse/internal/audio"
	"github.com/schollz/multiverse/internal/types"
)

func TestRenderWaveformSilence(t *testing.T) {
	rows := RenderWaveform(4, 2, make([]float64, 8))
	require.Len(t, rows, 2)
	assert.Equal(t, "    ", rows[0])
	assert.Equal(t, "▔▔▔▔", rows[1])
}

func TestRenderWaveformFullScale(t *testing.T) {
	data := []float64{-1, 1, -1, 1, 0, 0}
	rows := RenderWaveform(3, 2, data)
	require.Len(t, rows, 2)

	top := []rune(rows[0])
	bottom := []rune(rows[1])
	assert.Equal(t, '█', top[0])
	assert.Equal(t, '█', bottom[0])
	assert.Equal(t, ' ', top[2])
	assert.Equal(t, '▔', bottom[2])
}

func TestRenderWaveformHalfScale(t *testing.T) {
	// +0.5 reaches halfway up the upper cell.
	rows := RenderWaveform(1, 2, []float64{0, 0.5})
	assert.Equal(t, "▄", rows[0])
}

func TestRenderWaveformDegenerate(t *testing.T) {
	assert.Nil(t, RenderWaveform(0, 2, nil))
	assert.Nil(t, RenderWaveform(2, 0, nil))

	// Missing columns stay blank; out-of-range values are clamped.
	rows := RenderWaveform(3, 2, []float64{-5, 5})
	assert.Equal(t, 3, utf8.RuneCountInString(rows[0]))
	assert.Equal(t, '█', []rune(rows[0])[0])
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3, 4}, MinMax([]float64{1, 2, 3, 4}, 2))
	assert.Equal(t, []float64{-1, 3}, MinMax([]float64{3, -1, 0}, 1))
	assert.Len(t, MinMax([]float64{1, 2, 3}, 4), 8)
	assert.Nil(t, MinMax(nil, 4))
	assert.Nil(t, MinMax([]float64{1}, 0))
}

func TestSoundscapeStrip(t *testing.T) {
	for _, tl := range []types.Timeline{types.Singularity, types.DataTimeline, types.ComicTimeline, types.Web3Timeline} {
		rows := SoundscapeStrip(audio.ForTimeline(tl), 1.5, 30, 2)
		require.Len(t, rows, 2, tl.String())
		for _, row := range rows {
			assert.Equal(t, 30, utf8.RuneCountInString(row))
		}
	}
	assert.Nil(t, SoundscapeStrip(audio.ForTimeline(types.DataTimeline), 0, 0, 2))
}

func TestWaveformCacheStrip(t *testing.T) {
	dir := t.TempDir()
	c := NewWaveformCache(dir)
	defer c.Close()

	for _, tl := range []types.Timeline{types.Singularity, types.DataTimeline, types.ComicTimeline, types.Web3Timeline} {
		for _, at := range []float64{0, 0.7, 5.3} {
			rows := c.Strip(audio.ForTimeline(tl), at, 24, 2)
			require.Len(t, rows, 2, tl.String())
			for _, row := range rows {
				assert.Equal(t, 24, utf8.RuneCountInString(row))
			}
		}
		assert.FileExists(t, c.Path(tl), "loop is rendered once per timeline")
	}
	assert.Nil(t, c.Strip(audio.ForTimeline(types.DataTimeline), 0, 0, 2))

	// Close leaves a caller-owned directory alone.
	require.NoError(t, c.Close())
	assert.DirExists(t, dir)
}

func TestWaveformCacheOwnsTempDir(t *testing.T) {
	c := NewWaveformCache("")
	rows := c.Strip(audio.ForTimeline(types.ComicTimeline), 1, 10, 2)
	require.Len(t, rows, 2)

	path := c.Path(types.ComicTimeline)
	assert.FileExists(t, path)
	require.NoError(t, c.Close())
	assert.NoFileExists(t, path)
}

func TestWaveformCacheFallsBack(t *testing.T) {
	// A file where the cache directory should be makes every export fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	c := NewWaveformCache(blocker)
	s := audio.ForTimeline(types.Web3Timeline)
	assert.Equal(t, SoundscapeStrip(s, 1.5, 16, 2), c.Strip(s, 1.5, 16, 2))
	assert.True(t, c.failed[types.Web3Timeline])
}
