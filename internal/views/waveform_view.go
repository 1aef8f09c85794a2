package views

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/schollz/gowaveform"

	"github.com/schollz/multiverse/internal/audio"
	"github.com/schollz/multiverse/internal/types"
)

// Eight vertical segments per cell give the strip sub-cell resolution.
const segmentsPerChar = 8

var (
	// Blocks hanging from the top of a cell, indexed by filled segments.
	upperBlocks = []string{" ", "▔", "🮂", "🮃", "▀", "🮄", "🮅", "🮆", "█"}
	// Blocks standing on the bottom of a cell, indexed by filled segments.
	lowerBlocks = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}
)

// MinMax reduces samples to width (min, max) pairs, one per column. It
// backs SoundscapeStrip when no rendered loop is available.
func MinMax(samples []float64, width int) []float64 {
	if width <= 0 || len(samples) == 0 {
		return nil
	}
	out := make([]float64, 0, width*2)
	for x := 0; x < width; x++ {
		lo := x * len(samples) / width
		hi := (x + 1) * len(samples) / width
		if hi <= lo {
			hi = lo + 1
		}
		if lo >= len(samples) {
			lo, hi = len(samples)-1, len(samples)
		}
		mn, mx := samples[lo], samples[lo]
		for _, v := range samples[lo:hi] {
			mn = math.Min(mn, v)
			mx = math.Max(mx, v)
		}
		out = append(out, mn, mx)
	}
	return out
}

const (
	// Every voice repeats within two seconds, so one rendered loop covers
	// the whole soundscape.
	loopSeconds = 2.0
	loopRate    = 22050
	stripSpan   = 0.05
)

// WaveformCache renders each soundscape loop to a WAV file once and cuts
// strip views out of it with gowaveform.
type WaveformCache struct {
	dir    string
	ownDir bool
	loops  map[types.Timeline]loopView
	failed map[types.Timeline]bool
}

// loopView returns (min, max) pairs for width columns between start and
// end seconds of a loaded loop.
type loopView func(start, end float64, width int) ([]int16, error)

// NewWaveformCache keeps its WAV files in dir. An empty dir means a private
// temporary directory, created on first use and removed by Close.
func NewWaveformCache(dir string) *WaveformCache {
	return &WaveformCache{
		dir:    dir,
		loops:  map[types.Timeline]loopView{},
		failed: map[types.Timeline]bool{},
	}
}

// Path is where the loop of t is written.
func (c *WaveformCache) Path(t types.Timeline) string {
	return filepath.Join(c.dir, t.String()+".wav")
}

func (c *WaveformCache) load(s audio.Soundscape) (loopView, error) {
	if wf, ok := c.loops[s.Timeline]; ok {
		return wf, nil
	}
	if c.dir == "" {
		dir, err := os.MkdirTemp("", "multiverse-waveforms")
		if err != nil {
			return nil, fmt.Errorf("creating waveform cache: %w", err)
		}
		c.dir, c.ownDir = dir, true
	}
	path, err := audio.ExportWAV(c.Path(s.Timeline), s, loopRate, loopSeconds)
	if err != nil {
		return nil, err
	}
	wf, err := gowaveform.LoadWaveform(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load waveform: %w", err)
	}
	c.loops[s.Timeline] = func(start, end float64, width int) ([]int16, error) {
		view, err := wf.GenerateView(gowaveform.WaveformOptions{
			Start: start,
			End:   end,
			Width: width,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate view: %w", err)
		}
		if view == nil {
			return nil, nil
		}
		return view.Data, nil
	}
	return c.loops[s.Timeline], nil
}

// Strip renders a moving window of the soundscape's waveform. t is the
// playback clock in seconds. When the loop cannot be rendered or loaded the
// window is synthesized directly instead.
func (c *WaveformCache) Strip(s audio.Soundscape, t float64, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if !c.failed[s.Timeline] {
		data, err := c.view(s, t, width)
		if err == nil {
			return RenderWaveform(width, height, data)
		}
		log.Printf("waveform: %s: %v", s.Timeline, err)
		c.failed[s.Timeline] = true
	}
	return SoundscapeStrip(s, t, width, height)
}

func (c *WaveformCache) view(s audio.Soundscape, t float64, width int) ([]float64, error) {
	generate, err := c.load(s)
	if err != nil {
		return nil, err
	}
	start := math.Mod(math.Max(t, 0), loopSeconds-stripSpan)
	pairs, err := generate(start, start+stripSpan, width)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("empty view at %.2fs", start)
	}

	// Normalize so the loudest column reaches full height; the raw gains
	// would be too quiet to see.
	var maxAbs int16
	for _, val := range pairs {
		if val < 0 {
			if -val > maxAbs {
				maxAbs = -val
			}
		} else if val > maxAbs {
			maxAbs = val
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}
	data := make([]float64, len(pairs))
	for i, val := range pairs {
		data[i] = float64(val) / float64(maxAbs)
	}
	return data, nil
}

// Close removes the temporary directory, if the cache created one.
func (c *WaveformCache) Close() error {
	if !c.ownDir {
		return nil
	}
	c.loops = map[types.Timeline]loopView{}
	c.ownDir = false
	dir := c.dir
	c.dir = ""
	return os.RemoveAll(dir)
}

// SoundscapeStrip synthesizes the strip window directly from the voice
// table, without a rendered loop.
func SoundscapeStrip(s audio.Soundscape, t float64, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	samples := audio.Preview(s, t, stripSpan, width*4)
	return RenderWaveform(width, height, MinMax(samples, width))
}

// RenderWaveform draws min/max pairs (values in [-1, 1]) as a mirrored
// strip of block characters around the vertical center. Rows are returned
// unstyled.
func RenderWaveform(width, height int, data []float64) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	virtualHeight := height * segmentsPerChar
	grid := make([][]bool, virtualHeight)
	for i := range grid {
		grid[i] = make([]bool, width)
	}

	center := virtualHeight / 2
	for i := 0; i < len(data)/2 && i < width; i++ {
		minY := center - int(data[i*2]*float64(center))
		maxY := center - int(data[i*2+1]*float64(center))
		minY = min(max(minY, 0), virtualHeight-1)
		maxY = min(max(maxY, 0), virtualHeight-1)
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		for y := minY; y <= maxY; y++ {
			grid[y][i] = true
		}
	}

	rows := make([]string, height)
	centerRow := height / 2
	for y := 0; y < height; y++ {
		row := make([]byte, 0, width*3)
		for x := 0; x < width; x++ {
			if y < centerRow {
				row = append(row, upperHalfChar(grid, x, y)...)
			} else {
				row = append(row, lowerHalfChar(grid, x, y)...)
			}
		}
		rows[y] = string(row)
	}
	return rows
}

// upperHalfChar picks the block for a cell above the center line. The fill
// stands on the bottom of the cell, up to the highest filled segment.
func upperHalfChar(grid [][]bool, x, y int) string {
	base := y * segmentsPerChar
	for i := 0; i < segmentsPerChar; i++ {
		if base+i < len(grid) && grid[base+i][x] {
			return lowerBlocks[segmentsPerChar-i]
		}
	}
	return lowerBlocks[0]
}

// lowerHalfChar picks the block for a cell on or below the center line. The
// fill hangs from the top of the cell, down to the deepest filled segment.
func lowerHalfChar(grid [][]bool, x, y int) string {
	base := y * segmentsPerChar
	for i := segmentsPerChar - 1; i >= 0; i-- {
		if base+i < len(grid) && grid[base+i][x] {
			return upperBlocks[i+1]
		}
	}
	return upperBlocks[0]
}
