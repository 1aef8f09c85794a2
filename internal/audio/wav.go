package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	DefaultSampleRate = 44100
	wavBitDepth       = 16
)

// WriteWAV encodes samples in [-1, 1] as 16-bit mono PCM.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	enc := wav.NewEncoder(w, sampleRate, wavBitDepth, 1, 1)

	scale := float64(int(1)<<(wavBitDepth-1) - 1)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(math.Round(math.Max(-1, math.Min(1, s)) * scale))
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}

// ExportWAV renders seconds of s into a WAV file at path and returns the
// absolute path written. Parent directories are created as needed.
func ExportWAV(path string, s Soundscape, sampleRate int, seconds float64) (string, error) {
	if seconds <= 0 {
		return "", fmt.Errorf("invalid duration %v", seconds)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", abs, err)
	}
	defer f.Close()

	if err := WriteWAV(f, Render(s, sampleRate, seconds), sampleRate); err != nil {
		return "", err
	}
	return abs, nil
}
