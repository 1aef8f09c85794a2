package audio

import "github.com/schollz/multiverse/internal/types"

// Waveform is the oscillator shape of a voice.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
	Square
	Sawtooth
)

func (w Waveform) String() string {
	switch w {
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	}
	return "sine"
}

// Voice is one oscillator of a soundscape. Times are in seconds, rates and
// frequencies in Hz.
type Voice struct {
	Name      string
	Waveform  Waveform
	Frequency float64
	Gain      float64

	// PulseInterval > 0 gates the voice: it sounds for PulseWidth at the
	// start of every interval and is silent otherwise.
	PulseInterval float64
	PulseWidth    float64

	// Attack ramps the gain linearly from zero.
	Attack float64

	VibratoRate  float64
	VibratoDepth float64
}

// Soundscape is the set of voices played while a timeline is active.
type Soundscape struct {
	Timeline types.Timeline
	Name     string
	Voices   []Voice
}

// ForTimeline returns the soundscape of t. Unknown timelines get the
// singularity rumble.
func ForTimeline(t types.Timeline) Soundscape {
	switch t {
	case types.DataTimeline:
		return dataSoundscape()
	case types.ComicTimeline:
		return comicSoundscape()
	case types.Web3Timeline:
		return web3Soundscape()
	default:
		return singularitySoundscape()
	}
}

// dataSoundscape is a harmonic series of short sine bleeps, each voice on
// its own pulse grid so the pattern phases against itself.
func dataSoundscape() Soundscape {
	freqs := []float64{220, 440, 880, 1760}
	s := Soundscape{Timeline: types.DataTimeline, Name: "data bleeps"}
	for i, f := range freqs {
		s.Voices = append(s.Voices, Voice{
			Name:          "bleep",
			Waveform:      Sine,
			Frequency:     f,
			Gain:          0.05,
			PulseInterval: 0.1 + float64(i)*0.05,
			PulseWidth:    0.02,
		})
	}
	return s
}

func comicSoundscape() Soundscape {
	return Soundscape{
		Timeline: types.ComicTimeline,
		Name:     "lo-fi bounce",
		Voices: []Voice{
			{
				Name:          "bass",
				Waveform:      Triangle,
				Frequency:     110,
				Gain:          0.15,
				PulseInterval: 0.5,
				PulseWidth:    0.1,
			},
			{
				Name:          "click",
				Waveform:      Square,
				Frequency:     2000,
				Gain:          0.05,
				PulseInterval: 0.25,
				PulseWidth:    0.02,
			},
		},
	}
}

// web3Soundscape is a Cmaj7 pad (C3 E3 G3 B3) that fades in over three
// seconds with a slow vibrato.
func web3Soundscape() Soundscape {
	freqs := []float64{130.81, 164.81, 196.00, 246.94}
	s := Soundscape{Timeline: types.Web3Timeline, Name: "ethereal pads"}
	for _, f := range freqs {
		s.Voices = append(s.Voices, Voice{
			Name:         "pad",
			Waveform:     Sine,
			Frequency:    f,
			Gain:         0.08,
			Attack:       3,
			VibratoRate:  0.5,
			VibratoDepth: 5,
		})
	}
	return s
}

func singularitySoundscape() Soundscape {
	return Soundscape{
		Timeline: types.Singularity,
		Name:     "rumble",
		Voices: []Voice{
			{Name: "rumble", Waveform: Sawtooth, Frequency: 40, Gain: 0.1},
		},
	}
}
