package audio

import "math"

// Sample returns the voice's output at time t seconds after it started.
func (v Voice) Sample(t float64) float64 {
	if t < 0 {
		return 0
	}
	if v.PulseInterval > 0 && math.Mod(t, v.PulseInterval) >= v.PulseWidth {
		return 0
	}

	gain := v.Gain
	if v.Attack > 0 && t < v.Attack {
		gain *= t / v.Attack
	}

	// Phase of a sine-modulated frequency f + d*sin(2*pi*r*t), integrated.
	phase := 2 * math.Pi * v.Frequency * t
	if v.VibratoRate > 0 {
		phase += v.VibratoDepth * (1 - math.Cos(2*math.Pi*v.VibratoRate*t)) / v.VibratoRate
	}
	return gain * oscillate(v.Waveform, phase)
}

func oscillate(w Waveform, phase float64) float64 {
	frac := phase/(2*math.Pi) - math.Floor(phase/(2*math.Pi))
	switch w {
	case Triangle:
		return 1 - 4*math.Abs(frac-0.5)
	case Square:
		if frac < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*frac - 1
	default:
		return math.Sin(phase)
	}
}

// At mixes every voice of s at time t, hard-limited to [-1, 1].
func (s Soundscape) At(t float64) float64 {
	var sum float64
	for _, v := range s.Voices {
		sum += v.Sample(t)
	}
	return math.Max(-1, math.Min(1, sum))
}

// Render synthesizes seconds of s at sampleRate.
func Render(s Soundscape, sampleRate int, seconds float64) []float64 {
	if sampleRate <= 0 || seconds <= 0 {
		return nil
	}
	n := int(float64(sampleRate) * seconds)
	out := make([]float64, n)
	for i := range out {
		out[i] = s.At(float64(i) / float64(sampleRate))
	}
	return out
}

// Preview returns n evenly spaced samples covering span seconds from start,
// normalized so the loudest sample reaches +-1. Used for on-screen
// waveform strips, where the raw gains would be too quiet to see.
func Preview(s Soundscape, start, span float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	peak := 0.0
	for i := range out {
		out[i] = s.At(start + span*float64(i)/float64(n))
		peak = math.Max(peak, math.Abs(out[i]))
	}
	if peak > 0 {
		for i := range out {
			out[i] /= peak
		}
	}
	return out
}
