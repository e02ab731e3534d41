// ABOUTME: Drum hit synthesizer
// ABOUTME: Renders an exponentially decaying sine "thump" to 16-bit PCM
package synth

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

const (
	// SampleRate is the fixed synthesis rate
	SampleRate = audio.DefaultSampleRate

	// DefaultDurationMs is the length of one drum hit
	DefaultDurationMs = 1000

	// Amplitude is the peak level before decay. Values above 1.0 clip.
	Amplitude = 0.5

	// DecayRate is the exponent of the e^(-k*t) envelope
	DecayRate = 5.0

	fullScale = 32767.0
)

var (
	ErrUnknownTempo    = errors.New("synth: unknown tempo")
	ErrInvalidDuration = errors.New("synth: duration must be positive")
)

// Tempo selects the drum pitch preset
type Tempo string

const (
	Fast Tempo = "fast"
	Slow Tempo = "slow"
)

// Tempos lists the supported presets in display order
var Tempos = []Tempo{Fast, Slow}

// ParseTempo normalizes user input into a Tempo
func ParseTempo(s string) (Tempo, error) {
	t := Tempo(strings.ToLower(strings.TrimSpace(s)))
	if _, err := t.Frequency(); err != nil {
		return "", err
	}
	return t, nil
}

// Frequency returns the sine frequency for the preset
func (t Tempo) Frequency() (float64, error) {
	switch t {
	case Fast:
		return 100, nil
	case Slow:
		return 80, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTempo, string(t))
}

func (t Tempo) String() string { return string(t) }

// Envelope returns the decay multiplier at t seconds
func Envelope(t float64) float64 {
	return math.Exp(-DecayRate * t)
}

// AmplitudeAt returns the unquantized drum value at t seconds
func AmplitudeAt(freq, t float64) float64 {
	return Amplitude * math.Sin(2*math.Pi*freq*t) * Envelope(t)
}

// Drum renders a single drum hit of durationMs at the tempo's pitch.
// Sample times are spaced duration/n apart starting at zero, and each value
// is scaled to full scale and truncated toward zero.
func Drum(durationMs int, tempo Tempo) (audio.Buffer, error) {
	if durationMs <= 0 {
		return audio.Buffer{}, fmt.Errorf("%w: %dms", ErrInvalidDuration, durationMs)
	}
	freq, err := tempo.Frequency()
	if err != nil {
		return audio.Buffer{}, err
	}

	n := audio.SamplesForMillisRounded(SampleRate, durationMs)
	buf := audio.NewBuffer(audio.DefaultFormat, n)
	if n == 0 {
		return buf, nil
	}

	seconds := float64(durationMs) / 1000
	step := seconds / float64(n)
	for i := 0; i < n; i++ {
		t := float64(i) * step
		buf.Samples[i] = audio.ClampFloat16(AmplitudeAt(freq, t) * fullScale)
	}

	return buf, nil
}
