// ABOUTME: Audio type definitions
// ABOUTME: Defines the mono 16-bit PCM format and in-memory buffers
package audio

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// DefaultSampleRate is the rate every buffer is mixed at
	DefaultSampleRate = 44100

	// 16-bit sample range
	MaxInt16 = math.MaxInt16
	MinInt16 = math.MinInt16
)

// ErrFormatMismatch is returned when buffers with different formats are combined
var ErrFormatMismatch = errors.New("audio: format mismatch")

// Format describes a PCM stream format
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// Mono16 returns the mono 16-bit PCM format at the given rate
func Mono16(sampleRate int) Format {
	return Format{
		Codec:      "pcm",
		SampleRate: sampleRate,
		Channels:   1,
		BitDepth:   16,
	}
}

// DefaultFormat is the format the synthesizer and mixer work in
var DefaultFormat = Mono16(DefaultSampleRate)

// String returns a short human-readable description
func (f Format) String() string {
	return fmt.Sprintf("%s %dHz %dch %d-bit", f.Codec, f.SampleRate, f.Channels, f.BitDepth)
}

// Buffer represents decoded mono PCM audio
type Buffer struct {
	Samples []int16
	Format  Format
}

// NewBuffer allocates a silent buffer holding n samples
func NewBuffer(format Format, n int) Buffer {
	if n < 0 {
		n = 0
	}
	return Buffer{Samples: make([]int16, n), Format: format}
}

// Len returns the number of samples
func (b Buffer) Len() int {
	return len(b.Samples)
}

// Milliseconds returns the buffer length rounded to whole milliseconds
func (b Buffer) Milliseconds() int {
	if b.Format.SampleRate <= 0 {
		return 0
	}
	return int(math.Round(1000 * float64(len(b.Samples)) / float64(b.Format.SampleRate)))
}

// Duration returns the buffer length as a time.Duration
func (b Buffer) Duration() time.Duration {
	if b.Format.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(b.Samples)) * time.Second / time.Duration(b.Format.SampleRate)
}

// Clone returns a deep copy of the buffer
func (b Buffer) Clone() Buffer {
	samples := make([]int16, len(b.Samples))
	copy(samples, b.Samples)
	return Buffer{Samples: samples, Format: b.Format}
}

// SamplesForMillis converts a millisecond offset to a sample count (floored)
func SamplesForMillis(sampleRate, ms int) int {
	return int(int64(sampleRate) * int64(ms) / 1000)
}

// SamplesForMillisRounded converts a millisecond length to the nearest sample count
func SamplesForMillisRounded(sampleRate, ms int) int {
	return int((int64(sampleRate)*int64(ms) + 500) / 1000)
}

// Clamp16 saturates a wide sample value to the int16 range
func Clamp16(v int64) int16 {
	if v > MaxInt16 {
		return MaxInt16
	}
	if v < MinInt16 {
		return MinInt16
	}
	return int16(v)
}

// ClampFloat16 saturates a float sample (already in int16 units) and
// truncates it toward zero
func ClampFloat16(v float64) int16 {
	if v >= MaxInt16 {
		return MaxInt16
	}
	if v <= MinInt16 {
		return MinInt16
	}
	return int16(v)
}

// DBToGain converts a decibel change to a linear amplitude multiplier
func DBToGain(db float64) float64 {
	return math.Pow(10, db/20)
}

// Downmix averages interleaved frames into a mono slice
func Downmix(interleaved []int16, channels int) []int16 {
	if channels <= 1 {
		out := make([]int16, len(interleaved))
		copy(out, interleaved)
		return out
	}
	frames := len(interleaved) / channels
	out := make([]int16, frames)
	for i := 0; i < frames; i++ {
		var sum int64
		for ch := 0; ch < channels; ch++ {
			sum += int64(interleaved[i*channels+ch])
		}
		out[i] = int16(sum / int64(channels))
	}
	return out
}

// ScaleTo16 converts a sample of the given bit depth to 16-bit
func ScaleTo16(sample int32, bitDepth int) int16 {
	switch {
	case bitDepth == 16:
		return Clamp16(int64(sample))
	case bitDepth > 16:
		return Clamp16(int64(sample >> (bitDepth - 16)))
	case bitDepth > 0:
		return Clamp16(int64(sample) << (16 - bitDepth))
	}
	return 0
}
