// ABOUTME: Simple linear resampler for converting audio sample rates
// ABOUTME: Brings decoded voice audio to the 44.1kHz mixing rate
package resample

import (
	"math"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

// Resampler performs linear interpolation to convert between sample rates
type Resampler struct {
	inputRate  int
	outputRate int
	channels   int
	ratio      float64
	position   float64
}

// New creates a new resampler
func New(inputRate, outputRate, channels int) *Resampler {
	if channels < 1 {
		channels = 1
	}
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		channels:   channels,
		ratio:      float64(inputRate) / float64(outputRate),
		position:   0.0,
	}
}

// Resample converts input samples to output sample rate using linear interpolation
// input: interleaved samples at inputRate
// output: interleaved samples at outputRate
func (r *Resampler) Resample(input []int16, output []int16) int {
	if len(input) == 0 {
		return 0
	}

	inputFrames := len(input) / r.channels
	outputFrames := len(output) / r.channels

	outIdx := 0

	for outIdx < outputFrames {
		inputPos := r.position
		inputIdx := int(inputPos)

		// If we've consumed all input, stop
		if inputIdx >= inputFrames {
			break
		}

		frac := inputPos - float64(inputIdx)
		next := inputIdx + 1
		if next >= inputFrames {
			// hold the last frame instead of reading past the end
			next = inputIdx
		}

		for ch := 0; ch < r.channels; ch++ {
			sample1 := input[inputIdx*r.channels+ch]
			sample2 := input[next*r.channels+ch]

			interpolated := float64(sample1)*(1.0-frac) + float64(sample2)*frac
			output[outIdx*r.channels+ch] = audio.ClampFloat16(math.Round(interpolated))
		}

		outIdx++
		r.position += r.ratio
	}

	// Carry the position into the next chunk relative to its first frame
	r.position -= float64(inputFrames)
	if r.position < 0 {
		r.position = 0
	}

	return outIdx * r.channels
}

// Reset resets the resampler state
func (r *Resampler) Reset() {
	r.position = 0.0
}

// OutputSamplesNeeded calculates how many output samples will be produced from input samples
func (r *Resampler) OutputSamplesNeeded(inputSamples int) int {
	inputFrames := inputSamples / r.channels
	outputFrames := int(float64(inputFrames) / r.ratio)
	return outputFrames * r.channels
}

// InputSamplesNeeded calculates how many input samples are needed to produce output samples
func (r *Resampler) InputSamplesNeeded(outputSamples int) int {
	outputFrames := outputSamples / r.channels
	inputFrames := int(float64(outputFrames) * r.ratio)
	return inputFrames * r.channels
}

// ToRate converts a whole mono buffer to sampleRate. Buffers already at
// the target rate are returned unchanged.
func ToRate(buf audio.Buffer, sampleRate int) audio.Buffer {
	if buf.Format.SampleRate == sampleRate || buf.Format.SampleRate <= 0 || sampleRate <= 0 {
		return buf
	}

	r := New(buf.Format.SampleRate, sampleRate, 1)
	out := make([]int16, r.OutputSamplesNeeded(len(buf.Samples)))
	n := r.Resample(buf.Samples, out)

	format := buf.Format
	format.SampleRate = sampleRate
	return audio.Buffer{Samples: out[:n], Format: format}
}
