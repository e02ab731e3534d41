// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts audio between different sample rates
// Package resample provides audio sample rate conversion.
//
// Uses linear interpolation for converting between sample rates.
// Handles both upsampling and downsampling.
//
// Example:
//
//	r := resample.New(24000, 44100, 1)
//	n := r.Resample(inputSamples, outputSamples)
//
// Whole buffers can be converted in one call:
//
//	voice = resample.ToRate(voice, audio.DefaultSampleRate)
package resample
