// ABOUTME: Waveform synthesis package
// ABOUTME: Generates the percussive drum hit used by the alarm mixer
// Package synth renders short synthetic waveforms to 16-bit PCM.
//
// The drum hit is an exponentially decaying sine:
//
//	amplitude(t) = 0.5 * sin(2*pi*f*t) * e^(-5t)
//
// with f = 100Hz for the fast preset and 80Hz for the slow preset, sampled
// at 44100Hz.
//
// Example:
//
//	drum, err := synth.Drum(1000, synth.Fast)
package synth
