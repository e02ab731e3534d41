// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample conversion helpers
// Package audio provides the fundamental audio types shared by the
// synthesizer, mixer, codecs and playback packages.
//
// This package defines:
//   - Format: Describes a PCM stream (codec, sample rate, channels, bit depth)
//   - Buffer: Mono 16-bit PCM samples with their format
//
// It also provides helpers for millisecond/sample conversion, int16
// saturation, decibel gain and channel downmixing.
//
// Example:
//
//	buf := audio.NewBuffer(audio.DefaultFormat, audio.SamplesForMillis(44100, 1000))
//	fmt.Println(buf.Milliseconds()) // 1000
package audio
