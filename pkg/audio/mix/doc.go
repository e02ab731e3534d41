// ABOUTME: Audio mixing package
// ABOUTME: Overlays, attenuation and alarm clip composition
// Package mix combines mono PCM buffers.
//
// Overlay adds one buffer into another at a millisecond offset with
// saturating arithmetic; Attenuate applies a decibel gain. BuildAlarm
// composes the final clip:
//
//	canvas  = silence(ms(voice) + 1000ms)
//	canvas += drum        @ 0ms
//	canvas += voice       @ 500ms
//	canvas += drum - 10dB @ i*ms(drum), i = 1 .. ms(voice)/ms(drum) - 1
//
// Example:
//
//	clip, err := mix.BuildAlarm(voice, drum)
package mix
