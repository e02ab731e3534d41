// ABOUTME: Audio encoder package for encoding PCM to various formats
// ABOUTME: Provides Encoder interface and implementations for PCM, WAV, MP3
// Package encode provides audio encoders for various codecs.
//
// Supports: PCM (16-bit and 24-bit), WAV, MP3
//
// MP3 output requires ffmpeg or lame on PATH.
//
// Example:
//
//	err := encode.Export(ctx, "tung_sahur_alarm.mp3", buf)
package encode
