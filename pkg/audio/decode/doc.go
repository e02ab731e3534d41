// ABOUTME: Audio decoder package for multiple codec support
// ABOUTME: Provides Decoder interface and implementations for PCM, WAV, FLAC, MP3
// Package decode provides audio decoders for various codecs.
//
// Supports: PCM (16-bit and 24-bit), WAV, FLAC, MP3
//
// All decoders implement the Decoder interface, decode a whole clip at
// once and return a mono 16-bit buffer at the clip's sample rate.
// Multi-channel input is averaged down to mono.
//
// Example:
//
//	decoder, err := decode.ForCodec(format)
//	buf, err := decoder.Decode(audioData)
package decode
