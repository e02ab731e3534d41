// ABOUTME: Audio output package for playing audio
// ABOUTME: Provides Output interface, oto implementation and buffer playback
// Package output provides audio playback interfaces.
//
// Currently supports oto for cross-platform audio output.
//
// Example:
//
//	out := output.NewOto()
//	defer out.Close()
//	err := output.Play(ctx, out, alarm)
package output
