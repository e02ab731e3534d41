// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for audio playback backends and buffer playback
package output

import (
	"context"
	"fmt"
	"log"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

// ChunkMs is how much audio Play hands the device per write
const ChunkMs = 100

// Output represents an audio output device
type Output interface {
	// Open initializes the output device
	Open(sampleRate, channels int) error

	// Write outputs audio samples (blocks until written)
	Write(samples []int16) error

	// Close releases output resources
	Close() error
}

// Drainer is implemented by outputs that buffer internally and can wait
// for queued audio to finish
type Drainer interface {
	Drain(ctx context.Context) error
}

// Play opens out for buf's format and writes the whole buffer in chunks.
// It stops early when ctx is cancelled.
func Play(ctx context.Context, out Output, buf audio.Buffer) error {
	channels := buf.Format.Channels
	if channels < 1 {
		channels = 1
	}
	if err := out.Open(buf.Format.SampleRate, channels); err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}

	chunk := audio.SamplesForMillis(buf.Format.SampleRate, ChunkMs) * channels
	if chunk <= 0 {
		chunk = len(buf.Samples)
	}

	log.Printf("Playing %dms of audio", buf.Milliseconds())

	for start := 0; start < len(buf.Samples); start += chunk {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := start + chunk
		if end > len(buf.Samples) {
			end = len(buf.Samples)
		}
		if err := out.Write(buf.Samples[start:end]); err != nil {
			return fmt.Errorf("failed to write audio: %w", err)
		}
	}

	if d, ok := out.(Drainer); ok {
		return d.Drain(ctx)
	}
	return nil
}
