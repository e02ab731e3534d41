// ABOUTME: WAV file writer
// ABOUTME: Wraps mono int16 buffers in a RIFF/WAVE container via go-audio
package encode

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

// wavPCM is the WAVE format tag for integer PCM
const wavPCM = 1

// WriteWAV writes buf as a 16-bit WAV stream. The header sizes are patched
// on close, so w must be seekable.
func WriteWAV(w io.WriteSeeker, buf audio.Buffer) error {
	channels := buf.Format.Channels
	if channels < 1 {
		channels = 1
	}

	enc := wav.NewEncoder(w, buf.Format.SampleRate, 16, channels, wavPCM)

	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		data[i] = int(s)
	}

	pcm := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  buf.Format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("failed to write wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav: %w", err)
	}
	return nil
}

// WriteWAVFile creates path and writes buf into it as WAV
func WriteWAVFile(path string, buf audio.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteWAV(f, buf); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
