// ABOUTME: WAV audio decoder
// ABOUTME: Decodes RIFF/WAVE files to mono int16 samples
package decode

import (
	"bytes"
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

// WAVDecoder decodes WAV audio
type WAVDecoder struct{}

// NewWAV creates a new WAV decoder
func NewWAV(format audio.Format) (Decoder, error) {
	if format.Codec != CodecWAV {
		return nil, fmt.Errorf("invalid codec for WAV decoder: %s", format.Codec)
	}

	return &WAVDecoder{}, nil
}

// Decode converts WAV bytes to mono int16 samples
func (d *WAVDecoder) Decode(data []byte) (audio.Buffer, error) {
	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return audio.Buffer{}, fmt.Errorf("invalid wav data")
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("wav decode error: %w", err)
	}

	return fromIntBuffer(pcm, int(decoder.BitDepth)), nil
}

// Close releases decoder resources
func (d *WAVDecoder) Close() error {
	return nil
}

func fromIntBuffer(pcm *goaudio.IntBuffer, bitDepth int) audio.Buffer {
	channels := 1
	sampleRate := audio.DefaultSampleRate
	if pcm.Format != nil {
		channels = pcm.Format.NumChannels
		sampleRate = pcm.Format.SampleRate
	}
	if pcm.SourceBitDepth > 0 {
		bitDepth = pcm.SourceBitDepth
	}

	interleaved := make([]int16, len(pcm.Data))
	for i, s := range pcm.Data {
		if bitDepth == 8 {
			// 8-bit WAV is unsigned
			s -= 128
		}
		interleaved[i] = audio.ScaleTo16(int32(s), bitDepth)
	}

	return audio.Buffer{
		Samples: audio.Downmix(interleaved, channels),
		Format:  audio.Mono16(sampleRate),
	}
}
