// ABOUTME: PCM audio decoder
// ABOUTME: Decodes raw 16-bit and 24-bit PCM audio to mono int16 samples
package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

// PCMDecoder decodes little-endian PCM audio
type PCMDecoder struct {
	bitDepth   int
	channels   int
	sampleRate int
}

// NewPCM creates a new PCM decoder
func NewPCM(format audio.Format) (Decoder, error) {
	if format.Codec != CodecPCM {
		return nil, fmt.Errorf("invalid codec for PCM decoder: %s", format.Codec)
	}

	if format.BitDepth != 16 && format.BitDepth != 24 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", format.BitDepth)
	}

	channels := format.Channels
	if channels < 1 {
		channels = 1
	}
	sampleRate := format.SampleRate
	if sampleRate <= 0 {
		sampleRate = audio.DefaultSampleRate
	}

	return &PCMDecoder{
		bitDepth:   format.BitDepth,
		channels:   channels,
		sampleRate: sampleRate,
	}, nil
}

// Decode converts PCM bytes to mono int16 samples
func (d *PCMDecoder) Decode(data []byte) (audio.Buffer, error) {
	var interleaved []int16
	if d.bitDepth == 24 {
		// 24-bit PCM: 3 bytes per sample
		numSamples := len(data) / 3
		interleaved = make([]int16, numSamples)
		for i := 0; i < numSamples; i++ {
			v := int32(data[i*3]) | int32(data[i*3+1])<<8 | int32(int8(data[i*3+2]))<<16
			interleaved[i] = audio.ScaleTo16(v, 24)
		}
	} else {
		// 16-bit PCM: 2 bytes per sample
		numSamples := len(data) / 2
		interleaved = make([]int16, numSamples)
		for i := 0; i < numSamples; i++ {
			interleaved[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
		}
	}

	return audio.Buffer{
		Samples: audio.Downmix(interleaved, d.channels),
		Format:  audio.Mono16(d.sampleRate),
	}, nil
}

// Close releases resources
func (d *PCMDecoder) Close() error {
	return nil
}
