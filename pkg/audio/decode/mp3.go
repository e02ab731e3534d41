// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 audio to mono int16 samples
package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

// go-mp3 always produces interleaved 16-bit stereo
const mp3Channels = 2

// MP3Decoder decodes MP3 audio
type MP3Decoder struct{}

// NewMP3 creates a new MP3 decoder
func NewMP3(format audio.Format) (Decoder, error) {
	if format.Codec != CodecMP3 {
		return nil, fmt.Errorf("invalid codec for MP3 decoder: %s", format.Codec)
	}

	return &MP3Decoder{}, nil
}

// Decode converts MP3 bytes to mono int16 samples
func (d *MP3Decoder) Decode(data []byte) (audio.Buffer, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	raw, err := io.ReadAll(decoder)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("mp3 decode error: %w", err)
	}

	// Convert bytes to int16 (2 bytes per sample)
	numSamples := len(raw) / 2
	interleaved := make([]int16, numSamples)
	for i := 0; i < numSamples; i++ {
		interleaved[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}

	return audio.Buffer{
		Samples: audio.Downmix(interleaved, mp3Channels),
		Format:  audio.Mono16(decoder.SampleRate()),
	}, nil
}

// Close releases decoder resources
func (d *MP3Decoder) Close() error {
	return nil
}
