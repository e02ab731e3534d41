// ABOUTME: Text-to-speech collaborator interface and speech decoding
// ABOUTME: Turns synthesized speech into a mono 44.1kHz buffer for mixing
package tts

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/harperreed/sahur-alarm/pkg/audio"
	"github.com/harperreed/sahur-alarm/pkg/audio/decode"
	"github.com/harperreed/sahur-alarm/pkg/audio/resample"
)

// ErrEmptyText is returned when asked to speak nothing
var ErrEmptyText = errors.New("tts: empty text")

// Speech is an encoded voice clip
type Speech struct {
	Data  []byte
	Codec string
}

// Synthesizer turns a script into speech
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Speech, error)
}

// Decode converts speech into a mono buffer at the mixing rate
func Decode(speech *Speech) (audio.Buffer, error) {
	if speech == nil || len(speech.Data) == 0 {
		return audio.Buffer{}, fmt.Errorf("tts: no speech data")
	}

	buf, err := decode.Bytes(speech.Codec, speech.Data)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to decode %s speech: %w", speech.Codec, err)
	}

	return resample.ToRate(buf, audio.DefaultSampleRate), nil
}

// Save writes the encoded speech to path
func (s *Speech) Save(path string) error {
	if err := os.WriteFile(path, s.Data, 0o644); err != nil {
		return fmt.Errorf("failed to save speech to %s: %w", path, err)
	}
	return nil
}

// Reload replaces Data with the contents of path, keeping the codec
func (s *Speech) Reload(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read speech from %s: %w", path, err)
	}
	s.Data = data
	return nil
}

// Load reads an encoded clip from path, taking the codec from its extension
func Load(path string) (*Speech, error) {
	codec, err := decode.CodecFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech from %s: %w", path, err)
	}

	return &Speech{Data: data, Codec: codec}, nil
}
