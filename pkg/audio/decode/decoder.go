// ABOUTME: Decoder interface definition
// ABOUTME: Common interface and codec dispatch for all audio decoders
package decode

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

// ErrUnsupportedFormat is returned for codecs no decoder handles
var ErrUnsupportedFormat = errors.New("decode: unsupported format")

// Codec names understood by ForCodec
const (
	CodecMP3  = "mp3"
	CodecFLAC = "flac"
	CodecWAV  = "wav"
	CodecPCM  = "pcm"
)

// Decoder decodes a complete encoded clip to a mono 16-bit buffer at the
// clip's own sample rate
type Decoder interface {
	// Decode converts encoded audio data to PCM samples
	Decode(data []byte) (audio.Buffer, error)

	// Close releases decoder resources
	Close() error
}

// ForCodec returns the decoder for format.Codec
func ForCodec(format audio.Format) (Decoder, error) {
	switch format.Codec {
	case CodecMP3:
		return NewMP3(format)
	case CodecFLAC:
		return NewFLAC(format)
	case CodecWAV:
		return NewWAV(format)
	case CodecPCM:
		return NewPCM(format)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format.Codec)
}

// CodecFromPath guesses the codec from a file extension
func CodecFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "mp3":
		return CodecMP3, nil
	case "flac":
		return CodecFLAC, nil
	case "wav", "wave":
		return CodecWAV, nil
	case "pcm", "raw":
		return CodecPCM, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Bytes decodes data with the decoder for codec. Raw PCM is assumed to be
// mono 16-bit at the default rate.
func Bytes(codec string, data []byte) (audio.Buffer, error) {
	format := audio.DefaultFormat
	format.Codec = codec

	dec, err := ForCodec(format)
	if err != nil {
		return audio.Buffer{}, err
	}
	defer dec.Close()

	return dec.Decode(data)
}
