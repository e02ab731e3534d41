// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for all audio encoders and file export by extension
package encode

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

var (
	// ErrNoEncoder is returned when no encoder is available for an output
	ErrNoEncoder = errors.New("encode: no encoder available")
)

// Encoder encodes PCM int16 samples to various formats
type Encoder interface {
	// Encode converts PCM samples to encoded audio data
	Encode(samples []int16) ([]byte, error)

	// Close releases encoder resources
	Close() error
}

// Export writes buf to path, choosing the container from the extension
func Export(ctx context.Context, path string, buf audio.Buffer) error {
	ext := strings.ToLower(filepath.Ext(path))

	var data []byte
	var err error
	switch ext {
	case ".mp3":
		data, err = NewMP3().EncodeBuffer(ctx, buf)
	case ".wav":
		return WriteWAVFile(path, buf)
	case ".pcm", ".raw":
		format := buf.Format
		format.Codec = "pcm"
		var enc Encoder
		enc, err = NewPCM(format)
		if err == nil {
			data, err = enc.Encode(buf.Samples)
		}
	default:
		return fmt.Errorf("%w: %q", ErrNoEncoder, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Printf("Exported %s (%d bytes, %dms)", path, len(data), buf.Milliseconds())
	return nil
}
