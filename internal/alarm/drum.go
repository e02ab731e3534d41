// ABOUTME: Drum hit sources for the alarm mixer
// ABOUTME: Synthesizes drums in memory or through an on-disk WAV cache
package alarm

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/harperreed/sahur-alarm/pkg/audio"
	"github.com/harperreed/sahur-alarm/pkg/audio/decode"
	"github.com/harperreed/sahur-alarm/pkg/audio/encode"
	"github.com/harperreed/sahur-alarm/pkg/audio/synth"
)

// DrumSource supplies the drum hit for a tempo
type DrumSource interface {
	Drum(tempo synth.Tempo) (audio.Buffer, error)
}

// SynthDrum renders drums in memory on every call
type SynthDrum struct {
	DurationMs int
}

// Drum synthesizes a fresh hit
func (s SynthDrum) Drum(tempo synth.Tempo) (audio.Buffer, error) {
	return synth.Drum(s.DurationMs, tempo)
}

// FileCache keeps synthesized drums as WAV files under Dir, one per tempo
type FileCache struct {
	Dir        string
	DurationMs int

	// OnLookup is called after every lookup with whether the file existed
	OnLookup func(hit bool)
}

// Path returns the cache file for tempo
func (c *FileCache) Path(tempo synth.Tempo) string {
	return filepath.Join(c.Dir, fmt.Sprintf("drum_beat_%s.wav", tempo))
}

// Drum loads the cached hit for tempo, synthesizing and storing it on a miss.
// An unreadable cache file, or one rendered at another duration, is replaced.
func (c *FileCache) Drum(tempo synth.Tempo) (audio.Buffer, error) {
	if _, err := tempo.Frequency(); err != nil {
		return audio.Buffer{}, err
	}

	path := c.Path(tempo)
	buf, err := c.load(path)
	if err == nil {
		log.Printf("Drum cache hit: %s", path)
		c.report(true)
		return buf, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Drum cache unusable, regenerating: %v", err)
	}
	c.report(false)

	buf, err = synth.Drum(c.DurationMs, tempo)
	if err != nil {
		return audio.Buffer{}, err
	}

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to create sounds directory: %w", err)
	}
	if err := encode.WriteWAVFile(path, buf); err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to cache drum: %w", err)
	}

	log.Printf("Drum cached: %s (%dms, %s)", path, buf.Milliseconds(), tempo)
	return buf, nil
}

func (c *FileCache) load(path string) (audio.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return audio.Buffer{}, err
	}

	buf, err := decode.Bytes(decode.CodecWAV, data)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if buf.Format != audio.DefaultFormat {
		return audio.Buffer{}, fmt.Errorf("%w: %s is %s", audio.ErrFormatMismatch, path, buf.Format)
	}
	if want := audio.SamplesForMillisRounded(synth.SampleRate, c.DurationMs); buf.Len() != want {
		return audio.Buffer{}, fmt.Errorf("%s holds %d samples, want %d for %dms", path, buf.Len(), want, c.DurationMs)
	}
	return buf, nil
}

func (c *FileCache) report(hit bool) {
	if c.OnLookup != nil {
		c.OnLookup(hit)
	}
}

// Remove deletes the cache file for tempo. A missing file is not an error.
func (c *FileCache) Remove(tempo synth.Tempo) error {
	err := os.Remove(c.Path(tempo))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove cached drum: %w", err)
	}
	return nil
}

// RemoveAll deletes the cache files for every tempo
func (c *FileCache) RemoveAll() error {
	var errs []error
	for _, tempo := range synth.Tempos {
		if err := c.Remove(tempo); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
