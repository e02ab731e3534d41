// ABOUTME: Tests for the external MP3 encoder
// ABOUTME: Tests binary lookup, argument building and a real encode when available
package encode

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

func TestMP3Available_NoneFound(t *testing.T) {
	e := NewMP3()
	e.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	_, err := e.Available()
	if !errors.Is(err, ErrNoEncoder) {
		t.Fatalf("expected ErrNoEncoder, got %v", err)
	}
}

func TestMP3Available_FallsBackToLame(t *testing.T) {
	e := NewMP3()
	e.lookPath = func(bin string) (string, error) {
		if bin == "lame" {
			return "/usr/bin/lame", nil
		}
		return "", exec.ErrNotFound
	}

	path, err := e.Available()
	if err != nil {
		t.Fatalf("Available() failed: %v", err)
	}
	if path != "/usr/bin/lame" {
		t.Errorf("expected /usr/bin/lame, got %s", path)
	}
}

func TestMP3Args(t *testing.T) {
	e := NewMP3()

	ffmpeg := strings.Join(e.args("/usr/bin/ffmpeg", audio.DefaultFormat), " ")
	for _, want := range []string{"-f s16le", "-ar 44100", "-ac 1", "-b:a 128k", "pipe:1"} {
		if !strings.Contains(ffmpeg, want) {
			t.Errorf("ffmpeg args %q missing %q", ffmpeg, want)
		}
	}

	lame := strings.Join(e.args("/usr/local/bin/lame", audio.DefaultFormat), " ")
	for _, want := range []string{"-r", "-s 44.1", "-m m", "-b 128"} {
		if !strings.Contains(lame, want) {
			t.Errorf("lame args %q missing %q", lame, want)
		}
	}
}

func TestMP3EncodeBuffer(t *testing.T) {
	e := NewMP3()
	if _, err := e.Available(); err != nil {
		t.Skipf("no mp3 encoder installed: %v", err)
	}

	buf := audio.NewBuffer(audio.DefaultFormat, audio.DefaultSampleRate/2)
	for i := range buf.Samples {
		buf.Samples[i] = int16((i % 200) * 100)
	}

	data, err := e.EncodeBuffer(context.Background(), buf)
	if err != nil {
		t.Fatalf("EncodeBuffer() failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected mp3 data")
	}
}
