// ABOUTME: Tests for speech decoding and voice files
// ABOUTME: Tests resampling to the mix rate and loading recordings from disk
package tts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/sahur-alarm/pkg/audio"
	"github.com/harperreed/sahur-alarm/pkg/audio/decode"
	"github.com/harperreed/sahur-alarm/pkg/audio/encode"
)

// wavClip writes ms of constant audio at rate to dir and returns its path
func wavClip(t *testing.T, dir string, rate, ms int, v int16) string {
	t.Helper()
	buf := audio.NewBuffer(audio.Mono16(rate), audio.SamplesForMillis(rate, ms))
	for i := range buf.Samples {
		buf.Samples[i] = v
	}
	path := filepath.Join(dir, "voice.wav")
	if err := encode.WriteWAVFile(path, buf); err != nil {
		t.Fatalf("failed to write wav: %v", err)
	}
	return path
}

func TestDecodeResamples(t *testing.T) {
	path := wavClip(t, t.TempDir(), 22050, 1000, 900)

	speech, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if speech.Codec != decode.CodecWAV {
		t.Errorf("expected wav codec, got %s", speech.Codec)
	}

	buf, err := Decode(speech)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	if buf.Format != audio.DefaultFormat {
		t.Errorf("expected %v, got %v", audio.DefaultFormat, buf.Format)
	}
	if buf.Milliseconds() != 1000 {
		t.Errorf("expected 1000ms, got %d", buf.Milliseconds())
	}
	if buf.Samples[buf.Len()/2] != 900 {
		t.Errorf("expected level 900, got %d", buf.Samples[buf.Len()/2])
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, err := Decode(nil); err == nil {
		t.Error("expected error for nil speech")
	}
	if _, err := Decode(&Speech{Codec: "mp3"}); err == nil {
		t.Error("expected error for empty speech")
	}
}

func TestDecodeBadData(t *testing.T) {
	_, err := Decode(&Speech{Data: []byte("garbage"), Codec: "wav"})
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSpeechSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp_tts.mp3")
	speech := &Speech{Data: []byte{1, 2, 3}, Codec: "mp3"}

	if err := speech.Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(loaded.Data) != string(speech.Data) || loaded.Codec != "mp3" {
		t.Errorf("expected %v, got %v", speech, loaded)
	}
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voice.ogg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, decode.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestVoiceFile(t *testing.T) {
	path := wavClip(t, t.TempDir(), 44100, 200, 5)

	v := &VoiceFile{Path: path}
	speech, err := v.Synthesize(context.Background(), "ignored script")
	if err != nil {
		t.Fatalf("Synthesize() failed: %v", err)
	}

	buf, err := Decode(speech)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if buf.Milliseconds() != 200 {
		t.Errorf("expected 200ms, got %d", buf.Milliseconds())
	}
}

func TestVoiceFileMissing(t *testing.T) {
	v := &VoiceFile{Path: filepath.Join(t.TempDir(), "nope.mp3")}
	if _, err := v.Synthesize(context.Background(), "hi"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImplementsSynthesizer(t *testing.T) {
	var _ Synthesizer = (*GoogleTranslate)(nil)
	var _ Synthesizer = (*VoiceFile)(nil)
}

func TestSpeechReloadKeepsCodec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp_tts.mp3")
	if err := os.WriteFile(path, []byte("on disk"), 0o644); err != nil {
		t.Fatal(err)
	}

	speech := &Speech{Data: []byte("in memory"), Codec: "wav"}
	if err := speech.Reload(path); err != nil {
		t.Fatalf("Reload() failed: %v", err)
	}
	if string(speech.Data) != "on disk" {
		t.Errorf("expected file contents, got %q", speech.Data)
	}
	if speech.Codec != "wav" {
		t.Errorf("expected codec to stay wav, got %s", speech.Codec)
	}
}
