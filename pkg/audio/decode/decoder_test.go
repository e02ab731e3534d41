// ABOUTME: Tests for codec dispatch
// ABOUTME: Tests ForCodec and CodecFromPath
package decode

import (
	"errors"
	"testing"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

func TestForCodec(t *testing.T) {
	for _, codec := range []string{CodecMP3, CodecFLAC, CodecWAV, CodecPCM} {
		format := audio.DefaultFormat
		format.Codec = codec

		decoder, err := ForCodec(format)
		if err != nil {
			t.Errorf("ForCodec(%s) failed: %v", codec, err)
			continue
		}
		if decoder == nil {
			t.Errorf("ForCodec(%s) returned nil decoder", codec)
		}
	}
}

func TestForCodec_Unsupported(t *testing.T) {
	_, err := ForCodec(audio.Format{Codec: "opus"})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestCodecFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"temp_tts.mp3", CodecMP3, false},
		{"sounds/drum_beat_fast.wav", CodecWAV, false},
		{"VOICE.FLAC", CodecFLAC, false},
		{"clip.pcm", CodecPCM, false},
		{"clip.ogg", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		got, err := CodecFromPath(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("CodecFromPath(%q) expected ErrUnsupportedFormat, got %v", tt.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("CodecFromPath(%q) unexpected error: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("CodecFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestBytesPCM(t *testing.T) {
	buf, err := Bytes(CodecPCM, []byte{0x10, 0x00})
	if err != nil {
		t.Fatalf("Bytes() failed: %v", err)
	}
	if buf.Len() != 1 || buf.Samples[0] != 16 {
		t.Errorf("expected [16], got %v", buf.Samples)
	}
}
