// ABOUTME: MP3 encoder backed by an external ffmpeg or lame process
// ABOUTME: Pipes s16le PCM to the encoder's stdin and collects MP3 from stdout
package encode

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

// DefaultBitrate is the MP3 bitrate in kbps
const DefaultBitrate = 128

// MP3Encoder shells out to ffmpeg or lame
type MP3Encoder struct {
	// Binaries lists encoders to try in order
	Binaries []string
	Bitrate  int

	lookPath func(string) (string, error)
}

// NewMP3 creates an encoder that prefers ffmpeg and falls back to lame
func NewMP3() *MP3Encoder {
	return &MP3Encoder{
		Binaries: []string{"ffmpeg", "lame"},
		Bitrate:  DefaultBitrate,
		lookPath: exec.LookPath,
	}
}

// Available returns the path of the first encoder binary found in PATH
func (e *MP3Encoder) Available() (string, error) {
	lookPath := e.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, bin := range e.Binaries {
		if path, err := lookPath(bin); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: none of %s found in PATH (install with: brew install ffmpeg)",
		ErrNoEncoder, strings.Join(e.Binaries, ", "))
}

// args builds the command line for the named binary
func (e *MP3Encoder) args(bin string, format audio.Format) []string {
	rate := strconv.Itoa(format.SampleRate)
	channels := format.Channels
	if channels < 1 {
		channels = 1
	}
	bitrate := e.Bitrate
	if bitrate <= 0 {
		bitrate = DefaultBitrate
	}

	if strings.Contains(bin, "lame") {
		// -r: raw input, -s: rate in kHz, -m m: mono
		mode := "m"
		if channels > 1 {
			mode = "j"
		}
		return []string{
			"--quiet", "-r", "--signed", "--little-endian", "--bitwidth", "16",
			"-s", strconv.FormatFloat(float64(format.SampleRate)/1000, 'f', -1, 64),
			"-m", mode, "-b", strconv.Itoa(bitrate),
			"-", "-",
		}
	}

	// -f s16le: raw PCM on stdin
	// -f mp3 -: mp3 on stdout
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-f", "s16le", "-ar", rate, "-ac", strconv.Itoa(channels), "-i", "pipe:0",
		"-codec:a", "libmp3lame", "-b:a", strconv.Itoa(bitrate) + "k",
		"-f", "mp3", "pipe:1",
	}
}

// EncodeBuffer converts buf to MP3 bytes
func (e *MP3Encoder) EncodeBuffer(ctx context.Context, buf audio.Buffer) ([]byte, error) {
	bin, err := e.Available()
	if err != nil {
		return nil, err
	}

	pcm, err := (&PCMEncoder{bitDepth: 16}).Encode(buf.Samples)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, e.args(bin, buf.Format)...)
	cmd.Stdin = bytes.NewReader(pcm)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("mp3 encoder %s failed: %w: %s", bin, err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("mp3 encoder %s produced no output", bin)
	}

	return stdout.Bytes(), nil
}
