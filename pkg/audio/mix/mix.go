// ABOUTME: Overlay mixing for mono PCM buffers
// ABOUTME: Builds the alarm clip from a drum hit and a voice line
package mix

import (
	"fmt"
	"log"
	"math"

	"github.com/harperreed/sahur-alarm/pkg/audio"
)

const (
	// LeadInMs is added to the voice length to size the canvas
	LeadInMs = 1000

	// VoiceOffsetMs is where the voice line starts on the canvas
	VoiceOffsetMs = 500

	// SoftDrumDB is the attenuation applied to the background drum loop
	SoftDrumDB = -10.0
)

// Silence returns a silent buffer of ms milliseconds
func Silence(format audio.Format, ms int) audio.Buffer {
	return audio.NewBuffer(format, audio.SamplesForMillis(format.SampleRate, ms))
}

// Overlay adds src into canvas starting offsetMs into the canvas.
// Sums saturate at the int16 limits. Samples of src that would land past
// the end of canvas are dropped, and the canvas length never changes.
func Overlay(canvas *audio.Buffer, src audio.Buffer, offsetMs int) error {
	if canvas.Format.SampleRate != src.Format.SampleRate || canvas.Format.Channels != src.Format.Channels {
		return fmt.Errorf("%w: canvas %s, source %s", audio.ErrFormatMismatch, canvas.Format, src.Format)
	}
	if offsetMs < 0 {
		offsetMs = 0
	}

	start := audio.SamplesForMillis(canvas.Format.SampleRate, offsetMs)
	if start >= len(canvas.Samples) {
		return nil
	}

	dst := canvas.Samples[start:]
	n := len(src.Samples)
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = audio.Clamp16(int64(dst[i]) + int64(src.Samples[i]))
	}
	return nil
}

// Attenuate returns a copy of buf with its level changed by db decibels.
// Scaled samples are floored and clamped.
func Attenuate(buf audio.Buffer, db float64) audio.Buffer {
	gain := audio.DBToGain(db)
	out := audio.NewBuffer(buf.Format, buf.Len())
	for i, s := range buf.Samples {
		out.Samples[i] = audio.ClampFloat16(math.Floor(float64(s) * gain))
	}
	return out
}

// PulseCount returns how many soft drum pulses loop under a voice of
// voiceMs milliseconds when each pulse lasts drumMs. Pulses start at
// index 1 because the opening hit already covers slot 0.
func PulseCount(voiceMs, drumMs int) int {
	if drumMs <= 0 || voiceMs <= 0 {
		return 0
	}
	n := voiceMs/drumMs - 1
	if n < 0 {
		return 0
	}
	return n
}

// PulseOffsets returns the canvas offsets in milliseconds of every
// background pulse
func PulseOffsets(voiceMs, drumMs int) []int {
	count := PulseCount(voiceMs, drumMs)
	offsets := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		offsets = append(offsets, i*drumMs)
	}
	return offsets
}

// BuildAlarm composes the alarm clip: an opening drum hit, the voice line
// half a second in, and a quieter drum looped underneath the voice.
// The result is always ms(voice)+1000ms long.
func BuildAlarm(voice, drum audio.Buffer) (audio.Buffer, error) {
	if voice.Format.SampleRate != drum.Format.SampleRate {
		return audio.Buffer{}, fmt.Errorf("%w: voice %dHz, drum %dHz",
			audio.ErrFormatMismatch, voice.Format.SampleRate, drum.Format.SampleRate)
	}

	voiceMs := voice.Milliseconds()
	drumMs := drum.Milliseconds()

	canvas := Silence(voice.Format, voiceMs+LeadInMs)

	if err := Overlay(&canvas, drum, 0); err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to overlay opening drum: %w", err)
	}
	if err := Overlay(&canvas, voice, VoiceOffsetMs); err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to overlay voice: %w", err)
	}

	offsets := PulseOffsets(voiceMs, drumMs)
	if len(offsets) > 0 {
		soft := Attenuate(drum, SoftDrumDB)
		for _, at := range offsets {
			if err := Overlay(&canvas, soft, at); err != nil {
				return audio.Buffer{}, fmt.Errorf("failed to overlay drum pulse at %dms: %w", at, err)
			}
		}
	}

	log.Printf("Mixed alarm: voice %dms, drum %dms, %d background pulses, total %dms",
		voiceMs, drumMs, len(offsets), canvas.Milliseconds())

	return canvas, nil
}
