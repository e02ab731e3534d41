// ABOUTME: Pre-recorded voice source
// ABOUTME: Serves a voice clip from disk in place of network speech synthesis
package tts

import (
	"context"
	"log"
)

// VoiceFile replays an existing recording regardless of the script
type VoiceFile struct {
	Path string
}

// Synthesize loads the recording. The script is only logged.
func (v *VoiceFile) Synthesize(ctx context.Context, text string) (*Speech, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Printf("Using recorded voice %s for script: %s", v.Path, text)
	return Load(v.Path)
}
