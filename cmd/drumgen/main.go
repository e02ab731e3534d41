// ABOUTME: Standalone drum renderer for auditioning the synthesizer
// ABOUTME: Writes one drum hit of the chosen tempo and length to a WAV file
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/harperreed/sahur-alarm/pkg/audio/encode"
	"github.com/harperreed/sahur-alarm/pkg/audio/synth"
)

var (
	tempo    = flag.String("tempo", "fast", "Drum tempo: fast or slow")
	duration = flag.Int("duration-ms", synth.DefaultDurationMs, "Drum length in milliseconds")
	output   = flag.String("output", "", "Output WAV file (default: drum_beat_<tempo>.wav)")
)

func main() {
	flag.Parse()

	t, err := synth.ParseTempo(*tempo)
	if err != nil {
		log.Fatalf("Invalid tempo: %v", err)
	}

	buf, err := synth.Drum(*duration, t)
	if err != nil {
		log.Fatalf("Failed to render drum: %v", err)
	}

	path := *output
	if path == "" {
		path = fmt.Sprintf("drum_beat_%s.wav", t)
	}

	if err := encode.WriteWAVFile(path, buf); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	fmt.Printf("Wrote %s: %s drum, %dms, %d samples at %s\n", path, t, buf.Milliseconds(), buf.Len(), buf.Format)
}
