// ABOUTME: Alarm generation pipeline
// ABOUTME: Runs script, speech, drum, mix and export, then cleans transient files
package alarm

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/sahur-alarm/internal/config"
	"github.com/harperreed/sahur-alarm/internal/metrics"
	"github.com/harperreed/sahur-alarm/internal/tts"
	"github.com/harperreed/sahur-alarm/pkg/audio"
	"github.com/harperreed/sahur-alarm/pkg/audio/encode"
	"github.com/harperreed/sahur-alarm/pkg/audio/mix"
	"github.com/harperreed/sahur-alarm/pkg/audio/synth"
)

// Exporter writes a finished alarm to disk
type Exporter interface {
	Export(ctx context.Context, path string, buf audio.Buffer) error
}

// ExporterFunc adapts a function to Exporter
type ExporterFunc func(ctx context.Context, path string, buf audio.Buffer) error

// Export calls f
func (f ExporterFunc) Export(ctx context.Context, path string, buf audio.Buffer) error {
	return f(ctx, path, buf)
}

// Config holds generator settings and collaborators. Nil collaborators get
// defaults: a file or in-memory drum per settings, encode.Export, a
// time-seeded Rand and a fresh metrics registry.
type Config struct {
	Settings *config.Config
	Speech   tts.Synthesizer
	Drums    DrumSource
	Exporter Exporter
	Rand     Rand
	Metrics  *metrics.Metrics
}

// Request is one fully resolved alarm order
type Request struct {
	Character string
	Message   string
	Beat      synth.Tempo
	// OutputPath overrides the configured output file when set
	OutputPath string
}

// Result describes a generated alarm
type Result struct {
	RunID      string
	Script     string
	Repeats    int
	OutputPath string
	Alarm      audio.Buffer
	VoiceMs    int
	DrumMs     int
	Pulses     int
	Elapsed    time.Duration
}

// Generator produces alarm clips
type Generator struct {
	settings *config.Config
	speech   tts.Synthesizer
	drums    DrumSource
	cache    *FileCache
	exporter Exporter
	rand     Rand
	metrics  *metrics.Metrics
}

// New creates a generator
func New(cfg Config) (*Generator, error) {
	if cfg.Settings == nil {
		cfg.Settings = config.Default()
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if cfg.Speech == nil {
		return nil, fmt.Errorf("a speech synthesizer is required")
	}

	g := &Generator{
		settings: cfg.Settings,
		speech:   cfg.Speech,
		drums:    cfg.Drums,
		exporter: cfg.Exporter,
		rand:     cfg.Rand,
		metrics:  cfg.Metrics,
	}

	if g.metrics == nil {
		g.metrics = metrics.NewMetrics()
	}
	if g.rand == nil {
		g.rand = NewRand(uint64(time.Now().UnixNano()))
	}
	if g.exporter == nil {
		g.exporter = ExporterFunc(encode.Export)
	}
	if g.drums == nil {
		if cfg.Settings.Drum.Cache {
			g.cache = &FileCache{
				Dir:        cfg.Settings.Output.SoundsDir,
				DurationMs: cfg.Settings.Drum.DurationMs,
				OnLookup:   g.metrics.RecordDrumCache,
			}
			g.drums = g.cache
		} else {
			g.drums = SynthDrum{DurationMs: cfg.Settings.Drum.DurationMs}
		}
	}

	return g, nil
}

// Metrics returns the generator's metrics
func (g *Generator) Metrics() *metrics.Metrics {
	return g.metrics
}

// ResolveCharacter validates a character choice against the configured roster
func (g *Generator) ResolveCharacter(input string) Choice {
	c := ResolveCharacter(input, g.settings.Characters, g.rand)
	if c.Fallback {
		g.metrics.RecordFallback("character")
	}
	return c
}

// ResolveMessage substitutes a canned message for empty input
func (g *Generator) ResolveMessage(input string) Choice {
	c := ResolveMessage(input, g.settings.Messages, g.rand)
	if c.Fallback {
		g.metrics.RecordFallback("message")
	}
	return c
}

// ResolveBeat falls back to the configured default beat
func (g *Generator) ResolveBeat(input string) Choice {
	c := ResolveBeat(input, synth.Tempo(g.settings.Drum.DefaultBeat))
	if c.Fallback {
		g.metrics.RecordFallback("beat")
	}
	return c
}

// Generate builds and exports one alarm. Transient files are removed
// before it returns, whether or not generation succeeded.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()

	defer func() {
		if err := g.Cleanup(); err != nil {
			log.Printf("[%s] Cleanup incomplete: %v", runID, err)
		}
	}()

	if _, err := req.Beat.Frequency(); err != nil {
		g.metrics.RecordFailure("input")
		return nil, err
	}

	repeats := Repeats(g.rand)
	script := Script(req.Character, req.Message, repeats)
	log.Printf("[%s] Generating alarm: character=%s beat=%s repeats=%d", runID, req.Character, req.Beat, repeats)

	voice, err := g.voice(ctx, runID, script)
	if err != nil {
		return nil, err
	}

	drum, err := g.drums.Drum(req.Beat)
	if err != nil {
		g.metrics.RecordFailure("drum")
		return nil, fmt.Errorf("failed to get drum: %w", err)
	}

	clip, err := mix.BuildAlarm(voice, drum)
	if err != nil {
		g.metrics.RecordFailure("mix")
		return nil, fmt.Errorf("failed to mix alarm: %w", err)
	}

	outPath := req.OutputPath
	if outPath == "" {
		outPath = g.settings.Output.Path
	}
	if err := g.exporter.Export(ctx, outPath, clip); err != nil {
		g.metrics.RecordFailure("export")
		return nil, fmt.Errorf("failed to export alarm: %w", err)
	}

	result := &Result{
		RunID:      runID,
		Script:     script,
		Repeats:    repeats,
		OutputPath: outPath,
		Alarm:      clip,
		VoiceMs:    voice.Milliseconds(),
		DrumMs:     drum.Milliseconds(),
		Pulses:     mix.PulseCount(voice.Milliseconds(), drum.Milliseconds()),
		Elapsed:    time.Since(start),
	}

	g.metrics.RecordAlarm(req.Beat.String(), result.Elapsed.Seconds(), clip.Duration().Seconds(), result.Pulses)
	log.Printf("[%s] Alarm ready: %s (%dms) in %v", runID, outPath, clip.Milliseconds(), result.Elapsed)

	return result, nil
}

// voice synthesizes the script, optionally round-tripping through the
// spool file, and decodes it for mixing
func (g *Generator) voice(ctx context.Context, runID, script string) (audio.Buffer, error) {
	ttsStart := time.Now()
	speech, err := g.speech.Synthesize(ctx, script)
	g.metrics.RecordTTS(time.Since(ttsStart).Seconds(), err)
	if err != nil {
		g.metrics.RecordFailure("tts")
		return audio.Buffer{}, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	if spool := g.settings.Output.VoiceSpool; spool != "" {
		if err := speech.Save(spool); err != nil {
			g.metrics.RecordFailure("tts")
			return audio.Buffer{}, err
		}
		log.Printf("[%s] Speech spooled to %s (%d bytes)", runID, spool, len(speech.Data))

		if err := speech.Reload(spool); err != nil {
			g.metrics.RecordFailure("tts")
			return audio.Buffer{}, err
		}
	}

	voice, err := tts.Decode(speech)
	if err != nil {
		g.metrics.RecordFailure("decode")
		return audio.Buffer{}, err
	}
	return voice, nil
}

// Cleanup removes the voice spool and, unless configured to keep it, the
// drum cache. Missing files are not errors.
func (g *Generator) Cleanup() error {
	var errs []error

	if spool := g.settings.Output.VoiceSpool; spool != "" {
		if err := os.Remove(spool); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", spool, err))
		}
	}

	if g.cache != nil && !g.settings.Drum.KeepCache {
		if err := g.cache.RemoveAll(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
