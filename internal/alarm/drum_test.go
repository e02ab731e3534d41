// ABOUTME: Tests for drum sources
// ABOUTME: Tests in-memory synthesis and the per-tempo WAV cache
package alarm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/sahur-alarm/pkg/audio/synth"
)

func TestSynthDrum(t *testing.T) {
	buf, err := SynthDrum{DurationMs: 500}.Drum(synth.Slow)
	if err != nil {
		t.Fatalf("Drum() failed: %v", err)
	}
	if buf.Milliseconds() != 500 {
		t.Errorf("expected 500ms, got %d", buf.Milliseconds())
	}
}

func TestFileCacheMissThenHit(t *testing.T) {
	var lookups []bool
	cache := &FileCache{
		Dir:        filepath.Join(t.TempDir(), "sounds"),
		DurationMs: 1000,
		OnLookup:   func(hit bool) { lookups = append(lookups, hit) },
	}

	first, err := cache.Drum(synth.Fast)
	if err != nil {
		t.Fatalf("Drum() miss failed: %v", err)
	}
	if _, err := os.Stat(cache.Path(synth.Fast)); err != nil {
		t.Fatalf("expected cache file: %v", err)
	}

	second, err := cache.Drum(synth.Fast)
	if err != nil {
		t.Fatalf("Drum() hit failed: %v", err)
	}

	if len(lookups) != 2 || lookups[0] || !lookups[1] {
		t.Errorf("expected miss then hit, got %v", lookups)
	}

	// cached samples are bit-identical to fresh synthesis
	want, _ := synth.Drum(1000, synth.Fast)
	for _, buf := range [][]int16{first.Samples, second.Samples} {
		if len(buf) != want.Len() {
			t.Fatalf("expected %d samples, got %d", want.Len(), len(buf))
		}
		for i := range want.Samples {
			if buf[i] != want.Samples[i] {
				t.Fatalf("sample %d: expected %d, got %d", i, want.Samples[i], buf[i])
			}
		}
	}
}

func TestFileCacheKeyedByTempo(t *testing.T) {
	cache := &FileCache{Dir: t.TempDir(), DurationMs: 200}

	if cache.Path(synth.Fast) == cache.Path(synth.Slow) {
		t.Fatal("expected separate files per tempo")
	}
	if filepath.Base(cache.Path(synth.Slow)) != "drum_beat_slow.wav" {
		t.Errorf("unexpected cache name %s", cache.Path(synth.Slow))
	}

	fast, err := cache.Drum(synth.Fast)
	if err != nil {
		t.Fatal(err)
	}
	slow, err := cache.Drum(synth.Slow)
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for i := range fast.Samples {
		if fast.Samples[i] != slow.Samples[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("slow drum was served from the fast cache entry")
	}
}

func TestFileCacheReplacesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	cache := &FileCache{Dir: dir, DurationMs: 100}
	if err := os.WriteFile(cache.Path(synth.Fast), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := cache.Drum(synth.Fast)
	if err != nil {
		t.Fatalf("Drum() failed: %v", err)
	}
	if buf.Milliseconds() != 100 {
		t.Errorf("expected 100ms, got %d", buf.Milliseconds())
	}
}

func TestFileCacheUnknownTempo(t *testing.T) {
	dir := t.TempDir()
	cache := &FileCache{Dir: dir, DurationMs: 100}

	_, err := cache.Drum(synth.Tempo("medium"))
	if !errors.Is(err, synth.ErrUnknownTempo) {
		t.Fatalf("expected ErrUnknownTempo, got %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no files, got %d", len(entries))
	}
}

func TestFileCacheRemove(t *testing.T) {
	cache := &FileCache{Dir: t.TempDir(), DurationMs: 100}

	// removing a missing file is fine
	if err := cache.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll() on empty cache failed: %v", err)
	}

	for _, tempo := range synth.Tempos {
		if _, err := cache.Drum(tempo); err != nil {
			t.Fatal(err)
		}
	}
	if err := cache.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll() failed: %v", err)
	}
	for _, tempo := range synth.Tempos {
		if _, err := os.Stat(cache.Path(tempo)); !os.IsNotExist(err) {
			t.Errorf("%s cache file still present", tempo)
		}
	}
}

func TestFileCacheReplacesDrumOfOtherDuration(t *testing.T) {
	dir := t.TempDir()

	short := &FileCache{Dir: dir, DurationMs: 500}
	if _, err := short.Drum(synth.Fast); err != nil {
		t.Fatalf("Drum() failed: %v", err)
	}

	var lookups []bool
	long := &FileCache{
		Dir:        dir,
		DurationMs: 1000,
		OnLookup:   func(hit bool) { lookups = append(lookups, hit) },
	}

	buf, err := long.Drum(synth.Fast)
	if err != nil {
		t.Fatalf("Drum() failed: %v", err)
	}
	if buf.Len() != 44100 {
		t.Errorf("expected 44100 samples, got %d", buf.Len())
	}
	if len(lookups) != 1 || lookups[0] {
		t.Errorf("expected a miss for the 500ms file, got %v", lookups)
	}

	// the rewritten file now serves the new duration
	again, err := long.Drum(synth.Fast)
	if err != nil {
		t.Fatal(err)
	}
	if again.Len() != 44100 {
		t.Errorf("expected 44100 samples from cache, got %d", again.Len())
	}
	if len(lookups) != 2 || !lookups[1] {
		t.Errorf("expected a hit after rewrite, got %v", lookups)
	}
}
