// ABOUTME: Tests for the Google Translate speech client
// ABOUTME: Tests chunking, request parameters and HTTP error handling
package tts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"
)

const alarmScript = "Yo, this is Kelly! The Tung Tung Sahur goes Tung Tung Tung, Tung Tung Tung, Tung Tung Tung,  " +
	"The Tung Tung Sahur goes Tung Tung Tung, all through the town! Rise and shine, it's Sahur time!"

func TestTokenizeLimits(t *testing.T) {
	chunks := Tokenize(alarmScript, MaxChunkChars)

	if len(chunks) < 2 {
		t.Fatalf("expected the script to need several chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if n := utf8.RuneCountInString(c); n > MaxChunkChars {
			t.Errorf("chunk %d has %d characters: %q", i, n, c)
		}
		if c != strings.TrimSpace(c) || c == "" {
			t.Errorf("chunk %d is not trimmed: %q", i, c)
		}
	}

	joined := strings.Join(chunks, " ")
	normalized := strings.Join(strings.Fields(alarmScript), " ")
	if joined != normalized {
		t.Errorf("chunks lost text:\n got %q\nwant %q", joined, normalized)
	}
}

func TestTokenizeCutsAtPunctuation(t *testing.T) {
	chunks := Tokenize("One two three, four five six.", 16)

	expected := []string{"One two three,", "four five six."}
	if len(chunks) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, chunks)
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Errorf("chunk %d: expected %q, got %q", i, expected[i], chunks[i])
		}
	}
}

func TestTokenizeKeepsInnerPunctuation(t *testing.T) {
	chunks := Tokenize("it's 3.5 o'clock", 100)
	if len(chunks) != 1 || chunks[0] != "it's 3.5 o'clock" {
		t.Errorf("expected a single chunk, got %v", chunks)
	}
}

func TestTokenizeLongWord(t *testing.T) {
	word := strings.Repeat("a", 25)
	chunks := Tokenize("hi "+word, 10)

	expected := []string{"hi", "aaaaaaaaaa", "aaaaaaaaaa", "aaaaa"}
	if len(chunks) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, chunks)
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Errorf("chunk %d: expected %q, got %q", i, expected[i], chunks[i])
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		if chunks := Tokenize(text, 100); len(chunks) != 0 {
			t.Errorf("Tokenize(%q) expected no chunks, got %v", text, chunks)
		}
	}
}

func TestGoogleTranslateSynthesize(t *testing.T) {
	var mu sync.Mutex
	var queries []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		mu.Lock()
		queries = append(queries, q.Get("q"))
		mu.Unlock()

		if q.Get("client") != "tw-ob" || q.Get("tl") != "en" || q.Get("ie") != "UTF-8" {
			t.Errorf("unexpected query %v", q)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("expected a User-Agent header")
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("[" + q.Get("idx") + "]"))
	}))
	defer server.Close()

	g := NewGoogleTranslate(server.URL, "en", 5*time.Second)
	speech, err := g.Synthesize(context.Background(), alarmScript)
	if err != nil {
		t.Fatalf("Synthesize() failed: %v", err)
	}

	chunks := Tokenize(alarmScript, MaxChunkChars)
	if len(queries) != len(chunks) {
		t.Fatalf("expected %d requests, got %d", len(chunks), len(queries))
	}
	for i := range chunks {
		if queries[i] != chunks[i] {
			t.Errorf("request %d: expected text %q, got %q", i, chunks[i], queries[i])
		}
	}

	var want strings.Builder
	for i := range chunks {
		want.WriteString("[" + string(rune('0'+i)) + "]")
	}
	if string(speech.Data) != want.String() {
		t.Errorf("expected concatenated body %q, got %q", want.String(), speech.Data)
	}
	if speech.Codec != "mp3" {
		t.Errorf("expected mp3 codec, got %s", speech.Codec)
	}
}

func TestGoogleTranslateEmptyText(t *testing.T) {
	g := NewGoogleTranslate("http://127.0.0.1:1", "en", time.Second)
	_, err := g.Synthesize(context.Background(), "  ")
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestGoogleTranslateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := NewGoogleTranslate(server.URL, "en", 5*time.Second)
	_, err := g.Synthesize(context.Background(), "Sahur squad, let's do this!")
	if err == nil {
		t.Fatal("expected error for HTTP 429")
	}
	if !strings.Contains(err.Error(), "HTTP 429") {
		t.Errorf("expected HTTP status in error, got %v", err)
	}
}

func TestGoogleTranslateEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	g := NewGoogleTranslate(server.URL, "en", 5*time.Second)
	if _, err := g.Synthesize(context.Background(), "Hello"); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestGoogleTranslateCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGoogleTranslate(server.URL, "en", 5*time.Second)
	_, err := g.Synthesize(ctx, "Hello")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
