// ABOUTME: Google Translate speech client
// ABOUTME: Fetches MP3 speech from the translate_tts endpoint in short text chunks
package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxChunkChars is the longest text the endpoint accepts per request
const MaxChunkChars = 100

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) sahur-alarm"

// clauseBreaks end a clause when followed by whitespace or end of text
const clauseBreaks = ".,!?;:"

// GoogleTranslate fetches speech from Google Translate's TTS endpoint
type GoogleTranslate struct {
	Endpoint  string
	Language  string
	UserAgent string
	client    *http.Client
}

// NewGoogleTranslate creates a client for endpoint speaking language
func NewGoogleTranslate(endpoint, language string, timeout time.Duration) *GoogleTranslate {
	return &GoogleTranslate{
		Endpoint:  endpoint,
		Language:  language,
		UserAgent: defaultUserAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Synthesize speaks text and returns the concatenated MP3 stream
func (g *GoogleTranslate) Synthesize(ctx context.Context, text string) (*Speech, error) {
	chunks := Tokenize(text, MaxChunkChars)
	if len(chunks) == 0 {
		return nil, ErrEmptyText
	}

	log.Printf("Requesting speech: %d chunks, %d characters", len(chunks), utf8.RuneCountInString(text))

	var out bytes.Buffer
	for i, chunk := range chunks {
		data, err := g.fetch(ctx, chunk, i, len(chunks))
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		out.Write(data)
	}

	return &Speech{Data: out.Bytes(), Codec: "mp3"}, nil
}

// fetch requests one chunk of speech
func (g *GoogleTranslate) fetch(ctx context.Context, text string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", g.Language)
	q.Set("q", text)
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tts request: %w", err)
	}
	req.Header.Set("User-Agent", g.UserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts request failed: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tts response: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("tts response was empty")
	}

	return data, nil
}

// Tokenize splits text into chunks of at most limit characters. Cuts prefer
// clause punctuation, then whitespace; a single word longer than limit is
// split mid-word. Adjacent short clauses are packed back together.
func Tokenize(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxChunkChars
	}

	var pieces []string
	for _, clause := range splitClauses(text) {
		if utf8.RuneCountInString(clause) <= limit {
			pieces = append(pieces, clause)
			continue
		}
		pieces = append(pieces, splitWords(clause, limit)...)
	}

	var chunks []string
	var cur string
	for _, p := range pieces {
		switch {
		case cur == "":
			cur = p
		case utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(p) <= limit:
			cur += " " + p
		default:
			chunks = append(chunks, cur)
			cur = p
		}
	}
	if cur != "" {
		chunks = append(chunks, cur)
	}
	return chunks
}

// splitClauses cuts after clause punctuation and collapses whitespace
func splitClauses(text string) []string {
	var clauses []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if !strings.ContainsRune(clauseBreaks, r) {
			continue
		}
		if i+1 < len(runes) && !isSpace(runes[i+1]) {
			continue
		}
		clauses = appendClause(clauses, string(runes[start:i+1]))
		start = i + 1
	}
	return appendClause(clauses, string(runes[start:]))
}

func appendClause(clauses []string, s string) []string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return clauses
	}
	return append(clauses, s)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// splitWords packs words greedily into chunks of at most limit characters
func splitWords(clause string, limit int) []string {
	var chunks []string
	var cur string
	for _, word := range strings.Fields(clause) {
		for utf8.RuneCountInString(word) > limit {
			if cur != "" {
				chunks = append(chunks, cur)
				cur = ""
			}
			r := []rune(word)
			chunks = append(chunks, string(r[:limit]))
			word = string(r[limit:])
		}
		switch {
		case word == "":
		case cur == "":
			cur = word
		case utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(word) <= limit:
			cur += " " + word
		default:
			chunks = append(chunks, cur)
			cur = word
		}
	}
	if cur != "" {
		chunks = append(chunks, cur)
	}
	return chunks
}
