// ABOUTME: Question definitions shared by the interactive prompters
// ABOUTME: Describes the character, message and beat questions and their answers
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/sahur-alarm/pkg/audio/synth"
)

// ErrCancelled is returned when the user aborts a prompt
var ErrCancelled = errors.New("prompt cancelled")

// Field identifies one answer
type Field int

const (
	FieldCharacter Field = iota
	FieldMessage
	FieldBeat
)

func (f Field) String() string {
	switch f {
	case FieldCharacter:
		return "character"
	case FieldMessage:
		return "message"
	case FieldBeat:
		return "beat"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Question is one prompt shown to the user
type Question struct {
	Field  Field
	Prompt string
	// Options are offered as tab completions in the TUI. Free-text answers are still accepted.
	Options []string
	// Blank describes what an empty answer means
	Blank string
}

// Answers holds raw user input. Validation and fallbacks happen later.
type Answers struct {
	Character string
	Message   string
	Beat      string
}

// Get returns the answer for f
func (a Answers) Get(f Field) string {
	switch f {
	case FieldCharacter:
		return a.Character
	case FieldMessage:
		return a.Message
	case FieldBeat:
		return a.Beat
	}
	return ""
}

// Set stores the answer for f
func (a *Answers) Set(f Field, v string) {
	switch f {
	case FieldCharacter:
		a.Character = v
	case FieldMessage:
		a.Message = v
	case FieldBeat:
		a.Beat = v
	}
}

// Questions returns the three alarm questions in order. defaultBeat is
// what an empty beat answer falls back to.
func Questions(characters []string, defaultBeat string) []Question {
	beats := make([]string, len(synth.Tempos))
	for i, t := range synth.Tempos {
		beats[i] = t.String()
	}

	return []Question{
		{
			Field:   FieldCharacter,
			Prompt:  fmt.Sprintf("Choose a Free Fire character (%s): ", strings.Join(characters, ", ")),
			Options: characters,
			Blank:   "(random)",
		},
		{
			Field:  FieldMessage,
			Prompt: "Enter a motivational Sahur message (or press Enter for a random one): ",
			Blank:  "(random)",
		},
		{
			Field:   FieldBeat,
			Prompt:  fmt.Sprintf("Choose beat style (%s): ", strings.Join(beats, "/")),
			Options: beats,
			Blank:   fmt.Sprintf("(default: %s)", defaultBeat),
		},
	}
}

// Pending drops questions already answered in preset
func Pending(questions []Question, preset Answers) []Question {
	var out []Question
	for _, q := range questions {
		if preset.Get(q.Field) == "" {
			out = append(out, q)
		}
	}
	return out
}

// Prompter asks the pending questions, keeping preset answers
type Prompter interface {
	Ask(questions []Question, preset Answers) (Answers, error)
}
