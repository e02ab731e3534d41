// ABOUTME: Alarm script and input fallbacks
// ABOUTME: Builds the spoken jingle and resolves user choices to valid values
package alarm

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/harperreed/sahur-alarm/pkg/audio/synth"
)

const (
	// MinRepeats and MaxRepeats bound the "Tung Tung Tung" chant
	MinRepeats = 2
	MaxRepeats = 4

	chant = "Tung Tung Tung, "
)

// Rand is the random source used for every choice the generator makes.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic source for seed
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Repeats draws the chant count uniformly from MinRepeats..MaxRepeats
func Repeats(r Rand) int {
	return MinRepeats + r.IntN(MaxRepeats-MinRepeats+1)
}

// Script builds the line the voice reads
func Script(character, message string, repeats int) string {
	if repeats < 0 {
		repeats = 0
	}
	jingle := fmt.Sprintf("The Tung Tung Sahur goes %s The Tung Tung Sahur goes Tung Tung Tung, all through the town!",
		strings.Repeat(chant, repeats))
	return fmt.Sprintf("Yo, this is %s! %s %s", character, jingle, message)
}

// Choice is a resolved user input
type Choice struct {
	Value string
	// Fallback is set when Value replaced the input
	Fallback bool
	// Notice is shown to the user when a fallback happened; may be empty
	Notice string
}

// ResolveCharacter accepts input when it exactly names one of characters,
// otherwise picks one at random
func ResolveCharacter(input string, characters []string, r Rand) Choice {
	input = strings.TrimSpace(input)
	for _, c := range characters {
		if c == input {
			return Choice{Value: c}
		}
	}

	pick := characters[r.IntN(len(characters))]
	return Choice{
		Value:    pick,
		Fallback: true,
		Notice:   fmt.Sprintf("Invalid character, using %s instead.", pick),
	}
}

// ResolveMessage keeps a non-empty message, otherwise picks a canned one
func ResolveMessage(input string, messages []string, r Rand) Choice {
	input = strings.TrimSpace(input)
	if input != "" {
		return Choice{Value: input}
	}
	return Choice{Value: messages[r.IntN(len(messages))], Fallback: true}
}

// ResolveBeat accepts a known tempo in any case, otherwise uses fallback
func ResolveBeat(input string, fallback synth.Tempo) Choice {
	if tempo, err := synth.ParseTempo(input); err == nil {
		return Choice{Value: tempo.String()}
	}
	return Choice{
		Value:    fallback.String(),
		Fallback: true,
		Notice:   fmt.Sprintf("Invalid beat style, using %s beat.", fallback),
	}
}
