// ABOUTME: Plain line-based prompter for -no-tui and piped input
// ABOUTME: Reads one answer per line from a reader
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter prints each prompt to Out and reads a line from In.
// End of input yields empty answers so fallbacks apply.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Ask implements Prompter
func (p LinePrompter) Ask(questions []Question, preset Answers) (Answers, error) {
	answers := preset
	r := bufio.NewReader(p.In)

	for _, q := range Pending(questions, preset) {
		fmt.Fprint(p.Out, q.Prompt)

		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Answers{}, fmt.Errorf("failed to read %s: %w", q.Field, err)
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.Out)
		}

		answers.Set(q.Field, strings.TrimSpace(line))
	}

	return answers, nil
}
