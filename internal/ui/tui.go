// ABOUTME: TUI initialization and control
// ABOUTME: Wraps a bubbletea program around the prompt model
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// TUIPrompter asks questions with a bubbletea program
type TUIPrompter struct {
	Options []tea.ProgramOption
}

// Ask implements Prompter
func (p TUIPrompter) Ask(questions []Question, preset Answers) (Answers, error) {
	pending := Pending(questions, preset)
	if len(pending) == 0 {
		return preset, nil
	}

	final, err := tea.NewProgram(NewPromptModel(pending, preset), p.Options...).Run()
	if err != nil {
		return Answers{}, fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(PromptModel)
	if !ok {
		return Answers{}, fmt.Errorf("unexpected model %T", final)
	}
	return m.Result()
}
