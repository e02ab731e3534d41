// ABOUTME: Bubbletea model for the alarm prompts
// ABOUTME: Walks through the questions one at a time with a text input
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	helpStyle = lipgloss.NewStyle().Faint(true)
)

// PromptModel asks each question in turn
type PromptModel struct {
	questions []Question
	answers   Answers

	// Current question
	step  int
	input textinput.Model

	done      bool
	cancelled bool

	width int
}

// NewPromptModel creates a model that fills in preset with the questions' answers
func NewPromptModel(questions []Question, preset Answers) PromptModel {
	input := textinput.New()
	input.Prompt = ""
	input.ShowSuggestions = true
	input.Focus()

	m := PromptModel{
		questions: questions,
		answers:   preset,
		input:     input,
		done:      len(questions) == 0,
	}
	if !m.done {
		m.input.SetSuggestions(questions[0].Options)
	}
	return m
}

// Init initializes the model
func (m PromptModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return textinput.Blink
}

// Update handles messages
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey handles keyboard input. Editing keys go to the text input.
func (m PromptModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		q := m.questions[m.step]
		m.answers.Set(q.Field, strings.TrimSpace(m.input.Value()))
		m.step++
		m.input.Reset()
		if m.step >= len(m.questions) {
			m.done = true
			m.input.Blur()
			return m, tea.Quit
		}
		m.input.SetSuggestions(m.questions[m.step].Options)
		return m, nil

	case tea.KeyTab:
		// Complete to the option as written so case-sensitive names still match
		if s := m.input.CurrentSuggestion(); s != "" {
			m.input.SetValue(s)
			m.input.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompts
func (m PromptModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tung Tung Sahur Alarm"))
	b.WriteString("\n")

	for i := 0; i < m.step && i < len(m.questions); i++ {
		q := m.questions[i]
		b.WriteString(promptStyle.Render(q.Prompt))
		b.WriteString(answerStyle.Render(displayAnswer(q, m.answers.Get(q.Field))))
		b.WriteString("\n")
	}

	if m.done || m.cancelled {
		return b.String()
	}

	q := m.questions[m.step]
	b.WriteString(promptStyle.Render(q.Prompt))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(q.Options) > 0 {
		b.WriteString("\n")
		b.WriteString(optionStyle.Render("Options: " + strings.Join(q.Options, "  ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	b.WriteString("\n")

	return b.String()
}

func (m PromptModel) help() string {
	if len(m.questions[m.step].Options) > 0 {
		return "tab: complete  ↑/↓: next option  enter: confirm  esc: quit"
	}
	return "enter: confirm  esc: quit"
}

// Result returns the collected answers
func (m PromptModel) Result() (Answers, error) {
	if m.cancelled {
		return Answers{}, ErrCancelled
	}
	if !m.done {
		return Answers{}, fmt.Errorf("prompt ended after %d of %d questions", m.step, len(m.questions))
	}
	return m.answers, nil
}

// displayAnswer shows an answer, or what leaving it empty means
func displayAnswer(q Question, s string) string {
	if s != "" {
		return s
	}
	if q.Blank != "" {
		return q.Blank
	}
	return "(empty)"
}
