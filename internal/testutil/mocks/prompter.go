package mocks

import (
	"fmt"

	"github.com/puffsec/lockdown/internal/ports"
)

// Prompter is a scripted test double for ports.Prompter. Confirm pops
// answers in order; running out of answers is a test setup error.
type Prompter struct {
	answers   []bool
	textLines []string
	Questions []string
}

// NewPrompter creates a new Prompter mock.
func NewPrompter(answers ...bool) *Prompter {
	return &Prompter{answers: answers}
}

// AddText queues an answer for Ask.
func (m *Prompter) AddText(lines ...string) {
	m.textLines = append(m.textLines, lines...)
}

// Confirm pops the next scripted yes/no answer.
func (m *Prompter) Confirm(question string) (bool, error) {
	m.Questions = append(m.Questions, question)
	if len(m.answers) == 0 {
		return false, fmt.Errorf("no scripted answer for question: %s", question)
	}
	answer := m.answers[0]
	m.answers = m.answers[1:]
	return answer, nil
}

// Ask pops the next scripted text answer.
func (m *Prompter) Ask(question string) (string, error) {
	m.Questions = append(m.Questions, question)
	if len(m.textLines) == 0 {
		return "", fmt.Errorf("no scripted answer for question: %s", question)
	}
	line := m.textLines[0]
	m.textLines = m.textLines[1:]
	return line, nil
}

// Ensure Prompter implements ports.Prompter.
var _ ports.Prompter = (*Prompter)(nil)
